package api

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"crossbox/gym-api/internal/domain"
	"crossbox/gym-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
)

// GymHandler serves the public website endpoints: chat, Find My Fit and quick booking.
type GymHandler struct {
	chatService    service.ChatService
	fitService     service.FitService
	bookingService service.BookingService
}

func NewGymHandler(chatService service.ChatService, fitService service.FitService, bookingService service.BookingService) *GymHandler {
	return &GymHandler{
		chatService:    chatService,
		fitService:     fitService,
		bookingService: bookingService,
	}
}

// --- Request/Response Structs ---

type ChatRequest struct {
	Message string `json:"message"`
}

// FitQuizRequest is the Find My Fit form. The form posts every field as a string,
// so duration and contact_trainer are decoded loosely.
type FitQuizRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
	Goal           string `json:"goal" binding:"required"`
	Experience     string `json:"experience" binding:"required"`
	Intensity      string `json:"intensity" binding:"required"`
	Duration       any    `json:"duration" binding:"required"`
	HealthNotes    string `json:"health_notes"`
	ContactTrainer any    `json:"contact_trainer"`
}

// RecommendationResponse is one ranked class in the Find My Fit result.
type RecommendationResponse struct {
	ClassID     string `json:"class_id"`
	ClassName   string `json:"class_name"`
	Duration    int    `json:"duration"`
	Intensity   string `json:"intensity"`
	Difficulty  string `json:"difficulty"`
	TrainerName string `json:"trainer_name,omitempty"`
	ClassDesc   string `json:"class_desc,omitempty"`
	MatchReason string `json:"match_reason"`
	Rank        int    `json:"rank"`
}

type FitSubmissionSummary struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Goal       string `json:"goal"`
	Experience string `json:"experience"`
	Intensity  string `json:"intensity"`
	Duration   int    `json:"duration"`
}

type FitQuizResponse struct {
	Success         bool                     `json:"success"`
	Message         string                   `json:"message"`
	SubmissionID    string                   `json:"submissionId"`
	Recommendations []RecommendationResponse `json:"recommendations"`
	UserSubmission  FitSubmissionSummary     `json:"userSubmission"`
}

type QuickBookRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	ClassName   string `json:"className" binding:"required"`
	BookingDate string `json:"bookingDate" binding:"required"`
	TimeSlot    string `json:"timeSlot" binding:"required"`
}

// --- Handler Methods ---

// Chat godoc
// @Summary Ask the gym assistant a question
// @Tags Public
// @Accept json
// @Produce json
// @Param message body ChatRequest true "Chat message"
// @Success 200 {object} gin.H "success flag plus the assistant reply in data"
// @Router /chatbot [post]
func (h *GymHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		abortWithError(c, http.StatusBadRequest, "Message is required")
		return
	}

	// Data failures are already folded into the reply, so the envelope always succeeds.
	reply := h.chatService.HandleChatMessage(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": reply})
}

// FindMyFit godoc
// @Summary Submit the Find My Fit quiz
// @Tags Public
// @Accept json
// @Produce json
// @Param quiz body FitQuizRequest true "Quiz answers"
// @Success 200 {object} FitQuizResponse
// @Failure 400 {object} gin.H "Invalid answers"
// @Failure 500 {object} gin.H "Submission could not be stored"
// @Router /find-my-fit [post]
func (h *GymHandler) FindMyFit(c *gin.Context) {
	var req FitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Please provide name, email, phone, goal, experience, intensity and duration")
		return
	}
	duration, err := parseMinutes(req.Duration)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "duration must be a number of minutes")
		return
	}
	contactTrainer, err := cast.ToBoolE(req.ContactTrainer)
	if err != nil && req.ContactTrainer != nil {
		abortWithError(c, http.StatusBadRequest, "contact_trainer must be true or false")
		return
	}

	answer := domain.FitQuizAnswer{
		Goal:           domain.Goal(strings.ToLower(strings.TrimSpace(req.Goal))),
		Experience:     domain.Experience(strings.ToLower(strings.TrimSpace(req.Experience))),
		Intensity:      domain.Intensity(strings.ToLower(strings.TrimSpace(req.Intensity))),
		Duration:       duration,
		HealthNotes:    req.HealthNotes,
		ContactTrainer: contactTrainer,
		Contact: domain.Contact{
			Name:  strings.TrimSpace(req.Name),
			Email: strings.TrimSpace(req.Email),
			Phone: strings.TrimSpace(req.Phone),
		},
	}

	result, err := h.fitService.HandleFitQuiz(c.Request.Context(), answer)
	if err != nil {
		abortWithAppError(c, err, "Failed to process your quiz. Please try again.")
		return
	}

	recs := make([]RecommendationResponse, 0, len(result.Recommendations))
	for _, r := range result.Recommendations {
		recs = append(recs, RecommendationResponse{
			ClassID:     r.Class.ID,
			ClassName:   r.Class.Name,
			Duration:    r.Class.DurationMinutes,
			Intensity:   r.Class.Intensity,
			Difficulty:  r.Class.Difficulty,
			TrainerName: r.Class.TrainerName,
			ClassDesc:   r.Class.Description,
			MatchReason: r.MatchReason,
			Rank:        r.Rank,
		})
	}

	c.JSON(http.StatusOK, FitQuizResponse{
		Success:         true,
		Message:         "Your personalized recommendations are ready!",
		SubmissionID:    result.SubmissionID,
		Recommendations: recs,
		UserSubmission: FitSubmissionSummary{
			Name:       answer.Contact.Name,
			Email:      answer.Contact.Email,
			Goal:       string(answer.Goal),
			Experience: string(answer.Experience),
			Intensity:  string(answer.Intensity),
			Duration:   answer.Duration,
		},
	})
}

// QuickBook godoc
// @Summary Book a class slot
// @Tags Public
// @Accept json
// @Produce json
// @Param booking body QuickBookRequest true "Booking details"
// @Success 201 {object} gin.H "Confirmed or waitlisted booking in data"
// @Failure 400 {object} gin.H "Invalid booking"
// @Router /quick-book [post]
func (h *GymHandler) QuickBook(c *gin.Context) {
	var req QuickBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	booking, err := h.bookingService.QuickBook(c.Request.Context(), domain.Booking{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		ClassName:   req.ClassName,
		BookingDate: req.BookingDate,
		TimeSlot:    req.TimeSlot,
	})
	if err != nil {
		abortWithAppError(c, err, "Failed to book class")
		return
	}

	message := "Your " + booking.ClassName + " class is booked for " + booking.BookingDate + " (" + booking.TimeSlot + ")."
	if booking.Status == domain.BookingWaitlist {
		message = "This slot is full. You've been added to the waitlist for " + booking.ClassName + " and we'll contact you if a place opens up."
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": message, "data": booking})
}

// parseMinutes accepts a whole number of minutes, either as a JSON number or a
// base-10 string. Fractions and other bases are rejected.
func parseMinutes(v any) (int, error) {
	switch val := v.(type) {
	case string:
		return strconv.Atoi(strings.TrimSpace(val))
	case bool, nil:
		return 0, fmt.Errorf("duration %v is not a number", v)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("duration %v is not a whole number of minutes", v)
	}
	return int(f), nil
}
