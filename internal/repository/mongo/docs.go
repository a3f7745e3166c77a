package mongo

import (
	"time"

	"crossbox/gym-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names
const (
	userCollectionName           = "users"
	planCollectionName           = "plans"
	trainerCollectionName        = "trainers"
	classCollectionName          = "classes"
	bookingCollectionName        = "bookings"
	submissionCollectionName     = "fit_submissions"
	recommendationCollectionName = "fit_recommendations"
)

// --- Document shapes ---
// Domain types carry string IDs; these mirror them with ObjectIDs for storage.

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"passwordHash"`
	Role         domain.Role        `bson:"role"`
	Phone        string             `bson:"phone,omitempty"`
	IsActive     bool               `bson:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (d userDoc) toDomain() domain.User {
	return domain.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         d.Role,
		Phone:        d.Phone,
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type planDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"planName"`
	Level       string             `bson:"planLevel"`
	Price       float64            `bson:"planPrice"`
	Description string             `bson:"planDesc"`
	Duration    string             `bson:"planDuration,omitempty"`
	IsActive    bool               `bson:"isActive"`
}

func (d planDoc) toDomain() domain.Plan {
	return domain.Plan{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Level:       d.Level,
		Price:       d.Price,
		Description: d.Description,
		Duration:    d.Duration,
		IsActive:    d.IsActive,
	}
}

type trainerDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"trainerName"`
	Specialisation string             `bson:"specialisation"`
	Email          string             `bson:"email,omitempty"`
	Phone          string             `bson:"phone,omitempty"`
	PhotoKey       string             `bson:"photoKey,omitempty"`
	IsActive       bool               `bson:"isActive"`
}

func (d trainerDoc) toDomain() domain.Trainer {
	return domain.Trainer{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		Specialisation: d.Specialisation,
		Email:          d.Email,
		Phone:          d.Phone,
		PhotoKey:       d.PhotoKey,
		IsActive:       d.IsActive,
	}
}

type classDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	TrainerName     string             `bson:"trainerName,omitempty"`
	DurationMinutes int                `bson:"durationMinutes"`
	Difficulty      string             `bson:"difficulty"`
	Intensity       string             `bson:"intensity"`
	Description     string             `bson:"description,omitempty"`
}

func (d classDoc) toDomain() domain.Class {
	return domain.Class{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		TrainerName:     d.TrainerName,
		DurationMinutes: d.DurationMinutes,
		Difficulty:      d.Difficulty,
		Intensity:       d.Intensity,
		Description:     d.Description,
	}
}

type bookingDoc struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	FullName    string               `bson:"fullName"`
	Email       string               `bson:"email"`
	Phone       string               `bson:"phone"`
	ClassName   string               `bson:"className"`
	BookingDate string               `bson:"bookingDate"`
	TimeSlot    string               `bson:"timeSlot"`
	Status      domain.BookingStatus `bson:"status"`
	IsDeleted   bool                 `bson:"isDeleted"`
	CreatedAt   time.Time            `bson:"createdAt"`
}

type submissionDoc struct {
	domain.FitQuizAnswer `bson:",inline"`

	ID        primitive.ObjectID `bson:"_id,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type recommendationDoc struct {
	SubmissionID primitive.ObjectID `bson:"submissionId"`
	ClassID      primitive.ObjectID `bson:"classId"`
	CreatedAt    time.Time          `bson:"createdAt"`
}
