package service

import (
	"context"
	"sort"
	"strings"

	"crossbox/gym-api/internal/apperror"
	"crossbox/gym-api/internal/domain"
	"crossbox/gym-api/internal/metrics"
	"crossbox/gym-api/internal/notify"
	"crossbox/gym-api/internal/repository"

	"go.uber.org/zap"
)

const (
	maxRecommendations  = 3
	fallbackMatchReason = "Great option for your fitness journey"
)

// MatchRules maps goal and intensity to candidate class names, highest priority first.
type MatchRules map[domain.Goal]map[domain.Intensity][]string

// Candidates returns the candidate list for a goal and intensity; nil on a miss.
func (r MatchRules) Candidates(goal domain.Goal, intensity domain.Intensity) []string {
	return r[goal][intensity]
}

// DefaultMatchRules returns a fresh copy of the built-in rule table, covering every
// goal and intensity combination.
func DefaultMatchRules() MatchRules {
	return MatchRules{
		domain.GoalWeightLoss: {
			domain.IntensityLow:      {"Aqua Aerobics", "Power Walk", "Gentle Stretch"},
			domain.IntensityModerate: {"Zumba", "Spin Class", "Cardio Blast"},
			domain.IntensityHigh:     {"Crossfit", "HIIT", "Cardio Blast", "Boot Camp"},
		},
		domain.GoalMuscleGain: {
			domain.IntensityLow:      {"Pilates", "Body Pump"},
			domain.IntensityModerate: {"Strength Training", "Body Pump", "Kettlebell"},
			domain.IntensityHigh:     {"Crossfit", "Powerlifting", "Strength Training"},
		},
		domain.GoalEndurance: {
			domain.IntensityLow:      {"Power Walk", "Aqua Aerobics"},
			domain.IntensityModerate: {"Spin Class", "Running Club", "Cardio Blast"},
			domain.IntensityHigh:     {"HIIT", "Boot Camp", "Spin Class"},
		},
		domain.GoalFlexibility: {
			domain.IntensityLow:      {"Gentle Stretch", "Yoga", "Pilates"},
			domain.IntensityModerate: {"Yoga", "Pilates", "Barre"},
			domain.IntensityHigh:     {"Power Yoga", "Hot Yoga", "Barre"},
		},
		domain.GoalGeneralFitness: {
			domain.IntensityLow:      {"Gentle Stretch", "Yoga", "Aqua Aerobics"},
			domain.IntensityModerate: {"Circuit Training", "Zumba", "Strength Training"},
			domain.IntensityHigh:     {"Crossfit", "Boot Camp", "HIIT"},
		},
	}
}

var goalRationale = map[domain.Goal]string{
	domain.GoalWeightLoss:     "Burns calories efficiently and boosts metabolism",
	domain.GoalMuscleGain:     "Focuses on strength building and muscle development",
	domain.GoalEndurance:      "Builds cardiovascular stamina and staying power",
	domain.GoalFlexibility:    "Improves range of motion and body awareness",
	domain.GoalGeneralFitness: "Offers well-rounded conditioning for overall health",
}

var experienceModifier = map[domain.Experience]string{
	domain.ExperienceBeginner:     ", with modifications for newcomers",
	domain.ExperienceIntermediate: ", building on the foundation you already have",
	domain.ExperienceAdvanced:     ", challenging enough for experienced athletes",
}

// MatchReason is the justification attached to rule-based recommendations.
func MatchReason(goal domain.Goal, experience domain.Experience) string {
	return goalRationale[goal] + experienceModifier[experience]
}

// FitService runs the Find My Fit quiz.
type FitService interface {
	HandleFitQuiz(ctx context.Context, answer domain.FitQuizAnswer) (*domain.FitResult, error)
}

// FitOption customises a fit service.
type FitOption func(*fitService)

// WithMatchRules replaces the built-in rule table.
func WithMatchRules(rules MatchRules) FitOption {
	return func(s *fitService) { s.rules = rules }
}

// WithTrainerNotifier sends a contact request for answers with ContactTrainer set.
func WithTrainerNotifier(n notify.Notifier) FitOption {
	return func(s *fitService) { s.notifier = n }
}

type fitService struct {
	store    repository.FitStore
	rules    MatchRules
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewFitService creates the fit-matching engine.
func NewFitService(store repository.FitStore, logger *zap.Logger, opts ...FitOption) FitService {
	s := &fitService{
		store:  store,
		rules:  DefaultMatchRules(),
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateFitQuizAnswer checks the enums and duration. Contact details are only
// required when the taker asked to be contacted.
func ValidateFitQuizAnswer(a domain.FitQuizAnswer) error {
	if _, ok := goalRationale[a.Goal]; !ok {
		return apperror.Validation("goal must be one of weight_loss, muscle_gain, endurance, flexibility, general_fitness")
	}
	if _, ok := experienceModifier[a.Experience]; !ok {
		return apperror.Validation("experience must be one of beginner, intermediate, advanced")
	}
	switch a.Intensity {
	case domain.IntensityLow, domain.IntensityModerate, domain.IntensityHigh:
	default:
		return apperror.Validation("intensity must be one of low, moderate, high")
	}
	if a.Duration < 1 {
		return apperror.Validation("duration must be at least 1 minute")
	}
	if a.ContactTrainer && strings.TrimSpace(a.Contact.Email) == "" && strings.TrimSpace(a.Contact.Phone) == "" {
		return apperror.Validation("an email or phone number is required to be contacted by a trainer")
	}
	return nil
}

func (s *fitService) HandleFitQuiz(ctx context.Context, answer domain.FitQuizAnswer) (*domain.FitResult, error) {
	// 1. Reject bad input before anything is written
	if err := ValidateFitQuizAnswer(answer); err != nil {
		return nil, err
	}

	// 2. Persist the submission; nothing else happens without it
	submissionID, err := s.store.InsertFitSubmission(ctx, answer)
	if err != nil {
		s.logger.Error("Failed to save fit submission", zap.Error(err))
		return nil, apperror.Persistence("We couldn't save your answers. Please try again.", err)
	}

	// 3. Pick candidates and rank them
	recs, path, err := s.recommend(ctx, answer)
	if err != nil {
		s.logger.Error("Failed to load classes for recommendations",
			zap.String("submission_id", submissionID), zap.Error(err))
		return nil, apperror.DataFetch("We saved your answers but couldn't load recommendations. Please try again.", err)
	}
	metrics.FitRecommendations.WithLabelValues(path).Inc()

	// 4. Record which classes were recommended; failures here never fail the quiz
	s.linkRecommendations(ctx, submissionID, recs)

	// 5. Hand off to the trainer desk if asked
	if answer.ContactTrainer && s.notifier != nil {
		if err := s.notifier.NotifyTrainerContact(ctx, submissionID, answer, recs); err != nil {
			s.logger.Warn("Trainer contact notification failed",
				zap.String("submission_id", submissionID), zap.Error(err))
		}
	}

	s.logger.Info("Fit quiz handled",
		zap.String("submission_id", submissionID),
		zap.String("goal", string(answer.Goal)),
		zap.String("path", path),
		zap.Int("recommendations", len(recs)),
	)

	return &domain.FitResult{SubmissionID: submissionID, Recommendations: recs}, nil
}

// recommend returns up to maxRecommendations ranked recommendations and the path taken.
func (s *fitService) recommend(ctx context.Context, answer domain.FitQuizAnswer) ([]domain.Recommendation, string, error) {
	candidates := s.rules.Candidates(answer.Goal, answer.Intensity)
	if len(candidates) == 0 {
		classes, err := s.store.FetchAnyClassesByMinDuration(ctx, answer.Duration, maxRecommendations)
		if err != nil {
			return nil, "fallback", err
		}
		return toRecommendations(classes, fallbackMatchReason), "fallback", nil
	}

	classes, err := s.store.FetchClassesByNameAndMinDuration(ctx, candidates, answer.Duration, answer.Experience)
	if err != nil {
		return nil, "rule", err
	}
	rankClasses(classes, candidates, answer.Experience)
	return toRecommendations(classes, MatchReason(answer.Goal, answer.Experience)), "rule", nil
}

// rankClasses orders exact difficulty matches first, then shorter classes, then
// candidate priority, then class id. Stores already return this order; sorting again keeps the
// contract independent of the backend.
func rankClasses(classes []domain.Class, candidates []string, experience domain.Experience) {
	priority := make(map[string]int, len(candidates))
	for i, name := range candidates {
		if _, seen := priority[name]; !seen {
			priority[name] = i
		}
	}

	sort.SliceStable(classes, func(i, j int) bool {
		a, b := classes[i], classes[j]
		am := strings.EqualFold(a.Difficulty, string(experience))
		bm := strings.EqualFold(b.Difficulty, string(experience))
		if am != bm {
			return am
		}
		if a.DurationMinutes != b.DurationMinutes {
			return a.DurationMinutes < b.DurationMinutes
		}
		if priority[a.Name] != priority[b.Name] {
			return priority[a.Name] < priority[b.Name]
		}
		return a.ID < b.ID
	})
}

func toRecommendations(classes []domain.Class, reason string) []domain.Recommendation {
	if len(classes) > maxRecommendations {
		classes = classes[:maxRecommendations]
	}
	recs := make([]domain.Recommendation, 0, len(classes))
	for i, c := range classes {
		recs = append(recs, domain.Recommendation{Class: c, MatchReason: reason, Rank: i + 1})
	}
	return recs
}

func (s *fitService) linkRecommendations(ctx context.Context, submissionID string, recs []domain.Recommendation) {
	for _, r := range recs {
		if r.Class.ID == "" {
			continue
		}
		if err := s.store.InsertRecommendationLink(ctx, submissionID, r.Class.ID); err != nil {
			metrics.FitLinkFailures.Inc()
			s.logger.Warn("Recommendation link not saved",
				zap.String("code", string(apperror.CodePartialWrite)),
				zap.String("submission_id", submissionID),
				zap.String("class_id", r.Class.ID),
				zap.Error(err),
			)
		}
	}
}
