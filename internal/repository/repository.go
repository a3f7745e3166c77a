package repository

import (
	"context" // Standard for request-scoped deadlines, cancellation signals, etc.
	"time"

	"crossbox/gym-api/internal/domain" // Import our defined domain models
)

// Error constants for repository layer
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate entry")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ChatDataSource is the read-only view of gym data the chat assistant answers from.
type ChatDataSource interface {
	FetchActivePlans(ctx context.Context) ([]domain.Plan, error)
	FetchDistinctClassNames(ctx context.Context, limit int) ([]string, error)
	FetchActiveTrainers(ctx context.Context, limit int) ([]domain.Trainer, error)
	CountActiveMembers(ctx context.Context) (int64, error)
	FetchDistinctBookingClassNames(ctx context.Context, limit int) ([]string, error)
}

// FitStore backs the Find My Fit quiz: class lookups plus submission persistence.
type FitStore interface {
	// FetchClassesByNameAndMinDuration returns classes whose name is in names and whose
	// duration is at least minDuration. Rows whose difficulty equals preferredExperience
	// come first, then ascending duration, then the order of names.
	FetchClassesByNameAndMinDuration(ctx context.Context, names []string, minDuration int, preferredExperience domain.Experience) ([]domain.Class, error)
	FetchAnyClassesByMinDuration(ctx context.Context, minDuration, limit int) ([]domain.Class, error)
	InsertFitSubmission(ctx context.Context, answer domain.FitQuizAnswer) (string, error)
	InsertRecommendationLink(ctx context.Context, submissionID, classID string) error
}

// UserRepository defines the interface for interacting with user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (string, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	// ToggleActive flips the active flag and returns the new value.
	ToggleActive(ctx context.Context, id string) (bool, error)
}

// AdminRepository covers the aggregate reads and trainer maintenance behind the admin dashboard.
type AdminRepository interface {
	CountMembers(ctx context.Context) (domain.CountPair, error)
	CountTrainers(ctx context.Context) (domain.CountPair, error)
	CountClasses(ctx context.Context) (int64, error)
	CountBookingsSince(ctx context.Context, since time.Time) (int64, error)
	ListTrainers(ctx context.Context) ([]domain.Trainer, error)
	ListClassSummaries(ctx context.Context) ([]domain.ClassSummary, error)
	RecentActivity(ctx context.Context, limit int) ([]domain.ActivityItem, error)
	ToggleTrainer(ctx context.Context, id string) (bool, error)
	// SetTrainerPhotoKey stores a new photo object key and returns the one it replaced.
	SetTrainerPhotoKey(ctx context.Context, id, key string) (previous string, err error)
}

// BookingRepository defines the interface for class bookings.
type BookingRepository interface {
	// CountActive counts non-cancelled bookings for one class slot.
	CountActive(ctx context.Context, className, bookingDate, timeSlot string) (int64, error)
	Create(ctx context.Context, booking *domain.Booking) (string, error)
}
