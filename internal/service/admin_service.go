package service

import (
	"context"
	"errors"
	"time"

	"crossbox/gym-api/internal/apperror"
	"crossbox/gym-api/internal/domain"
	"crossbox/gym-api/internal/repository"
	"crossbox/gym-api/internal/storage"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

const (
	recentBookingWindow = 7 * 24 * time.Hour
	recentActivityLimit = 10
)

var (
	ErrUnsupportedPhotoType = errors.New("photo must be a JPEG, PNG or WebP image")
	ErrStorageUnavailable   = errors.New("photo storage is not configured")
)

// AdminService backs the admin dashboard.
type AdminService interface {
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
	ListMembers(ctx context.Context) ([]domain.User, error)
	ListTrainers(ctx context.Context) ([]domain.TrainerProfile, error)
	ListClasses(ctx context.Context) ([]domain.ClassSummary, error)
	RecentActivity(ctx context.Context) ([]domain.ActivityItem, error)
	// ToggleUser and ToggleTrainer flip the active flag and return the new value.
	ToggleUser(ctx context.Context, id string) (bool, error)
	ToggleTrainer(ctx context.Context, id string) (bool, error)
	TrainerPhotoUploadURL(ctx context.Context, trainerID, contentType string) (*domain.PhotoUpload, error)
}

type adminService struct {
	admin   repository.AdminRepository
	users   repository.UserRepository
	storage storage.FileStorage // nil when S3 is not configured
	logger  *zap.Logger
	now     func() time.Time
}

// NewAdminService creates the dashboard service. fileStorage may be nil, in which case
// trainers are listed without photo links and photo uploads are refused.
func NewAdminService(admin repository.AdminRepository, users repository.UserRepository, fileStorage storage.FileStorage, logger *zap.Logger) AdminService {
	return &adminService{
		admin:   admin,
		users:   users,
		storage: fileStorage,
		logger:  logger,
		now:     time.Now,
	}
}

// DashboardStats runs the four count queries concurrently; the first failure cancels the rest.
func (s *adminService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}
	since := s.now().Add(-recentBookingWindow)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) (err error) {
		stats.Members, err = s.admin.CountMembers(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		stats.Trainers, err = s.admin.CountTrainers(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		stats.Classes.Total, err = s.admin.CountClasses(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		stats.Bookings.Recent, err = s.admin.CountBookingsSince(ctx, since)
		return err
	})

	if err := p.Wait(); err != nil {
		s.logger.Error("Dashboard stats failed", zap.Error(err))
		return nil, apperror.DataFetch("Failed to load dashboard statistics", err)
	}
	return stats, nil
}

func (s *adminService) ListMembers(ctx context.Context) ([]domain.User, error) {
	members, err := s.users.ListByRole(ctx, domain.RoleMember)
	if err != nil {
		return nil, apperror.DataFetch("Failed to load members", err)
	}
	return members, nil
}

func (s *adminService) ListTrainers(ctx context.Context) ([]domain.TrainerProfile, error) {
	trainers, err := s.admin.ListTrainers(ctx)
	if err != nil {
		return nil, apperror.DataFetch("Failed to load trainers", err)
	}

	profiles := make([]domain.TrainerProfile, 0, len(trainers))
	for _, t := range trainers {
		profile := domain.TrainerProfile{Trainer: t}
		if t.PhotoKey != "" && s.storage != nil {
			url, err := s.storage.GeneratePresignedDownloadURL(ctx, t.PhotoKey, storage.DefaultPresignedURLExpiry)
			if err != nil {
				// A missing photo link should not hide the trainer.
				s.logger.Warn("Failed to presign trainer photo", zap.String("trainer_id", t.ID), zap.Error(err))
			} else {
				profile.PhotoURL = url
			}
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (s *adminService) ListClasses(ctx context.Context) ([]domain.ClassSummary, error) {
	classes, err := s.admin.ListClassSummaries(ctx)
	if err != nil {
		return nil, apperror.DataFetch("Failed to load classes", err)
	}
	return classes, nil
}

func (s *adminService) RecentActivity(ctx context.Context) ([]domain.ActivityItem, error) {
	items, err := s.admin.RecentActivity(ctx, recentActivityLimit)
	if err != nil {
		return nil, apperror.DataFetch("Failed to load recent activity", err)
	}
	return items, nil
}

func (s *adminService) ToggleUser(ctx context.Context, id string) (bool, error) {
	active, err := s.users.ToggleActive(ctx, id)
	if err != nil {
		return false, toggleError("User", err)
	}
	s.logger.Info("User status toggled", zap.String("user_id", id), zap.Bool("active", active))
	return active, nil
}

func (s *adminService) ToggleTrainer(ctx context.Context, id string) (bool, error) {
	active, err := s.admin.ToggleTrainer(ctx, id)
	if err != nil {
		return false, toggleError("Trainer", err)
	}
	s.logger.Info("Trainer status toggled", zap.String("trainer_id", id), zap.Bool("active", active))
	return active, nil
}

func toggleError(entity string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound(entity+" not found", err)
	}
	return apperror.Persistence("Failed to update "+entity+" status", err)
}

// TrainerPhotoUploadURL reserves a new object key for the trainer, returns a presigned PUT
// URL for it and removes the photo it replaces.
func (s *adminService) TrainerPhotoUploadURL(ctx context.Context, trainerID, contentType string) (*domain.PhotoUpload, error) {
	if s.storage == nil {
		return nil, ErrStorageUnavailable
	}

	key, err := storage.TrainerPhotoKey(trainerID, contentType)
	if err != nil {
		return nil, ErrUnsupportedPhotoType
	}

	url, err := s.storage.GeneratePresignedUploadURL(ctx, key, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		s.logger.Error("Failed to presign photo upload", zap.String("trainer_id", trainerID), zap.Error(err))
		return nil, err
	}

	previous, err := s.admin.SetTrainerPhotoKey(ctx, trainerID, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Trainer not found", err)
		}
		return nil, apperror.Persistence("Failed to save trainer photo", err)
	}

	if previous != "" && previous != key {
		if err := s.storage.DeleteObject(ctx, previous); err != nil {
			s.logger.Warn("Failed to delete replaced trainer photo",
				zap.String("trainer_id", trainerID), zap.String("object_key", previous), zap.Error(err))
		}
	}

	return &domain.PhotoUpload{
		UploadURL: url,
		ObjectKey: key,
		ExpiresAt: s.now().Add(storage.DefaultPresignedURLExpiry),
	}, nil
}
