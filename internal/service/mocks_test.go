package service

import (
	"context"
	"time"

	"crossbox/gym-api/internal/domain"

	"github.com/stretchr/testify/mock"
)

// ==========================
// Repository mocks
// ==========================

type MockChatData struct {
	mock.Mock
}

func (m *MockChatData) FetchActivePlans(ctx context.Context) ([]domain.Plan, error) {
	args := m.Called(ctx)
	plans, _ := args.Get(0).([]domain.Plan)
	return plans, args.Error(1)
}

func (m *MockChatData) FetchDistinctClassNames(ctx context.Context, limit int) ([]string, error) {
	args := m.Called(ctx, limit)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func (m *MockChatData) FetchActiveTrainers(ctx context.Context, limit int) ([]domain.Trainer, error) {
	args := m.Called(ctx, limit)
	trainers, _ := args.Get(0).([]domain.Trainer)
	return trainers, args.Error(1)
}

func (m *MockChatData) CountActiveMembers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChatData) FetchDistinctBookingClassNames(ctx context.Context, limit int) ([]string, error) {
	args := m.Called(ctx, limit)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

type MockFitStore struct {
	mock.Mock
}

func (m *MockFitStore) FetchClassesByNameAndMinDuration(ctx context.Context, names []string, minDuration int, preferred domain.Experience) ([]domain.Class, error) {
	args := m.Called(ctx, names, minDuration, preferred)
	classes, _ := args.Get(0).([]domain.Class)
	return classes, args.Error(1)
}

func (m *MockFitStore) FetchAnyClassesByMinDuration(ctx context.Context, minDuration, limit int) ([]domain.Class, error) {
	args := m.Called(ctx, minDuration, limit)
	classes, _ := args.Get(0).([]domain.Class)
	return classes, args.Error(1)
}

func (m *MockFitStore) InsertFitSubmission(ctx context.Context, answer domain.FitQuizAnswer) (string, error) {
	args := m.Called(ctx, answer)
	return args.String(0), args.Error(1)
}

func (m *MockFitStore) InsertRecommendationLink(ctx context.Context, submissionID, classID string) error {
	args := m.Called(ctx, submissionID, classID)
	return args.Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, role)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}

func (m *MockUserRepo) ToggleActive(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) CountMembers(ctx context.Context) (domain.CountPair, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.CountPair), args.Error(1)
}

func (m *MockAdminRepo) CountTrainers(ctx context.Context) (domain.CountPair, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.CountPair), args.Error(1)
}

func (m *MockAdminRepo) CountClasses(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminRepo) CountBookingsSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminRepo) ListTrainers(ctx context.Context) ([]domain.Trainer, error) {
	args := m.Called(ctx)
	trainers, _ := args.Get(0).([]domain.Trainer)
	return trainers, args.Error(1)
}

func (m *MockAdminRepo) ListClassSummaries(ctx context.Context) ([]domain.ClassSummary, error) {
	args := m.Called(ctx)
	classes, _ := args.Get(0).([]domain.ClassSummary)
	return classes, args.Error(1)
}

func (m *MockAdminRepo) RecentActivity(ctx context.Context, limit int) ([]domain.ActivityItem, error) {
	args := m.Called(ctx, limit)
	items, _ := args.Get(0).([]domain.ActivityItem)
	return items, args.Error(1)
}

func (m *MockAdminRepo) ToggleTrainer(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminRepo) SetTrainerPhotoKey(ctx context.Context, id, key string) (string, error) {
	args := m.Called(ctx, id, key)
	return args.String(0), args.Error(1)
}

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) CountActive(ctx context.Context, className, bookingDate, timeSlot string) (int64, error) {
	args := m.Called(ctx, className, bookingDate, timeSlot)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}

// ==========================
// Collaborator mocks
// ==========================

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GeneratePresignedUploadURL(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, contentType, expires)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expires)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) DeleteObject(ctx context.Context, objectKey string) error {
	args := m.Called(ctx, objectKey)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyTrainerContact(ctx context.Context, submissionID string, answer domain.FitQuizAnswer, recs []domain.Recommendation) error {
	args := m.Called(ctx, submissionID, answer, recs)
	return args.Error(0)
}
