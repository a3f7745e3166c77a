package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"crossbox/gym-api/internal/apperror"
	"crossbox/gym-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var bookingNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func newTestBookingService(repo *MockBookingRepo, capacity int) BookingService {
	svc := NewBookingService(repo, capacity, zap.NewNop()).(*bookingService)
	svc.now = func() time.Time { return bookingNow }
	return svc
}

func bookingRequest() domain.Booking {
	return domain.Booking{
		FullName:    "Meera Nair",
		Email:       "Meera@Example.com ",
		Phone:       "9876543210",
		ClassName:   "Yoga",
		BookingDate: "2026-03-12",
		TimeSlot:    "Morning",
	}
}

func TestQuickBook_Status(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		taken  int64
		status domain.BookingStatus
	}{
		{"empty slot", 0, domain.BookingConfirmed},
		{"last place", 19, domain.BookingConfirmed},
		{"full slot", 20, domain.BookingWaitlist},
		{"overfilled slot", 23, domain.BookingWaitlist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockBookingRepo{}
			repo.On("CountActive", ctx, "Yoga", "2026-03-12", "Morning").Return(tt.taken, nil)
			repo.On("Create", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
				return b.Status == tt.status && b.Email == "meera@example.com" && b.CreatedAt.Equal(bookingNow)
			})).Return("b-1", nil)

			booking, err := newTestBookingService(repo, 20).QuickBook(ctx, bookingRequest())

			require.NoError(t, err)
			assert.Equal(t, "b-1", booking.ID)
			assert.Equal(t, tt.status, booking.Status)
			repo.AssertExpectations(t)
		})
	}
}

func TestQuickBook_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(b *domain.Booking)
	}{
		{"missing name", func(b *domain.Booking) { b.FullName = "  " }},
		{"missing slot", func(b *domain.Booking) { b.TimeSlot = "" }},
		{"bad email", func(b *domain.Booking) { b.Email = "meera" }},
		{"bad date", func(b *domain.Booking) { b.BookingDate = "12/03/2026" }},
		{"past date", func(b *domain.Booking) { b.BookingDate = "2026-03-09" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockBookingRepo{}
			req := bookingRequest()
			tt.mutate(&req)

			_, err := newTestBookingService(repo, 20).QuickBook(ctx, req)

			assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestQuickBook_TodayIsAllowed(t *testing.T) {
	ctx := context.Background()
	repo := &MockBookingRepo{}
	repo.On("CountActive", ctx, "Yoga", "2026-03-10", "Morning").Return(int64(0), nil)
	repo.On("Create", ctx, mock.Anything).Return("b-2", nil)

	req := bookingRequest()
	req.BookingDate = "2026-03-10"
	_, err := newTestBookingService(repo, 20).QuickBook(ctx, req)

	assert.NoError(t, err)
}

func TestQuickBook_StoreFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("count fails", func(t *testing.T) {
		repo := &MockBookingRepo{}
		repo.On("CountActive", ctx, mock.Anything, mock.Anything, mock.Anything).Return(int64(0), errors.New("timeout"))

		_, err := newTestBookingService(repo, 20).QuickBook(ctx, bookingRequest())

		assert.Equal(t, apperror.CodeDataFetch, apperror.CodeOf(err))
	})

	t.Run("insert fails", func(t *testing.T) {
		repo := &MockBookingRepo{}
		repo.On("CountActive", ctx, mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)
		repo.On("Create", ctx, mock.Anything).Return("", errors.New("disk full"))

		_, err := newTestBookingService(repo, 20).QuickBook(ctx, bookingRequest())

		assert.Equal(t, apperror.CodePersistence, apperror.CodeOf(err))
	})
}
