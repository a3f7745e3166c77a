package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"crossbox/gym-api/internal/apperror"
	"crossbox/gym-api/internal/domain"
	"crossbox/gym-api/internal/repository"

	"go.uber.org/zap"
)

const bookingDateLayout = "2006-01-02"

// BookingService takes class reservations.
type BookingService interface {
	// QuickBook stores a booking, confirmed while the slot has room and waitlisted after.
	QuickBook(ctx context.Context, req domain.Booking) (*domain.Booking, error)
}

type bookingService struct {
	repo         repository.BookingRepository
	slotCapacity int64
	logger       *zap.Logger
	now          func() time.Time
}

func NewBookingService(repo repository.BookingRepository, slotCapacity int, logger *zap.Logger) BookingService {
	return &bookingService{
		repo:         repo,
		slotCapacity: int64(slotCapacity),
		logger:       logger,
		now:          time.Now,
	}
}

func (s *bookingService) QuickBook(ctx context.Context, req domain.Booking) (*domain.Booking, error) {
	b := domain.Booking{
		FullName:    strings.TrimSpace(req.FullName),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       strings.TrimSpace(req.Phone),
		ClassName:   strings.TrimSpace(req.ClassName),
		BookingDate: strings.TrimSpace(req.BookingDate),
		TimeSlot:    strings.TrimSpace(req.TimeSlot),
	}
	if err := s.validate(b); err != nil {
		return nil, err
	}

	// Count and insert are not atomic; a burst can overfill a slot by a few places.
	taken, err := s.repo.CountActive(ctx, b.ClassName, b.BookingDate, b.TimeSlot)
	if err != nil {
		return nil, apperror.DataFetch("Failed to check class availability", err)
	}

	b.Status = domain.BookingConfirmed
	if taken >= s.slotCapacity {
		b.Status = domain.BookingWaitlist
	}
	b.CreatedAt = s.now()

	id, err := s.repo.Create(ctx, &b)
	if err != nil {
		s.logger.Error("Failed to save booking", zap.String("class", b.ClassName), zap.Error(err))
		return nil, apperror.Persistence("Failed to save your booking. Please try again.", err)
	}
	b.ID = id

	s.logger.Info("Class booked",
		zap.String("booking_id", id),
		zap.String("class", b.ClassName),
		zap.String("date", b.BookingDate),
		zap.String("slot", b.TimeSlot),
		zap.String("status", string(b.Status)),
	)
	return &b, nil
}

func (s *bookingService) validate(b domain.Booking) error {
	if b.FullName == "" || b.Email == "" || b.Phone == "" || b.ClassName == "" || b.BookingDate == "" || b.TimeSlot == "" {
		return apperror.Validation("All fields are required")
	}
	if _, err := mail.ParseAddress(b.Email); err != nil {
		return apperror.Validation("Please provide a valid email address")
	}
	date, err := time.Parse(bookingDateLayout, b.BookingDate)
	if err != nil {
		return apperror.Validation("bookingDate must be in YYYY-MM-DD format")
	}
	y, m, d := s.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return apperror.Validation("Booking date cannot be in the past")
	}
	return nil
}
