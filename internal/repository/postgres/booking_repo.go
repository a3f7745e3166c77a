package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"crossbox/gym-api/internal/domain"
	"crossbox/gym-api/internal/repository"

	"github.com/google/uuid"
)

type pgBookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a BookingRepository backed by Postgres.
func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &pgBookingRepository{db: db}
}

func (r *pgBookingRepository) CountActive(ctx context.Context, className, bookingDate, timeSlot string) (int64, error) {
	const query = `
		SELECT COUNT(*) FROM bookings
		WHERE class_name = $1 AND booking_date = $2 AND time_slot = $3 AND is_deleted = FALSE`

	var n int64
	if err := r.db.QueryRowContext(ctx, query, className, bookingDate, timeSlot).Scan(&n); err != nil {
		return 0, fmt.Errorf("count slot bookings: %w", err)
	}
	return n, nil
}

func (r *pgBookingRepository) Create(ctx context.Context, b *domain.Booking) (string, error) {
	const query = `
		INSERT INTO bookings (id, full_name, email, phone, class_name, booking_date, time_slot, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	b.ID = uuid.NewString()
	b.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.FullName, b.Email, b.Phone, b.ClassName, b.BookingDate, b.TimeSlot, string(b.Status), b.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert booking: %w", err)
	}
	return b.ID, nil
}
