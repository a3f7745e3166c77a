package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"crossbox/gym-api/internal/domain"
	"crossbox/gym-api/internal/repository"
)

type pgAdminRepository struct {
	db *sql.DB
}

// NewAdminRepository creates the dashboard repository backed by Postgres.
func NewAdminRepository(db *sql.DB) repository.AdminRepository {
	return &pgAdminRepository{db: db}
}

func (r *pgAdminRepository) CountMembers(ctx context.Context) (domain.CountPair, error) {
	const query = `SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active) FROM users WHERE role = $1`
	return r.countPair(ctx, query, string(domain.RoleMember))
}

func (r *pgAdminRepository) CountTrainers(ctx context.Context) (domain.CountPair, error) {
	const query = `SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active) FROM trainers`
	return r.countPair(ctx, query)
}

func (r *pgAdminRepository) CountClasses(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM classes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count classes: %w", err)
	}
	return n, nil
}

func (r *pgAdminRepository) CountBookingsSince(ctx context.Context, since time.Time) (int64, error) {
	const query = `SELECT COUNT(*) FROM bookings WHERE is_deleted = FALSE AND created_at >= $1`

	var n int64
	if err := r.db.QueryRowContext(ctx, query, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return n, nil
}

func (r *pgAdminRepository) ListTrainers(ctx context.Context) ([]domain.Trainer, error) {
	const query = `
		SELECT id, trainer_name, specialisation, email, phone, photo_key, is_active
		FROM trainers
		ORDER BY trainer_name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query trainers: %w", err)
	}
	defer rows.Close()

	trainers := []domain.Trainer{}
	for rows.Next() {
		var t domain.Trainer
		if err := rows.Scan(&t.ID, &t.Name, &t.Specialisation, &t.Email, &t.Phone, &t.PhotoKey, &t.IsActive); err != nil {
			return nil, fmt.Errorf("scan trainer: %w", err)
		}
		trainers = append(trainers, t)
	}
	return trainers, rows.Err()
}

func (r *pgAdminRepository) ListClassSummaries(ctx context.Context) ([]domain.ClassSummary, error) {
	const query = `
		SELECT c.id, c.class_name, c.trainer_name, c.duration_minutes, c.difficulty, c.intensity, c.class_desc,
		       COUNT(b.id) AS enrolled_count
		FROM classes c
		LEFT JOIN bookings b ON b.class_name = c.class_name AND b.is_deleted = FALSE
		GROUP BY c.id
		ORDER BY c.class_name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query class summaries: %w", err)
	}
	defer rows.Close()

	out := []domain.ClassSummary{}
	for rows.Next() {
		var s domain.ClassSummary
		c := &s.Class
		if err := rows.Scan(&c.ID, &c.Name, &c.TrainerName, &c.DurationMinutes, &c.Difficulty, &c.Intensity, &c.Description, &s.EnrolledCount); err != nil {
			return nil, fmt.Errorf("scan class summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// RecentActivity merges bookings and quiz submissions, newest first.
func (r *pgAdminRepository) RecentActivity(ctx context.Context, limit int) ([]domain.ActivityItem, error) {
	const query = `
		SELECT kind, name, class_name, created_at FROM (
			SELECT 'booking' AS kind, full_name AS name, class_name, created_at
			FROM bookings WHERE is_deleted = FALSE
			UNION ALL
			SELECT 'fit_submission' AS kind, name, '' AS class_name, created_at
			FROM fit_submissions
		) activity
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent activity: %w", err)
	}
	defer rows.Close()

	items := []domain.ActivityItem{}
	for rows.Next() {
		var it domain.ActivityItem
		var kind string
		if err := rows.Scan(&kind, &it.Name, &it.ClassName, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		it.Type = domain.ActivityType(kind)
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *pgAdminRepository) ToggleTrainer(ctx context.Context, id string) (bool, error) {
	const query = `UPDATE trainers SET is_active = NOT is_active WHERE id = $1 RETURNING is_active`
	return toggleReturning(ctx, r.db, query, id)
}

func (r *pgAdminRepository) SetTrainerPhotoKey(ctx context.Context, id, key string) (string, error) {
	// The self-join exposes the pre-update row to RETURNING.
	const query = `
		UPDATE trainers t SET photo_key = $2
		FROM trainers old
		WHERE t.id = $1 AND old.id = t.id
		RETURNING old.photo_key`

	var previous string
	err := r.db.QueryRowContext(ctx, query, id, key).Scan(&previous)
	if errors.Is(err, sql.ErrNoRows) {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("update trainer photo: %w", err)
	}
	return previous, nil
}

func (r *pgAdminRepository) countPair(ctx context.Context, query string, args ...any) (domain.CountPair, error) {
	var p domain.CountPair
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&p.Total, &p.Active); err != nil {
		return domain.CountPair{}, fmt.Errorf("count: %w", err)
	}
	return p, nil
}
