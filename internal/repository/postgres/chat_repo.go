package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"crossbox/gym-api/internal/domain"
	"crossbox/gym-api/internal/repository"
)

// pgChatRepository implements repository.ChatDataSource over the relational store.
type pgChatRepository struct {
	db *sql.DB
}

// NewChatRepository creates a ChatDataSource backed by Postgres.
func NewChatRepository(db *sql.DB) repository.ChatDataSource {
	return &pgChatRepository{db: db}
}

func (r *pgChatRepository) FetchActivePlans(ctx context.Context) ([]domain.Plan, error) {
	const query = `
		SELECT id, plan_name, plan_level, plan_price, plan_desc, duration
		FROM plans
		WHERE is_active = TRUE
		ORDER BY plan_price ASC, plan_name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query active plans: %w", err)
	}
	defer rows.Close()

	plans := []domain.Plan{}
	for rows.Next() {
		p := domain.Plan{IsActive: true}
		if err := rows.Scan(&p.ID, &p.Name, &p.Level, &p.Price, &p.Description, &p.Duration); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *pgChatRepository) FetchDistinctClassNames(ctx context.Context, limit int) ([]string, error) {
	const query = `SELECT DISTINCT class_name FROM classes ORDER BY class_name LIMIT $1`
	return queryStrings(ctx, r.db, query, limit)
}

func (r *pgChatRepository) FetchActiveTrainers(ctx context.Context, limit int) ([]domain.Trainer, error) {
	const query = `
		SELECT id, trainer_name, specialisation, email, phone
		FROM trainers
		WHERE is_active = TRUE
		ORDER BY trainer_name
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query active trainers: %w", err)
	}
	defer rows.Close()

	trainers := []domain.Trainer{}
	for rows.Next() {
		t := domain.Trainer{IsActive: true}
		if err := rows.Scan(&t.ID, &t.Name, &t.Specialisation, &t.Email, &t.Phone); err != nil {
			return nil, fmt.Errorf("scan trainer: %w", err)
		}
		trainers = append(trainers, t)
	}
	return trainers, rows.Err()
}

func (r *pgChatRepository) CountActiveMembers(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM users WHERE is_active = TRUE AND role = $1`

	var count int64
	if err := r.db.QueryRowContext(ctx, query, string(domain.RoleMember)).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active members: %w", err)
	}
	return count, nil
}

func (r *pgChatRepository) FetchDistinctBookingClassNames(ctx context.Context, limit int) ([]string, error) {
	const query = `SELECT DISTINCT class_name FROM bookings WHERE is_deleted = FALSE ORDER BY class_name LIMIT $1`
	return queryStrings(ctx, r.db, query, limit)
}

// queryStrings runs a single-column query and collects the values.
func queryStrings(ctx context.Context, db *sql.DB, query string, args ...any) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
