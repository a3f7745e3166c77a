package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"crossbox/gym-api/internal/domain"
	"crossbox/gym-api/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const classColumns = `id, class_name, trainer_name, duration_minutes, difficulty, intensity, class_desc`

// pgFitRepository implements repository.FitStore.
type pgFitRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewFitRepository creates a FitStore backed by Postgres.
func NewFitRepository(db *sql.DB) repository.FitStore {
	return &pgFitRepository{db: db, now: time.Now}
}

// FetchClassesByNameAndMinDuration orders exact difficulty matches first, then shorter
// classes, then the position of the class name in names, then id.
func (r *pgFitRepository) FetchClassesByNameAndMinDuration(ctx context.Context, names []string, minDuration int, preferredExperience domain.Experience) ([]domain.Class, error) {
	if len(names) == 0 {
		return []domain.Class{}, nil
	}

	query := `
		SELECT ` + classColumns + `
		FROM classes
		WHERE class_name = ANY($1::text[]) AND duration_minutes >= $2
		ORDER BY (LOWER(difficulty) = LOWER($3)) DESC,
		         duration_minutes ASC,
		         array_position($1::text[], class_name) ASC,
		         id ASC`

	return r.queryClasses(ctx, query, pq.Array(names), minDuration, string(preferredExperience))
}

func (r *pgFitRepository) FetchAnyClassesByMinDuration(ctx context.Context, minDuration, limit int) ([]domain.Class, error) {
	query := `
		SELECT ` + classColumns + `
		FROM classes
		WHERE duration_minutes >= $1
		ORDER BY duration_minutes ASC, class_name ASC, id ASC
		LIMIT $2`

	return r.queryClasses(ctx, query, minDuration, limit)
}

func (r *pgFitRepository) InsertFitSubmission(ctx context.Context, answer domain.FitQuizAnswer) (string, error) {
	const query = `
		INSERT INTO fit_submissions
			(id, name, email, phone, goal, experience, intensity, duration, health_notes, contact_trainer, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, query,
		id,
		answer.Contact.Name,
		answer.Contact.Email,
		answer.Contact.Phone,
		string(answer.Goal),
		string(answer.Experience),
		string(answer.Intensity),
		answer.Duration,
		answer.HealthNotes,
		answer.ContactTrainer,
		r.now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("insert fit submission: %w", err)
	}
	return id, nil
}

func (r *pgFitRepository) InsertRecommendationLink(ctx context.Context, submissionID, classID string) error {
	const query = `
		INSERT INTO fit_recommendations (submission_id, class_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (submission_id, class_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, submissionID, classID, r.now().UTC()); err != nil {
		return fmt.Errorf("insert recommendation link: %w", err)
	}
	return nil
}

func (r *pgFitRepository) queryClasses(ctx context.Context, query string, args ...any) ([]domain.Class, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query classes: %w", err)
	}
	defer rows.Close()

	classes := []domain.Class{}
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClass(row rowScanner) (domain.Class, error) {
	var c domain.Class
	err := row.Scan(&c.ID, &c.Name, &c.TrainerName, &c.DurationMinutes, &c.Difficulty, &c.Intensity, &c.Description)
	if err != nil {
		return domain.Class{}, fmt.Errorf("scan class: %w", err)
	}
	return c, nil
}
