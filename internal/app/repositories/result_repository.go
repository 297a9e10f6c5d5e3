package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/captaintojo/srms/internal/app/models"
)

// ResultRepository handles database operations for course results
type ResultRepository struct {
	db *pgxpool.Pool
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{
		db: db,
	}
}

// Create inserts a result and fills in the generated id
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	query := `
		INSERT INTO results (student_id, course, score, grade)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		result.StudentID,
		result.Course,
		result.Score,
		result.Grade,
	).Scan(&result.ID, &result.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByStudentID retrieves all results for a student in insertion order
func (r *ResultRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Result, error) {
	query := `
		SELECT id, student_id, course, score, grade, created_at
		FROM results
		WHERE student_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		var result models.Result
		if err := rows.Scan(
			&result.ID,
			&result.StudentID,
			&result.Course,
			&result.Score,
			&result.Grade,
			&result.CreatedAt,
		); err != nil {
			return nil, err
		}
		results = append(results, &result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
