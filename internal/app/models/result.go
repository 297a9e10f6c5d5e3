package models

import (
	"time"

	"github.com/captaintojo/srms/internal/pkg/grading"
)

// Result defines a per-course score based on the 'results' table.
// The grade column is always the classifier's output for the stored score;
// rows are append-only and live only as long as the owning student.
type Result struct {
	ID        int64         `json:"id" db:"id" example:"1"`                // Unique identifier for the result
	StudentID int64         `json:"studentId" db:"student_id" example:"5"` // Owning student
	Course    string        `json:"course" db:"course" example:"Math"`     // Course name
	Score     int           `json:"score" db:"score" example:"87"`         // Raw integer score
	Grade     grading.Grade `json:"grade" db:"grade" example:"A"`          // Letter grade derived from the score
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`             // Timestamp when the result was recorded
}
