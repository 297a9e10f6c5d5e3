package models

import (
	"time"
)

// Student defines a student record based on the 'students' table
type Student struct {
	ID         int64     `json:"id" db:"id" example:"1"`                            // Unique identifier for the student record
	RegNo      string    `json:"regNo" db:"reg_no" example:"R100"`                  // Registration number, unique; doubles as the login username
	Name       string    `json:"name" db:"name" example:"Ann Smith"`                // Student's full name
	Department *string   `json:"department,omitempty" db:"department" example:"CS"` // Department (nullable)
	DOB        *string   `json:"dob,omitempty" db:"dob" example:"2000-01-01"`       // Date of birth, stored as text (nullable)
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`                         // Timestamp when the record was created

	// Relation (populated when needed)
	Results []*Result `json:"results,omitempty"` // Course results for this student
}
