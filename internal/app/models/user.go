package models

import (
	"time"
)

// User defines a login credential based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Username  string    `json:"username" db:"username" example:"admin"`                   // Login username; equals the student's reg_no for STUDENT users
	Password  string    `json:"-" db:"password"`                                          // Hashed password (excluded from JSON)
	Role      RoleType  `json:"role" db:"role" example:"ADMIN"`                           // User's role (ADMIN or STUDENT)
	StudentID *int64    `json:"studentId,omitempty" db:"student_id" example:"5"`          // Linked student record, set iff role is STUDENT
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
}
