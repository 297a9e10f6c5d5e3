package dto

import "github.com/captaintojo/srms/internal/app/models"

// CreateStudentRequest represents the data needed to register a student.
// Department and dob are optional, matching the nullable columns.
type CreateStudentRequest struct {
	RegNo      string `json:"regNo" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Department string `json:"department"`
	DOB        string `json:"dob"`
}

// StudentResponse represents a student record
type StudentResponse struct {
	ID         int64   `json:"id"`
	RegNo      string  `json:"regNo"`
	Name       string  `json:"name"`
	Department *string `json:"department,omitempty"`
	DOB        *string `json:"dob,omitempty"`
}

// StudentWithResultsResponse bundles a student with its course results
type StudentWithResultsResponse struct {
	Student StudentResponse  `json:"student"`
	Results []*models.Result `json:"results"`
}

// NewStudentResponse maps a model onto the response shape
func NewStudentResponse(s *models.Student) StudentResponse {
	return StudentResponse{
		ID:         s.ID,
		RegNo:      s.RegNo,
		Name:       s.Name,
		Department: s.Department,
		DOB:        s.DOB,
	}
}
