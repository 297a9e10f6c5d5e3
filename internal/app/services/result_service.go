package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/captaintojo/srms/internal/app/models"
	"github.com/captaintojo/srms/internal/app/models/dto"
	"github.com/captaintojo/srms/internal/pkg/apperrors"
	"github.com/captaintojo/srms/internal/pkg/grading"
)

// ResultStore is the slice of the result repository the service needs
type ResultStore interface {
	Create(ctx context.Context, result *models.Result) error
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Result, error)
}

// StudentGetter looks up a student record by id
type StudentGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// ResultService handles result entry and grade derivation
type ResultService struct {
	results  ResultStore
	students StudentGetter
	logger   zerolog.Logger
}

// NewResultService creates a new ResultService
func NewResultService(results ResultStore, students StudentGetter, logger zerolog.Logger) *ResultService {
	return &ResultService{
		results:  results,
		students: students,
		logger:   logger,
	}
}

// AddResult records a score for a student. The raw score must parse as an
// integer; beyond that there is no range validation, and the stored grade is
// always the classifier's output for the parsed score.
func (s *ResultService) AddResult(ctx context.Context, studentID int64, req *dto.AddResultRequest) (*models.Result, error) {
	score, err := strconv.Atoi(strings.TrimSpace(req.Score))
	if err != nil {
		return nil, apperrors.ErrInvalidScore
	}

	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	result := &models.Result{
		StudentID: studentID,
		Course:    strings.TrimSpace(req.Course),
		Score:     score,
		Grade:     grading.Classify(score),
	}

	if err := s.results.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("error storing result: %w", err)
	}

	s.logger.Info().
		Int64("studentId", studentID).
		Str("course", result.Course).
		Int("score", score).
		Str("grade", string(result.Grade)).
		Msg("Result recorded")

	return result, nil
}

// ListResults returns all results for a student in insertion order
func (s *ResultService) ListResults(ctx context.Context, studentID int64) ([]*models.Result, error) {
	return s.results.GetByStudentID(ctx, studentID)
}
