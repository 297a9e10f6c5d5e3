package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/captaintojo/srms/internal/app/models"
	"github.com/captaintojo/srms/internal/app/models/dto"
	"github.com/captaintojo/srms/internal/pkg/apperrors"
	"github.com/captaintojo/srms/internal/pkg/grading"
)

type memResultRepo struct {
	byStudent map[int64][]*models.Result
	nextID    int64
}

func newMemResultRepo() *memResultRepo {
	return &memResultRepo{byStudent: map[int64][]*models.Result{}}
}

func (m *memResultRepo) Create(ctx context.Context, result *models.Result) error {
	m.nextID++
	result.ID = m.nextID
	result.CreatedAt = time.Now()
	m.byStudent[result.StudentID] = append(m.byStudent[result.StudentID], result)
	return nil
}

func (m *memResultRepo) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Result, error) {
	return m.byStudent[studentID], nil
}

type memStudentRepo struct {
	byID map[int64]*models.Student
}

func (m *memStudentRepo) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	if s, ok := m.byID[id]; ok {
		return s, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func newTestResultService() (*ResultService, *memResultRepo) {
	results := newMemResultRepo()
	students := &memStudentRepo{byID: map[int64]*models.Student{
		1: {ID: 1, RegNo: "R100", Name: "Ann"},
	}}
	return NewResultService(results, students, zerolog.Nop()), results
}

func TestAddResult(t *testing.T) {
	svc, _ := newTestResultService()

	result, err := svc.AddResult(context.Background(), 1, &dto.AddResultRequest{Course: "Math", Score: "87"})
	require.NoError(t, err)

	assert.Equal(t, 87, result.Score)
	assert.Equal(t, grading.GradeA, result.Grade)
	assert.Equal(t, "Math", result.Course)

	stored, err := svc.ListResults(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, result, stored[0])
}

func TestAddResultGradeMatchesScore(t *testing.T) {
	svc, _ := newTestResultService()

	for raw, want := range map[string]grading.Grade{
		"70": grading.GradeA,
		"65": grading.GradeB,
		"50": grading.GradeC,
		"42": grading.GradeD,
		"-3": grading.GradeF,
	} {
		result, err := svc.AddResult(context.Background(), 1, &dto.AddResultRequest{Course: "Sci", Score: raw})
		require.NoError(t, err)
		assert.Equal(t, want, result.Grade, "raw score %s", raw)
	}
}

// A non-integer score is rejected without touching the store.
func TestAddResultInvalidScore(t *testing.T) {
	svc, results := newTestResultService()

	_, err := svc.AddResult(context.Background(), 1, &dto.AddResultRequest{Course: "Math", Score: "abc"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidScore)
	assert.Empty(t, results.byStudent[1])
}

func TestAddResultUnknownStudent(t *testing.T) {
	svc, results := newTestResultService()

	_, err := svc.AddResult(context.Background(), 42, &dto.AddResultRequest{Course: "Math", Score: "50"})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Empty(t, results.byStudent[42])
}
