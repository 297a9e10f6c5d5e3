package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/captaintojo/srms/internal/app/models"
	"github.com/captaintojo/srms/internal/app/models/dto"
	"github.com/captaintojo/srms/internal/db"
	"github.com/captaintojo/srms/internal/pkg/apperrors"
	"github.com/captaintojo/srms/internal/pkg/auth"
	"github.com/captaintojo/srms/internal/pkg/dberrors"
)

// TxRunner executes fn inside a single database transaction.
type TxRunner func(ctx context.Context, fn db.TransactionFn) error

// StudentStore is the student persistence surface the service depends on.
type StudentStore interface {
	CreateTx(ctx context.Context, tx pgx.Tx, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Delete(ctx context.Context, id int64) error
}

// CredentialStore writes login credentials inside a provisioning transaction.
type CredentialStore interface {
	CreateTx(ctx context.Context, tx pgx.Tx, user *models.User) error
}

// ResultLister reads the results attached to a student.
type ResultLister interface {
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Result, error)
}

// StudentService handles student provisioning and lookup
type StudentService struct {
	runTx    TxRunner
	students StudentStore
	users    CredentialStore
	results  ResultLister
	logger   zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	pool *pgxpool.Pool,
	students StudentStore,
	users CredentialStore,
	results ResultLister,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		runTx: func(ctx context.Context, fn db.TransactionFn) error {
			return db.WithTransaction(ctx, pool, fn)
		},
		students: students,
		users:    users,
		results:  results,
		logger:   logger,
	}
}

// CreateStudent provisions a student record together with its login
// credential. Both rows commit in one transaction: a failure on either
// insert leaves no partial state, and concurrent attempts on the same regNo
// resolve to exactly one success under the unique index.
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	regNo := strings.TrimSpace(req.RegNo)
	name := strings.TrimSpace(req.Name)

	student := &models.Student{
		RegNo:      regNo,
		Name:       name,
		Department: optional(req.Department),
		DOB:        optional(req.DOB),
	}

	err := s.runTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.students.CreateTx(ctx, tx, student); err != nil {
			return err
		}

		user, err := newStudentCredential(student.ID, regNo)
		if err != nil {
			return err
		}

		return s.users.CreateTx(ctx, tx, user)
	})
	if err != nil {
		return nil, translateProvisionError(err)
	}

	s.logger.Info().Str("regNo", regNo).Int64("studentId", student.ID).Msg("Student provisioned with login")

	return student, nil
}

// newStudentCredential builds the initial login for a freshly created
// student. The starting password is the registration number itself, kept
// for parity with the enrollment workflow this replaces; it is a known-weak
// default and students are expected to be issued a new one out of band.
func newStudentCredential(studentID int64, regNo string) (*models.User, error) {
	hashed, err := auth.HashPassword(regNo)
	if err != nil {
		return nil, fmt.Errorf("error hashing initial password: %w", err)
	}

	return &models.User{
		Username:  regNo,
		Password:  hashed,
		Role:      models.RoleStudent,
		StudentID: &studentID,
	}, nil
}

// translateProvisionError collapses unique violations from either table into
// the single duplicate-registration error the caller sees.
func translateProvisionError(err error) error {
	if dberrors.IsDuplicateConstraintError(err, "students_reg_no_key") ||
		dberrors.IsDuplicateConstraintError(err, "users_username_key") ||
		dberrors.IsUniqueViolation(err) {
		return apperrors.ErrRegNoAlreadyExists
	}
	return err
}

// ListStudents returns all students, most recently created first
func (s *StudentService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.students.GetAll(ctx)
}

// GetStudentWithResults returns a student and all of its course results
func (s *StudentService) GetStudentWithResults(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	results, err := s.results.GetByStudentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving results: %w", err)
	}
	if results == nil {
		results = []*models.Result{}
	}
	student.Results = results

	return student, nil
}

// DeleteStudent removes a student; the credential and results cascade away
// with the row. The admin account is unaffected since it has no student link.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("studentId", id).Msg("Student deleted")
	return nil
}

// optional maps an empty form value onto a NULL column
func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
