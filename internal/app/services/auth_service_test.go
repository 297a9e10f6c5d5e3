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
	"github.com/captaintojo/srms/internal/pkg/auth"
)

type memUserRepo struct {
	byUsername map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byUsername: map[string]*models.User{}}
}

func (m *memUserRepo) add(t *testing.T, username, password string, role models.RoleType) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	u := &models.User{
		ID:       int64(len(m.byUsername) + 1),
		Username: username,
		Password: hash,
		Role:     role,
	}
	m.byUsername[username] = u
	return u
}

func (m *memUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if u, ok := m.byUsername[username]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func newTestAuthService(repo *memUserRepo) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "srms.test",
	})
	return NewAuthService(repo, jwtService, zerolog.Nop())
}

func TestLoginSuccess(t *testing.T) {
	repo := newMemUserRepo()
	repo.add(t, "admin", "admin123", models.RoleAdmin)
	svc := newTestAuthService(repo)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	assert.Equal(t, "admin", resp.User.Username)
	assert.Equal(t, "ADMIN", resp.User.Role)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.NotEmpty(t, resp.Token.AccessToken)
}

func TestLoginStudentRole(t *testing.T) {
	repo := newMemUserRepo()
	sid := int64(7)
	u := repo.add(t, "R100", "R100", models.RoleStudent)
	u.StudentID = &sid
	svc := newTestAuthService(repo)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "R100", Password: "R100"})
	require.NoError(t, err)

	assert.Equal(t, "STUDENT", resp.User.Role)
	require.NotNil(t, resp.User.StudentID)
	assert.Equal(t, sid, *resp.User.StudentID)
}

// Unknown username and wrong password come back as the same error, so the
// response cannot be used to enumerate usernames.
func TestLoginFailureIsGeneric(t *testing.T) {
	repo := newMemUserRepo()
	repo.add(t, "admin", "admin123", models.RoleAdmin)
	svc := newTestAuthService(repo)

	_, badPassword := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "wrong"})
	_, unknownUser := svc.Login(context.Background(), &dto.LoginRequest{Username: "nosuchuser", Password: "x"})

	assert.ErrorIs(t, badPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, apperrors.ErrInvalidCredentials)
	assert.Equal(t, badPassword.Error(), unknownUser.Error())
}

func TestLoginEmptyCredentials(t *testing.T) {
	svc := newTestAuthService(newMemUserRepo())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "  ", Password: ""})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
