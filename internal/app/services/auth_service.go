package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/captaintojo/srms/internal/app/models"
	"github.com/captaintojo/srms/internal/app/models/dto"
	"github.com/captaintojo/srms/internal/pkg/apperrors"
	"github.com/captaintojo/srms/internal/pkg/auth"
)

// UserGetter is the slice of the user repository the auth service needs
type UserGetter interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService handles login and session token issuance
type AuthService struct {
	userRepo   UserGetter
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo UserGetter, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies credentials and issues a session token. Unknown usernames
// and wrong passwords both come back as apperrors.ErrInvalidCredentials so
// the response never reveals which one it was.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)
	if username == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("User logged in")

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   int64(expiresIn),
		},
		User: dto.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Role:      string(user.Role),
			StudentID: user.StudentID,
		},
	}, nil
}
