package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Toyowa5296/poliform/internal/auth"
	"github.com/Toyowa5296/poliform/internal/common"
	"github.com/Toyowa5296/poliform/internal/db/repositories"
	"github.com/Toyowa5296/poliform/internal/models/dtos"
	models "github.com/Toyowa5296/poliform/internal/models/gorm"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService owns signup, login, and logout. The profile row is created
// together with the account, so every authenticated user has one from the
// first sign-in.
type AuthService struct {
	profiles *repositories.UserProfileRepository
	sessions *common.SessionService
	tokens   *auth.TokenService
}

func NewAuthService(profiles *repositories.UserProfileRepository, sessions *common.SessionService, tokens *auth.TokenService) *AuthService {
	return &AuthService{
		profiles: profiles,
		sessions: sessions,
		tokens:   tokens,
	}
}

// Signup registers an account and opens a session.
func (s *AuthService) Signup(ctx context.Context, req dtos.SignupRequest) (*dtos.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	profile := &models.UserProfile{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.openSession(ctx, profile)
}

// Login verifies the password and opens a session.
func (s *AuthService) Login(ctx context.Context, req dtos.LoginRequest) (*dtos.AuthResponse, error) {
	profile, err := s.profiles.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.openSession(ctx, profile)
}

// Logout tears down the caller's session.
func (s *AuthService) Logout(ctx context.Context, claims auth.UserClaims) error {
	sc, ok := claims.(*auth.SessionClaims)
	if !ok {
		return nil
	}
	return s.sessions.DeleteSession(ctx, sc.SessionID)
}

func (s *AuthService) openSession(ctx context.Context, profile *models.UserProfile) (*dtos.AuthResponse, error) {
	session, err := s.sessions.CreateSession(ctx, profile.ID, profile.Email, profile.Name)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(session.SessionID, profile.ID, session.ExpiresAt)
	if err != nil {
		return nil, err
	}

	return &dtos.AuthResponse{
		Token:     token,
		UserID:    profile.ID,
		Name:      profile.Name,
		Email:     profile.Email,
		ExpiresAt: session.ExpiresAt,
	}, nil
}
