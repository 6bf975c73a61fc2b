package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"pharmastock/internal/adapters/persistence/models"
	"pharmastock/internal/adapters/persistence/repositories"
	"pharmastock/internal/core/domain"
	"pharmastock/internal/pkg/password"
	"pharmastock/internal/pkg/session"

	"gorm.io/gorm"
)

// AuthService handles signup, login, and the session lifecycle
type AuthService struct {
	userRepo repositories.UserRepository
	sessions session.Store
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, sessions session.Store) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
	}
}

// SignupInput represents signup input
type SignupInput struct {
	FullName string
	Email    string
	Password string
}

// LoginInput represents login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult carries the authenticated user and the issued session token
type LoginResult struct {
	User  *models.User
	Token string
}

// Signup creates a new account. Every signup gets the admin role;
// stock_admin accounts are provisioned out-of-band.
func (s *AuthService) Signup(ctx context.Context, input *SignupInput) error {
	hashed, err := password.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:     input.FullName,
		Role:     models.RoleAdmin,
		Email:    input.Email,
		Password: hashed,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	log.Printf("User registered: %s (%s)", user.Name, user.Email)
	return nil
}

// Login verifies credentials and opens a session. Unknown email and wrong
// password are reported as distinct errors so the handler can keep the
// original user-facing messages.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmailNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, domain.ErrInvalidPassword
	}

	token, err := s.sessions.Create(ctx, session.Record{
		UserID: user.UserID,
		Name:   user.Name,
		Role:   user.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &LoginResult{User: user, Token: token}, nil
}

// Logout destroys the session bound to token. Unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Destroy(ctx, token)
}
