package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/example/task-tracker/domain/user"
)

var (
	// ErrInvalidCredentials is returned when login credentials are invalid.
	// The same error covers an unknown username and a wrong password, so the
	// login endpoint cannot be used to enumerate usernames.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrEmptyUsername is returned when the username is empty.
	ErrEmptyUsername = errors.New("username must not be empty")
)

// AuthService handles registration, authentication and token handling.
type AuthService struct {
	repo   *UserRepository
	hasher *PasswordHasher
	tokens *TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *UserRepository, hasher *PasswordHasher, tokens *TokenManager) *AuthService {
	return &AuthService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a new user account, storing only the password hash.
func (s *AuthService) Register(_ context.Context, username, password string) (*domain.User, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}

	exists, err := s.repo.UsernameExists(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}
	if exists {
		return nil, ErrUserExists
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies the credentials and returns the matching user.
func (s *AuthService) Authenticate(_ context.Context, username, password string) (*domain.User, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates a user and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// ValidateToken validates a bearer token and returns its claims.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*domain.Claims, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	return &domain.Claims{
		Username: claims.Username,
	}, nil
}

// GetUser retrieves a user by username. A validated token whose subject no
// longer exists must still fail the gate; callers treat ErrUserNotFound as
// an authentication failure.
func (s *AuthService) GetUser(_ context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(username)
}

// TokenTTL returns the token lifetime in seconds.
func (s *AuthService) TokenTTL() int64 {
	return s.tokens.TokenTTL()
}
