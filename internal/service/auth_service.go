package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"itemdesk/internal/models"
	"itemdesk/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows.
var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrPasswordTooLong    = errors.New("password is too long")
	ErrUsernameTaken      = errors.New("username already exists")
	// ErrInvalidCredentials covers both unknown users and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthService handles user auth logic.
type AuthService struct {
	authRepo repository.Authorization
}

func NewAuthService(repo repository.Authorization) *AuthService {
	return &AuthService{authRepo: repo}
}

// SignUp hashes the password and creates a new user.
func (s *AuthService) SignUp(ctx context.Context, username, password string) (int, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return 0, ErrMissingCredentials
	}
	hash, err := hashPassword(password)
	if err != nil {
		return 0, err
	}
	id, err := s.authRepo.Create(ctx, username, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return 0, ErrUsernameTaken
		}
		return 0, err
	}
	return id, nil
}

// Authenticate returns the user whose password matches. Unknown users still
// pay for one bcrypt comparison so both failure paths take similar time.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	u, err := s.authRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	return h
})

func hashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrMissingCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
