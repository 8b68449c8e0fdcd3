package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/example/event-assistant/internal/persistence"
)

// PasswordVerifier compares a stored hash with a candidate password.
type PasswordVerifier func(hashedPassword, password string) error

// AuthService grants and revokes administrator rights based on the
// configured admin password hash.
type AuthService struct {
	users          persistence.UserRepository
	passwordHash   string
	verifyPassword PasswordVerifier
	logger         *slog.Logger
}

// NewAuthService wires dependencies for the auth service.
func NewAuthService(users persistence.UserRepository, passwordHash string, verify PasswordVerifier, logger *slog.Logger) *AuthService {
	if verify == nil {
		verify = VerifyPassword
	}
	return &AuthService{
		users:          users,
		passwordHash:   passwordHash,
		verifyPassword: verify,
		logger:         defaultLogger(logger),
	}
}

func (s *AuthService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "AuthService", operation, attrs...)
}

// Login verifies the admin password and promotes the user on success.
func (s *AuthService) Login(ctx context.Context, userID int64, password string) (err error) {
	if s == nil {
		return fmt.Errorf("AuthService is nil")
	}
	if s.users == nil {
		return fmt.Errorf("user repository not configured")
	}

	logger := s.loggerWith(ctx, "Login", "user_id", userID)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "admin login failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "admin login succeeded")
	}()

	if password == "" {
		return ErrInvalidCredentials
	}
	if err = s.verifyPassword(s.passwordHash, password); err != nil {
		if !errors.Is(err, ErrInvalidCredentials) {
			return err
		}
		return ErrInvalidCredentials
	}

	if err = s.users.SetAdmin(ctx, userID, true); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Logout drops the user's administrator rights.
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	if s == nil {
		return fmt.Errorf("AuthService is nil")
	}
	if s.users == nil {
		return fmt.Errorf("user repository not configured")
	}

	logger := s.loggerWith(ctx, "Logout", "user_id", userID)
	if err := s.users.SetAdmin(ctx, userID, false); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return ErrNotFound
		}
		logger.ErrorContext(ctx, "admin logout failed", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	logger.InfoContext(ctx, "admin logout succeeded")
	return nil
}

// IsAdmin reports whether the user currently holds administrator rights.
func (s *AuthService) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	if s == nil {
		return false, fmt.Errorf("AuthService is nil")
	}
	if s.users == nil {
		return false, fmt.Errorf("user repository not configured")
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin, nil
}
