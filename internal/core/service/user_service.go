package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/domain"
	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/ports"
)

// UserService implements the admin user-management operations.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// List returns every user in the directory. Admin only.
func (s *UserService) List(ctx context.Context, actorID string) ([]*domain.User, error) {
	if err := s.authorizeAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

// ToggleStatus flips a user's active flag. Admins cannot deactivate
// themselves, which would lock the last admin out mid-session.
func (s *UserService) ToggleStatus(ctx context.Context, actorID, userID string) (*domain.User, error) {
	if err := s.authorizeAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	if actorID == userID {
		return nil, fmt.Errorf("%w: cannot change own account status", domain.ErrInvalidInput)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.users.SetActive(ctx, userID, !user.IsActive); err != nil {
		return nil, err
	}
	user.IsActive = !user.IsActive

	s.logger.Info().
		Str("user_id", userID).
		Bool("is_active", user.IsActive).
		Str("by", actorID).
		Msg("user status toggled")
	return user, nil
}

// ResetPassword sets a new password for a user without requiring the old
// one. Admin only.
func (s *UserService) ResetPassword(ctx context.Context, actorID, userID, newPassword string) error {
	if err := s.authorizeAdmin(ctx, actorID); err != nil {
		return err
	}
	if len(newPassword) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLen)
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.users.SetPasswordHash(ctx, userID, string(hash)); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", userID).Str("by", actorID).Msg("password reset by admin")
	return nil
}

func (s *UserService) authorizeAdmin(ctx context.Context, actorID string) error {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return err
	}
	return domain.Authorize(actor, domain.ActionManageUsers, nil)
}
