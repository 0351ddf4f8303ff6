package ports

import (
	"context"

	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/domain"
)

// UserService defines the admin user-management operations.
type UserService interface {
	List(ctx context.Context, actorID string) ([]*domain.User, error)
	ToggleStatus(ctx context.Context, actorID, userID string) (*domain.User, error)
	ResetPassword(ctx context.Context, actorID, userID, newPassword string) error
}
