package ports

import (
	"context"

	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/domain"
)

// UserRepository defines persistence operations for the user directory.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// UpdateProfile persists the mutable profile fields of user (name and,
	// for students, room/department/year). Identity fields are never touched.
	UpdateProfile(ctx context.Context, user *domain.User) error
	SetActive(ctx context.Context, id string, active bool) error
	SetPasswordHash(ctx context.Context, id string, hash string) error
	CountByHostel(ctx context.Context, hostel string) (int64, error)
}
