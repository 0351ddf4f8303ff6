package ports

import (
	"context"

	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/domain"
)

// RegisterInput carries all data for a registration request. Hostel applies
// to students and wardens; the remaining profile fields to students only.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Role        string
	Hostel      string
	RoomNumber  string
	Department  string
	YearOfStudy string
	RollNumber  string
}

// UpdateProfileInput carries the self-service profile fields. Empty fields
// are left unchanged; student-only fields are ignored for staff.
type UpdateProfileInput struct {
	Name        string
	RoomNumber  string
	Department  string
	YearOfStudy string
}

// AuthService implements registration, login and self-service profile
// operations.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
