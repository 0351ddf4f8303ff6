package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/domain"
)

func newUserFixture() (*UserService, *stubUserRepo, *domain.User, *domain.User) {
	users := newStubUserRepo()
	admin := users.add(&domain.User{Name: "Arun", Email: "arun@example.com", Role: domain.RoleAdmin, IsActive: true})
	student := users.add(&domain.User{Name: "Sita", Email: "sita@example.com", Role: domain.RoleStudent, Hostel: "Alpha", IsActive: true})
	return NewUserService(users, discardLogger), users, admin, student
}

func TestUserList_AdminOnly(t *testing.T) {
	svc, _, admin, student := newUserFixture()

	if _, err := svc.List(context.Background(), student.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("student list: want ErrForbidden, got %v", err)
	}

	users, err := svc.List(context.Background(), admin.ID)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("users = %d, want 2", len(users))
	}
}

func TestUserToggleStatus(t *testing.T) {
	svc, repo, admin, student := newUserFixture()

	toggled, err := svc.ToggleStatus(context.Background(), admin.ID, student.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if toggled.IsActive {
		t.Error("expected account deactivated")
	}
	if repo.byID[student.ID].IsActive {
		t.Error("deactivation not persisted")
	}

	if _, err := svc.ToggleStatus(context.Background(), admin.ID, admin.ID); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("self toggle: want ErrInvalidInput, got %v", err)
	}
	if _, err := svc.ToggleStatus(context.Background(), student.ID, admin.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("non-admin toggle: want ErrForbidden, got %v", err)
	}
}

func TestUserResetPassword(t *testing.T) {
	svc, repo, admin, student := newUserFixture()

	if err := svc.ResetPassword(context.Background(), admin.ID, student.ID, "freshpass"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	hash := repo.byID[student.ID].PasswordHash
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte("freshpass")) != nil {
		t.Error("new password hash does not verify")
	}

	if err := svc.ResetPassword(context.Background(), admin.ID, student.ID, "abc"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("short password: want ErrInvalidInput, got %v", err)
	}
	if err := svc.ResetPassword(context.Background(), student.ID, admin.ID, "freshpass"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("non-admin reset: want ErrForbidden, got %v", err)
	}
	if err := svc.ResetPassword(context.Background(), admin.ID, "missing", "freshpass"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("unknown user: want ErrUserNotFound, got %v", err)
	}
}
