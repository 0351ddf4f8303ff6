package ports

import (
	"context"

	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/domain"
)

// HostelRepository defines persistence operations for hostels.
type HostelRepository interface {
	Create(ctx context.Context, h *domain.Hostel) (*domain.Hostel, error)
	FindByID(ctx context.Context, id string) (*domain.Hostel, error)
	// List returns hostels, restricted to active ones when activeOnly is set.
	List(ctx context.Context, activeOnly bool) ([]*domain.Hostel, error)
	Update(ctx context.Context, h *domain.Hostel) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}
