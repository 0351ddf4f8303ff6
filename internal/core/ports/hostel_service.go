package ports

import (
	"context"

	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/domain"
)

// HostelInput carries the admin-supplied hostel fields.
type HostelInput struct {
	Name string
	Type string
}

// HostelService defines the public hostel listing and the admin management
// operations.
type HostelService interface {
	// ListActive returns active hostels with derived counts. Public.
	ListActive(ctx context.Context) ([]HostelListEntry, error)
	Create(ctx context.Context, actorID string, input HostelInput) (*domain.Hostel, error)
	Update(ctx context.Context, actorID, hostelID string, input HostelInput) (*domain.Hostel, error)
	ToggleStatus(ctx context.Context, actorID, hostelID string) (*domain.Hostel, error)
	Delete(ctx context.Context, actorID, hostelID string) error
}
