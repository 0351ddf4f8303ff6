package ports

import (
	"context"

	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/domain"
)

// ComplaintRepository defines persistence operations for complaints.
type ComplaintRepository interface {
	Create(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error)
	FindByID(ctx context.Context, id string) (*domain.Complaint, error)
	// List returns complaints matching scope, newest first.
	List(ctx context.Context, scope domain.ComplaintScope) ([]*domain.Complaint, error)
	// AppendTransition atomically sets the complaint's status and handler and
	// appends entry to its update trail in a single document write, returning
	// the updated complaint. The status field and the trail must never be
	// able to disagree, even under concurrent transitions.
	AppendTransition(ctx context.Context, id string, handledBy string, entry domain.UpdateEntry) (*domain.Complaint, error)
	CountByHostel(ctx context.Context, hostel string, activeOnly bool) (int64, error)
}
