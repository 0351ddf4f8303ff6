package ports

import (
	"context"
	"time"

	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/domain"
)

// CreateComplaintInput carries all data needed to file a new complaint.
// Hostel is deliberately absent: it is always copied from the creator's
// profile so a student cannot file into another hostel.
type CreateComplaintInput struct {
	Title       string
	Category    string
	Description string
	RoomNumber  string // optional, defaults to the creator's room
	Images      []ImageUpload
}

// TimelineEntry is one rendered entry of a complaint's update trail, with
// the author resolved to a user reference.
type TimelineEntry struct {
	Status    domain.ComplaintStatus `json:"status"`
	Comment   string                 `json:"comment,omitempty"`
	UpdatedBy domain.UserRef         `json:"updatedBy"`
	Timestamp time.Time              `json:"timestamp"`
}

// ComplaintDetail is the full complaint view returned on reads. Timeline
// always begins with a synthesized Submitted entry derived from
// createdAt/createdBy; that entry is never persisted.
type ComplaintDetail struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
	Hostel      string                 `json:"hostel"`
	RoomNumber  string                 `json:"roomNumber"`
	Status      domain.ComplaintStatus `json:"status"`
	CreatedBy   domain.UserRef         `json:"createdBy"`
	HandledBy   *domain.UserRef        `json:"handledBy,omitempty"`
	Images      []string               `json:"images"`
	Timeline    []TimelineEntry        `json:"timeline"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// ComplaintService defines the complaint use cases: creation, role-scoped
// reads, and lifecycle transitions.
type ComplaintService interface {
	Create(ctx context.Context, actorID string, input CreateComplaintInput) (*ComplaintDetail, error)
	Get(ctx context.Context, actorID, complaintID string) (*ComplaintDetail, error)
	List(ctx context.Context, actorID string) ([]*ComplaintDetail, error)
	Transition(ctx context.Context, actorID, complaintID string, status domain.ComplaintStatus, comment string) (*ComplaintDetail, error)
}
