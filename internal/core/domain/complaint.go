package domain

import "time"

// ComplaintStatus represents the lifecycle state of a complaint.
type ComplaintStatus string

const (
	StatusSubmitted  ComplaintStatus = "Submitted"
	StatusInProgress ComplaintStatus = "In Progress"
	StatusResolved   ComplaintStatus = "Resolved"
	StatusRejected   ComplaintStatus = "Rejected"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s ComplaintStatus) IsTerminal() bool {
	return s == StatusResolved || s == StatusRejected
}

// CanTransitionTo reports whether a transition from s to next is valid.
// Any of {In Progress, Resolved, Rejected} is reachable from any
// non-terminal state; Submitted is never a transition target.
func (s ComplaintStatus) CanTransitionTo(next ComplaintStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch next {
	case StatusInProgress, StatusResolved, StatusRejected:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the four known statuses.
func ValidStatus(s ComplaintStatus) bool {
	switch s {
	case StatusSubmitted, StatusInProgress, StatusResolved, StatusRejected:
		return true
	}
	return false
}

// Categories is the closed set of complaint categories.
var Categories = []string{
	"Electrical",
	"Plumbing",
	"Carpentry",
	"Civil (Wall/Ceiling)",
	"Network/Internet",
	"Furniture",
	"Sanitation",
	"Water Cooler",
	"Other",
}

// ValidCategory reports whether c is a known complaint category.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// MaxComplaintImages bounds the number of images attached at creation.
const MaxComplaintImages = 5

// MaxUpdateCommentLen bounds the transition comment length.
const MaxUpdateCommentLen = 300

// UpdateEntry records a single status transition on a complaint. Entries are
// append-only: never reordered, never deleted.
type UpdateEntry struct {
	Status    ComplaintStatus `json:"status" bson:"status"`
	Comment   string          `json:"comment" bson:"comment"`
	UpdatedBy string          `json:"updatedBy" bson:"updated_by"`
	Timestamp time.Time       `json:"timestamp" bson:"timestamp"`
}

// Complaint is the core aggregate root.
//
// Hostel is copied from the creator's profile at creation time and is
// immutable afterwards, as is CreatedBy. Status always equals the status of
// the last Updates entry, or Submitted while Updates is empty — the
// Submitted state itself is never persisted as an entry.
type Complaint struct {
	ID          string          `json:"id" bson:"_id,omitempty"`
	Title       string          `json:"title" bson:"title"`
	Category    string          `json:"category" bson:"category"`
	Description string          `json:"description" bson:"description"`
	Hostel      string          `json:"hostel" bson:"hostel"`
	RoomNumber  string          `json:"roomNumber" bson:"room_number"`
	Status      ComplaintStatus `json:"status" bson:"status"`
	CreatedBy   string          `json:"createdBy" bson:"created_by"`
	HandledBy   string          `json:"handledBy,omitempty" bson:"handled_by,omitempty"`
	Images      []string        `json:"images" bson:"images"`
	Updates     []UpdateEntry   `json:"updates" bson:"updates"`
	CreatedAt   time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" bson:"updated_at"`
}
