package domain

import "time"

const (
	HostelTypeBoys  = "Boys"
	HostelTypeGirls = "Girls"
)

// ValidHostelType reports whether t is a known hostel type.
func ValidHostelType(t string) bool {
	return t == HostelTypeBoys || t == HostelTypeGirls
}

// Hostel is a residence block complaints are scoped to.
type Hostel struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Type      string    `json:"type" bson:"type"`
	IsActive  bool      `json:"isActive" bson:"is_active"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// HostelStats carries the per-hostel counts computed on read. They are never
// stored; the directory derives them from the users and complaints
// collections.
type HostelStats struct {
	UserCount            int64 `json:"userCount"`
	ComplaintCount       int64 `json:"complaintCount"`
	ActiveComplaintCount int64 `json:"activeComplaintCount"`
}
