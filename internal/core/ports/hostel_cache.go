package ports

import (
	"context"

	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/domain"
)

// HostelListEntry is a hostel with its derived counts, as served on the
// public listing.
type HostelListEntry struct {
	domain.Hostel
	domain.HostelStats
}

// HostelCache caches the public active-hostel listing. A miss is reported as
// (nil, nil); cache failures are non-fatal and fall through to the store.
type HostelCache interface {
	Get(ctx context.Context) ([]HostelListEntry, error)
	Set(ctx context.Context, entries []HostelListEntry) error
	// Invalidate drops the cached listing after any admin hostel write.
	Invalidate(ctx context.Context) error
}
