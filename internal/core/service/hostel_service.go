package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/domain"
	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/ports"
)

// HostelService implements the public hostel listing and the admin
// management operations. The active listing is cached; every admin write
// invalidates the cache.
type HostelService struct {
	hostels    ports.HostelRepository
	users      ports.UserRepository
	complaints ports.ComplaintRepository
	cache      ports.HostelCache
	logger     zerolog.Logger
}

func NewHostelService(
	hostels ports.HostelRepository,
	users ports.UserRepository,
	complaints ports.ComplaintRepository,
	cache ports.HostelCache,
	logger zerolog.Logger,
) *HostelService {
	return &HostelService{
		hostels:    hostels,
		users:      users,
		complaints: complaints,
		cache:      cache,
		logger:     logger,
	}
}

// ListActive returns active hostels with their derived counts. The counts
// are computed from the users and complaints collections on every cache
// miss, never stored.
func (s *HostelService) ListActive(ctx context.Context) ([]ports.HostelListEntry, error) {
	if cached, err := s.cache.Get(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("hostel cache read failed, falling back to store")
	} else if cached != nil {
		return cached, nil
	}

	hostels, err := s.hostels.List(ctx, true)
	if err != nil {
		return nil, err
	}

	entries := make([]ports.HostelListEntry, 0, len(hostels))
	for _, h := range hostels {
		stats, err := s.statsFor(ctx, h.Name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ports.HostelListEntry{Hostel: *h, HostelStats: stats})
	}

	if err := s.cache.Set(ctx, entries); err != nil {
		s.logger.Warn().Err(err).Msg("hostel cache write failed")
	}
	return entries, nil
}

func (s *HostelService) Create(ctx context.Context, actorID string, input ports.HostelInput) (*domain.Hostel, error) {
	if err := s.authorizeAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	if err := validateHostelInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	hostel := &domain.Hostel{
		Name:      strings.TrimSpace(input.Name),
		Type:      input.Type,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := s.hostels.Create(ctx, hostel)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.logger.Info().Str("hostel_id", created.ID).Str("name", created.Name).Msg("hostel created")
	return created, nil
}

func (s *HostelService) Update(ctx context.Context, actorID, hostelID string, input ports.HostelInput) (*domain.Hostel, error) {
	if err := s.authorizeAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	if err := validateHostelInput(input); err != nil {
		return nil, err
	}

	hostel, err := s.hostels.FindByID(ctx, hostelID)
	if err != nil {
		return nil, err
	}
	hostel.Name = strings.TrimSpace(input.Name)
	hostel.Type = input.Type
	hostel.UpdatedAt = time.Now().UTC()

	if err := s.hostels.Update(ctx, hostel); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return hostel, nil
}

func (s *HostelService) ToggleStatus(ctx context.Context, actorID, hostelID string) (*domain.Hostel, error) {
	if err := s.authorizeAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	hostel, err := s.hostels.FindByID(ctx, hostelID)
	if err != nil {
		return nil, err
	}
	if err := s.hostels.SetActive(ctx, hostelID, !hostel.IsActive); err != nil {
		return nil, err
	}
	hostel.IsActive = !hostel.IsActive

	s.invalidateCache(ctx)
	s.logger.Info().Str("hostel_id", hostelID).Bool("is_active", hostel.IsActive).Msg("hostel status toggled")
	return hostel, nil
}

func (s *HostelService) Delete(ctx context.Context, actorID, hostelID string) error {
	if err := s.authorizeAdmin(ctx, actorID); err != nil {
		return err
	}
	if _, err := s.hostels.FindByID(ctx, hostelID); err != nil {
		return err
	}
	if err := s.hostels.Delete(ctx, hostelID); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	s.logger.Info().Str("hostel_id", hostelID).Msg("hostel deleted")
	return nil
}

func (s *HostelService) statsFor(ctx context.Context, hostelName string) (domain.HostelStats, error) {
	userCount, err := s.users.CountByHostel(ctx, hostelName)
	if err != nil {
		return domain.HostelStats{}, err
	}
	total, err := s.complaints.CountByHostel(ctx, hostelName, false)
	if err != nil {
		return domain.HostelStats{}, err
	}
	active, err := s.complaints.CountByHostel(ctx, hostelName, true)
	if err != nil {
		return domain.HostelStats{}, err
	}
	return domain.HostelStats{
		UserCount:            userCount,
		ComplaintCount:       total,
		ActiveComplaintCount: active,
	}, nil
}

func (s *HostelService) authorizeAdmin(ctx context.Context, actorID string) error {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return err
	}
	return domain.Authorize(actor, domain.ActionManageHostels, nil)
}

func (s *HostelService) invalidateCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("hostel cache invalidation failed")
	}
}

func validateHostelInput(input ports.HostelInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if !domain.ValidHostelType(input.Type) {
		return fmt.Errorf("%w: type must be %s or %s", domain.ErrInvalidInput, domain.HostelTypeBoys, domain.HostelTypeGirls)
	}
	return nil
}
