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

// ComplaintService implements complaint creation, role-scoped reads and the
// status lifecycle.
type ComplaintService struct {
	complaints ports.ComplaintRepository
	users      ports.UserRepository
	images     ports.ImageStore
	logger     zerolog.Logger
}

func NewComplaintService(
	complaints ports.ComplaintRepository,
	users ports.UserRepository,
	images ports.ImageStore,
	logger zerolog.Logger,
) *ComplaintService {
	return &ComplaintService{
		complaints: complaints,
		users:      users,
		images:     images,
		logger:     logger,
	}
}

// Create files a new complaint on behalf of actorID. The complaint's hostel
// is always copied from the actor's profile, never taken from the request,
// and the room number defaults to the actor's. All attached images must
// upload successfully or the creation fails as a whole.
func (s *ComplaintService) Create(ctx context.Context, actorID string, input ports.CreateComplaintInput) (*ports.ComplaintDetail, error) {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(actor, domain.ActionCreateComplaint, nil); err != nil {
		return nil, err
	}
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(input.Images))
	for _, img := range input.Images {
		url, err := s.images.Upload(ctx, img.Filename, img.Content)
		if err != nil {
			return nil, fmt.Errorf("upload image %s: %w", img.Filename, err)
		}
		urls = append(urls, url)
	}

	roomNumber := input.RoomNumber
	if roomNumber == "" {
		roomNumber = actor.RoomNumber
	}

	now := time.Now().UTC()
	complaint := &domain.Complaint{
		Title:       input.Title,
		Category:    input.Category,
		Description: input.Description,
		Hostel:      actor.Hostel,
		RoomNumber:  roomNumber,
		Status:      domain.StatusSubmitted,
		CreatedBy:   actor.ID,
		Images:      urls,
		Updates:     []domain.UpdateEntry{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.complaints.Create(ctx, complaint)
	if err != nil {
		s.logger.Error().Err(err).Str("created_by", actor.ID).Msg("failed to create complaint")
		return nil, err
	}

	s.logger.Info().
		Str("complaint_id", created.ID).
		Str("category", created.Category).
		Str("hostel", created.Hostel).
		Str("created_by", actor.ID).
		Msg("complaint created")

	return s.buildDetail(ctx, created), nil
}

// Get returns a single complaint if the actor's role grants access to it.
func (s *ComplaintService) Get(ctx context.Context, actorID, complaintID string) (*ports.ComplaintDetail, error) {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	complaint, err := s.complaints.FindByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(actor, domain.ActionReadComplaint, complaint); err != nil {
		return nil, err
	}

	return s.buildDetail(ctx, complaint), nil
}

// List returns the complaints visible to the actor, newest first: admins see
// everything, wardens their hostel, students their own.
func (s *ComplaintService) List(ctx context.Context, actorID string) ([]*ports.ComplaintDetail, error) {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	complaints, err := s.complaints.List(ctx, domain.ScopeFor(actor))
	if err != nil {
		return nil, err
	}

	details := make([]*ports.ComplaintDetail, 0, len(complaints))
	for _, c := range complaints {
		details = append(details, s.buildDetail(ctx, c))
	}
	return details, nil
}

// Transition moves a complaint to a new status and appends an audit entry.
// The status field and the new entry are written as one atomic document
// update. Resolved and Rejected are terminal: once reached, any further
// transition attempt fails with ErrComplaintClosed.
func (s *ComplaintService) Transition(ctx context.Context, actorID, complaintID string, status domain.ComplaintStatus, comment string) (*ports.ComplaintDetail, error) {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !domain.ValidStatus(status) || status == domain.StatusSubmitted {
		return nil, fmt.Errorf("%w: status must be one of In Progress, Resolved, Rejected", domain.ErrInvalidInput)
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, fmt.Errorf("%w: comment is required", domain.ErrInvalidInput)
	}
	if len(comment) > domain.MaxUpdateCommentLen {
		return nil, fmt.Errorf("%w: comment exceeds %d characters", domain.ErrInvalidInput, domain.MaxUpdateCommentLen)
	}

	complaint, err := s.complaints.FindByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(actor, domain.ActionTransitionComplaint, complaint); err != nil {
		return nil, err
	}

	if complaint.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: status is %s", domain.ErrComplaintClosed, complaint.Status)
	}
	if !complaint.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, complaint.Status, status)
	}

	entry := domain.UpdateEntry{
		Status:    status,
		Comment:   comment,
		UpdatedBy: actor.ID,
		Timestamp: time.Now().UTC(),
	}
	updated, err := s.complaints.AppendTransition(ctx, complaintID, actor.ID, entry)
	if err != nil {
		s.logger.Error().Err(err).Str("complaint_id", complaintID).Msg("failed to persist transition")
		return nil, err
	}

	s.logger.Info().
		Str("complaint_id", complaintID).
		Str("status", string(status)).
		Str("handled_by", actor.ID).
		Msg("complaint status updated")

	return s.buildDetail(ctx, updated), nil
}

func validateCreateInput(input ports.CreateComplaintInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(input.Description) == "" {
		return fmt.Errorf("%w: description is required", domain.ErrInvalidInput)
	}
	if !domain.ValidCategory(input.Category) {
		return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, input.Category)
	}
	if len(input.Images) > domain.MaxComplaintImages {
		return fmt.Errorf("%w: at most %d images allowed", domain.ErrInvalidInput, domain.MaxComplaintImages)
	}
	return nil
}

// buildDetail renders a complaint for clients: user ids are resolved to
// references and the timeline gets its virtual Submitted head entry, derived
// from createdAt/createdBy since the initial state is never stored.
func (s *ComplaintService) buildDetail(ctx context.Context, c *domain.Complaint) *ports.ComplaintDetail {
	refs := make(map[string]domain.UserRef)
	resolve := func(id string) domain.UserRef {
		if id == "" {
			return domain.UserRef{}
		}
		if ref, ok := refs[id]; ok {
			return ref
		}
		ref := domain.UserRef{ID: id}
		if u, err := s.users.FindByID(ctx, id); err == nil {
			ref = u.Ref()
		}
		refs[id] = ref
		return ref
	}

	timeline := make([]ports.TimelineEntry, 0, len(c.Updates)+1)
	timeline = append(timeline, ports.TimelineEntry{
		Status:    domain.StatusSubmitted,
		UpdatedBy: resolve(c.CreatedBy),
		Timestamp: c.CreatedAt,
	})
	for _, u := range c.Updates {
		timeline = append(timeline, ports.TimelineEntry{
			Status:    u.Status,
			Comment:   u.Comment,
			UpdatedBy: resolve(u.UpdatedBy),
			Timestamp: u.Timestamp,
		})
	}

	detail := &ports.ComplaintDetail{
		ID:          c.ID,
		Title:       c.Title,
		Category:    c.Category,
		Description: c.Description,
		Hostel:      c.Hostel,
		RoomNumber:  c.RoomNumber,
		Status:      c.Status,
		CreatedBy:   resolve(c.CreatedBy),
		Images:      c.Images,
		Timeline:    timeline,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.HandledBy != "" {
		ref := resolve(c.HandledBy)
		detail.HandledBy = &ref
	}
	return detail
}
