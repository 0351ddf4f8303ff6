package service

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/rs/zerolog"

	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/domain"
	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/ports"
)

// In-memory stubs mirroring the behavior of the Mongo repositories, shared
// across the service test files.

var discardLogger = zerolog.Nop()

// --- users ---

type stubUserRepo struct {
	byID map[string]*domain.User
	seq  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	clone := *u
	if clone.ID == "" {
		r.seq++
		clone.ID = fmt.Sprintf("u%d", r.seq)
	}
	r.byID[clone.ID] = &clone
	out := clone
	return &out
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return nil, domain.ErrUserExists
		}
		if u.RollNumber != "" && existing.RollNumber == u.RollNumber {
			return nil, domain.ErrUserExists
		}
	}
	return r.add(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		clone := *u
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, u *domain.User) error {
	stored, ok := r.byID[u.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	stored.Name = u.Name
	stored.RoomNumber = u.RoomNumber
	stored.Department = u.Department
	stored.YearOfStudy = u.YearOfStudy
	stored.UpdatedAt = u.UpdatedAt
	return nil
}

func (r *stubUserRepo) SetActive(_ context.Context, id string, active bool) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsActive = active
	return nil
}

func (r *stubUserRepo) SetPasswordHash(_ context.Context, id string, hash string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *stubUserRepo) CountByHostel(_ context.Context, hostel string) (int64, error) {
	var n int64
	for _, u := range r.byID {
		if u.Hostel == hostel {
			n++
		}
	}
	return n, nil
}

// --- complaints ---

type stubComplaintRepo struct {
	byID map[string]*domain.Complaint
	seq  int
}

func newStubComplaintRepo() *stubComplaintRepo {
	return &stubComplaintRepo{byID: make(map[string]*domain.Complaint)}
}

func cloneComplaint(c *domain.Complaint) *domain.Complaint {
	clone := *c
	clone.Images = append([]string(nil), c.Images...)
	clone.Updates = append([]domain.UpdateEntry(nil), c.Updates...)
	return &clone
}

func (r *stubComplaintRepo) Create(_ context.Context, c *domain.Complaint) (*domain.Complaint, error) {
	clone := cloneComplaint(c)
	r.seq++
	clone.ID = fmt.Sprintf("c%d", r.seq)
	r.byID[clone.ID] = clone
	return cloneComplaint(clone), nil
}

func (r *stubComplaintRepo) FindByID(_ context.Context, id string) (*domain.Complaint, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrComplaintNotFound
	}
	return cloneComplaint(c), nil
}

func (r *stubComplaintRepo) List(_ context.Context, scope domain.ComplaintScope) ([]*domain.Complaint, error) {
	var out []*domain.Complaint
	for _, c := range r.byID {
		if scope.CreatedBy != "" && c.CreatedBy != scope.CreatedBy {
			continue
		}
		if scope.Hostel != "" && c.Hostel != scope.Hostel {
			continue
		}
		out = append(out, cloneComplaint(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// AppendTransition mutates status, handler and trail together, mirroring the
// single-document Mongo update.
func (r *stubComplaintRepo) AppendTransition(_ context.Context, id string, handledBy string, entry domain.UpdateEntry) (*domain.Complaint, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrComplaintNotFound
	}
	c.Status = entry.Status
	c.HandledBy = handledBy
	c.Updates = append(c.Updates, entry)
	c.UpdatedAt = entry.Timestamp
	return cloneComplaint(c), nil
}

func (r *stubComplaintRepo) CountByHostel(_ context.Context, hostel string, activeOnly bool) (int64, error) {
	var n int64
	for _, c := range r.byID {
		if c.Hostel != hostel {
			continue
		}
		if activeOnly && c.Status.IsTerminal() {
			continue
		}
		n++
	}
	return n, nil
}

// --- hostels ---

type stubHostelRepo struct {
	byID map[string]*domain.Hostel
	seq  int
}

func newStubHostelRepo() *stubHostelRepo {
	return &stubHostelRepo{byID: make(map[string]*domain.Hostel)}
}

func (r *stubHostelRepo) Create(_ context.Context, h *domain.Hostel) (*domain.Hostel, error) {
	clone := *h
	r.seq++
	clone.ID = fmt.Sprintf("h%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubHostelRepo) FindByID(_ context.Context, id string) (*domain.Hostel, error) {
	h, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrHostelNotFound
	}
	clone := *h
	return &clone, nil
}

func (r *stubHostelRepo) List(_ context.Context, activeOnly bool) ([]*domain.Hostel, error) {
	var out []*domain.Hostel
	for _, h := range r.byID {
		if activeOnly && !h.IsActive {
			continue
		}
		clone := *h
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubHostelRepo) Update(_ context.Context, h *domain.Hostel) error {
	if _, ok := r.byID[h.ID]; !ok {
		return domain.ErrHostelNotFound
	}
	clone := *h
	r.byID[h.ID] = &clone
	return nil
}

func (r *stubHostelRepo) SetActive(_ context.Context, id string, active bool) error {
	h, ok := r.byID[id]
	if !ok {
		return domain.ErrHostelNotFound
	}
	h.IsActive = active
	return nil
}

func (r *stubHostelRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrHostelNotFound
	}
	delete(r.byID, id)
	return nil
}

// --- hostel cache ---

type stubHostelCache struct {
	entries     []ports.HostelListEntry
	invalidated int
}

func (c *stubHostelCache) Get(_ context.Context) ([]ports.HostelListEntry, error) {
	return c.entries, nil
}

func (c *stubHostelCache) Set(_ context.Context, entries []ports.HostelListEntry) error {
	c.entries = entries
	return nil
}

func (c *stubHostelCache) Invalidate(_ context.Context) error {
	c.entries = nil
	c.invalidated++
	return nil
}

// --- image store ---

type stubImageStore struct {
	uploaded []string
	failOn   string // filename that triggers an upload failure
}

func (s *stubImageStore) Upload(_ context.Context, filename string, content io.Reader) (string, error) {
	if _, err := io.ReadAll(content); err != nil {
		return "", err
	}
	if s.failOn != "" && filename == s.failOn {
		return "", fmt.Errorf("upload rejected")
	}
	url := "https://images.example.com/hostel-complaints/" + filename
	s.uploaded = append(s.uploaded, url)
	return url, nil
}
