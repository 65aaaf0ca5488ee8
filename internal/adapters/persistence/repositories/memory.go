package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"lifeline-blood/internal/adapters/persistence/models"
	"lifeline-blood/internal/core/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// memoryStore keeps every table behind one lock so the camp cascade is atomic
type memoryStore struct {
	mu     sync.RWMutex
	seq    int64
	admins map[string]*models.Admin
	camps  map[string]*models.Camp
	donors map[string]*models.Donor
	order  map[string]int64
}

// NewMemoryRepositories returns repositories backed by process memory.
// Data is lost on restart; used for local runs and tests.
func NewMemoryRepositories() *Repositories {
	s := &memoryStore{
		admins: make(map[string]*models.Admin),
		camps:  make(map[string]*models.Camp),
		donors: make(map[string]*models.Donor),
		order:  make(map[string]int64),
	}
	return &Repositories{
		Admins: &memoryAdminRepository{s: s},
		Camps:  &memoryCampRepository{s: s},
		Donors: &memoryDonorRepository{s: s},
		Ping:   func(context.Context) error { return nil },
	}
}

func (s *memoryStore) stamp(id string) time.Time {
	s.seq++
	s.order[id] = s.seq
	return time.Now()
}

func copyCamp(c *models.Camp) *models.Camp {
	out := *c
	if c.Date != nil {
		d := *c.Date
		out.Date = &d
	}
	out.Coupons = append(datatypes.JSONSlice[domain.Coupon]{}, c.Coupons...)
	return &out
}

func copyDonor(d *models.Donor) *models.Donor {
	out := *d
	out.Camp = nil
	return &out
}

// ---------------------------------------------------------------- admins

type memoryAdminRepository struct{ s *memoryStore }

func (r *memoryAdminRepository) Create(_ context.Context, admin *models.Admin) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, a := range r.s.admins {
		if a.Email == admin.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if admin.ID == "" {
		admin.ID = models.NewID()
	}
	now := r.s.stamp(admin.ID)
	admin.CreatedAt, admin.UpdatedAt = now, now

	stored := *admin
	r.s.admins[admin.ID] = &stored
	return nil
}

func (r *memoryAdminRepository) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.admins {
		if a.Email == email {
			out := *a
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryAdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *memoryAdminRepository) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.admins)), nil
}

// ---------------------------------------------------------------- camps

type memoryCampRepository struct{ s *memoryStore }

func (r *memoryCampRepository) nameTaken(name, excludeID string) bool {
	for id, c := range r.s.camps {
		if strings.EqualFold(c.Name, name) && id != excludeID {
			return true
		}
	}
	return false
}

func (r *memoryCampRepository) Create(_ context.Context, camp *models.Camp) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.nameTaken(camp.Name, "") {
		return gorm.ErrDuplicatedKey
	}
	if camp.ID == "" {
		camp.ID = models.NewID()
	}
	if camp.Coupons == nil {
		camp.Coupons = datatypes.JSONSlice[domain.Coupon]{}
	}
	now := r.s.stamp(camp.ID)
	camp.CreatedAt, camp.UpdatedAt = now, now

	r.s.camps[camp.ID] = copyCamp(camp)
	return nil
}

func (r *memoryCampRepository) GetByID(_ context.Context, id string) (*models.Camp, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.camps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return copyCamp(c), nil
}

func (r *memoryCampRepository) GetByName(_ context.Context, name string) (*models.Camp, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.camps {
		if strings.EqualFold(c.Name, name) {
			return copyCamp(c), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryCampRepository) ExistsByName(_ context.Context, name, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.nameTaken(name, excludeID), nil
}

func (r *memoryCampRepository) List(_ context.Context) ([]*models.Camp, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	camps := make([]*models.Camp, 0, len(r.s.camps))
	for _, c := range r.s.camps {
		camps = append(camps, copyCamp(c))
	}
	sort.Slice(camps, func(i, j int) bool {
		a, b := camps[i], camps[j]
		switch {
		case a.Date == nil && b.Date == nil:
			return a.Name < b.Name
		case a.Date == nil:
			return false
		case b.Date == nil:
			return true
		case !a.Date.Equal(*b.Date):
			return a.Date.Before(*b.Date)
		default:
			return a.Name < b.Name
		}
	})
	return camps, nil
}

func (r *memoryCampRepository) Update(_ context.Context, camp *models.Camp) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.camps[camp.ID]
	if !ok {
		return nil
	}
	if r.nameTaken(camp.Name, camp.ID) {
		return gorm.ErrDuplicatedKey
	}
	camp.CreatedAt = existing.CreatedAt
	camp.UpdatedAt = time.Now()
	r.s.camps[camp.ID] = copyCamp(camp)
	return nil
}

func (r *memoryCampRepository) DeleteWithDonors(_ context.Context, id string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.camps[id]; !ok {
		return 0, gorm.ErrRecordNotFound
	}

	var removed int64
	for donorID, d := range r.s.donors {
		if d.CampID == id {
			delete(r.s.donors, donorID)
			delete(r.s.order, donorID)
			removed++
		}
	}
	delete(r.s.camps, id)
	delete(r.s.order, id)
	return removed, nil
}

// ---------------------------------------------------------------- donors

type memoryDonorRepository struct{ s *memoryStore }

func (r *memoryDonorRepository) Create(_ context.Context, donor *models.Donor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if donor.ID == "" {
		donor.ID = models.NewID()
	}
	now := r.s.stamp(donor.ID)
	donor.CreatedAt, donor.UpdatedAt = now, now

	r.s.donors[donor.ID] = copyDonor(donor)
	return nil
}

func (r *memoryDonorRepository) GetByID(_ context.Context, id string) (*models.Donor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.donors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return copyDonor(d), nil
}

func (r *memoryDonorRepository) ListByCamp(_ context.Context, campID string) ([]*models.Donor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	donors := make([]*models.Donor, 0)
	for _, d := range r.s.donors {
		if d.CampID == campID {
			donors = append(donors, copyDonor(d))
		}
	}
	sort.Slice(donors, func(i, j int) bool {
		if donors[i].Name != donors[j].Name {
			return donors[i].Name < donors[j].Name
		}
		return r.s.order[donors[i].ID] < r.s.order[donors[j].ID]
	})
	return donors, nil
}

func (r *memoryDonorRepository) ListAll(_ context.Context, offset, limit int) ([]*models.Donor, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	donors := make([]*models.Donor, 0, len(r.s.donors))
	for _, d := range r.s.donors {
		out := copyDonor(d)
		if c, ok := r.s.camps[d.CampID]; ok {
			out.Camp = &models.Camp{ID: c.ID, Name: c.Name, Location: c.Location, Date: copyCamp(c).Date}
		}
		donors = append(donors, out)
	}
	sort.Slice(donors, func(i, j int) bool {
		return r.s.order[donors[i].ID] > r.s.order[donors[j].ID]
	})

	total := int64(len(donors))
	if limit > 0 {
		if offset < 0 {
			offset = 0
		}
		if offset >= len(donors) {
			return []*models.Donor{}, total, nil
		}
		end := len(donors)
		if limit < end-offset {
			end = offset + limit
		}
		donors = donors[offset:end]
	}
	return donors, total, nil
}

func (r *memoryDonorRepository) Update(_ context.Context, donor *models.Donor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.donors[donor.ID]
	if !ok {
		return nil
	}
	donor.CreatedAt = existing.CreatedAt
	donor.UpdatedAt = time.Now()
	r.s.donors[donor.ID] = copyDonor(donor)
	return nil
}

func (r *memoryDonorRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.donors[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.s.donors, id)
	delete(r.s.order, id)
	return nil
}

func (r *memoryDonorRepository) CountByCamp(_ context.Context, campID string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, d := range r.s.donors {
		if d.CampID == campID {
			n++
		}
	}
	return n, nil
}

func (r *memoryDonorRepository) CountsByCamp(_ context.Context) (map[string]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[string]int64)
	for _, d := range r.s.donors {
		counts[d.CampID]++
	}
	return counts, nil
}

func (r *memoryDonorRepository) DeleteOrphans(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var removed int64
	for id, d := range r.s.donors {
		if _, ok := r.s.camps[d.CampID]; !ok {
			delete(r.s.donors, id)
			delete(r.s.order, id)
			removed++
		}
	}
	return removed, nil
}
