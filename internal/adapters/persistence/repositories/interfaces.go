package repositories

import (
	"context"

	"lifeline-blood/internal/adapters/persistence/models"
)

// Implementations report a missing row as gorm.ErrRecordNotFound and a
// unique-index violation as gorm.ErrDuplicatedKey.

// AdminRepository defines admin repository interface
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// CampRepository defines camp repository interface
type CampRepository interface {
	Create(ctx context.Context, camp *models.Camp) error
	GetByID(ctx context.Context, id string) (*models.Camp, error)
	GetByName(ctx context.Context, name string) (*models.Camp, error)
	// ExistsByName ignores the camp with excludeID (empty excludes nothing)
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)
	// List returns camps by date ascending, undated camps last
	List(ctx context.Context) ([]*models.Camp, error)
	Update(ctx context.Context, camp *models.Camp) error
	// DeleteWithDonors removes the camp and every donor referencing it in
	// one transaction and returns the number of donors removed
	DeleteWithDonors(ctx context.Context, id string) (int64, error)
}

// DonorRepository defines donor repository interface
type DonorRepository interface {
	Create(ctx context.Context, donor *models.Donor) error
	GetByID(ctx context.Context, id string) (*models.Donor, error)
	// ListByCamp returns the camp's donors by name ascending
	ListByCamp(ctx context.Context, campID string) ([]*models.Donor, error)
	// ListAll returns donors newest first with their camp loaded; limit <= 0 returns all
	ListAll(ctx context.Context, offset, limit int) ([]*models.Donor, int64, error)
	Update(ctx context.Context, donor *models.Donor) error
	Delete(ctx context.Context, id string) error
	CountByCamp(ctx context.Context, campID string) (int64, error)
	// CountsByCamp returns donor counts keyed by camp id in one round-trip
	CountsByCamp(ctx context.Context) (map[string]int64, error)
	// DeleteOrphans removes donors whose camp no longer exists
	DeleteOrphans(ctx context.Context) (int64, error)
}

// Repositories bundles the repositories of one backing store
type Repositories struct {
	Admins AdminRepository
	Camps  CampRepository
	Donors DonorRepository
	Ping   func(ctx context.Context) error
}
