package repositories

import (
	"context"

	"lifeline-blood/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// campRepository implements CampRepository interface
type campRepository struct {
	db *gorm.DB
}

// NewCampRepository creates a new camp repository
func NewCampRepository(db *gorm.DB) CampRepository {
	return &campRepository{db: db}
}

// Create creates a new camp
func (r *campRepository) Create(ctx context.Context, camp *models.Camp) error {
	return r.db.WithContext(ctx).Create(camp).Error
}

// GetByID gets a camp by ID
func (r *campRepository) GetByID(ctx context.Context, id string) (*models.Camp, error) {
	var camp models.Camp
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&camp).Error
	if err != nil {
		return nil, err
	}
	return &camp, nil
}

// GetByName gets a camp by name, ignoring case
func (r *campRepository) GetByName(ctx context.Context, name string) (*models.Camp, error) {
	var camp models.Camp
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&camp).Error
	if err != nil {
		return nil, err
	}
	return &camp, nil
}

// ExistsByName checks if another camp already uses name
func (r *campRepository) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Camp{}).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// List lists all camps by date
func (r *campRepository) List(ctx context.Context) ([]*models.Camp, error) {
	var camps []*models.Camp
	err := r.db.WithContext(ctx).
		Order("date IS NULL, date ASC, name ASC").
		Find(&camps).Error
	return camps, err
}

// Update writes every column of the camp
func (r *campRepository) Update(ctx context.Context, camp *models.Camp) error {
	return r.db.WithContext(ctx).
		Model(camp).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(camp).Error
}

// DeleteWithDonors deletes the camp and its donors atomically
func (r *campRepository) DeleteWithDonors(ctx context.Context, id string) (int64, error) {
	var removed int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("camp_id = ?", id).Delete(&models.Donor{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected

		res = tx.Where("id = ?", id).Delete(&models.Camp{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// nothing to delete; roll the donor delete back too
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}
