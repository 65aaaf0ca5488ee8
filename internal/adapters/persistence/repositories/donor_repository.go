package repositories

import (
	"context"

	"lifeline-blood/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// donorRepository implements DonorRepository interface
type donorRepository struct {
	db *gorm.DB
}

// NewDonorRepository creates a new donor repository
func NewDonorRepository(db *gorm.DB) DonorRepository {
	return &donorRepository{db: db}
}

// Create creates a new donor
func (r *donorRepository) Create(ctx context.Context, donor *models.Donor) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(donor).Error
}

// GetByID gets a donor by ID
func (r *donorRepository) GetByID(ctx context.Context, id string) (*models.Donor, error) {
	var donor models.Donor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&donor).Error
	if err != nil {
		return nil, err
	}
	return &donor, nil
}

// ListByCamp lists donors of a camp by name
func (r *donorRepository) ListByCamp(ctx context.Context, campID string) ([]*models.Donor, error) {
	var donors []*models.Donor
	err := r.db.WithContext(ctx).
		Where("camp_id = ?", campID).
		Order("name ASC").
		Find(&donors).Error
	return donors, err
}

// ListAll lists donors newest first with camp details
func (r *donorRepository) ListAll(ctx context.Context, offset, limit int) ([]*models.Donor, int64, error) {
	var donors []*models.Donor
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Donor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).
		Preload("Camp", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "location", "date")
		}).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	if err := q.Find(&donors).Error; err != nil {
		return nil, 0, err
	}

	return donors, total, nil
}

// Update writes every column of the donor
func (r *donorRepository) Update(ctx context.Context, donor *models.Donor) error {
	return r.db.WithContext(ctx).
		Model(donor).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(donor).Error
}

// Delete deletes a donor
func (r *donorRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Donor{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByCamp counts the donors of one camp
func (r *donorRepository) CountByCamp(ctx context.Context, campID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Donor{}).Where("camp_id = ?", campID).Count(&count).Error
	return count, err
}

// CountsByCamp counts donors grouped by camp
func (r *donorRepository) CountsByCamp(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		CampID string
		Count  int64
	}

	err := r.db.WithContext(ctx).
		Model(&models.Donor{}).
		Select("camp_id, COUNT(*) AS count").
		Group("camp_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.CampID] = row.Count
	}
	return counts, nil
}

// DeleteOrphans deletes donors whose camp is gone
func (r *donorRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("camp_id NOT IN (?)", r.db.Model(&models.Camp{}).Select("id")).
		Delete(&models.Donor{})
	return res.RowsAffected, res.Error
}
