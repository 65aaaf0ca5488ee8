package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"lifeline-blood/internal/adapters/persistence/models"
	"lifeline-blood/internal/adapters/persistence/repositories"
	"lifeline-blood/internal/core/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CampService handles camp business logic
type CampService struct {
	campRepo  repositories.CampRepository
	donorRepo repositories.DonorRepository
}

// NewCampService creates a new camp service
func NewCampService(campRepo repositories.CampRepository, donorRepo repositories.DonorRepository) *CampService {
	return &CampService{
		campRepo:  campRepo,
		donorRepo: donorRepo,
	}
}

// ListPublic lists all camps by date ascending
func (s *CampService) ListPublic(ctx context.Context) ([]*models.Camp, error) {
	return s.campRepo.List(ctx)
}

// ListWithDonorCounts lists all camps with their donor counts
func (s *CampService) ListWithDonorCounts(ctx context.Context) ([]*models.CampWithCount, error) {
	camps, err := s.campRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.donorRepo.CountsByCamp(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*models.CampWithCount, len(camps))
	for i, camp := range camps {
		out[i] = &models.CampWithCount{Camp: camp, DonorCount: counts[camp.ID]}
	}
	return out, nil
}

// GetByID gets a camp with its donor count
func (s *CampService) GetByID(ctx context.Context, id string) (*models.CampWithCount, error) {
	camp, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.donorRepo.CountByCamp(ctx, camp.ID)
	if err != nil {
		return nil, err
	}

	return &models.CampWithCount{Camp: camp, DonorCount: count}, nil
}

// Create creates a new camp with a unique name
func (s *CampService) Create(ctx context.Context, input *CampInput) (*models.Camp, error) {
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return nil, domain.ErrCampNameRequired
	}

	camp := &models.Camp{Coupons: datatypes.JSONSlice[domain.Coupon]{}}
	if err := applyCampInput(camp, input); err != nil {
		return nil, err
	}

	exists, err := s.campRepo.ExistsByName(ctx, camp.Name, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrCampNameTaken
	}

	if err := s.campRepo.Create(ctx, camp); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrCampNameTaken
		}
		return nil, err
	}

	log.Printf("✅ Camp created: %s (%s)", camp.Name, camp.ID)
	return camp, nil
}

// Update applies a partial patch of whitelisted fields
func (s *CampService) Update(ctx context.Context, id string, input *CampInput) (*models.Camp, error) {
	camp, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	oldName := camp.Name
	if err := applyCampInput(camp, input); err != nil {
		return nil, err
	}

	if camp.Name != oldName {
		exists, err := s.campRepo.ExistsByName(ctx, camp.Name, camp.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrCampNameTaken
		}
	}

	if err := s.campRepo.Update(ctx, camp); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrCampNameTaken
		}
		return nil, err
	}

	return camp, nil
}

// Delete deletes a camp and all of its donors, returning how many donors went with it
func (s *CampService) Delete(ctx context.Context, id string) (int64, error) {
	if !models.IsValidID(id) {
		return 0, domain.ErrInvalidID
	}

	removed, err := s.campRepo.DeleteWithDonors(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrCampNotFound
		}
		return 0, err
	}

	log.Printf("🗑️ Camp deleted: %s (%d donors removed)", id, removed)
	return removed, nil
}

// UpdateCoupons replaces the coupon list of a camp
func (s *CampService) UpdateCoupons(ctx context.Context, id string, coupons []domain.Coupon) (*models.Camp, error) {
	cleaned := make(datatypes.JSONSlice[domain.Coupon], 0, len(coupons))
	seen := make(map[string]bool, len(coupons))
	for _, c := range coupons {
		c.Code = strings.TrimSpace(c.Code)
		if c.Code == "" {
			return nil, domain.ErrCouponCodeMissing
		}
		key := strings.ToUpper(c.Code)
		if seen[key] {
			return nil, domain.Invalidf("Duplicate coupon code: %s", c.Code)
		}
		seen[key] = true
		cleaned = append(cleaned, c)
	}

	camp, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	camp.Coupons = cleaned
	if err := s.campRepo.Update(ctx, camp); err != nil {
		return nil, err
	}

	return camp, nil
}

// get validates the id and loads the camp
func (s *CampService) get(ctx context.Context, id string) (*models.Camp, error) {
	if !models.IsValidID(id) {
		return nil, domain.ErrInvalidID
	}

	camp, err := s.campRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCampNotFound
		}
		return nil, err
	}
	return camp, nil
}

// applyCampInput copies the supplied fields onto camp
func applyCampInput(camp *models.Camp, input *CampInput) error {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return domain.ErrCampNameRequired
		}
		camp.Name = name
	}
	if input.Date != nil {
		if strings.TrimSpace(*input.Date) == "" {
			camp.Date = nil
		} else {
			date, ok := domain.ParseDate(*input.Date)
			if !ok {
				return domain.ErrInvalidCampDate
			}
			camp.Date = &date
		}
	}
	setString(&camp.Location, input.Location)
	setString(&camp.OrganizerName, input.OrganizerName)
	setString(&camp.OrganizerContact, input.OrganizerContact)
	setString(&camp.ProName, input.ProName)
	setString(&camp.HospitalName, input.HospitalName)
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
