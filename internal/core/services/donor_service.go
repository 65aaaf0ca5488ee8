package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"lifeline-blood/internal/adapters/persistence/models"
	"lifeline-blood/internal/adapters/persistence/repositories"
	"lifeline-blood/internal/core/domain"

	"gorm.io/gorm"
)

// DonorService handles donor registration and admin donor management
type DonorService struct {
	donorRepo repositories.DonorRepository
	campRepo  repositories.CampRepository
	now       func() time.Time
}

// NewDonorService creates a new donor service
func NewDonorService(donorRepo repositories.DonorRepository, campRepo repositories.CampRepository) *DonorService {
	return &DonorService{
		donorRepo: donorRepo,
		campRepo:  campRepo,
		now:       time.Now,
	}
}

// Register validates and stores a public donor registration
func (s *DonorService) Register(ctx context.Context, input *DonorInput) (*models.Donor, error) {
	if missing := missingRegistrationFields(input); len(missing) > 0 {
		return nil, domain.Invalidf("Missing required fields: %s", strings.Join(missing, ", "))
	}

	// 1. Resolve camp by id, then by name ignoring case
	camp, err := s.resolveCamp(ctx, *input.Camp)
	if err != nil {
		return nil, err
	}

	// 2. Age comes from dob, whatever the client says
	dob, err := s.parseDOB(*input.DOB)
	if err != nil {
		return nil, err
	}
	age := domain.Age(dob, s.today())
	if age < domain.MinDonorAge {
		return nil, domain.ErrUnderage
	}

	// 3. Weight threshold
	if !domain.IsFiniteWeight(*input.Weight) {
		return nil, domain.ErrInvalidWeight
	}
	if *input.Weight < domain.MinDonorWeightKg {
		return nil, domain.ErrUnderweight
	}

	group, ok := domain.NormalizeBloodGroup(*input.BloodGroup)
	if !ok {
		return nil, domain.ErrInvalidBloodGroup
	}

	donor := &models.Donor{
		Name:       strings.TrimSpace(*input.Name),
		DOB:        dob,
		Age:        age,
		Weight:     *input.Weight,
		BloodGroup: group,
		CampID:     camp.ID,
	}
	setString(&donor.Email, input.Email)
	setString(&donor.Phone, input.Phone)
	setString(&donor.Address, input.Address)
	setString(&donor.Remark, input.Remark)

	if err := s.donorRepo.Create(ctx, donor); err != nil {
		return nil, err
	}

	log.Printf("✅ Donor registered: %s at camp %s", donor.ID, camp.Name)
	return donor, nil
}

// ListByCamp lists donors of one camp, sorted by name
func (s *DonorService) ListByCamp(ctx context.Context, campID string) ([]*models.Donor, error) {
	if !models.IsValidID(campID) {
		return nil, domain.ErrInvalidID
	}
	return s.donorRepo.ListByCamp(ctx, campID)
}

// ListAll lists donors newest first with camp details; limit <= 0 lists everything
func (s *DonorService) ListAll(ctx context.Context, offset, limit int) ([]*models.Donor, int64, error) {
	return s.donorRepo.ListAll(ctx, offset, limit)
}

// GetByID gets a donor
func (s *DonorService) GetByID(ctx context.Context, id string) (*models.Donor, error) {
	if !models.IsValidID(id) {
		return nil, domain.ErrInvalidID
	}

	donor, err := s.donorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonorNotFound
		}
		return nil, err
	}
	return donor, nil
}

// Update applies a partial patch; a new dob recomputes the age
func (s *DonorService) Update(ctx context.Context, id string, input *DonorInput) (*models.Donor, error) {
	donor, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.Invalidf("Name cannot be empty")
		}
		donor.Name = name
	}
	if input.DOB != nil {
		dob, err := s.parseDOB(*input.DOB)
		if err != nil {
			return nil, err
		}
		donor.DOB = dob
		donor.Age = domain.Age(dob, s.today())
	}
	if input.Weight != nil {
		if !domain.IsFiniteWeight(*input.Weight) {
			return nil, domain.ErrInvalidWeight
		}
		if *input.Weight <= 0 {
			return nil, domain.Invalidf("Weight must be positive")
		}
		donor.Weight = *input.Weight
	}
	if input.BloodGroup != nil {
		group, ok := domain.NormalizeBloodGroup(*input.BloodGroup)
		if !ok {
			return nil, domain.ErrInvalidBloodGroup
		}
		donor.BloodGroup = group
	}
	if input.Camp != nil {
		camp, err := s.resolveCamp(ctx, *input.Camp)
		if err != nil {
			return nil, err
		}
		donor.CampID = camp.ID
	}
	setString(&donor.Email, input.Email)
	setString(&donor.Phone, input.Phone)
	setString(&donor.Address, input.Address)
	setString(&donor.Remark, input.Remark)

	if err := s.donorRepo.Update(ctx, donor); err != nil {
		return nil, err
	}
	return donor, nil
}

// Delete deletes a donor
func (s *DonorService) Delete(ctx context.Context, id string) error {
	if !models.IsValidID(id) {
		return domain.ErrInvalidID
	}

	if err := s.donorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonorNotFound
		}
		return err
	}
	return nil
}

// resolveCamp treats ref as a camp id when it is well-formed, else as a camp name
func (s *DonorService) resolveCamp(ctx context.Context, ref string) (*models.Camp, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, domain.ErrInvalidCamp
	}

	var camp *models.Camp
	var err error
	if models.IsValidID(ref) {
		camp, err = s.campRepo.GetByID(ctx, ref)
	} else {
		camp, err = s.campRepo.GetByName(ctx, ref)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCamp
		}
		return nil, err
	}
	return camp, nil
}

// today is the current local calendar date pinned to UTC midnight, matching ParseDate
func (s *DonorService) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *DonorService) parseDOB(value string) (time.Time, error) {
	dob, ok := domain.ParseDate(value)
	if !ok || dob.After(s.today()) {
		return time.Time{}, domain.ErrInvalidDOB
	}
	return dob, nil
}

func missingRegistrationFields(input *DonorInput) []string {
	var missing []string
	blank := func(v *string) bool { return v == nil || strings.TrimSpace(*v) == "" }

	if blank(input.Name) {
		missing = append(missing, "name")
	}
	if blank(input.DOB) {
		missing = append(missing, "dob")
	}
	if input.Weight == nil {
		missing = append(missing, "weight")
	}
	if blank(input.BloodGroup) {
		missing = append(missing, "bloodGroup")
	}
	if blank(input.Phone) {
		missing = append(missing, "phone")
	}
	if blank(input.Camp) {
		missing = append(missing, "camp")
	}
	return missing
}
