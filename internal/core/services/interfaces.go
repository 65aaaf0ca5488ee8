package services

import (
	"errors"

	"lifeline-blood/internal/adapters/persistence/repositories"
	"lifeline-blood/internal/config"

	"gorm.io/gorm"
)

// Services bundles every service the HTTP layer and main need
type Services struct {
	Admin     *AdminService
	Camp      *CampService
	Donor     *DonorService
	Share     *ShareService
	Reconcile *ReconcileService
}

// New wires all services onto one repository set
func New(repos *repositories.Repositories, cfg *config.Config) *Services {
	return &Services{
		Admin:     NewAdminService(repos.Admins, cfg),
		Camp:      NewCampService(repos.Camps, repos.Donors),
		Donor:     NewDonorService(repos.Donors, repos.Camps),
		Share:     NewShareService(repos.Camps, repos.Donors, cfg.PublicAppURL),
		Reconcile: NewReconcileService(repos.Donors, cfg.ReconcileSchedule),
	}
}

// Input DTOs. A nil field means "not supplied" and leaves the stored value untouched.

// CampInput carries camp fields for create and partial update
type CampInput struct {
	Name             *string
	Location         *string
	Date             *string // YYYY-MM-DD or RFC3339; "" clears the date
	OrganizerName    *string
	OrganizerContact *string
	ProName          *string
	HospitalName     *string
}

// DonorInput carries donor fields for registration and partial update.
// There is no age field; age is always derived from DOB.
type DonorInput struct {
	Name       *string
	DOB        *string
	Weight     *float64
	BloodGroup *string
	Email      *string
	Phone      *string
	Address    *string
	Camp       *string // camp id, or camp name (case-insensitive)
	Remark     *string
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
