package repositories

import (
	"context"

	"gorm.io/gorm"
)

// NewGormRepositories wires all repositories onto one GORM connection
func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Admins: NewAdminRepository(db),
		Camps:  NewCampRepository(db),
		Donors: NewDonorRepository(db),
		Ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
}
