package models

import (
	"time"

	"lifeline-blood/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NewID returns a fresh entity identifier
func NewID() string {
	return uuid.NewString()
}

// IsValidID reports whether id is a well-formed entity identifier
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil && len(id) == 36
}

// Admin represents admins table
type Admin struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Admin) TableName() string {
	return "admins"
}

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = NewID()
	}
	return nil
}

// Camp represents camps table
type Camp struct {
	ID               string                             `gorm:"primaryKey;size:36" json:"id"`
	Name             string                             `gorm:"uniqueIndex;size:191;not null" json:"name"`
	Location         string                             `gorm:"size:255" json:"location"`
	Date             *time.Time                         `gorm:"type:date;index" json:"date"`
	OrganizerName    string                             `gorm:"size:150" json:"organizerName"`
	OrganizerContact string                             `gorm:"size:50" json:"organizerContact"`
	ProName          string                             `gorm:"size:150" json:"proName"`
	HospitalName     string                             `gorm:"size:191" json:"hospitalName"`
	Coupons          datatypes.JSONSlice[domain.Coupon] `json:"coupons"`
	CreatedAt        time.Time                          `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time                          `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Camp) TableName() string {
	return "camps"
}

func (c *Camp) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	if c.Coupons == nil {
		c.Coupons = datatypes.JSONSlice[domain.Coupon]{}
	}
	return nil
}

// CampWithCount is a camp augmented with its number of registered donors
type CampWithCount struct {
	*Camp
	DonorCount int64 `json:"donorCount"`
}

// Donor represents donors table
type Donor struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Name       string    `gorm:"size:150;not null;index" json:"name"`
	DOB        time.Time `gorm:"column:dob;type:date;not null" json:"dob"`
	Age        int       `gorm:"not null" json:"age"`
	Weight     float64   `gorm:"not null" json:"weight"`
	BloodGroup string    `gorm:"size:3;not null" json:"bloodGroup"`
	Email      string    `gorm:"size:191" json:"email"`
	Phone      string    `gorm:"size:30;not null" json:"phone"`
	Address    string    `gorm:"size:500" json:"address"`
	CampID     string    `gorm:"size:36;not null;index" json:"camp"`
	Camp       *Camp     `gorm:"foreignKey:CampID" json:"campDetails,omitempty"`
	Remark     string    `gorm:"size:255" json:"remark"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Donor) TableName() string {
	return "donors"
}

func (d *Donor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = NewID()
	}
	return nil
}

// AutoMigrate creates or updates the admins, camps and donors tables.
// Camp names are unique ignoring case; MySQL's default collation already
// does that, postgres needs an expression index.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Admin{},
		&Camp{},
		&Donor{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() == "postgres" {
		return db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_camps_name_lower ON camps (LOWER(name))").Error
	}
	return nil
}
