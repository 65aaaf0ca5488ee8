package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"lifeline-blood/internal/adapters/persistence/models"
	"lifeline-blood/internal/adapters/persistence/repositories"
	"lifeline-blood/internal/config"
	"lifeline-blood/internal/core/domain"
	"lifeline-blood/internal/pkg/jwt"
	"lifeline-blood/internal/pkg/password"

	"gorm.io/gorm"
)

// AdminService handles admin bootstrap and authentication
type AdminService struct {
	adminRepo repositories.AdminRepository
	cfg       *config.Config
}

// NewAdminService creates a new admin service
func NewAdminService(adminRepo repositories.AdminRepository, cfg *config.Config) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// LoginResult is a successful login
type LoginResult struct {
	Token string        `json:"token"`
	Admin *models.Admin `json:"admin"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Bootstrap makes sure the configured admin exists. It does nothing when
// the record is already there, so it is safe on every startup.
func (s *AdminService) Bootstrap(ctx context.Context) (bool, error) {
	email := normalizeEmail(s.cfg.Admin.Email)

	exists, err := s.adminRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if exists {
		total, err := s.adminRepo.Count(ctx)
		if err != nil {
			return false, err
		}
		log.Printf("✅ Admin already exists: %s (%d admins)", email, total)
		return false, nil
	}

	hashed, err := password.Hash(s.cfg.Admin.Password)
	if err != nil {
		return false, err
	}

	err = s.adminRepo.Create(ctx, &models.Admin{Email: email, Password: hashed})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// another instance won the race
		return false, nil
	}
	if err != nil {
		return false, err
	}

	log.Printf("✅ Default admin created: %s", email)
	return true, nil
}

// Login authenticates an admin and issues a session token
func (s *AdminService) Login(ctx context.Context, email, pass string) (*LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || pass == "" {
		return nil, domain.ErrCredentialsMissing
	}

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(pass, admin.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.GenerateAccessToken(admin.ID, admin.Email, s.cfg.JWT.Secret, s.cfg.JWT.Expiry())
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Admin logged in: %s", admin.Email)

	return &LoginResult{Token: token, Admin: admin}, nil
}

// Register adds another admin account
func (s *AdminService) Register(ctx context.Context, email, pass string) (*models.Admin, error) {
	email = normalizeEmail(email)
	if email == "" || pass == "" {
		return nil, domain.ErrCredentialsMissing
	}
	if !password.ValidatePassword(pass) {
		return nil, domain.ErrWeakPassword
	}

	exists, err := s.adminRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAdminExists
	}

	hashed, err := password.Hash(pass)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{Email: email, Password: hashed}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrAdminExists
		}
		return nil, err
	}

	log.Printf("✅ Admin registered: %s", admin.Email)
	return admin, nil
}
