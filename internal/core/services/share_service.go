package services

import (
	"context"
	"net/url"
	"strings"

	"lifeline-blood/internal/adapters/persistence/models"
	"lifeline-blood/internal/adapters/persistence/repositories"
	"lifeline-blood/internal/core/domain"

	"github.com/skip2/go-qrcode"
)

const (
	DefaultQRSize = 256
	MinQRSize     = 64
	MaxQRSize     = 1024
)

// QREncoder renders content as a PNG QR code
type QREncoder func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error)

// ShareService builds the public links admins hand out for a camp or donor
type ShareService struct {
	campRepo  repositories.CampRepository
	donorRepo repositories.DonorRepository
	baseURL   string
	encode    QREncoder
}

// ShareLink is a public url for a camp or donor
type ShareLink struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// NewShareService creates a new share service
func NewShareService(campRepo repositories.CampRepository, donorRepo repositories.DonorRepository, baseURL string) *ShareService {
	return &ShareService{
		campRepo:  campRepo,
		donorRepo: donorRepo,
		baseURL:   strings.TrimRight(baseURL, "/"),
		encode:    qrcode.Encode,
	}
}

// RegistrationLink returns the public donor registration url for a camp
func (s *ShareService) RegistrationLink(ctx context.Context, campID string) (*ShareLink, error) {
	camp, err := s.camp(ctx, campID)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("campId", camp.ID)
	return &ShareLink{
		URL:  s.baseURL + "/register?" + q.Encode(),
		Name: camp.Name,
	}, nil
}

// DonorLink returns the public url of a donor card
func (s *ShareService) DonorLink(ctx context.Context, donorID string) (*ShareLink, error) {
	if !models.IsValidID(donorID) {
		return nil, domain.ErrInvalidID
	}

	donor, err := s.donorRepo.GetByID(ctx, donorID)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrDonorNotFound
		}
		return nil, err
	}

	return &ShareLink{
		URL:  s.baseURL + "/donor/" + url.PathEscape(donor.ID),
		Name: donor.Name,
	}, nil
}

// QRCode renders a link as a PNG. size 0 means the default size.
func (s *ShareService) QRCode(link string, size int) ([]byte, error) {
	if size == 0 {
		size = DefaultQRSize
	}
	if size < MinQRSize || size > MaxQRSize {
		return nil, domain.Invalidf("QR size must be between %d and %d", MinQRSize, MaxQRSize)
	}
	return s.encode(link, qrcode.High, size)
}

func (s *ShareService) camp(ctx context.Context, id string) (*models.Camp, error) {
	if !models.IsValidID(id) {
		return nil, domain.ErrInvalidID
	}

	camp, err := s.campRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrCampNotFound
		}
		return nil, err
	}
	return camp, nil
}
