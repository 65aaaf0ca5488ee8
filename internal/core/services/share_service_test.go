package services

import (
	"context"
	"errors"
	"testing"

	"lifeline-blood/internal/adapters/persistence/models"
	"lifeline-blood/internal/core/domain"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareService_Links(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	campID := mustCamp(t, svc, "Share Me")

	link, err := svc.Share.RegistrationLink(ctx, campID)
	require.NoError(t, err)
	assert.Equal(t, "https://donate.example.org/register?campId="+campID, link.URL)
	assert.Equal(t, "Share Me", link.Name)

	donor, err := svc.Donor.Register(ctx, validDonor(campID))
	require.NoError(t, err)

	donorLink, err := svc.Share.DonorLink(ctx, donor.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://donate.example.org/donor/"+donor.ID, donorLink.URL)

	_, err = svc.Share.RegistrationLink(ctx, models.NewID())
	assert.ErrorIs(t, err, domain.ErrCampNotFound)

	_, err = svc.Share.DonorLink(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestShareService_QRCode(t *testing.T) {
	svc, _ := newTestServices(t)

	var gotSize int
	var gotLevel qrcode.RecoveryLevel
	svc.Share.encode = func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error) {
		gotSize, gotLevel = size, level
		return []byte("png:" + content), nil
	}

	png, err := svc.Share.QRCode("https://donate.example.org", 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("png:https://donate.example.org"), png)
	assert.Equal(t, DefaultQRSize, gotSize)
	assert.Equal(t, qrcode.High, gotLevel)

	_, err = svc.Share.QRCode("x", 32)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Share.QRCode("x", 2048)
	assert.ErrorIs(t, err, domain.ErrValidation)

	svc.Share.encode = func(string, qrcode.RecoveryLevel, int) ([]byte, error) {
		return nil, errors.New("encode failed")
	}
	_, err = svc.Share.QRCode("x", 128)
	assert.EqualError(t, err, "encode failed")
}

func TestShareService_QRCodeRealEncoder(t *testing.T) {
	svc, _ := newTestServices(t)

	png, err := svc.Share.QRCode("https://donate.example.org/register", 128)
	require.NoError(t, err)
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
