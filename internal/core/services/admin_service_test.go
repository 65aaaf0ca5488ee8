package services

import (
	"context"
	"testing"

	"lifeline-blood/internal/core/domain"
	"lifeline-blood/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_BootstrapIsIdempotent(t *testing.T) {
	svc, repos := newTestServices(t)
	ctx := context.Background()

	created, err := svc.Admin.Bootstrap(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.Admin.Bootstrap(ctx)
	require.NoError(t, err)
	assert.False(t, created)

	count, err := repos.Admins.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAdminService_Login(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	_, err := svc.Admin.Bootstrap(ctx)
	require.NoError(t, err)

	result, err := svc.Admin.Login(ctx, " Admin@Lifeline.local ", "admin123456")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	assert.Equal(t, "admin@lifeline.local", result.Admin.Email)

	claims, err := jwt.ValidateAccessToken(result.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, result.Admin.ID, claims.AdminID)

	_, err = svc.Admin.Login(ctx, "admin@lifeline.local", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = svc.Admin.Login(ctx, "nobody@lifeline.local", "admin123456")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Admin.Login(ctx, "", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAdminService_Register(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	admin, err := svc.Admin.Register(ctx, "ops@lifeline.local", "long-enough")
	require.NoError(t, err)
	assert.NotEmpty(t, admin.ID)
	assert.NotEqual(t, "long-enough", admin.Password)

	_, err = svc.Admin.Register(ctx, "OPS@lifeline.local", "long-enough")
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = svc.Admin.Register(ctx, "new@lifeline.local", "short")
	assert.ErrorIs(t, err, domain.ErrWeakPassword)

	_, err = svc.Admin.Login(ctx, "ops@lifeline.local", "long-enough")
	assert.NoError(t, err)
}
