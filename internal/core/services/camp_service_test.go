package services

import (
	"context"
	"testing"

	"lifeline-blood/internal/adapters/persistence/models"
	"lifeline-blood/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampService_CreateValidation(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svc.Camp.Create(ctx, &CampInput{Location: str("Hall A")})
	assert.ErrorIs(t, err, domain.ErrCampNameRequired)

	_, err = svc.Camp.Create(ctx, &CampInput{Name: str("   ")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Camp.Create(ctx, &CampInput{Name: str("City Drive"), Date: str("next tuesday")})
	assert.ErrorIs(t, err, domain.ErrInvalidCampDate)

	camp, err := svc.Camp.Create(ctx, &CampInput{Name: str(" City Drive "), Date: str("2026-07-01")})
	require.NoError(t, err)
	assert.Equal(t, "City Drive", camp.Name)
	require.NotNil(t, camp.Date)
	assert.Equal(t, "2026-07-01", camp.Date.Format("2006-01-02"))
	assert.NotNil(t, camp.Coupons)
}

func TestCampService_NameConflict(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	first := mustCamp(t, svc, "X")
	_, err := svc.Camp.Create(ctx, &CampInput{Name: str("X")})
	assert.ErrorIs(t, err, domain.ErrCampNameTaken)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = svc.Camp.Create(ctx, &CampInput{Name: str("x")})
	assert.ErrorIs(t, err, domain.ErrCampNameTaken)

	second := mustCamp(t, svc, "Y")
	_, err = svc.Camp.Update(ctx, second, &CampInput{Name: str("X")})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// renaming to its own name is not a conflict
	updated, err := svc.Camp.Update(ctx, first, &CampInput{Name: str("X"), Location: str("Hall B")})
	require.NoError(t, err)
	assert.Equal(t, "Hall B", updated.Location)

	// once X is renamed, the name is free again
	_, err = svc.Camp.Update(ctx, first, &CampInput{Name: str("Z")})
	require.NoError(t, err)
	_, err = svc.Camp.Create(ctx, &CampInput{Name: str("X")})
	assert.NoError(t, err)
}

func TestCampService_UpdatePartial(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	camp, err := svc.Camp.Create(ctx, &CampInput{
		Name:          str("Campus"),
		Location:      str("Library"),
		OrganizerName: str("NSS"),
		Date:          str("2026-08-01"),
	})
	require.NoError(t, err)

	updated, err := svc.Camp.Update(ctx, camp.ID, &CampInput{HospitalName: str("General")})
	require.NoError(t, err)
	assert.Equal(t, "Library", updated.Location)
	assert.Equal(t, "NSS", updated.OrganizerName)
	assert.Equal(t, "General", updated.HospitalName)
	require.NotNil(t, updated.Date)

	cleared, err := svc.Camp.Update(ctx, camp.ID, &CampInput{Date: str("")})
	require.NoError(t, err)
	assert.Nil(t, cleared.Date)
}

func TestCampService_GetByID(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svc.Camp.GetByID(ctx, "not-an-id")
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = svc.Camp.GetByID(ctx, models.NewID())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	id := mustCamp(t, svc, "Camp A")
	_, err = svc.Donor.Register(ctx, validDonor(id))
	require.NoError(t, err)

	got, err := svc.Camp.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Camp A", got.Name)
	assert.Equal(t, int64(1), got.DonorCount)
}

func TestCampService_DonorCountsMatchListByCamp(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	a := mustCamp(t, svc, "A")
	b := mustCamp(t, svc, "B")
	mustCamp(t, svc, "C")
	for i := 0; i < 3; i++ {
		_, err := svc.Donor.Register(ctx, validDonor(a))
		require.NoError(t, err)
	}
	_, err := svc.Donor.Register(ctx, validDonor(b))
	require.NoError(t, err)

	camps, err := svc.Camp.ListWithDonorCounts(ctx)
	require.NoError(t, err)
	require.Len(t, camps, 3)

	for _, camp := range camps {
		donors, err := svc.Donor.ListByCamp(ctx, camp.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(len(donors)), camp.DonorCount, camp.Name)
	}
}

func TestCampService_ListPublicOrder(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	for _, in := range []*CampInput{
		{Name: str("Undated")},
		{Name: str("Late"), Date: str("2026-12-01")},
		{Name: str("Early"), Date: str("2026-01-05")},
	} {
		_, err := svc.Camp.Create(ctx, in)
		require.NoError(t, err)
	}

	camps, err := svc.Camp.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, camps, 3)
	assert.Equal(t, "Early", camps[0].Name)
	assert.Equal(t, "Late", camps[1].Name)
	assert.Equal(t, "Undated", camps[2].Name)
}

func TestCampService_DeleteCascades(t *testing.T) {
	svc, repos := newTestServices(t)
	ctx := context.Background()

	doomed := mustCamp(t, svc, "Doomed")
	kept := mustCamp(t, svc, "Kept")
	for i := 0; i < 3; i++ {
		_, err := svc.Donor.Register(ctx, validDonor(doomed))
		require.NoError(t, err)
	}
	survivor, err := svc.Donor.Register(ctx, validDonor(kept))
	require.NoError(t, err)

	removed, err := svc.Camp.Delete(ctx, doomed)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	_, err = svc.Camp.GetByID(ctx, doomed)
	assert.ErrorIs(t, err, domain.ErrCampNotFound)

	donors, err := svc.Donor.ListByCamp(ctx, doomed)
	require.NoError(t, err)
	assert.Empty(t, donors)

	counts, err := repos.Donors.CountsByCamp(ctx)
	require.NoError(t, err)
	assert.Zero(t, counts[doomed])

	_, err = svc.Donor.GetByID(ctx, survivor.ID)
	assert.NoError(t, err)

	_, err = svc.Camp.Delete(ctx, doomed)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Camp.Delete(ctx, "bad")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestCampService_UpdateCoupons(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	id := mustCamp(t, svc, "Coupons")

	camp, err := svc.Camp.UpdateCoupons(ctx, id, []domain.Coupon{
		{Code: " FREECOFFEE ", Title: "Coffee"},
		{Code: "MOVIE50", Discount: "50%"},
	})
	require.NoError(t, err)
	require.Len(t, camp.Coupons, 2)
	assert.Equal(t, "FREECOFFEE", camp.Coupons[0].Code)

	_, err = svc.Camp.UpdateCoupons(ctx, id, []domain.Coupon{{Code: "A"}, {Code: "a"}})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Camp.UpdateCoupons(ctx, id, []domain.Coupon{{Title: "no code"}})
	assert.ErrorIs(t, err, domain.ErrCouponCodeMissing)

	_, err = svc.Camp.UpdateCoupons(ctx, models.NewID(), nil)
	assert.ErrorIs(t, err, domain.ErrCampNotFound)

	cleared, err := svc.Camp.UpdateCoupons(ctx, id, nil)
	require.NoError(t, err)
	assert.Empty(t, cleared.Coupons)

	stored, err := svc.Camp.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, stored.Coupons)
}
