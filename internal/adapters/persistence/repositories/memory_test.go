package repositories

import (
	"context"
	"math"
	"testing"
	"time"

	"lifeline-blood/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMemory_CampNameUnique(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories()

	require.NoError(t, repos.Camps.Create(ctx, &models.Camp{Name: "Camp A"}))
	err := repos.Camps.Create(ctx, &models.Camp{Name: "Camp A"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// names compare case-insensitively, like the default MySQL collation
	err = repos.Camps.Create(ctx, &models.Camp{Name: "camp a"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	camp, err := repos.Camps.GetByName(ctx, "CAMP A")
	require.NoError(t, err)
	assert.Equal(t, "Camp A", camp.Name)

	taken, err := repos.Camps.ExistsByName(ctx, "camp A", "")
	require.NoError(t, err)
	assert.True(t, taken)
	taken, err = repos.Camps.ExistsByName(ctx, "camp A", camp.ID)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestMemory_ListOrdersByDateThenUndated(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories()

	later := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	sooner := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repos.Camps.Create(ctx, &models.Camp{Name: "Undated"}))
	require.NoError(t, repos.Camps.Create(ctx, &models.Camp{Name: "Later", Date: &later}))
	require.NoError(t, repos.Camps.Create(ctx, &models.Camp{Name: "Sooner", Date: &sooner}))

	camps, err := repos.Camps.List(ctx)
	require.NoError(t, err)
	require.Len(t, camps, 3)
	assert.Equal(t, "Sooner", camps[0].Name)
	assert.Equal(t, "Later", camps[1].Name)
	assert.Equal(t, "Undated", camps[2].Name)
}

func TestMemory_DeleteWithDonorsAndOrphans(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories()

	keep := &models.Camp{Name: "Keep"}
	drop := &models.Camp{Name: "Drop"}
	require.NoError(t, repos.Camps.Create(ctx, keep))
	require.NoError(t, repos.Camps.Create(ctx, drop))

	require.NoError(t, repos.Donors.Create(ctx, &models.Donor{Name: "a", CampID: keep.ID}))
	require.NoError(t, repos.Donors.Create(ctx, &models.Donor{Name: "b", CampID: drop.ID}))
	require.NoError(t, repos.Donors.Create(ctx, &models.Donor{Name: "c", CampID: drop.ID}))
	require.NoError(t, repos.Donors.Create(ctx, &models.Donor{Name: "orphan", CampID: models.NewID()}))

	removed, err := repos.Camps.DeleteWithDonors(ctx, drop.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	_, err = repos.Camps.DeleteWithDonors(ctx, drop.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	orphans, err := repos.Donors.DeleteOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), orphans)

	counts, err := repos.Donors.CountsByCamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{keep.ID: 1}, counts)
}

func TestMemory_ListAllNewestFirstWithPaging(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories()

	camp := &models.Camp{Name: "Camp"}
	require.NoError(t, repos.Camps.Create(ctx, camp))
	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, repos.Donors.Create(ctx, &models.Donor{Name: name, CampID: camp.ID}))
	}

	all, total, err := repos.Donors.ListAll(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Name)
	require.NotNil(t, all[0].Camp)
	assert.Equal(t, "Camp", all[0].Camp.Name)

	page, _, err := repos.Donors.ListAll(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "first", page[0].Name)

	page, _, err = repos.Donors.ListAll(ctx, -4, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "third", page[0].Name)

	page, _, err = repos.Donors.ListAll(ctx, 1, math.MaxInt)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	page, _, err = repos.Donors.ListAll(ctx, math.MaxInt, 2)
	require.NoError(t, err)
	assert.Empty(t, page)
}
