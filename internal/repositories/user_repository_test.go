package repositories

import (
	"context"
	"testing"

	"github.com/anonto42/water-board/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListIDsByNeighborhood(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewPostgresUserRepository(db)
	ctx := context.Background()

	centro := testutil.SeedNeighborhood(t, db, "Centro")
	norte := testutil.SeedNeighborhood(t, db, "Norte")
	a := testutil.SeedUser(t, db, "a@example.com", centro.ID)
	b := testutil.SeedUser(t, db, "b@example.com", centro.ID)
	c := testutil.SeedUser(t, db, "c@example.com", norte.ID)
	d := testutil.SeedUser(t, db, "d@example.com", 0)

	ids, err := repo.ListIDsByNeighborhood(ctx, centro.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID, b.ID}, ids)

	ids, err = repo.ListIDsByNeighborhood(ctx, 12345)
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)

	all, err := repo.ListAllIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID, b.ID, c.ID, d.ID}, all)
}

func TestGetUserByID_PreloadsNeighborhood(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewPostgresUserRepository(db)

	centro := testutil.SeedNeighborhood(t, db, "Centro")
	u := testutil.SeedUser(t, db, "a@example.com", centro.ID)

	got, err := repo.GetUserByID(u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Neighborhood)
	assert.Equal(t, "Centro", got.Neighborhood.Name)
}
