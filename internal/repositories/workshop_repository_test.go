package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspectra/internal/entities"
)

func testWorkshop(id, unitID, name string) entities.Workshop {
	return entities.Workshop{ID: id, UnitID: unitID, Name: name}
}

func TestWorkshopRepository_ScopeByUnit(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkshopRepository()
	require.NoError(t, repo.CreateWorkshop(ctx, testWorkshop("w1", "unit-1", "Workshop 1")))
	require.NoError(t, repo.CreateWorkshop(ctx, testWorkshop("w2", "unit-2", "Receiving")))
	require.NoError(t, repo.CreateWorkshop(ctx, testWorkshop("w3", "unit-1", "Workshop 2")))

	scoped, err := repo.GetWorkshopsByUnit(ctx, "unit-1")
	require.NoError(t, err)
	assert.Len(t, scoped, 2)
}

func TestWorkshopRepository_DeleteByUnitReturnsRemovedIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkshopRepository()
	require.NoError(t, repo.CreateWorkshop(ctx, testWorkshop("w1", "unit-1", "Workshop 1")))
	require.NoError(t, repo.CreateWorkshop(ctx, testWorkshop("w2", "unit-2", "Receiving")))
	require.NoError(t, repo.CreateWorkshop(ctx, testWorkshop("w3", "unit-1", "Workshop 2")))

	removed, err := repo.DeleteWorkshopsByUnit(ctx, "unit-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"w1", "w3"}, removed)

	remaining, err := repo.GetWorkshops(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "w2", remaining[0].ID)
}
