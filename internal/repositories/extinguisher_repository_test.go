package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspectra/internal/entities"
	"inspectra/internal/inspection"
)

func testExtinguisher(id, workshopID, code string) entities.Extinguisher {
	return entities.Extinguisher{ID: id, WorkshopID: workshopID, Code: code, Status: inspection.StatusOK}
}

func TestExtinguisherRepository_ScopeByWorkshop(t *testing.T) {
	ctx := context.Background()
	repo := NewExtinguisherRepository()
	require.NoError(t, repo.CreateExtinguisher(ctx, testExtinguisher("e1", "ws-1", "EXT-001")))
	require.NoError(t, repo.CreateExtinguisher(ctx, testExtinguisher("e2", "ws-2", "EXT-002")))
	require.NoError(t, repo.CreateExtinguisher(ctx, testExtinguisher("e3", "ws-1", "EXT-001")))

	scoped, err := repo.GetExtinguishersByWorkshop(ctx, "ws-1")
	require.NoError(t, err)
	require.Len(t, scoped, 2)
	// Duplicate codes are tolerated.
	assert.Equal(t, scoped[0].Code, scoped[1].Code)
}

func TestExtinguisherRepository_ReplaceKeepsPosition(t *testing.T) {
	ctx := context.Background()
	repo := NewExtinguisherRepository()
	require.NoError(t, repo.CreateExtinguisher(ctx, testExtinguisher("e1", "ws-1", "EXT-001")))
	require.NoError(t, repo.CreateExtinguisher(ctx, testExtinguisher("e2", "ws-1", "EXT-002")))

	updated := testExtinguisher("e1", "ws-1", "EXT-099")
	require.NoError(t, repo.ReplaceExtinguisher(ctx, updated))

	all, err := repo.GetExtinguishers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "e2", all[0].ID)
	assert.Equal(t, "EXT-099", all[1].Code)
}

func TestExtinguisherRepository_ReplaceUnknownIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := NewExtinguisherRepository()
	require.NoError(t, repo.CreateExtinguisher(ctx, testExtinguisher("e1", "ws-1", "EXT-001")))

	require.NoError(t, repo.ReplaceExtinguisher(ctx, testExtinguisher("ghost", "ws-1", "EXT-X")))

	all, err := repo.GetExtinguishers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "EXT-001", all[0].Code)
}

func TestExtinguisherRepository_DeleteByWorkshop(t *testing.T) {
	ctx := context.Background()
	repo := NewExtinguisherRepository()
	require.NoError(t, repo.CreateExtinguisher(ctx, testExtinguisher("e1", "ws-1", "EXT-001")))
	require.NoError(t, repo.CreateExtinguisher(ctx, testExtinguisher("e2", "ws-2", "EXT-002")))

	require.NoError(t, repo.DeleteExtinguishersByWorkshop(ctx, "ws-1"))

	all, err := repo.GetExtinguishers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "e2", all[0].ID)
}
