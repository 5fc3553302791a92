package services

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspectra/internal/dto"
	apperrors "inspectra/pkg/errors"
)

func TestUnitService_Create(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	unit, err := env.units.CreateUnit(ctx, dto.CreateUnitDTO{
		Name:     "  Unit A  ",
		Location: null.StringFrom("  Montréal "),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, unit.ID)
	assert.Equal(t, "Unit A", unit.Name)
	assert.Equal(t, "Montréal", unit.Location.String)

	found, err := env.units.FindUnit(ctx, unit.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unit A", found.Name)
	assert.Equal(t, testNow.Format("2006-01-02 15:04:05"), found.CreatedAt)
}

func TestUnitService_CreateRejectsBlankName(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.units.CreateUnit(context.Background(), dto.CreateUnitDTO{Name: "   "})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	units, err := env.units.GetUnits(context.Background())
	require.NoError(t, err)
	assert.Empty(t, units)
}

func TestUnitService_EmptyOptionalBecomesAbsent(t *testing.T) {
	env := newTestEnv(t)

	unit, err := env.units.CreateUnit(context.Background(), dto.CreateUnitDTO{
		Name:        "Unit B",
		Description: null.StringFrom("   "),
	})
	require.NoError(t, err)
	assert.False(t, unit.Description.Valid)
}

func TestUnitService_DeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	unit, err := env.units.CreateUnit(ctx, dto.CreateUnitDTO{Name: "Unit A"})
	require.NoError(t, err)
	workshop, err := env.workshops.CreateWorkshop(ctx, dto.CreateWorkshopDTO{UnitID: unit.ID, Name: "Workshop 1"})
	require.NoError(t, err)
	_, err = env.extinguishers.CreateExtinguisher(ctx, dto.CreateExtinguisherDTO{WorkshopID: workshop.ID, Code: "EXT-001"})
	require.NoError(t, err)

	require.NoError(t, env.units.DeleteUnit(ctx, unit.ID))

	units, err := env.units.GetUnits(ctx)
	require.NoError(t, err)
	assert.Empty(t, units)
	workshops, err := env.workshops.GetWorkshops(ctx)
	require.NoError(t, err)
	assert.Empty(t, workshops)
	extinguishers, err := env.extinguishers.GetExtinguishers(ctx)
	require.NoError(t, err)
	assert.Empty(t, extinguishers)
}

func TestUnitService_DeleteUnknownIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.units.CreateUnit(ctx, dto.CreateUnitDTO{Name: "Unit A"})
	require.NoError(t, err)

	require.NoError(t, env.units.DeleteUnit(ctx, "missing"))

	units, err := env.units.GetUnits(ctx)
	require.NoError(t, err)
	assert.Len(t, units, 1)
}
