package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"inspectra/internal/dto"
)

func TestReportService_ExportRegister(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, workshopID := env.seedTree(t)

	_, err := env.extinguishers.CreateExtinguisher(ctx, dto.CreateExtinguisherDTO{
		WorkshopID:     workshopID,
		Code:           "EXT-001",
		NextInspection: dateIn(-2),
	})
	require.NoError(t, err)
	_, err = env.extinguishers.CreateExtinguisher(ctx, dto.CreateExtinguisherDTO{
		WorkshopID: workshopID,
		Code:       "EXT-002",
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "register.xlsx")
	require.NoError(t, env.reports.ExportRegister(ctx, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Extinguisher register")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per extinguisher")
	assert.Equal(t, "Code", rows[0][0])

	// Newest first, status derived live from the inspection date.
	assert.Equal(t, "EXT-002", rows[1][0])
	assert.Equal(t, "EXT-001", rows[2][0])
	assert.Equal(t, "EXPIRED", rows[2][6])
}
