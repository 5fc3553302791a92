package services

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inspectra/internal/entities"
	"inspectra/internal/inspection"
	"inspectra/internal/repositories"
)

var registerHeaders = []interface{}{
	"Code", "Type", "Location", "Workshop", "Unit", "Next inspection", "Status",
}

// ReportService exports the extinguisher register as an XLSX workbook. The
// status column is derived live from the next inspection date, not read
// from the stored field.
type ReportService struct {
	unitRepository         repositories.UnitRepositoryInterface
	workshopRepository     repositories.WorkshopRepositoryInterface
	extinguisherRepository repositories.ExtinguisherRepositoryInterface
	logger                 *zap.Logger
	now                    func() time.Time
}

func NewReportService(
	unitRepository repositories.UnitRepositoryInterface,
	workshopRepository repositories.WorkshopRepositoryInterface,
	extinguisherRepository repositories.ExtinguisherRepositoryInterface,
	logger *zap.Logger,
	now func() time.Time,
) *ReportService {
	return &ReportService{
		unitRepository:         unitRepository,
		workshopRepository:     workshopRepository,
		extinguisherRepository: extinguisherRepository,
		logger:                 logger,
		now:                    now,
	}
}

func (s *ReportService) ExportRegister(ctx context.Context, path string) error {
	units, err := s.unitRepository.GetUnits(ctx)
	if err != nil {
		return err
	}
	workshops, err := s.workshopRepository.GetWorkshops(ctx)
	if err != nil {
		return err
	}
	extinguishers, err := s.extinguisherRepository.GetExtinguishers(ctx)
	if err != nil {
		return err
	}

	unitsByID := make(map[string]entities.Unit, len(units))
	for _, u := range units {
		unitsByID[u.ID] = u
	}
	workshopsByID := make(map[string]entities.Workshop, len(workshops))
	for _, w := range workshops {
		workshopsByID[w.ID] = w
	}

	f := excelize.NewFile()
	sheet := "Extinguisher register"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &registerHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "G1", style)

	now := s.now()
	for i, e := range extinguishers {
		workshopName := "—"
		unitName := "—"
		if workshop, found := workshopsByID[e.WorkshopID]; found {
			workshopName = workshop.Name
			if unit, found := unitsByID[workshop.UnitID]; found {
				unitName = unit.Name
			}
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			e.Code,
			e.Type.String,
			e.Location.String,
			workshopName,
			unitName,
			e.NextInspection.String,
			string(inspection.Classify(e.NextInspection, now)),
		}
		f.SetSheetRow(sheet, cell, &row)
	}

	f.SetColWidth(sheet, "A", "A", 14)
	f.SetColWidth(sheet, "C", "E", 22)
	f.SetColWidth(sheet, "F", "G", 18)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write register: %w", err)
	}

	s.logger.Info("register exported",
		zap.String("path", path),
		zap.Int("rows", len(extinguishers)),
	)
	return nil
}
