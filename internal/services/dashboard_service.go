package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"inspectra/internal/dto"
	"inspectra/internal/entities"
	"inspectra/internal/inspection"
	"inspectra/internal/repositories"
)

// DashboardService holds the read-only aggregations: counts, the due-soon
// notification list and parent-scoped search. Everything is recomputed from
// the live collections on every call; the stored extinguisher status is
// never consulted here.
type DashboardService struct {
	unitRepository         repositories.UnitRepositoryInterface
	workshopRepository     repositories.WorkshopRepositoryInterface
	extinguisherRepository repositories.ExtinguisherRepositoryInterface
	logger                 *zap.Logger
	now                    func() time.Time
}

func NewDashboardService(
	unitRepository repositories.UnitRepositoryInterface,
	workshopRepository repositories.WorkshopRepositoryInterface,
	extinguisherRepository repositories.ExtinguisherRepositoryInterface,
	logger *zap.Logger,
	now func() time.Time,
) *DashboardService {
	return &DashboardService{
		unitRepository:         unitRepository,
		workshopRepository:     workshopRepository,
		extinguisherRepository: extinguisherRepository,
		logger:                 logger,
		now:                    now,
	}
}

func (s *DashboardService) Dashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	units, err := s.unitRepository.GetUnits(ctx)
	if err != nil {
		return nil, err
	}
	workshops, err := s.workshopRepository.GetWorkshops(ctx)
	if err != nil {
		return nil, err
	}
	extinguishers, err := s.extinguisherRepository.GetExtinguishers(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	dueSoon := 0
	for _, e := range extinguishers {
		if !e.NextInspection.Valid {
			continue
		}
		diff, ok := inspection.DaysUntil(e.NextInspection.String, now)
		if ok && diff >= 0 && diff <= inspection.DueSoonWindowDays {
			dueSoon++
		}
	}

	return &dto.DashboardDTO{
		TotalUnits:         len(units),
		TotalWorkshops:     len(workshops),
		TotalExtinguishers: len(extinguishers),
		DueSoon:            dueSoon,
	}, nil
}

// Notifications lists every extinguisher whose next inspection falls inside
// the window, already-expired ones included, most urgent first. A missing
// parent shows up as a dash placeholder.
func (s *DashboardService) Notifications(ctx context.Context) ([]dto.NotificationDTO, error) {
	units, err := s.unitRepository.GetUnits(ctx)
	if err != nil {
		return nil, err
	}
	workshops, err := s.workshopRepository.GetWorkshops(ctx)
	if err != nil {
		return nil, err
	}
	extinguishers, err := s.extinguisherRepository.GetExtinguishers(ctx)
	if err != nil {
		return nil, err
	}

	unitsByID := make(map[string]entities.Unit, len(units))
	for _, u := range units {
		unitsByID[u.ID] = u
	}
	workshopsByID := make(map[string]entities.Workshop, len(workshops))
	for _, w := range workshops {
		workshopsByID[w.ID] = w
	}

	now := s.now()
	notifications := make([]dto.NotificationDTO, 0)
	for _, e := range extinguishers {
		if !e.NextInspection.Valid {
			continue
		}
		diff, ok := inspection.DaysUntil(e.NextInspection.String, now)
		if !ok || diff > inspection.DueSoonWindowDays {
			continue
		}

		workshopName := "—"
		unitName := "—"
		if workshop, found := workshopsByID[e.WorkshopID]; found {
			workshopName = workshop.Name
			if unit, found := unitsByID[workshop.UnitID]; found {
				unitName = unit.Name
			}
		}

		notifications = append(notifications, dto.NotificationDTO{
			ID:           e.ID,
			Code:         e.Code,
			When:         e.NextInspection.String,
			DiffDays:     diff,
			WorkshopName: workshopName,
			UnitName:     unitName,
		})
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].DiffDays < notifications[j].DiffDays
	})
	return notifications, nil
}

// SearchWorkshops returns a unit's workshops, optionally narrowed by a
// case-insensitive substring over name, location and description. An empty
// query returns the whole unit scope.
func (s *DashboardService) SearchWorkshops(ctx context.Context, unitID, query string) ([]dto.WorkshopDTO, error) {
	workshops, err := s.workshopRepository.GetWorkshopsByUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return workshopEntitiesToDTOs(workshops), nil
	}

	matched := make([]entities.Workshop, 0, len(workshops))
	for _, w := range workshops {
		haystack := strings.ToLower(w.Name + " " + w.Location.String + " " + w.Description.String)
		if strings.Contains(haystack, needle) {
			matched = append(matched, w)
		}
	}
	return workshopEntitiesToDTOs(matched), nil
}

// SearchExtinguishers is the workshop-scoped counterpart, searching over
// code, type and location.
func (s *DashboardService) SearchExtinguishers(ctx context.Context, workshopID, query string) ([]dto.ExtinguisherDTO, error) {
	extinguishers, err := s.extinguisherRepository.GetExtinguishersByWorkshop(ctx, workshopID)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return extinguisherEntitiesToDTOs(extinguishers), nil
	}

	matched := make([]entities.Extinguisher, 0, len(extinguishers))
	for _, e := range extinguishers {
		haystack := strings.ToLower(e.Code + " " + e.Type.String + " " + e.Location.String)
		if strings.Contains(haystack, needle) {
			matched = append(matched, e)
		}
	}
	return extinguisherEntitiesToDTOs(matched), nil
}
