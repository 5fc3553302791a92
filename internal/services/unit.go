package services

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"inspectra/internal/dto"
	"inspectra/internal/entities"
	"inspectra/internal/events"
	"inspectra/internal/repositories"
	"inspectra/pkg/eventbus"
	"inspectra/pkg/idgen"
	"inspectra/pkg/utils"
)

type UnitService struct {
	unitRepository         repositories.UnitRepositoryInterface
	workshopRepository     repositories.WorkshopRepositoryInterface
	extinguisherRepository repositories.ExtinguisherRepositoryInterface
	validate               *validator.Validate
	idGen                  idgen.Generator
	bus                    *eventbus.Bus
	logger                 *zap.Logger
	now                    func() time.Time
}

func NewUnitService(
	unitRepository repositories.UnitRepositoryInterface,
	workshopRepository repositories.WorkshopRepositoryInterface,
	extinguisherRepository repositories.ExtinguisherRepositoryInterface,
	validate *validator.Validate,
	idGen idgen.Generator,
	bus *eventbus.Bus,
	logger *zap.Logger,
	now func() time.Time,
) *UnitService {
	return &UnitService{
		unitRepository:         unitRepository,
		workshopRepository:     workshopRepository,
		extinguisherRepository: extinguisherRepository,
		validate:               validate,
		idGen:                  idGen,
		bus:                    bus,
		logger:                 logger,
		now:                    now,
	}
}

func unitEntityToDTO(entity *entities.Unit) *dto.UnitDTO {
	if entity == nil {
		return nil
	}
	return &dto.UnitDTO{
		ID:          entity.ID,
		Name:        entity.Name,
		Location:    entity.Location,
		Description: entity.Description,
		CreatedAt:   entity.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func unitEntitiesToDTOs(items []entities.Unit) []dto.UnitDTO {
	dtos := make([]dto.UnitDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *unitEntityToDTO(&items[i]))
	}
	return dtos
}

func (s *UnitService) GetUnits(ctx context.Context) ([]dto.UnitDTO, error) {
	units, err := s.unitRepository.GetUnits(ctx)
	if err != nil {
		return nil, err
	}
	return unitEntitiesToDTOs(units), nil
}

func (s *UnitService) FindUnit(ctx context.Context, id string) (*dto.UnitDTO, error) {
	unit, err := s.unitRepository.FindUnit(ctx, id)
	if err != nil {
		return nil, err
	}
	return unitEntityToDTO(unit), nil
}

// CreateUnit builds a fully-formed unit from the payload and prepends it.
// Build and apply are separate steps: the repository only ever sees a
// finished entity.
func (s *UnitService) CreateUnit(ctx context.Context, payload dto.CreateUnitDTO) (*dto.UnitDTO, error) {
	payload.Name = strings.TrimSpace(payload.Name)
	payload.Location = utils.NormalizeOptional(payload.Location)
	payload.Description = utils.NormalizeOptional(payload.Description)

	if err := s.validate.Struct(payload); err != nil {
		return nil, invalidPayload(err)
	}

	unit := entities.Unit{
		ID:          s.idGen.NewID(),
		Name:        payload.Name,
		Location:    payload.Location,
		Description: payload.Description,
		CreatedAt:   s.now(),
	}

	if err := s.unitRepository.CreateUnit(ctx, unit); err != nil {
		return nil, err
	}

	s.logger.Info("unit created", zap.String("id", unit.ID), zap.String("name", unit.Name))
	s.bus.Publish(ctx, events.UnitCreatedEvent{Unit: unit})
	return unitEntityToDTO(&unit), nil
}

// DeleteUnit removes a unit and cascades to its workshops and their
// extinguishers. Removing an unknown id is a silent no-op.
func (s *UnitService) DeleteUnit(ctx context.Context, id string) error {
	if _, err := s.unitRepository.FindUnit(ctx, id); err != nil {
		return nil
	}

	removedWorkshops, err := s.workshopRepository.DeleteWorkshopsByUnit(ctx, id)
	if err != nil {
		return err
	}
	for _, workshopID := range removedWorkshops {
		if err := s.extinguisherRepository.DeleteExtinguishersByWorkshop(ctx, workshopID); err != nil {
			return err
		}
	}

	if err := s.unitRepository.DeleteUnit(ctx, id); err != nil {
		return err
	}

	s.logger.Info("unit removed",
		zap.String("id", id),
		zap.Int("cascaded_workshops", len(removedWorkshops)),
	)
	s.bus.Publish(ctx, events.UnitRemovedEvent{ID: id, RemovedWorkshops: removedWorkshops})
	return nil
}
