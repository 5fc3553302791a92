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
	apperrors "inspectra/pkg/errors"
	"inspectra/pkg/idgen"
	"inspectra/pkg/utils"
)

type WorkshopService struct {
	workshopRepository     repositories.WorkshopRepositoryInterface
	unitRepository         repositories.UnitRepositoryInterface
	extinguisherRepository repositories.ExtinguisherRepositoryInterface
	validate               *validator.Validate
	idGen                  idgen.Generator
	bus                    *eventbus.Bus
	logger                 *zap.Logger
	now                    func() time.Time
}

func NewWorkshopService(
	workshopRepository repositories.WorkshopRepositoryInterface,
	unitRepository repositories.UnitRepositoryInterface,
	extinguisherRepository repositories.ExtinguisherRepositoryInterface,
	validate *validator.Validate,
	idGen idgen.Generator,
	bus *eventbus.Bus,
	logger *zap.Logger,
	now func() time.Time,
) *WorkshopService {
	return &WorkshopService{
		workshopRepository:     workshopRepository,
		unitRepository:         unitRepository,
		extinguisherRepository: extinguisherRepository,
		validate:               validate,
		idGen:                  idGen,
		bus:                    bus,
		logger:                 logger,
		now:                    now,
	}
}

func workshopEntityToDTO(entity *entities.Workshop) *dto.WorkshopDTO {
	if entity == nil {
		return nil
	}
	return &dto.WorkshopDTO{
		ID:          entity.ID,
		UnitID:      entity.UnitID,
		Name:        entity.Name,
		Location:    entity.Location,
		Description: entity.Description,
		CreatedAt:   entity.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func workshopEntitiesToDTOs(items []entities.Workshop) []dto.WorkshopDTO {
	dtos := make([]dto.WorkshopDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *workshopEntityToDTO(&items[i]))
	}
	return dtos
}

func (s *WorkshopService) GetWorkshops(ctx context.Context) ([]dto.WorkshopDTO, error) {
	workshops, err := s.workshopRepository.GetWorkshops(ctx)
	if err != nil {
		return nil, err
	}
	return workshopEntitiesToDTOs(workshops), nil
}

func (s *WorkshopService) FindWorkshop(ctx context.Context, id string) (*dto.WorkshopDTO, error) {
	workshop, err := s.workshopRepository.FindWorkshop(ctx, id)
	if err != nil {
		return nil, err
	}
	return workshopEntityToDTO(workshop), nil
}

// CreateWorkshop validates the payload, checks the parent unit exists and
// prepends a fully-built workshop.
func (s *WorkshopService) CreateWorkshop(ctx context.Context, payload dto.CreateWorkshopDTO) (*dto.WorkshopDTO, error) {
	payload.Name = strings.TrimSpace(payload.Name)
	payload.Location = utils.NormalizeOptional(payload.Location)
	payload.Description = utils.NormalizeOptional(payload.Description)

	if err := s.validate.Struct(payload); err != nil {
		return nil, invalidPayload(err)
	}
	if _, err := s.unitRepository.FindUnit(ctx, payload.UnitID); err != nil {
		return nil, apperrors.NewValidationError("unit %q does not exist", payload.UnitID)
	}

	workshop := entities.Workshop{
		ID:          s.idGen.NewID(),
		UnitID:      payload.UnitID,
		Name:        payload.Name,
		Location:    payload.Location,
		Description: payload.Description,
		CreatedAt:   s.now(),
	}

	if err := s.workshopRepository.CreateWorkshop(ctx, workshop); err != nil {
		return nil, err
	}

	s.logger.Info("workshop created",
		zap.String("id", workshop.ID),
		zap.String("unit_id", workshop.UnitID),
		zap.String("name", workshop.Name),
	)
	s.bus.Publish(ctx, events.WorkshopCreatedEvent{Workshop: workshop})
	return workshopEntityToDTO(&workshop), nil
}

// DeleteWorkshop removes a workshop and cascades to its extinguishers.
// Removing an unknown id is a silent no-op.
func (s *WorkshopService) DeleteWorkshop(ctx context.Context, id string) error {
	if _, err := s.workshopRepository.FindWorkshop(ctx, id); err != nil {
		return nil
	}

	if err := s.extinguisherRepository.DeleteExtinguishersByWorkshop(ctx, id); err != nil {
		return err
	}
	if err := s.workshopRepository.DeleteWorkshop(ctx, id); err != nil {
		return err
	}

	s.logger.Info("workshop removed", zap.String("id", id))
	s.bus.Publish(ctx, events.WorkshopRemovedEvent{ID: id})
	return nil
}
