package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"inspectra/internal/dto"
	"inspectra/internal/entities"
	"inspectra/internal/events"
	"inspectra/internal/inspection"
	"inspectra/internal/repositories"
	"inspectra/pkg/eventbus"
	apperrors "inspectra/pkg/errors"
	"inspectra/pkg/idgen"
	"inspectra/pkg/utils"
)

type ExtinguisherService struct {
	extinguisherRepository repositories.ExtinguisherRepositoryInterface
	workshopRepository     repositories.WorkshopRepositoryInterface
	validate               *validator.Validate
	idGen                  idgen.Generator
	bus                    *eventbus.Bus
	logger                 *zap.Logger
	now                    func() time.Time
}

func NewExtinguisherService(
	extinguisherRepository repositories.ExtinguisherRepositoryInterface,
	workshopRepository repositories.WorkshopRepositoryInterface,
	validate *validator.Validate,
	idGen idgen.Generator,
	bus *eventbus.Bus,
	logger *zap.Logger,
	now func() time.Time,
) *ExtinguisherService {
	return &ExtinguisherService{
		extinguisherRepository: extinguisherRepository,
		workshopRepository:     workshopRepository,
		validate:               validate,
		idGen:                  idGen,
		bus:                    bus,
		logger:                 logger,
		now:                    now,
	}
}

func extinguisherEntityToDTO(entity *entities.Extinguisher) *dto.ExtinguisherDTO {
	if entity == nil {
		return nil
	}
	return &dto.ExtinguisherDTO{
		ID:             entity.ID,
		WorkshopID:     entity.WorkshopID,
		Code:           entity.Code,
		Type:           entity.Type,
		Location:       entity.Location,
		NextInspection: entity.NextInspection,
		Status:         entity.Status,
		CreatedAt:      entity.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func extinguisherEntitiesToDTOs(items []entities.Extinguisher) []dto.ExtinguisherDTO {
	dtos := make([]dto.ExtinguisherDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *extinguisherEntityToDTO(&items[i]))
	}
	return dtos
}

func (s *ExtinguisherService) GetExtinguishers(ctx context.Context) ([]dto.ExtinguisherDTO, error) {
	items, err := s.extinguisherRepository.GetExtinguishers(ctx)
	if err != nil {
		return nil, err
	}
	return extinguisherEntitiesToDTOs(items), nil
}

func (s *ExtinguisherService) FindExtinguisher(ctx context.Context, id string) (*dto.ExtinguisherDTO, error) {
	item, err := s.extinguisherRepository.FindExtinguisher(ctx, id)
	if err != nil {
		return nil, err
	}
	return extinguisherEntityToDTO(item), nil
}

// CreateExtinguisher validates the payload, checks the parent workshop and
// prepends a fully-built extinguisher. Status is derived from the next
// inspection date at creation time.
func (s *ExtinguisherService) CreateExtinguisher(ctx context.Context, payload dto.CreateExtinguisherDTO) (*dto.ExtinguisherDTO, error) {
	payload.Code = strings.TrimSpace(payload.Code)
	payload.Type = utils.NormalizeOptional(payload.Type)
	payload.Location = utils.NormalizeOptional(payload.Location)
	payload.NextInspection = utils.NormalizeOptional(payload.NextInspection)

	if err := s.validate.Struct(payload); err != nil {
		return nil, invalidPayload(err)
	}
	if _, err := s.workshopRepository.FindWorkshop(ctx, payload.WorkshopID); err != nil {
		return nil, apperrors.NewValidationError("workshop %q does not exist", payload.WorkshopID)
	}

	createdAt := s.now()
	extinguisher := entities.Extinguisher{
		ID:             s.idGen.NewID(),
		WorkshopID:     payload.WorkshopID,
		Code:           payload.Code,
		Type:           payload.Type,
		Location:       payload.Location,
		NextInspection: payload.NextInspection,
		Status:         inspection.Classify(payload.NextInspection, createdAt),
		CreatedAt:      createdAt,
	}

	if err := s.extinguisherRepository.CreateExtinguisher(ctx, extinguisher); err != nil {
		return nil, err
	}

	s.logger.Info("extinguisher created",
		zap.String("id", extinguisher.ID),
		zap.String("workshop_id", extinguisher.WorkshopID),
		zap.String("code", extinguisher.Code),
		zap.String("status", string(extinguisher.Status)),
	)
	s.bus.Publish(ctx, events.ExtinguisherCreatedEvent{Extinguisher: extinguisher})
	return extinguisherEntityToDTO(&extinguisher), nil
}

// UpdateExtinguisher merges a partial set of changes into an existing
// extinguisher. ID and CreatedAt are immutable; an unknown id is a silent
// no-op. When the next inspection date changes and no explicit status was
// supplied, the status is re-derived so it cannot go stale.
func (s *ExtinguisherService) UpdateExtinguisher(ctx context.Context, id string, payload dto.UpdateExtinguisherDTO) error {
	current, err := s.extinguisherRepository.FindExtinguisher(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}

	if payload.Code != nil {
		code := strings.TrimSpace(*payload.Code)
		if code == "" {
			return apperrors.NewValidationError("code is required")
		}
		current.Code = code
	}
	if payload.Type != nil {
		current.Type = utils.NormalizeOptional(*payload.Type)
	}
	if payload.Location != nil {
		current.Location = utils.NormalizeOptional(*payload.Location)
	}

	inspectionChanged := false
	if payload.NextInspection != nil {
		next := utils.NormalizeOptional(*payload.NextInspection)
		if next.Valid {
			if _, ok := inspection.ParseDate(next.String); !ok {
				return apperrors.NewValidationError("next_inspection must be a YYYY-MM-DD date")
			}
		}
		current.NextInspection = next
		inspectionChanged = true
	}

	switch {
	case payload.Status != nil:
		if !payload.Status.Valid() {
			return apperrors.NewValidationError("status %q is not valid", string(*payload.Status))
		}
		current.Status = *payload.Status
	case inspectionChanged:
		current.Status = inspection.Classify(current.NextInspection, s.now())
	}

	if err := s.extinguisherRepository.ReplaceExtinguisher(ctx, *current); err != nil {
		return err
	}

	s.logger.Info("extinguisher updated",
		zap.String("id", id),
		zap.String("status", string(current.Status)),
	)
	s.bus.Publish(ctx, events.ExtinguisherUpdatedEvent{Extinguisher: *current})
	return nil
}

// DeleteExtinguisher removes the extinguisher with the given id; unknown
// ids are a silent no-op.
func (s *ExtinguisherService) DeleteExtinguisher(ctx context.Context, id string) error {
	if _, err := s.extinguisherRepository.FindExtinguisher(ctx, id); err != nil {
		return nil
	}
	if err := s.extinguisherRepository.DeleteExtinguisher(ctx, id); err != nil {
		return err
	}

	s.logger.Info("extinguisher removed", zap.String("id", id))
	s.bus.Publish(ctx, events.ExtinguisherRemovedEvent{ID: id})
	return nil
}
