package repositories

import (
	"context"

	"inspectra/internal/entities"
	apperrors "inspectra/pkg/errors"
)

type WorkshopRepositoryInterface interface {
	GetWorkshops(ctx context.Context) ([]entities.Workshop, error)
	GetWorkshopsByUnit(ctx context.Context, unitID string) ([]entities.Workshop, error)
	FindWorkshop(ctx context.Context, id string) (*entities.Workshop, error)
	CreateWorkshop(ctx context.Context, workshop entities.Workshop) error
	DeleteWorkshop(ctx context.Context, id string) error
	DeleteWorkshopsByUnit(ctx context.Context, unitID string) ([]string, error)
}

type workshopRepository struct {
	items []entities.Workshop
}

func NewWorkshopRepository() WorkshopRepositoryInterface {
	return &workshopRepository{items: make([]entities.Workshop, 0)}
}

func (r *workshopRepository) GetWorkshops(ctx context.Context) ([]entities.Workshop, error) {
	out := make([]entities.Workshop, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *workshopRepository) GetWorkshopsByUnit(ctx context.Context, unitID string) ([]entities.Workshop, error) {
	out := make([]entities.Workshop, 0)
	for _, w := range r.items {
		if w.UnitID == unitID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *workshopRepository) FindWorkshop(ctx context.Context, id string) (*entities.Workshop, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			workshop := r.items[i]
			return &workshop, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *workshopRepository) CreateWorkshop(ctx context.Context, workshop entities.Workshop) error {
	r.items = append([]entities.Workshop{workshop}, r.items...)
	return nil
}

func (r *workshopRepository) DeleteWorkshop(ctx context.Context, id string) error {
	kept := r.items[:0]
	for _, w := range r.items {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	r.items = kept
	return nil
}

// DeleteWorkshopsByUnit removes every workshop of a unit and returns the ids
// that were removed, so the caller can cascade further down.
func (r *workshopRepository) DeleteWorkshopsByUnit(ctx context.Context, unitID string) ([]string, error) {
	removed := make([]string, 0)
	kept := r.items[:0]
	for _, w := range r.items {
		if w.UnitID == unitID {
			removed = append(removed, w.ID)
			continue
		}
		kept = append(kept, w)
	}
	r.items = kept
	return removed, nil
}
