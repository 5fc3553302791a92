package repositories

import (
	"context"

	"inspectra/internal/entities"
	apperrors "inspectra/pkg/errors"
)

type ExtinguisherRepositoryInterface interface {
	GetExtinguishers(ctx context.Context) ([]entities.Extinguisher, error)
	GetExtinguishersByWorkshop(ctx context.Context, workshopID string) ([]entities.Extinguisher, error)
	FindExtinguisher(ctx context.Context, id string) (*entities.Extinguisher, error)
	CreateExtinguisher(ctx context.Context, extinguisher entities.Extinguisher) error
	ReplaceExtinguisher(ctx context.Context, extinguisher entities.Extinguisher) error
	DeleteExtinguisher(ctx context.Context, id string) error
	DeleteExtinguishersByWorkshop(ctx context.Context, workshopID string) error
}

type extinguisherRepository struct {
	items []entities.Extinguisher
}

func NewExtinguisherRepository() ExtinguisherRepositoryInterface {
	return &extinguisherRepository{items: make([]entities.Extinguisher, 0)}
}

func (r *extinguisherRepository) GetExtinguishers(ctx context.Context) ([]entities.Extinguisher, error) {
	out := make([]entities.Extinguisher, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *extinguisherRepository) GetExtinguishersByWorkshop(ctx context.Context, workshopID string) ([]entities.Extinguisher, error) {
	out := make([]entities.Extinguisher, 0)
	for _, e := range r.items {
		if e.WorkshopID == workshopID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *extinguisherRepository) FindExtinguisher(ctx context.Context, id string) (*entities.Extinguisher, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			extinguisher := r.items[i]
			return &extinguisher, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *extinguisherRepository) CreateExtinguisher(ctx context.Context, extinguisher entities.Extinguisher) error {
	r.items = append([]entities.Extinguisher{extinguisher}, r.items...)
	return nil
}

// ReplaceExtinguisher writes a fully merged entity back in place, keeping
// its position in the collection. Unknown ids are a silent no-op.
func (r *extinguisherRepository) ReplaceExtinguisher(ctx context.Context, extinguisher entities.Extinguisher) error {
	for i := range r.items {
		if r.items[i].ID == extinguisher.ID {
			r.items[i] = extinguisher
			return nil
		}
	}
	return nil
}

func (r *extinguisherRepository) DeleteExtinguisher(ctx context.Context, id string) error {
	kept := r.items[:0]
	for _, e := range r.items {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	r.items = kept
	return nil
}

func (r *extinguisherRepository) DeleteExtinguishersByWorkshop(ctx context.Context, workshopID string) error {
	kept := r.items[:0]
	for _, e := range r.items {
		if e.WorkshopID != workshopID {
			kept = append(kept, e)
		}
	}
	r.items = kept
	return nil
}
