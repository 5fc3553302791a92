package repositories

import (
	"context"

	"inspectra/internal/entities"
	apperrors "inspectra/pkg/errors"
)

type UnitRepositoryInterface interface {
	GetUnits(ctx context.Context) ([]entities.Unit, error)
	FindUnit(ctx context.Context, id string) (*entities.Unit, error)
	CreateUnit(ctx context.Context, unit entities.Unit) error
	DeleteUnit(ctx context.Context, id string) error
}

// unitRepository keeps units in process memory, most recently added first.
type unitRepository struct {
	items []entities.Unit
}

func NewUnitRepository() UnitRepositoryInterface {
	return &unitRepository{items: make([]entities.Unit, 0)}
}

func (r *unitRepository) GetUnits(ctx context.Context) ([]entities.Unit, error) {
	out := make([]entities.Unit, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *unitRepository) FindUnit(ctx context.Context, id string) (*entities.Unit, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			unit := r.items[i]
			return &unit, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// CreateUnit unconditionally prepends an already-built unit.
func (r *unitRepository) CreateUnit(ctx context.Context, unit entities.Unit) error {
	r.items = append([]entities.Unit{unit}, r.items...)
	return nil
}

// DeleteUnit removes the unit with the given id. Unknown ids are a silent
// no-op, never an error.
func (r *unitRepository) DeleteUnit(ctx context.Context, id string) error {
	kept := r.items[:0]
	for _, u := range r.items {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	r.items = kept
	return nil
}
