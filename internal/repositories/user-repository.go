package repositories

import (
	"context"

	"inspectra/internal/entities"
	apperrors "inspectra/pkg/errors"
	"inspectra/pkg/utils"
)

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context) ([]entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user entities.User) error
}

type userRepository struct {
	items []entities.User
}

func NewUserRepository() UserRepositoryInterface {
	return &userRepository{items: make([]entities.User, 0)}
}

func (r *userRepository) GetUsers(ctx context.Context) ([]entities.User, error) {
	out := make([]entities.User, len(r.items))
	copy(out, r.items)
	return out, nil
}

// FindUserByEmail compares emails case-insensitively after trimming.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	normalized := utils.NormalizeEmail(email)
	for i := range r.items {
		if utils.NormalizeEmail(r.items[i].Email) == normalized {
			user := r.items[i]
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *userRepository) CreateUser(ctx context.Context, user entities.User) error {
	r.items = append([]entities.User{user}, r.items...)
	return nil
}
