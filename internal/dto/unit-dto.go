package dto

import "github.com/aarondl/null/v8"

type CreateUnitDTO struct {
	Name        string      `json:"name" validate:"required"`
	Location    null.String `json:"location" validate:"omitempty"`
	Description null.String `json:"description" validate:"omitempty"`
}

type UnitDTO struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Location    null.String `json:"location,omitempty"`
	Description null.String `json:"description,omitempty"`
	CreatedAt   string      `json:"created_at"`
}
