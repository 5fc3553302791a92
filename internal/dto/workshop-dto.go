package dto

import "github.com/aarondl/null/v8"

type CreateWorkshopDTO struct {
	UnitID      string      `json:"unit_id" validate:"required"`
	Name        string      `json:"name" validate:"required"`
	Location    null.String `json:"location" validate:"omitempty"`
	Description null.String `json:"description" validate:"omitempty"`
}

type WorkshopDTO struct {
	ID          string      `json:"id"`
	UnitID      string      `json:"unit_id"`
	Name        string      `json:"name"`
	Location    null.String `json:"location,omitempty"`
	Description null.String `json:"description,omitempty"`
	CreatedAt   string      `json:"created_at"`
}
