package dto

import (
	"github.com/aarondl/null/v8"

	"inspectra/internal/inspection"
)

type CreateExtinguisherDTO struct {
	WorkshopID     string      `json:"workshop_id" validate:"required"`
	Code           string      `json:"code" validate:"required"`
	Type           null.String `json:"type" validate:"omitempty"`
	Location       null.String `json:"location" validate:"omitempty"`
	NextInspection null.String `json:"next_inspection" validate:"omitempty,inspection_date"`
}

// UpdateExtinguisherDTO is a partial update: nil fields are left untouched,
// present optional fields replace the stored value (an empty string clears
// it). ID and CreatedAt are never updatable.
type UpdateExtinguisherDTO struct {
	Code           *string            `json:"code"`
	Type           *null.String       `json:"type"`
	Location       *null.String       `json:"location"`
	NextInspection *null.String       `json:"next_inspection"`
	Status         *inspection.Status `json:"status"`
}

type ExtinguisherDTO struct {
	ID             string            `json:"id"`
	WorkshopID     string            `json:"workshop_id"`
	Code           string            `json:"code"`
	Type           null.String       `json:"type,omitempty"`
	Location       null.String       `json:"location,omitempty"`
	NextInspection null.String       `json:"next_inspection,omitempty"`
	Status         inspection.Status `json:"status"`
	CreatedAt      string            `json:"created_at"`
}
