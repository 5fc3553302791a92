package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"inspectra/internal/inspection"
)

// Extinguisher is an inspectable asset. Codes are freeform and duplicates
// are tolerated. NextInspection is a YYYY-MM-DD calendar date or absent when
// no inspection is scheduled.
type Extinguisher struct {
	ID             string            `json:"id"`
	WorkshopID     string            `json:"workshop_id"`
	Code           string            `json:"code"`
	Type           null.String       `json:"type,omitempty"`
	Location       null.String       `json:"location,omitempty"`
	NextInspection null.String       `json:"next_inspection,omitempty"`
	Status         inspection.Status `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
}
