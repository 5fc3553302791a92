package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Unit is a physical site containing workshops.
type Unit struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Location    null.String `json:"location,omitempty"`
	Description null.String `json:"description,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}
