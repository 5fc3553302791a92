package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Workshop is a sub-location within a unit. UnitID is set at creation and
// never changes.
type Workshop struct {
	ID          string      `json:"id"`
	UnitID      string      `json:"unit_id"`
	Name        string      `json:"name"`
	Location    null.String `json:"location,omitempty"`
	Description null.String `json:"description,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}
