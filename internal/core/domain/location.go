// internal/core/domain/location.go
package domain

import (
	"strings"
	"time"
)

// DefaultLocationName is created on demand whenever a ledger mutation has
// no explicit location.
const DefaultLocationName = "Pantry"

// StarterLocationNames are provisioned when a user account is created.
// The user-creation collaborator calls the provision endpoint; the set is
// idempotent so re-provisioning is harmless.
var StarterLocationNames = []string{"Pantry", "Fridge", "Freezer", "Kitchen Counter"}

// Location is a named storage bucket private to one user. The (user, name)
// pair is unique; the same name may repeat across users.
type Location struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Validate trims and checks the location name
func (l *Location) Validate() error {
	l.Name = strings.TrimSpace(l.Name)
	if l.Name == "" {
		return NewValidationError("name", "location name is required")
	}
	return nil
}

// UserItemQuantity is the ownership ledger: how many units of one item a
// user keeps at one location. The (user, item, location) triple is unique
// and quantity is never persisted below 1 — a row reaching zero is deleted,
// not retained.
type UserItemQuantity struct {
	ID         int64 `json:"id"`
	UserID     int64 `json:"user_id"`
	ItemID     int64 `json:"item_id"`
	LocationID int64 `json:"location_id"`
	Quantity   int   `json:"quantity"`
}
