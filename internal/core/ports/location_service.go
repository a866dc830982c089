// internal/core/ports/location_service.go
package ports

import (
	"context"

	"github.com/pantryos/pantry-be/internal/core/domain"
)

// LocationService defines the application service port for user locations.
type LocationService interface {
	List(ctx context.Context, userID int64) ([]*domain.Location, error)
	// Create is idempotent per (user, name): an existing row is returned
	// with created=false rather than erroring or duplicating.
	Create(ctx context.Context, userID int64, name string) (*domain.Location, bool, error)
	// EnsureLocation is the get-or-create every ledger-mutating operation
	// uses to resolve a fallback location.
	EnsureLocation(ctx context.Context, userID int64, name string) (*domain.Location, error)
	// ProvisionStarterSet creates the starter locations for a new user.
	// Idempotent; invoked by the user-creation collaborator.
	ProvisionStarterSet(ctx context.Context, userID int64) ([]*domain.Location, error)
}
