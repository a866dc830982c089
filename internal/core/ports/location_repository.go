// internal/core/ports/location_repository.go
package ports

import (
	"context"

	"github.com/pantryos/pantry-be/internal/core/domain"
)

// LocationRepository defines the persistence port for user locations.
type LocationRepository interface {
	ListForUser(ctx context.Context, userID int64) ([]*domain.Location, error)
	// FindForUser returns (nil, nil) when the location does not exist or
	// belongs to another user.
	FindForUser(ctx context.Context, userID, locationID int64) (*domain.Location, error)
	// GetOrCreate resolves the (user, name) pair, creating the row when
	// absent. A concurrent create losing the unique-constraint race is
	// recovered by re-reading the winner. Reports whether a row was created.
	GetOrCreate(ctx context.Context, userID int64, name string) (*domain.Location, bool, error)
}

// BrandRepository deduplicates brands picked up from external lookups.
type BrandRepository interface {
	GetOrCreate(ctx context.Context, name string) (*domain.Brand, error)
}

// ManufacturerRepository deduplicates manufacturers picked up from
// external lookups.
type ManufacturerRepository interface {
	GetOrCreate(ctx context.Context, name string) (*domain.Manufacturer, error)
}
