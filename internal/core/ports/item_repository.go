// internal/core/ports/item_repository.go
package ports

import (
	"context"

	"github.com/pantryos/pantry-be/internal/core/domain"
)

// ItemQuery holds repository-level filters for listing a user's items.
type ItemQuery struct {
	Search string
	Limit  int
	Offset int
}

// ItemRepository defines the persistence port for the shared catalog and
// the per-user ownership ledger. Finders return (nil, nil) when no row
// matches; the service layer decides whether that is a NotFound.
type ItemRepository interface {
	// Upsert inserts a catalog row or, when the barcode already exists,
	// overwrites title/description/alias (last-writer-wins). Reports
	// whether a new row was created.
	Upsert(ctx context.Context, item *domain.Item) (bool, error)
	// GetOrCreate inserts a catalog row unless the barcode already exists,
	// in which case the existing row is returned untouched.
	GetOrCreate(ctx context.Context, item *domain.Item) (bool, error)
	Update(ctx context.Context, item *domain.Item) error
	FindByID(ctx context.Context, id int64) (*domain.Item, error)
	FindByBarcode(ctx context.Context, barcode string) (*domain.Item, error)
	// FindForUser returns the item only if the user holds at least one
	// ledger row for it, annotated with the user's aggregate quantity.
	FindForUser(ctx context.Context, userID, itemID int64) (*domain.Item, error)
	ListForUser(ctx context.Context, userID int64, q ItemQuery) ([]*domain.Item, int64, error)
	AggregateQuantity(ctx context.Context, userID, itemID int64) (int, error)

	// Ledger operations. All three treat (user, item, location) as the row key.
	UpsertQuantity(ctx context.Context, userID, itemID, locationID int64, quantity int) error
	IncrementOrCreate(ctx context.Context, userID, itemID, locationID int64) error
	// OverwriteQuantity updates an existing ledger row and reports whether
	// one was found; it never creates.
	OverwriteQuantity(ctx context.Context, userID, itemID, locationID int64, quantity int) (bool, error)
	// RemoveFromUser deletes all of the user's ledger rows for the item
	// and, if no ledger row anywhere still references it, the catalog row
	// itself. Runs in a single transaction.
	RemoveFromUser(ctx context.Context, userID, itemID int64) error
}
