// internal/core/ports/item_service.go
package ports

import (
	"context"

	"github.com/pantryos/pantry-be/internal/core/domain"
)

// ItemService defines the application service port for the user-facing
// catalog view. Every operation is scoped to the requesting user.
type ItemService interface {
	List(ctx context.Context, userID int64, params ListParams) (*ListResult, error)
	Get(ctx context.Context, userID, itemID int64) (*domain.Item, error)
	// Create upserts a catalog row by barcode and reports whether it was
	// newly created. It never touches the ledger.
	Create(ctx context.Context, input CreateItemInput) (*domain.Item, bool, error)
	Update(ctx context.Context, userID, itemID int64, input UpdateItemInput) (*domain.Item, error)
	Delete(ctx context.Context, userID, itemID int64) error
	AddToUser(ctx context.Context, userID, itemID int64, locationID *int64) (*domain.Item, error)
	UpdateQuantity(ctx context.Context, userID, itemID int64, quantity int, locationID *int64) (*domain.Item, error)
	LookupProduct(ctx context.Context, barcode string) (*LookupResult, error)
	// LookupAndCreate is the deprecated lookup path: external lookup then
	// get-or-create of the catalog row. Kept behaviorally intact.
	LookupAndCreate(ctx context.Context, barcode string) (*domain.Item, bool, *domain.ProductData, error)
}

// ListParams holds parameters for listing a user's items
type ListParams struct {
	Search   string
	Page     int
	PageSize int
}

// ListResult holds one page of a user's items with pagination metadata
type ListResult struct {
	Items       []*domain.Item `json:"items"`
	Page        int            `json:"page"`
	PageSize    int            `json:"page_size"`
	TotalCount  int64          `json:"total_count"`
	TotalPages  int            `json:"total_pages"`
	HasNext     bool           `json:"has_next"`
	HasPrevious bool           `json:"has_previous"`
}

// CreateItemInput is the validated input for Create
type CreateItemInput struct {
	Barcode     string
	Title       string
	Description string
	Alias       string
}

// UpdateItemInput carries the subset of fields an Update supplies. Nil
// means "leave unchanged". Catalog fields are shared across users by
// design; Quantity/LocationID drive a ledger upsert for the caller only.
type UpdateItemInput struct {
	Title       *string
	Description *string
	Alias       *string
	Category    *string
	Quantity    *int
	LocationID  *int64
}

// LookupResult is the read-only product preview returned by LookupProduct
type LookupResult struct {
	Found        bool                `json:"found"`
	FromDatabase bool                `json:"from_database"`
	ProductData  *domain.ProductData `json:"product_data,omitempty"`
}
