// internal/core/services/item.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pantryos/pantry-be/internal/core/domain"
	"github.com/pantryos/pantry-be/internal/core/ports"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ItemService handles catalog and ownership-ledger business logic.
type ItemService struct {
	repo          ports.ItemRepository
	locations     ports.LocationRepository
	brands        ports.BrandRepository
	manufacturers ports.ManufacturerRepository
	lookup        ports.ProductLookup
	logger        *slog.Logger
}

// Statically assert that *ItemService implements the ItemService interface.
var _ ports.ItemService = (*ItemService)(nil)

// NewItemService creates a new item service
func NewItemService(
	repo ports.ItemRepository,
	locations ports.LocationRepository,
	brands ports.BrandRepository,
	manufacturers ports.ManufacturerRepository,
	lookup ports.ProductLookup,
	logger *slog.Logger,
) *ItemService {
	return &ItemService{
		repo:          repo,
		locations:     locations,
		brands:        brands,
		manufacturers: manufacturers,
		lookup:        lookup,
		logger:        logger.With(slog.String("service", "item")),
	}
}

// List retrieves the caller's items with search and pagination. Quantities
// are the caller's aggregates across locations; other users' holdings are
// never visible.
func (s *ItemService) List(ctx context.Context, userID int64, params ports.ListParams) (*ports.ListResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize > maxPageSize {
		params.PageSize = maxPageSize
	}

	items, totalCount, err := s.repo.ListForUser(ctx, userID, ports.ItemQuery{
		Search: strings.TrimSpace(params.Search),
		Limit:  params.PageSize,
		Offset: (params.Page - 1) * params.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	totalPages := int(totalCount) / params.PageSize
	if int(totalCount)%params.PageSize > 0 {
		totalPages++
	}

	return &ports.ListResult{
		Items:       items,
		Page:        params.Page,
		PageSize:    params.PageSize,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}, nil
}

// Get retrieves a single item the caller owns, with their aggregate quantity.
func (s *ItemService) Get(ctx context.Context, userID, itemID int64) (*domain.Item, error) {
	item, err := s.repo.FindForUser(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// Create upserts a catalog row keyed by barcode. A repeated barcode
// overwrites the mutable fields (last writer wins) instead of failing,
// so scanning the same product twice is safe.
func (s *ItemService) Create(ctx context.Context, input ports.CreateItemInput) (*domain.Item, bool, error) {
	item := &domain.Item{
		Barcode:     input.Barcode,
		Title:       input.Title,
		Description: input.Description,
		Alias:       input.Alias,
	}
	if err := item.Validate(); err != nil {
		return nil, false, err
	}

	created, err := s.repo.Upsert(ctx, item)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert item: %w", err)
	}

	s.logger.InfoContext(ctx, "upserted catalog item",
		slog.String("barcode", item.Barcode),
		slog.Bool("created", created))

	return item, created, nil
}

// Update modifies the shared catalog fields of an item and, when the input
// carries a quantity, upserts the caller's ledger row for the resolved
// location. Catalog edits are visible to every user of the item, but the
// caller must hold at least one ledger row for it, same as Get.
func (s *ItemService) Update(ctx context.Context, userID, itemID int64, input ports.UpdateItemInput) (*domain.Item, error) {
	item, err := s.repo.FindForUser(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Alias != nil {
		item.Alias = *input.Alias
	}
	if input.Category != nil {
		item.Category = domain.ItemCategory(*input.Category)
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	if input.Quantity != nil {
		if *input.Quantity < 1 {
			return nil, domain.NewValidationError("quantity", "must be at least 1")
		}
		location, err := s.resolveLocation(ctx, userID, input.LocationID)
		if err != nil {
			return nil, err
		}
		if err := s.repo.UpsertQuantity(ctx, userID, itemID, location.ID, *input.Quantity); err != nil {
			return nil, fmt.Errorf("failed to upsert quantity: %w", err)
		}
	}

	item.Quantity, err = s.repo.AggregateQuantity(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate quantity: %w", err)
	}

	s.logger.InfoContext(ctx, "updated item",
		slog.Int64("item_id", itemID),
		slog.Int64("user_id", userID))

	return item, nil
}

// Delete removes the caller's ledger rows for the item and garbage-collects
// the catalog row once no user anywhere still holds it.
func (s *ItemService) Delete(ctx context.Context, userID, itemID int64) error {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to load item: %w", err)
	}
	if item == nil {
		return domain.ErrNotFound
	}

	if err := s.repo.RemoveFromUser(ctx, userID, itemID); err != nil {
		return fmt.Errorf("failed to remove item from user: %w", err)
	}

	s.logger.InfoContext(ctx, "removed item from user",
		slog.Int64("item_id", itemID),
		slog.Int64("user_id", userID))

	return nil
}

// AddToUser adds one unit of an existing catalog item to the caller's
// ledger at the given location, creating the ledger row at quantity 1
// when it does not exist yet.
func (s *ItemService) AddToUser(ctx context.Context, userID, itemID int64, locationID *int64) (*domain.Item, error) {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	location, err := s.resolveLocation(ctx, userID, locationID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementOrCreate(ctx, userID, itemID, location.ID); err != nil {
		return nil, fmt.Errorf("failed to increment quantity: %w", err)
	}

	item.Quantity, err = s.repo.AggregateQuantity(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate quantity: %w", err)
	}

	s.logger.InfoContext(ctx, "added item to user",
		slog.Int64("item_id", itemID),
		slog.Int64("user_id", userID),
		slog.Int64("location_id", location.ID))

	return item, nil
}

// UpdateQuantity overwrites the caller's ledger quantity for an item at a
// location. The ledger row must already exist; this never creates one.
func (s *ItemService) UpdateQuantity(ctx context.Context, userID, itemID int64, quantity int, locationID *int64) (*domain.Item, error) {
	if quantity < 1 {
		return nil, domain.NewValidationError("quantity", "must be at least 1")
	}

	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	location, err := s.resolveLocation(ctx, userID, locationID)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.OverwriteQuantity(ctx, userID, itemID, location.ID, quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to overwrite quantity: %w", err)
	}
	if !updated {
		return nil, domain.ErrNotFound
	}

	item.Quantity, err = s.repo.AggregateQuantity(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate quantity: %w", err)
	}

	return item, nil
}

// LookupProduct answers a read-only product preview for a barcode: the
// local catalog first, then the external UPC database. An unknown barcode
// is a normal found=false answer.
func (s *ItemService) LookupProduct(ctx context.Context, barcode string) (*ports.LookupResult, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, domain.NewValidationError("barcode", "is required")
	}

	item, err := s.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	if item != nil {
		return &ports.LookupResult{
			Found:        true,
			FromDatabase: true,
			ProductData: &domain.ProductData{
				Barcode:     item.Barcode,
				Title:       item.Title,
				Alias:       item.Alias,
				Description: item.Description,
				Category:    string(item.Category),
			},
		}, nil
	}

	data, err := s.lookup.Lookup(ctx, barcode)
	if err != nil {
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) {
			return nil, err
		}
		return nil, domain.NewUpstreamError("upc", err)
	}
	if data == nil {
		return &ports.LookupResult{Found: false}, nil
	}

	return &ports.LookupResult{Found: true, ProductData: data}, nil
}

// LookupAndCreate resolves a barcode against the external UPC database and
// get-or-creates the catalog row from the result. Retained for older
// clients; an unknown barcode here is a NotFound, unlike LookupProduct.
func (s *ItemService) LookupAndCreate(ctx context.Context, barcode string) (*domain.Item, bool, *domain.ProductData, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, false, nil, domain.NewValidationError("barcode", "is required")
	}

	data, err := s.lookup.Lookup(ctx, barcode)
	if err != nil {
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) {
			return nil, false, nil, err
		}
		return nil, false, nil, domain.NewUpstreamError("upc", err)
	}
	if data == nil {
		return nil, false, nil, domain.ErrNotFound
	}

	if name := strings.TrimSpace(data.Brand); name != "" {
		if _, err := s.brands.GetOrCreate(ctx, name); err != nil {
			return nil, false, nil, fmt.Errorf("failed to resolve brand: %w", err)
		}
	}
	if name := strings.TrimSpace(data.Manufacturer); name != "" {
		if _, err := s.manufacturers.GetOrCreate(ctx, name); err != nil {
			return nil, false, nil, fmt.Errorf("failed to resolve manufacturer: %w", err)
		}
	}

	item := &domain.Item{
		Barcode:     barcode,
		Title:       data.Title,
		Alias:       data.Alias,
		Description: data.Description,
	}
	if domain.ItemCategory(data.Category).IsValid() {
		item.Category = domain.ItemCategory(data.Category)
	}
	if err := item.Validate(); err != nil {
		return nil, false, nil, err
	}

	created, err := s.repo.GetOrCreate(ctx, item)
	if err != nil {
		return nil, false, nil, fmt.Errorf("failed to get or create item: %w", err)
	}

	s.logger.InfoContext(ctx, "resolved barcode via external lookup",
		slog.String("barcode", barcode),
		slog.Bool("created", created))

	return item, created, data, nil
}

// resolveLocation maps an optional location ID to one of the caller's
// locations, falling back to the default location (created on demand).
// An explicit ID that is absent or owned by another user is NotFound; the
// two cases are indistinguishable to the caller.
func (s *ItemService) resolveLocation(ctx context.Context, userID int64, locationID *int64) (*domain.Location, error) {
	if locationID != nil {
		location, err := s.locations.FindForUser(ctx, userID, *locationID)
		if err != nil {
			return nil, fmt.Errorf("failed to load location: %w", err)
		}
		if location == nil {
			return nil, domain.ErrNotFound
		}
		return location, nil
	}

	location, _, err := s.locations.GetOrCreate(ctx, userID, domain.DefaultLocationName)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure default location: %w", err)
	}
	return location, nil
}
