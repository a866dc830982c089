// internal/core/services/item_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pantryos/pantry-be/internal/core/domain"
	"github.com/pantryos/pantry-be/internal/core/ports"
	"github.com/pantryos/pantry-be/internal/core/services"
	"github.com/pantryos/pantry-be/test/helpers"
	"github.com/pantryos/pantry-be/test/mocks"
)

type itemServiceMocks struct {
	repo          *mocks.MockItemRepository
	locations     *mocks.MockLocationRepository
	brands        *mocks.MockBrandRepository
	manufacturers *mocks.MockManufacturerRepository
	lookup        *mocks.MockProductLookup
}

func newItemService(t *testing.T) (*services.ItemService, *itemServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &itemServiceMocks{
		repo:          mocks.NewMockItemRepository(ctrl),
		locations:     mocks.NewMockLocationRepository(ctrl),
		brands:        mocks.NewMockBrandRepository(ctrl),
		manufacturers: mocks.NewMockManufacturerRepository(ctrl),
		lookup:        mocks.NewMockProductLookup(ctrl),
	}

	service := services.NewItemService(
		m.repo, m.locations, m.brands, m.manufacturers, m.lookup, helpers.TestLogger(),
	)
	return service, m
}

func TestItemService_List(t *testing.T) {
	tests := []struct {
		name         string
		params       ports.ListParams
		expectedQ    ports.ItemQuery
		totalCount   int64
		wantPage     int
		wantPageSize int
		wantPages    int
		wantHasNext  bool
		wantHasPrev  bool
	}{
		{
			name:         "defaults_applied_for_zero_params",
			params:       ports.ListParams{},
			expectedQ:    ports.ItemQuery{Limit: 20, Offset: 0},
			totalCount:   45,
			wantPage:     1,
			wantPageSize: 20,
			wantPages:    3,
			wantHasNext:  true,
			wantHasPrev:  false,
		},
		{
			name:         "page_size_clamped_to_maximum",
			params:       ports.ListParams{Page: 1, PageSize: 500},
			expectedQ:    ports.ItemQuery{Limit: 100, Offset: 0},
			totalCount:   10,
			wantPage:     1,
			wantPageSize: 100,
			wantPages:    1,
			wantHasNext:  false,
			wantHasPrev:  false,
		},
		{
			name:         "middle_page_has_both_neighbors",
			params:       ports.ListParams{Page: 2, PageSize: 10},
			expectedQ:    ports.ItemQuery{Limit: 10, Offset: 10},
			totalCount:   35,
			wantPage:     2,
			wantPageSize: 10,
			wantPages:    4,
			wantHasNext:  true,
			wantHasPrev:  true,
		},
		{
			name:         "search_is_trimmed",
			params:       ports.ListParams{Page: 1, PageSize: 10, Search: "  milk  "},
			expectedQ:    ports.ItemQuery{Search: "milk", Limit: 10, Offset: 0},
			totalCount:   1,
			wantPage:     1,
			wantPageSize: 10,
			wantPages:    1,
			wantHasNext:  false,
			wantHasPrev:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newItemService(t)

			m.repo.EXPECT().
				ListForUser(gomock.Any(), int64(7), tt.expectedQ).
				Return(helpers.CreateTestItems(3), tt.totalCount, nil)

			result, err := service.List(context.Background(), 7, tt.params)

			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, result.Page)
			assert.Equal(t, tt.wantPageSize, result.PageSize)
			assert.Equal(t, tt.totalCount, result.TotalCount)
			assert.Equal(t, tt.wantPages, result.TotalPages)
			assert.Equal(t, tt.wantHasNext, result.HasNext)
			assert.Equal(t, tt.wantHasPrev, result.HasPrevious)
		})
	}
}

func TestItemService_Get(t *testing.T) {
	t.Run("returns_item_with_aggregate_quantity", func(t *testing.T) {
		service, m := newItemService(t)
		item := helpers.CreateTestItem(func(i *domain.Item) { i.Quantity = 5 })

		m.repo.EXPECT().
			FindForUser(gomock.Any(), int64(7), int64(1)).
			Return(item, nil)

		got, err := service.Get(context.Background(), 7, 1)

		require.NoError(t, err)
		assert.Equal(t, 5, got.Quantity)
	})

	t.Run("not_found_when_user_holds_no_ledger_row", func(t *testing.T) {
		service, m := newItemService(t)

		m.repo.EXPECT().
			FindForUser(gomock.Any(), int64(7), int64(99)).
			Return(nil, nil)

		_, err := service.Get(context.Background(), 7, 99)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestItemService_Create(t *testing.T) {
	tests := []struct {
		name          string
		input         ports.CreateItemInput
		setupMocks    func(*itemServiceMocks)
		wantCreated   bool
		expectedError bool
		errorContains string
	}{
		{
			name:  "creates_new_catalog_row",
			input: ports.CreateItemInput{Barcode: "5901234123457", Title: "Whole Milk 1L"},
			setupMocks: func(m *itemServiceMocks) {
				m.repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantCreated: true,
		},
		{
			name:  "repeated_barcode_overwrites_and_reports_existing",
			input: ports.CreateItemInput{Barcode: "5901234123457", Title: "Whole Milk 1L"},
			setupMocks: func(m *itemServiceMocks) {
				m.repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantCreated: false,
		},
		{
			name:          "validation_fails_for_missing_barcode",
			input:         ports.CreateItemInput{Title: "Whole Milk 1L"},
			setupMocks:    func(m *itemServiceMocks) {},
			expectedError: true,
			errorContains: "barcode is required",
		},
		{
			name:          "validation_fails_for_missing_title",
			input:         ports.CreateItemInput{Barcode: "5901234123457"},
			setupMocks:    func(m *itemServiceMocks) {},
			expectedError: true,
			errorContains: "title is required",
		},
		{
			name:  "repository_error_is_wrapped",
			input: ports.CreateItemInput{Barcode: "5901234123457", Title: "Whole Milk 1L"},
			setupMocks: func(m *itemServiceMocks) {
				m.repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database connection failed"))
			},
			expectedError: true,
			errorContains: "database connection failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newItemService(t)
			tt.setupMocks(m)

			item, created, err := service.Create(context.Background(), tt.input)

			if tt.expectedError {
				require.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
			} else {
				require.NoError(t, err)
				assert.NotNil(t, item)
				assert.Equal(t, tt.wantCreated, created)
			}
		})
	}
}

func TestItemService_Update(t *testing.T) {
	userID := int64(7)
	itemID := int64(3)

	t.Run("updates_catalog_fields_only", func(t *testing.T) {
		service, m := newItemService(t)
		item := helpers.CreateTestItem(func(i *domain.Item) { i.ID = itemID })
		title := "Skim Milk 1L"

		m.repo.EXPECT().FindForUser(gomock.Any(), userID, itemID).Return(item, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, it *domain.Item) error {
				assert.Equal(t, "Skim Milk 1L", it.Title)
				return nil
			})
		m.repo.EXPECT().AggregateQuantity(gomock.Any(), userID, itemID).Return(2, nil)

		got, err := service.Update(context.Background(), userID, itemID, ports.UpdateItemInput{Title: &title})

		require.NoError(t, err)
		assert.Equal(t, "Skim Milk 1L", got.Title)
		assert.Equal(t, 2, got.Quantity)
	})

	t.Run("quantity_upserts_ledger_row_at_default_location", func(t *testing.T) {
		service, m := newItemService(t)
		item := helpers.CreateTestItem(func(i *domain.Item) { i.ID = itemID })
		quantity := 4

		m.repo.EXPECT().FindForUser(gomock.Any(), userID, itemID).Return(item, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.locations.EXPECT().
			GetOrCreate(gomock.Any(), userID, domain.DefaultLocationName).
			Return(helpers.CreateTestLocation(userID, domain.DefaultLocationName), false, nil)
		m.repo.EXPECT().UpsertQuantity(gomock.Any(), userID, itemID, int64(1), 4).Return(nil)
		m.repo.EXPECT().AggregateQuantity(gomock.Any(), userID, itemID).Return(4, nil)

		got, err := service.Update(context.Background(), userID, itemID, ports.UpdateItemInput{Quantity: &quantity})

		require.NoError(t, err)
		assert.Equal(t, 4, got.Quantity)
	})

	t.Run("rejects_quantity_below_one", func(t *testing.T) {
		service, m := newItemService(t)
		item := helpers.CreateTestItem(func(i *domain.Item) { i.ID = itemID })
		quantity := 0

		m.repo.EXPECT().FindForUser(gomock.Any(), userID, itemID).Return(item, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		_, err := service.Update(context.Background(), userID, itemID, ports.UpdateItemInput{Quantity: &quantity})

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("not_found_for_unknown_item", func(t *testing.T) {
		service, m := newItemService(t)

		m.repo.EXPECT().FindForUser(gomock.Any(), userID, itemID).Return(nil, nil)

		_, err := service.Update(context.Background(), userID, itemID, ports.UpdateItemInput{})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("caller_without_ledger_row_cannot_edit_catalog", func(t *testing.T) {
		service, m := newItemService(t)
		title := "Hijacked Title"

		// Catalog row 3 exists, but user 999 holds no ledger row for it.
		// The catalog must never be written.
		m.repo.EXPECT().FindForUser(gomock.Any(), int64(999), itemID).Return(nil, nil)

		_, err := service.Update(context.Background(), 999, itemID, ports.UpdateItemInput{Title: &title})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestItemService_Delete(t *testing.T) {
	t.Run("removes_ledger_rows", func(t *testing.T) {
		service, m := newItemService(t)
		item := helpers.CreateTestItem()

		m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(item, nil)
		m.repo.EXPECT().RemoveFromUser(gomock.Any(), int64(7), int64(1)).Return(nil)

		err := service.Delete(context.Background(), 7, 1)

		require.NoError(t, err)
	})

	t.Run("not_found_for_unknown_item", func(t *testing.T) {
		service, m := newItemService(t)

		m.repo.EXPECT().FindByID(gomock.Any(), int64(99)).Return(nil, nil)

		err := service.Delete(context.Background(), 7, 99)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestItemService_AddToUser(t *testing.T) {
	userID := int64(7)
	itemID := int64(3)

	t.Run("increments_at_explicit_location", func(t *testing.T) {
		service, m := newItemService(t)
		item := helpers.CreateTestItem(func(i *domain.Item) { i.ID = itemID })
		locationID := int64(12)
		location := helpers.CreateTestLocation(userID, "Fridge")
		location.ID = locationID

		m.repo.EXPECT().FindByID(gomock.Any(), itemID).Return(item, nil)
		m.locations.EXPECT().FindForUser(gomock.Any(), userID, locationID).Return(location, nil)
		m.repo.EXPECT().IncrementOrCreate(gomock.Any(), userID, itemID, locationID).Return(nil)
		m.repo.EXPECT().AggregateQuantity(gomock.Any(), userID, itemID).Return(3, nil)

		got, err := service.AddToUser(context.Background(), userID, itemID, &locationID)

		require.NoError(t, err)
		assert.Equal(t, 3, got.Quantity)
	})

	t.Run("falls_back_to_default_location", func(t *testing.T) {
		service, m := newItemService(t)
		item := helpers.CreateTestItem(func(i *domain.Item) { i.ID = itemID })

		m.repo.EXPECT().FindByID(gomock.Any(), itemID).Return(item, nil)
		m.locations.EXPECT().
			GetOrCreate(gomock.Any(), userID, domain.DefaultLocationName).
			Return(helpers.CreateTestLocation(userID, domain.DefaultLocationName), true, nil)
		m.repo.EXPECT().IncrementOrCreate(gomock.Any(), userID, itemID, int64(1)).Return(nil)
		m.repo.EXPECT().AggregateQuantity(gomock.Any(), userID, itemID).Return(1, nil)

		got, err := service.AddToUser(context.Background(), userID, itemID, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, got.Quantity)
	})

	t.Run("location_owned_by_another_user_is_not_found", func(t *testing.T) {
		service, m := newItemService(t)
		item := helpers.CreateTestItem(func(i *domain.Item) { i.ID = itemID })
		locationID := int64(42)

		m.repo.EXPECT().FindByID(gomock.Any(), itemID).Return(item, nil)
		m.locations.EXPECT().FindForUser(gomock.Any(), userID, locationID).Return(nil, nil)

		_, err := service.AddToUser(context.Background(), userID, itemID, &locationID)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestItemService_UpdateQuantity(t *testing.T) {
	userID := int64(7)
	itemID := int64(3)

	t.Run("overwrites_existing_ledger_row", func(t *testing.T) {
		service, m := newItemService(t)
		item := helpers.CreateTestItem(func(i *domain.Item) { i.ID = itemID })

		m.repo.EXPECT().FindByID(gomock.Any(), itemID).Return(item, nil)
		m.locations.EXPECT().
			GetOrCreate(gomock.Any(), userID, domain.DefaultLocationName).
			Return(helpers.CreateTestLocation(userID, domain.DefaultLocationName), false, nil)
		m.repo.EXPECT().OverwriteQuantity(gomock.Any(), userID, itemID, int64(1), 6).Return(true, nil)
		m.repo.EXPECT().AggregateQuantity(gomock.Any(), userID, itemID).Return(6, nil)

		got, err := service.UpdateQuantity(context.Background(), userID, itemID, 6, nil)

		require.NoError(t, err)
		assert.Equal(t, 6, got.Quantity)
	})

	t.Run("not_found_when_no_ledger_row_exists", func(t *testing.T) {
		service, m := newItemService(t)
		item := helpers.CreateTestItem(func(i *domain.Item) { i.ID = itemID })

		m.repo.EXPECT().FindByID(gomock.Any(), itemID).Return(item, nil)
		m.locations.EXPECT().
			GetOrCreate(gomock.Any(), userID, domain.DefaultLocationName).
			Return(helpers.CreateTestLocation(userID, domain.DefaultLocationName), false, nil)
		m.repo.EXPECT().OverwriteQuantity(gomock.Any(), userID, itemID, int64(1), 6).Return(false, nil)

		_, err := service.UpdateQuantity(context.Background(), userID, itemID, 6, nil)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("rejects_quantity_below_one", func(t *testing.T) {
		service, _ := newItemService(t)

		_, err := service.UpdateQuantity(context.Background(), userID, itemID, 0, nil)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestItemService_LookupProduct(t *testing.T) {
	t.Run("catalog_hit_skips_external_lookup", func(t *testing.T) {
		service, m := newItemService(t)
		item := helpers.CreateTestItem()

		m.repo.EXPECT().FindByBarcode(gomock.Any(), "5901234123457").Return(item, nil)

		result, err := service.LookupProduct(context.Background(), "5901234123457")

		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.True(t, result.FromDatabase)
		assert.Equal(t, item.Barcode, result.ProductData.Barcode)
	})

	t.Run("external_hit", func(t *testing.T) {
		service, m := newItemService(t)
		data := &domain.ProductData{Barcode: "5901234123457", Title: "Whole Milk 1L"}

		m.repo.EXPECT().FindByBarcode(gomock.Any(), "5901234123457").Return(nil, nil)
		m.lookup.EXPECT().Lookup(gomock.Any(), "5901234123457").Return(data, nil)

		result, err := service.LookupProduct(context.Background(), "5901234123457")

		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.False(t, result.FromDatabase)
		assert.Equal(t, data, result.ProductData)
	})

	t.Run("unknown_barcode_is_found_false_not_error", func(t *testing.T) {
		service, m := newItemService(t)

		m.repo.EXPECT().FindByBarcode(gomock.Any(), "0000000000000").Return(nil, nil)
		m.lookup.EXPECT().Lookup(gomock.Any(), "0000000000000").Return(nil, nil)

		result, err := service.LookupProduct(context.Background(), "0000000000000")

		require.NoError(t, err)
		assert.False(t, result.Found)
		assert.Nil(t, result.ProductData)
	})

	t.Run("empty_barcode_is_validation_error", func(t *testing.T) {
		service, _ := newItemService(t)

		_, err := service.LookupProduct(context.Background(), "  ")

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("lookup_failure_is_upstream_error", func(t *testing.T) {
		service, m := newItemService(t)

		m.repo.EXPECT().FindByBarcode(gomock.Any(), "5901234123457").Return(nil, nil)
		m.lookup.EXPECT().Lookup(gomock.Any(), "5901234123457").Return(nil, errors.New("timeout"))

		_, err := service.LookupProduct(context.Background(), "5901234123457")

		var upstreamErr *domain.UpstreamError
		require.ErrorAs(t, err, &upstreamErr)
	})
}

func TestItemService_LookupAndCreate(t *testing.T) {
	t.Run("creates_item_and_catalog_side_records", func(t *testing.T) {
		service, m := newItemService(t)
		data := &domain.ProductData{
			Barcode:      "5901234123457",
			Title:        "Whole Milk 1L",
			Brand:        "DairyCo",
			Manufacturer: "DairyCo Inc",
			Category:     "dairy",
		}

		m.lookup.EXPECT().Lookup(gomock.Any(), "5901234123457").Return(data, nil)
		m.brands.EXPECT().GetOrCreate(gomock.Any(), "DairyCo").Return(&domain.Brand{ID: 1, Name: "DairyCo"}, nil)
		m.manufacturers.EXPECT().GetOrCreate(gomock.Any(), "DairyCo Inc").Return(&domain.Manufacturer{ID: 1, Name: "DairyCo Inc"}, nil)
		m.repo.EXPECT().
			GetOrCreate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, item *domain.Item) (bool, error) {
				assert.Equal(t, domain.CategoryDairy, item.Category)
				item.ID = 42
				return true, nil
			})

		item, created, productData, err := service.LookupAndCreate(context.Background(), "5901234123457")

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(42), item.ID)
		assert.Equal(t, data, productData)
	})

	t.Run("existing_catalog_row_is_returned_not_duplicated", func(t *testing.T) {
		service, m := newItemService(t)
		data := &domain.ProductData{Barcode: "5901234123457", Title: "Whole Milk 1L"}

		m.lookup.EXPECT().Lookup(gomock.Any(), "5901234123457").Return(data, nil)
		m.repo.EXPECT().GetOrCreate(gomock.Any(), gomock.Any()).Return(false, nil)

		_, created, _, err := service.LookupAndCreate(context.Background(), "5901234123457")

		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("unknown_barcode_is_not_found", func(t *testing.T) {
		service, m := newItemService(t)

		m.lookup.EXPECT().Lookup(gomock.Any(), "0000000000000").Return(nil, nil)

		_, _, _, err := service.LookupAndCreate(context.Background(), "0000000000000")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("invalid_category_falls_back_to_other", func(t *testing.T) {
		service, m := newItemService(t)
		data := &domain.ProductData{Barcode: "5901234123457", Title: "Widget", Category: "Electronics & Gadgets"}

		m.lookup.EXPECT().Lookup(gomock.Any(), "5901234123457").Return(data, nil)
		m.repo.EXPECT().
			GetOrCreate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, item *domain.Item) (bool, error) {
				assert.Equal(t, domain.CategoryOther, item.Category)
				return true, nil
			})

		_, _, _, err := service.LookupAndCreate(context.Background(), "5901234123457")

		require.NoError(t, err)
	})
}
