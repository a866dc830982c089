// internal/handlers/items_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pantryos/pantry-be/internal/core/domain"
	"github.com/pantryos/pantry-be/internal/core/ports"
	"github.com/pantryos/pantry-be/internal/handlers"
	"github.com/pantryos/pantry-be/internal/handlers/middleware"
	"github.com/pantryos/pantry-be/test/helpers"
	"github.com/pantryos/pantry-be/test/mocks"
)

const testUserID int64 = 7

// authed stamps the request with an authenticated user, the way the auth
// middleware would.
func authed(req *http.Request) *http.Request {
	return req.WithContext(middleware.WithUserID(req.Context(), testUserID))
}

func TestItemHandler_GetItem(t *testing.T) {
	testItem := helpers.CreateTestItem()

	tests := []struct {
		name           string
		pathID         string
		authenticated  bool
		setupMocks     func(*mocks.MockItemService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:          "successfully_retrieves_item",
			pathID:        "1",
			authenticated: true,
			setupMocks: func(m *mocks.MockItemService) {
				m.EXPECT().
					Get(gomock.Any(), testUserID, int64(1)).
					Return(testItem, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response domain.Item
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.Equal(t, testItem.Barcode, response.Barcode)
				assert.Equal(t, testItem.Title, response.Title)
			},
		},
		{
			name:          "item_not_found",
			pathID:        "99",
			authenticated: true,
			setupMocks: func(m *mocks.MockItemService) {
				m.EXPECT().
					Get(gomock.Any(), testUserID, int64(99)).
					Return(nil, domain.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:          "non_numeric_id_falls_back_to_barcode_lookup",
			pathID:        "5901234123457",
			authenticated: true,
			setupMocks: func(m *mocks.MockItemService) {
				m.EXPECT().
					LookupAndCreate(gomock.Any(), "5901234123457").
					Return(testItem, true, &domain.ProductData{Barcode: testItem.Barcode}, nil)
			},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body []byte) {
				var response handlers.LookupAndCreateResponse
				err := json.Unmarshal(body, &response)
				require.NoError(t, err)
				assert.True(t, response.Created)
				assert.Equal(t, testItem.Barcode, response.Item.Barcode)
			},
		},
		{
			name:           "unauthenticated_request_is_rejected",
			pathID:         "1",
			authenticated:  false,
			setupMocks:     func(m *mocks.MockItemService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "service_error",
			pathID:        "1",
			authenticated: true,
			setupMocks: func(m *mocks.MockItemService) {
				m.EXPECT().
					Get(gomock.Any(), testUserID, int64(1)).
					Return(nil, errors.New("database connection failed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockItemService(ctrl)
			handler := handlers.NewItemHandler(mockService, helpers.TestLogger())
			tt.setupMocks(mockService)

			req := httptest.NewRequest("GET", "/api/v1/items/"+tt.pathID, nil)
			req.SetPathValue("id", tt.pathID)
			if tt.authenticated {
				req = authed(req)
			}
			w := httptest.NewRecorder()

			handler.GetItem(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestItemHandler_ListItems(t *testing.T) {
	t.Run("passes_pagination_and_search_params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockItemService(ctrl)
		handler := handlers.NewItemHandler(mockService, helpers.TestLogger())

		mockService.EXPECT().
			List(gomock.Any(), testUserID, ports.ListParams{Search: "milk", Page: 2, PageSize: 10}).
			Return(&ports.ListResult{
				Items:      helpers.CreateTestItems(3),
				Page:       2,
				PageSize:   10,
				TotalCount: 23,
				TotalPages: 3,
				HasNext:    true,
			}, nil)

		req := authed(httptest.NewRequest("GET", "/api/v1/items?page=2&page_size=10&search=milk", nil))
		w := httptest.NewRecorder()

		handler.ListItems(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response ports.ListResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(23), response.TotalCount)
		assert.Len(t, response.Items, 3)
	})

	t.Run("malformed_params_fall_back_to_defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockItemService(ctrl)
		handler := handlers.NewItemHandler(mockService, helpers.TestLogger())

		mockService.EXPECT().
			List(gomock.Any(), testUserID, ports.ListParams{Page: 1, PageSize: 20}).
			Return(&ports.ListResult{Page: 1, PageSize: 20}, nil)

		req := authed(httptest.NewRequest("GET", "/api/v1/items?page=abc&page_size=-5", nil))
		w := httptest.NewRecorder()

		handler.ListItems(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestItemHandler_CreateItem(t *testing.T) {
	testItem := helpers.CreateTestItem()

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockItemService)
		expectedStatus int
	}{
		{
			name: "new_item_returns_created",
			body: `{"barcode":"5901234123457","title":"Whole Milk 1L"}`,
			setupMocks: func(m *mocks.MockItemService) {
				m.EXPECT().
					Create(gomock.Any(), ports.CreateItemInput{Barcode: "5901234123457", Title: "Whole Milk 1L"}).
					Return(testItem, true, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "existing_barcode_returns_ok",
			body: `{"barcode":"5901234123457","title":"Whole Milk 1L"}`,
			setupMocks: func(m *mocks.MockItemService) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(testItem, false, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "validation_error_returns_bad_request",
			body: `{"title":"Whole Milk 1L"}`,
			setupMocks: func(m *mocks.MockItemService) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, false, domain.NewValidationError("barcode", "barcode is required"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed_json_returns_bad_request",
			body:           `{"barcode":`,
			setupMocks:     func(m *mocks.MockItemService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockItemService(ctrl)
			handler := handlers.NewItemHandler(mockService, helpers.TestLogger())
			tt.setupMocks(mockService)

			req := authed(httptest.NewRequest("POST", "/api/v1/items", bytes.NewBufferString(tt.body)))
			w := httptest.NewRecorder()

			handler.CreateItem(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestItemHandler_UpdateItem(t *testing.T) {
	t.Run("forwards_partial_update_fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockItemService(ctrl)
		handler := handlers.NewItemHandler(mockService, helpers.TestLogger())

		mockService.EXPECT().
			Update(gomock.Any(), testUserID, int64(3), gomock.Any()).
			DoAndReturn(func(ctx interface{}, userID, itemID int64, input ports.UpdateItemInput) (*domain.Item, error) {
				require.NotNil(t, input.Title)
				assert.Equal(t, "Skim Milk", *input.Title)
				require.NotNil(t, input.Quantity)
				assert.Equal(t, 4, *input.Quantity)
				assert.Nil(t, input.Description)
				return helpers.CreateTestItem(), nil
			})

		body := `{"title":"Skim Milk","quantity":4}`
		req := authed(httptest.NewRequest("PUT", "/api/v1/items/3", bytes.NewBufferString(body)))
		req.SetPathValue("id", "3")
		w := httptest.NewRecorder()

		handler.UpdateItem(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid_id_returns_bad_request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockItemService(ctrl)
		handler := handlers.NewItemHandler(mockService, helpers.TestLogger())

		req := authed(httptest.NewRequest("PUT", "/api/v1/items/abc", bytes.NewBufferString(`{}`)))
		req.SetPathValue("id", "abc")
		w := httptest.NewRecorder()

		handler.UpdateItem(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestItemHandler_DeleteItem(t *testing.T) {
	t.Run("returns_no_content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockItemService(ctrl)
		handler := handlers.NewItemHandler(mockService, helpers.TestLogger())

		mockService.EXPECT().
			Delete(gomock.Any(), testUserID, int64(3)).
			Return(nil)

		req := authed(httptest.NewRequest("DELETE", "/api/v1/items/3", nil))
		req.SetPathValue("id", "3")
		w := httptest.NewRecorder()

		handler.DeleteItem(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("unknown_item_returns_not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockItemService(ctrl)
		handler := handlers.NewItemHandler(mockService, helpers.TestLogger())

		mockService.EXPECT().
			Delete(gomock.Any(), testUserID, int64(99)).
			Return(domain.ErrNotFound)

		req := authed(httptest.NewRequest("DELETE", "/api/v1/items/99", nil))
		req.SetPathValue("id", "99")
		w := httptest.NewRecorder()

		handler.DeleteItem(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestItemHandler_AddToUser(t *testing.T) {
	t.Run("empty_body_uses_default_location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockItemService(ctrl)
		handler := handlers.NewItemHandler(mockService, helpers.TestLogger())

		mockService.EXPECT().
			AddToUser(gomock.Any(), testUserID, int64(3), nil).
			Return(helpers.CreateTestItem(), nil)

		req := authed(httptest.NewRequest("POST", "/api/v1/items/3/add-to-user", nil))
		req.SetPathValue("id", "3")
		w := httptest.NewRecorder()

		handler.AddToUser(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("explicit_location_is_forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockItemService(ctrl)
		handler := handlers.NewItemHandler(mockService, helpers.TestLogger())

		mockService.EXPECT().
			AddToUser(gomock.Any(), testUserID, int64(3), gomock.Any()).
			DoAndReturn(func(ctx interface{}, userID, itemID int64, locationID *int64) (*domain.Item, error) {
				require.NotNil(t, locationID)
				assert.Equal(t, int64(12), *locationID)
				return helpers.CreateTestItem(), nil
			})

		body := `{"location_id":12}`
		req := authed(httptest.NewRequest("POST", "/api/v1/items/3/add-to-user", bytes.NewBufferString(body)))
		req.SetPathValue("id", "3")
		w := httptest.NewRecorder()

		handler.AddToUser(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestItemHandler_UpdateQuantity(t *testing.T) {
	t.Run("missing_quantity_is_bad_request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockItemService(ctrl)
		handler := handlers.NewItemHandler(mockService, helpers.TestLogger())

		req := authed(httptest.NewRequest("PATCH", "/api/v1/items/3/quantity", bytes.NewBufferString(`{}`)))
		req.SetPathValue("id", "3")
		w := httptest.NewRecorder()

		handler.UpdateQuantity(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing_ledger_row_is_not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockItemService(ctrl)
		handler := handlers.NewItemHandler(mockService, helpers.TestLogger())

		mockService.EXPECT().
			UpdateQuantity(gomock.Any(), testUserID, int64(3), 5, nil).
			Return(nil, domain.ErrNotFound)

		body := `{"quantity":5}`
		req := authed(httptest.NewRequest("PATCH", "/api/v1/items/3/quantity", bytes.NewBufferString(body)))
		req.SetPathValue("id", "3")
		w := httptest.NewRecorder()

		handler.UpdateQuantity(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestItemHandler_LookupProduct(t *testing.T) {
	t.Run("unknown_barcode_is_ok_with_found_false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockItemService(ctrl)
		handler := handlers.NewItemHandler(mockService, helpers.TestLogger())

		mockService.EXPECT().
			LookupProduct(gomock.Any(), "0000000000000").
			Return(&ports.LookupResult{Found: false}, nil)

		req := authed(httptest.NewRequest("GET", "/api/v1/items/lookup-product/0000000000000", nil))
		req.SetPathValue("upc", "0000000000000")
		w := httptest.NewRecorder()

		handler.LookupProduct(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response ports.LookupResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.False(t, response.Found)
	})

	t.Run("upstream_failure_is_internal_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockItemService(ctrl)
		handler := handlers.NewItemHandler(mockService, helpers.TestLogger())

		mockService.EXPECT().
			LookupProduct(gomock.Any(), "5901234123457").
			Return(nil, domain.NewUpstreamError("upc", errors.New("timeout")))

		req := authed(httptest.NewRequest("GET", "/api/v1/items/lookup-product/5901234123457", nil))
		req.SetPathValue("upc", "5901234123457")
		w := httptest.NewRecorder()

		handler.LookupProduct(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		// The collaborator's message is part of the error body.
		assert.Contains(t, w.Body.String(), "timeout")
	})
}

func TestItemHandler_LookupAndCreate(t *testing.T) {
	t.Run("unknown_barcode_is_not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockItemService(ctrl)
		handler := handlers.NewItemHandler(mockService, helpers.TestLogger())

		mockService.EXPECT().
			LookupAndCreate(gomock.Any(), "0000000000000").
			Return(nil, false, nil, domain.ErrNotFound)

		req := authed(httptest.NewRequest("GET", "/api/v1/items/lookup/0000000000000", nil))
		req.SetPathValue("upc", "0000000000000")
		w := httptest.NewRecorder()

		handler.LookupAndCreate(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("existing_item_returns_ok_with_created_false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockItemService(ctrl)
		handler := handlers.NewItemHandler(mockService, helpers.TestLogger())
		testItem := helpers.CreateTestItem()

		mockService.EXPECT().
			LookupAndCreate(gomock.Any(), testItem.Barcode).
			Return(testItem, false, &domain.ProductData{Barcode: testItem.Barcode}, nil)

		req := authed(httptest.NewRequest("GET", "/api/v1/items/lookup/"+testItem.Barcode, nil))
		req.SetPathValue("upc", testItem.Barcode)
		w := httptest.NewRecorder()

		handler.LookupAndCreate(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response handlers.LookupAndCreateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.False(t, response.Created)
	})
}
