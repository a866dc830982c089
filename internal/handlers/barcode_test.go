// internal/handlers/barcode_test.go
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
	"github.com/pantryos/pantry-be/test/helpers"
	"github.com/pantryos/pantry-be/test/mocks"
)

func TestBarcodeHandler_ProcessBarcode(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockBarcodeService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name: "detected_barcode",
			body: `{"image":"aGVsbG8="}`,
			setupMocks: func(m *mocks.MockBarcodeService) {
				m.EXPECT().
					Process(gomock.Any(), "aGVsbG8=").
					Return(&ports.BarcodeResult{Code: "5901234123457", Detected: true}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response ports.BarcodeResult
				require.NoError(t, json.Unmarshal(body, &response))
				assert.True(t, response.Detected)
				assert.Equal(t, "5901234123457", response.Code)
			},
		},
		{
			name: "clean_image_is_ok_with_detected_false",
			body: `{"image":"aGVsbG8="}`,
			setupMocks: func(m *mocks.MockBarcodeService) {
				m.EXPECT().
					Process(gomock.Any(), "aGVsbG8=").
					Return(&ports.BarcodeResult{Detected: false}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response ports.BarcodeResult
				require.NoError(t, json.Unmarshal(body, &response))
				assert.False(t, response.Detected)
				assert.Empty(t, response.Code)
				// The field is always present, even without a detection.
				assert.Contains(t, string(body), `"barcode_code"`)
			},
		},
		{
			name: "invalid_payload_is_bad_request",
			body: `{"image":"not-base64"}`,
			setupMocks: func(m *mocks.MockBarcodeService) {
				m.EXPECT().
					Process(gomock.Any(), "not-base64").
					Return(nil, domain.NewValidationError("image", "invalid base64 encoding"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "vision_failure_is_internal_error",
			body: `{"image":"aGVsbG8="}`,
			setupMocks: func(m *mocks.MockBarcodeService) {
				m.EXPECT().
					Process(gomock.Any(), "aGVsbG8=").
					Return(nil, domain.NewUpstreamError("vision", errors.New("model unavailable")))
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "model unavailable")
			},
		},
		{
			name:           "malformed_json_is_bad_request",
			body:           `{"image":`,
			setupMocks:     func(m *mocks.MockBarcodeService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockBarcodeService(ctrl)
			handler := handlers.NewBarcodeHandler(mockService, helpers.TestLogger())
			tt.setupMocks(mockService)

			req := authed(httptest.NewRequest("POST", "/api/v1/barcode/process", bytes.NewBufferString(tt.body)))
			w := httptest.NewRecorder()

			handler.ProcessBarcode(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}
