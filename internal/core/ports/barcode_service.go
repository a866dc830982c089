// internal/core/ports/barcode_service.go
package ports

import "context"

// BarcodeService defines the application service port for image-based
// barcode recognition.
type BarcodeService interface {
	Process(ctx context.Context, imageBase64 string) (*BarcodeResult, error)
}

// BarcodeResult is the outcome of a recognition attempt. Detected=false
// is a normal answer (HTTP 200), not an error. Code is always serialized,
// empty or not, so the response shape is stable for clients.
type BarcodeResult struct {
	Code     string `json:"barcode_code"`
	Detected bool   `json:"detected"`
}
