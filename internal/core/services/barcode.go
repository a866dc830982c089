// internal/core/services/barcode.go
package services

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pantryos/pantry-be/internal/core/domain"
	"github.com/pantryos/pantry-be/internal/core/ports"
)

// BarcodeService handles image-based barcode recognition.
type BarcodeService struct {
	recognizer ports.BarcodeRecognizer
	logger     *slog.Logger
}

// Statically assert that *BarcodeService implements the BarcodeService interface.
var _ ports.BarcodeService = (*BarcodeService)(nil)

// NewBarcodeService creates a new barcode service
func NewBarcodeService(recognizer ports.BarcodeRecognizer, logger *slog.Logger) *BarcodeService {
	return &BarcodeService{
		recognizer: recognizer,
		logger:     logger.With(slog.String("service", "barcode")),
	}
}

// Process decodes a base64 image payload, validates it actually is an
// image, and asks the vision collaborator to read a barcode from it.
func (s *BarcodeService) Process(ctx context.Context, imageBase64 string) (*ports.BarcodeResult, error) {
	imageBase64 = strings.TrimSpace(imageBase64)
	if imageBase64 == "" {
		return nil, domain.NewValidationError("image", "is required")
	}

	// Clients may submit a full data URI; only the payload matters.
	if idx := strings.Index(imageBase64, ","); idx != -1 && strings.HasPrefix(imageBase64, "data:") {
		imageBase64 = imageBase64[idx+1:]
	}

	image, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return nil, domain.NewValidationError("image", "invalid base64 encoding")
	}

	if !strings.HasPrefix(http.DetectContentType(image), "image/") {
		return nil, domain.NewValidationError("image", "payload is not an image")
	}

	code, detected, err := s.recognizer.Recognize(ctx, image)
	if err != nil {
		return nil, domain.NewUpstreamError("vision", err)
	}

	if !detected {
		s.logger.InfoContext(ctx, "no barcode detected in image")
		return &ports.BarcodeResult{Detected: false}, nil
	}

	s.logger.InfoContext(ctx, "barcode detected",
		slog.String("code", code))

	return &ports.BarcodeResult{Code: code, Detected: true}, nil
}
