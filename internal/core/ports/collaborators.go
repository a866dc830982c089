// internal/core/ports/collaborators.go
package ports

import (
	"context"

	"github.com/pantryos/pantry-be/internal/core/domain"
)

// ProductLookup is the seam to the external UPC product database.
// A (nil, nil) return means the collaborator answered "no such product",
// which is a normal outcome, not an error.
type ProductLookup interface {
	Lookup(ctx context.Context, barcode string) (*domain.ProductData, error)
}

// BarcodeRecognizer is the seam to the external vision model. The adapter
// owns the extraction prompt and its sentinel protocol; detected=false
// means the model saw no readable code.
type BarcodeRecognizer interface {
	Recognize(ctx context.Context, image []byte) (code string, detected bool, err error)
}
