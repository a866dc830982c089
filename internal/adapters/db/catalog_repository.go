// internal/adapters/db/catalog_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/pantryos/pantry-be/internal/core/domain"
	"github.com/pantryos/pantry-be/internal/core/ports"
)

// brandRepository implements ports.BrandRepository
type brandRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewBrandRepository creates a new brand repository
func NewBrandRepository(db *Database, logger *slog.Logger) ports.BrandRepository {
	return &brandRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "brand")),
	}
}

// GetOrCreate resolves a brand by name, creating it when absent.
func (r *brandRepository) GetOrCreate(ctx context.Context, name string) (*domain.Brand, error) {
	brand := &domain.Brand{}
	err := r.db.QueryRow(ctx, `
		INSERT INTO brands (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING id, name`, name,
	).Scan(&brand.ID, &brand.Name)
	if err == nil {
		return brand, nil
	}
	if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("failed to insert brand: %w", err)
	}

	err = r.db.QueryRow(ctx,
		`SELECT id, name FROM brands WHERE name = $1`, name,
	).Scan(&brand.ID, &brand.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to find brand after conflict: %w", err)
	}
	return brand, nil
}

// manufacturerRepository implements ports.ManufacturerRepository
type manufacturerRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewManufacturerRepository creates a new manufacturer repository
func NewManufacturerRepository(db *Database, logger *slog.Logger) ports.ManufacturerRepository {
	return &manufacturerRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "manufacturer")),
	}
}

// GetOrCreate resolves a manufacturer by name, creating it when absent.
func (r *manufacturerRepository) GetOrCreate(ctx context.Context, name string) (*domain.Manufacturer, error) {
	manufacturer := &domain.Manufacturer{}
	err := r.db.QueryRow(ctx, `
		INSERT INTO manufacturers (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING id, name`, name,
	).Scan(&manufacturer.ID, &manufacturer.Name)
	if err == nil {
		return manufacturer, nil
	}
	if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("failed to insert manufacturer: %w", err)
	}

	err = r.db.QueryRow(ctx,
		`SELECT id, name FROM manufacturers WHERE name = $1`, name,
	).Scan(&manufacturer.ID, &manufacturer.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to find manufacturer after conflict: %w", err)
	}
	return manufacturer, nil
}
