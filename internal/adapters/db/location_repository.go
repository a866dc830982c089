// internal/adapters/db/location_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/pantryos/pantry-be/internal/core/domain"
	"github.com/pantryos/pantry-be/internal/core/ports"
)

// locationRepository implements ports.LocationRepository
type locationRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *Database, logger *slog.Logger) ports.LocationRepository {
	return &locationRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "location")),
	}
}

// ListForUser returns the user's locations ordered by name.
func (r *locationRepository) ListForUser(ctx context.Context, userID int64) ([]*domain.Location, error) {
	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM locations
		WHERE user_id = $1
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var locations []*domain.Location
	for rows.Next() {
		location := &domain.Location{}
		err := rows.Scan(
			&location.ID, &location.UserID, &location.Name,
			&location.CreatedAt, &location.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, location)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return locations, nil
}

// FindForUser retrieves one of the user's locations, (nil, nil) when the
// ID does not exist or belongs to someone else.
func (r *locationRepository) FindForUser(ctx context.Context, userID, locationID int64) (*domain.Location, error) {
	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM locations
		WHERE id = $1 AND user_id = $2`

	location := &domain.Location{}
	err := r.db.QueryRow(ctx, query, locationID, userID).Scan(
		&location.ID, &location.UserID, &location.Name,
		&location.CreatedAt, &location.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find location: %w", err)
	}
	return location, nil
}

// GetOrCreate resolves (user, name), creating the row when absent. A
// concurrent insert losing the unique-constraint race falls through to
// re-reading the winner.
func (r *locationRepository) GetOrCreate(ctx context.Context, userID int64, name string) (*domain.Location, bool, error) {
	insert := `
		INSERT INTO locations (user_id, name)
		VALUES ($1, $2)
		ON CONFLICT (user_id, name) DO NOTHING
		RETURNING id, user_id, name, created_at, updated_at`

	location := &domain.Location{}
	err := r.db.QueryRow(ctx, insert, userID, name).Scan(
		&location.ID, &location.UserID, &location.Name,
		&location.CreatedAt, &location.UpdatedAt,
	)
	if err == nil {
		r.logger.DebugContext(ctx, "location created",
			slog.Int64("user_id", userID),
			slog.String("name", name))
		return location, true, nil
	}
	if err != pgx.ErrNoRows {
		return nil, false, fmt.Errorf("failed to insert location: %w", err)
	}

	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM locations
		WHERE user_id = $1 AND name = $2`

	err = r.db.QueryRow(ctx, query, userID, name).Scan(
		&location.ID, &location.UserID, &location.Name,
		&location.CreatedAt, &location.UpdatedAt,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to find location after conflict: %w", err)
	}
	return location, false, nil
}
