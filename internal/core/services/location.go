// internal/core/services/location.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pantryos/pantry-be/internal/core/domain"
	"github.com/pantryos/pantry-be/internal/core/ports"
)

// LocationService handles user-location business logic.
type LocationService struct {
	repo   ports.LocationRepository
	logger *slog.Logger
}

// Statically assert that *LocationService implements the LocationService interface.
var _ ports.LocationService = (*LocationService)(nil)

// NewLocationService creates a new location service
func NewLocationService(repo ports.LocationRepository, logger *slog.Logger) *LocationService {
	return &LocationService{
		repo:   repo,
		logger: logger.With(slog.String("service", "location")),
	}
}

// List returns the caller's locations ordered by name.
func (s *LocationService) List(ctx context.Context, userID int64) ([]*domain.Location, error) {
	locations, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

// Create resolves a (user, name) location, creating it when absent.
// Submitting a name the user already has returns the existing row with
// created=false instead of erroring.
func (s *LocationService) Create(ctx context.Context, userID int64, name string) (*domain.Location, bool, error) {
	location := &domain.Location{UserID: userID, Name: name}
	if err := location.Validate(); err != nil {
		return nil, false, err
	}

	location, created, err := s.repo.GetOrCreate(ctx, userID, location.Name)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get or create location: %w", err)
	}

	if created {
		s.logger.InfoContext(ctx, "created location",
			slog.Int64("user_id", userID),
			slog.String("name", location.Name))
	}

	return location, created, nil
}

// EnsureLocation is the get-or-create used when a ledger mutation needs a
// fallback location.
func (s *LocationService) EnsureLocation(ctx context.Context, userID int64, name string) (*domain.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = domain.DefaultLocationName
	}
	location, _, err := s.repo.GetOrCreate(ctx, userID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure location: %w", err)
	}
	return location, nil
}

// ProvisionStarterSet creates the starter locations for a new user. Safe to
// call more than once; existing names are left alone.
func (s *LocationService) ProvisionStarterSet(ctx context.Context, userID int64) ([]*domain.Location, error) {
	locations := make([]*domain.Location, 0, len(domain.StarterLocationNames))
	for _, name := range domain.StarterLocationNames {
		location, _, err := s.repo.GetOrCreate(ctx, userID, name)
		if err != nil {
			return nil, fmt.Errorf("failed to provision location %q: %w", name, err)
		}
		locations = append(locations, location)
	}

	s.logger.InfoContext(ctx, "provisioned starter locations",
		slog.Int64("user_id", userID),
		slog.Int("count", len(locations)))

	return locations, nil
}
