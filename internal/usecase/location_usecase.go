package usecase

import (
	"context"
	"time"

	"kitchenlink/internal/domain/entity"
)

// CreateLocationInput defines the data required to create an opening-schedule entry.
type CreateLocationInput struct {
	AccountID    int64
	Latitude     float64
	Longitude    float64
	OpeningDate  time.Time
	LocationName string
}

// UpdateLocationInput defines a full update of an existing location.
// Ownership is checked against AccountID before anything is written.
type UpdateLocationInput struct {
	LocationID   int64
	AccountID    int64
	Latitude     float64
	Longitude    float64
	OpeningDate  time.Time
	LocationName string
}

// LocationOutput returns a single opening-schedule entry.
type LocationOutput struct {
	Location *entity.Location
}

// LocationListOutput returns a store account's opening schedule.
type LocationListOutput struct {
	Locations []*entity.Location
}

// LocationUsecase defines the interface for opening-schedule operations.
type LocationUsecase interface {
	// CreateLocation persists a new entry and publishes an opening event.
	// Publish failures are logged, never surfaced to the caller.
	CreateLocation(ctx context.Context, input *CreateLocationInput) (*LocationOutput, error)

	// GetLocation retrieves a single entry by id.
	GetLocation(ctx context.Context, locationID int64) (*LocationOutput, error)

	// ListLocations retrieves all entries owned by an account.
	ListLocations(ctx context.Context, accountID int64) (*LocationListOutput, error)

	// UpdateLocation modifies an entry after verifying ownership.
	UpdateLocation(ctx context.Context, input *UpdateLocationInput) (*LocationOutput, error)

	// DeleteLocation removes an entry after verifying ownership.
	DeleteLocation(ctx context.Context, locationID, accountID int64) error
}
