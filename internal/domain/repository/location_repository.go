package repository

import (
	"context"
	"errors"

	"kitchenlink/internal/domain/entity"
)

// ErrLocationNotFound is returned when a location lookup by id misses.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines persistence operations for opening-schedule entries.
type LocationRepository interface {
	// Create persists a new opening-schedule entry.
	Create(ctx context.Context, location *entity.Location) error

	// FindByID retrieves a single location by its id.
	FindByID(ctx context.Context, id int64) (*entity.Location, error)

	// FindByAccountID retrieves all locations owned by a store account,
	// ordered by opening date.
	FindByAccountID(ctx context.Context, accountID int64) ([]*entity.Location, error)

	// Update modifies an existing location.
	Update(ctx context.Context, location *entity.Location) error

	// Delete removes a location by its id.
	Delete(ctx context.Context, id int64) error

	// DeleteByAccountID removes all locations owned by an account.
	DeleteByAccountID(ctx context.Context, accountID int64) error
}
