package repository

import (
	"context"
	"errors"

	"kitchenlink/internal/domain/entity"
)

// ErrOpinionNotFound is returned when an opinion lookup by id misses.
var ErrOpinionNotFound = errors.New("opinion not found")

// OpinionRepository defines persistence operations for map-pinned opinions.
// Likes and tag associations live in their own repositories; deleting an
// opinion requires the caller to remove those first.
type OpinionRepository interface {
	// Create persists a new opinion.
	Create(ctx context.Context, opinion *entity.Opinion) error

	// FindByID retrieves a single opinion by its id.
	FindByID(ctx context.Context, id int64) (*entity.Opinion, error)

	// FindByAccountID retrieves all opinions posted by an account.
	FindByAccountID(ctx context.Context, accountID int64) ([]*entity.Opinion, error)

	// FindInBoundingBox retrieves opinions whose pin falls inside the given
	// latitude/longitude box, newest first. Callers refine by true distance.
	FindInBoundingBox(ctx context.Context, minLat, maxLat, minLng, maxLng float64) ([]*entity.Opinion, error)

	// FindAll retrieves every opinion, newest first.
	FindAll(ctx context.Context) ([]*entity.Opinion, error)

	// Delete removes an opinion by its id. Dependent likes and tag
	// associations must already be gone.
	Delete(ctx context.Context, id int64) error
}
