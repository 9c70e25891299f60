package repository

import (
	"context"
	"errors"

	"kitchenlink/internal/domain/entity"
)

// ErrLikeNotFound is returned when a like lookup by composite key misses.
var ErrLikeNotFound = errors.New("like not found")

// ErrLikeExists is returned when inserting a like that already exists for
// the (opinion, account) pair. The database unique constraint is the
// authoritative source of this error under concurrent inserts; the
// existence pre-check only provides a friendlier fast path.
var ErrLikeExists = errors.New("like already exists")

// LikeRepository defines persistence operations for opinion likes.
type LikeRepository interface {
	// Exists reports whether a like exists for the (opinion, account) pair.
	Exists(ctx context.Context, opinionID, accountID int64) (bool, error)

	// Create persists a new like. Returns ErrLikeExists when the composite
	// key is already taken.
	Create(ctx context.Context, like *entity.Like) error

	// Delete removes the like for the (opinion, account) pair.
	Delete(ctx context.Context, opinionID, accountID int64) error

	// CountByOpinionID returns the number of likes on an opinion.
	CountByOpinionID(ctx context.Context, opinionID int64) (int64, error)

	// DeleteByOpinionID removes all likes on an opinion.
	DeleteByOpinionID(ctx context.Context, opinionID int64) error

	// DeleteByAccountID removes all likes made by an account.
	DeleteByAccountID(ctx context.Context, accountID int64) error
}
