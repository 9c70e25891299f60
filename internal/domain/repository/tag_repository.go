package repository

import (
	"context"
	"errors"

	"kitchenlink/internal/domain/entity"
)

// ErrTagNotFound is returned when a tag lookup by id misses.
var ErrTagNotFound = errors.New("tag not found")

// ErrOpinionTagExists is returned when attaching a tag that is already
// attached to the opinion. As with likes, the database constraint is
// authoritative under races.
var ErrOpinionTagExists = errors.New("tag already attached to opinion")

// TagRepository defines persistence operations for tags and their
// associations with opinions.
type TagRepository interface {
	// ListTags retrieves all tags ordered by id.
	ListTags(ctx context.Context) ([]*entity.Tag, error)

	// FindTagByID retrieves a single tag by its id.
	FindTagByID(ctx context.Context, id int64) (*entity.Tag, error)

	// AttachmentExists reports whether the tag is attached to the opinion.
	AttachmentExists(ctx context.Context, opinionID, tagID int64) (bool, error)

	// Attach associates a tag with an opinion. Returns ErrOpinionTagExists
	// when the composite key is already taken.
	Attach(ctx context.Context, opinionID, tagID int64) error

	// Detach removes the association between a tag and an opinion.
	Detach(ctx context.Context, opinionID, tagID int64) error

	// ListByOpinionID retrieves all tags attached to an opinion.
	ListByOpinionID(ctx context.Context, opinionID int64) ([]*entity.Tag, error)

	// DetachAllFromOpinion removes every tag association on an opinion.
	DetachAllFromOpinion(ctx context.Context, opinionID int64) error
}
