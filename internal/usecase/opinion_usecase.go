package usecase

import (
	"context"

	"kitchenlink/internal/domain/entity"
)

// PostOpinionInput defines the data required to post a map-pinned opinion.
type PostOpinionInput struct {
	AccountID   int64
	Latitude    float64
	Longitude   float64
	CommentText string
}

// NearbyOpinionsInput defines a proximity query for opinions.
// RadiusMeters of 0 falls back to the configured default.
type NearbyOpinionsInput struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// OpinionOutput returns one opinion together with its like count and tags.
type OpinionOutput struct {
	Opinion   *entity.Opinion
	LikeCount int64
	Tags      []*entity.Tag
}

// OpinionListOutput returns a set of opinions.
type OpinionListOutput struct {
	Opinions []*entity.Opinion
}

// TagListOutput returns the available tags.
type TagListOutput struct {
	Tags []*entity.Tag
}

// OpinionUsecase defines the interface for opinion, like, and tag operations.
type OpinionUsecase interface {
	// PostOpinion persists a new opinion.
	PostOpinion(ctx context.Context, input *PostOpinionInput) (*OpinionOutput, error)

	// GetOpinion retrieves one opinion with its like count and tags.
	GetOpinion(ctx context.Context, opinionID int64) (*OpinionOutput, error)

	// ListOpinions retrieves every opinion, newest first.
	ListOpinions(ctx context.Context) (*OpinionListOutput, error)

	// ListNearbyOpinions retrieves opinions within a radius of a coordinate,
	// filtered by true haversine distance.
	ListNearbyOpinions(ctx context.Context, input *NearbyOpinionsInput) (*OpinionListOutput, error)

	// DeleteOpinion removes the opinion aggregate: likes, then tag
	// associations, then the opinion itself, inside one transaction.
	// Only the author may delete.
	DeleteOpinion(ctx context.Context, opinionID, accountID int64) error

	// LikeOpinion records a like; a duplicate yields a conflict error.
	LikeOpinion(ctx context.Context, opinionID, accountID int64) error

	// UnlikeOpinion removes an existing like.
	UnlikeOpinion(ctx context.Context, opinionID, accountID int64) error

	// AttachTag associates a tag with an opinion; a duplicate yields a
	// conflict error.
	AttachTag(ctx context.Context, opinionID, tagID int64) error

	// DetachTag removes the association between a tag and an opinion.
	DetachTag(ctx context.Context, opinionID, tagID int64) error

	// ListTags returns every available tag.
	ListTags(ctx context.Context) (*TagListOutput, error)
}
