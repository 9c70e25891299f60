// Package entity contains the core business objects of the project.
package entity

import "time"

// Opinion is a map-pinned comment posted by an account. Likes and tag
// associations depend on it and must be removed before the opinion itself.
type Opinion struct {
	ID          int64
	AccountID   int64 // The author's account id.
	Latitude    float64
	Longitude   float64
	CommentText string
	PostedAt    time.Time
}

// Like marks that an account liked an opinion. The (OpinionID, AccountID)
// pair is the composite key; at most one like exists per pair.
type Like struct {
	OpinionID int64
	AccountID int64
	CreatedAt time.Time
}

// Tag is a reusable label that can be attached to opinions.
type Tag struct {
	ID   int64
	Name string
}

// OpinionTag associates a tag with an opinion. The (OpinionID, TagID) pair
// is the composite key; at most one association exists per pair.
type OpinionTag struct {
	OpinionID int64
	TagID     int64
}
