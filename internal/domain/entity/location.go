// Package entity contains the core business objects of the project.
package entity

import "time"

// Location is one opening-schedule entry of a store: where and when the
// vendor will open. A store account owns many locations.
type Location struct {
	ID           int64
	AccountID    int64 // The owning store's account id.
	Latitude     float64
	Longitude    float64
	OpeningDate  time.Time
	LocationName string // Optional display name for the spot.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
