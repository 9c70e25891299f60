package service

import (
	"context"
)

// GeocodingService defines the interface for reverse geocoding coordinates into addresses
type GeocodingService interface {
	// ReverseGeocode resolves a coordinate pair to a human-readable address.
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error)
}
