package service

import (
	"context"
)

// OpeningEvent represents a store opening announcement to be fanned out asynchronously
type OpeningEvent struct {
	RequestID    string  `json:"request_id,omitempty"` // For distributed tracing
	LocationID   int64   `json:"location_id"`
	AccountID    int64   `json:"account_id"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	LocationName string  `json:"location_name"`
	OpeningDate  string  `json:"opening_date"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOpeningEvent publishes a store opening event for async processing
	PublishOpeningEvent(ctx context.Context, event *OpeningEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
