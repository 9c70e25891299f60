// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"kitchenlink/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its surrogate id, with its sub-profile.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)

	// FindByEmailDigest retrieves a single account by the digest of its
	// normalized email, with its sub-profile.
	FindByEmailDigest(ctx context.Context, digest string) (*entity.Account, error)

	// Create persists a new account together with its sub-profile in one insert.
	Create(ctx context.Context, account *entity.Account) error

	// UpdateUserProfile modifies the user sub-profile only. The account row
	// itself is never mutated after creation.
	UpdateUserProfile(ctx context.Context, profile *entity.UserProfile) error

	// UpdateStoreProfile modifies the store sub-profile only.
	UpdateStoreProfile(ctx context.Context, profile *entity.StoreProfile) error

	// Delete removes the account and its sub-profile. Dependent rows must
	// already have been removed by the caller; the store rejects the delete
	// otherwise.
	Delete(ctx context.Context, id int64) error
}
