// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"kitchenlink/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserAccountInput defines the data required to create a user account.
type CreateUserAccountInput struct {
	Email          string
	Nickname       string
	Introduction   string
	GenderCode     *int
	AgeGroupCode   *int
	OccupationCode *int
}

// CreateStoreAccountInput defines the data required to create a store account.
type CreateStoreAccountInput struct {
	Email        string
	StoreName    string
	Introduction string
	StoreURL     string
}

// UpdateUserProfileInput defines a partial update of a user sub-profile.
// Nil pointers mean "leave unchanged".
type UpdateUserProfileInput struct {
	AccountID      int64
	Nickname       *string
	Introduction   *string
	GenderCode     *int
	AgeGroupCode   *int
	OccupationCode *int
}

// UpdateStoreProfileInput defines a partial update of a store sub-profile.
type UpdateStoreProfileInput struct {
	AccountID    int64
	StoreName    *string
	Introduction *string
	StoreURL     *string
}

// --- Output DTOs ---

// AccountOutput returns an account together with its sub-profile.
type AccountOutput struct {
	Account *entity.Account
}

// LookupTablesOutput returns the static code tables for profile forms.
type LookupTablesOutput struct {
	Genders     []*entity.LookupEntry
	AgeGroups   []*entity.LookupEntry
	Occupations []*entity.LookupEntry
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// CreateUserAccount creates the account and its user sub-profile in one transaction.
	CreateUserAccount(ctx context.Context, input *CreateUserAccountInput) (*AccountOutput, error)

	// CreateStoreAccount creates the account and its store sub-profile in one transaction.
	CreateStoreAccount(ctx context.Context, input *CreateStoreAccountInput) (*AccountOutput, error)

	// GetAccount retrieves an account with its sub-profile by id.
	GetAccount(ctx context.Context, accountID int64) (*AccountOutput, error)

	// GetAccountByEmail retrieves an account by its normalized email.
	GetAccountByEmail(ctx context.Context, email string) (*AccountOutput, error)

	// UpdateUserProfile applies a partial update to the user sub-profile.
	UpdateUserProfile(ctx context.Context, input *UpdateUserProfileInput) (*AccountOutput, error)

	// UpdateStoreProfile applies a partial update to the store sub-profile.
	UpdateStoreProfile(ctx context.Context, input *UpdateStoreProfileInput) (*AccountOutput, error)

	// DeleteAccount removes the account, its sub-profile, and all dependent
	// rows in referential order, inside one transaction.
	DeleteAccount(ctx context.Context, accountID int64) error

	// ListLookupTables returns the static code tables for profile forms.
	ListLookupTables(ctx context.Context) (*LookupTablesOutput, error)

	// GetStoreShareQR renders a QR code PNG linking to the store profile.
	GetStoreShareQR(ctx context.Context, storeID int64) ([]byte, error)
}
