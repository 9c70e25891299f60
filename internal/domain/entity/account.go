// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the root identity entity. It links one authenticated email to
// exactly one sub-profile, chosen at creation time and immutable afterwards.
type Account struct {
	ID           int64         // Surrogate key for the account row.
	Email        string        // Normalized (lowercased) email, the natural key.
	EmailDigest  string        // Fixed-length digest of the normalized email, used as the lookup key.
	Type         AccountType   // Which sub-profile this account owns.
	UserProfile  *UserProfile  // Non-nil only when Type is AccountTypeUser.
	StoreProfile *StoreProfile // Non-nil only when Type is AccountTypeStore.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SubProfileID returns the id of whichever sub-profile the account owns,
// or 0 when the account carries no sub-profile (which indicates a data bug).
func (a *Account) SubProfileID() int64 {
	switch a.Type {
	case AccountTypeUser:
		if a.UserProfile != nil {
			return a.UserProfile.ID
		}
	case AccountTypeStore:
		if a.StoreProfile != nil {
			return a.StoreProfile.ID
		}
	}

	return 0
}

// UserProfile holds data specific to the "regular user" account type.
type UserProfile struct {
	ID             int64
	AccountID      int64  // Foreign key linking this profile to its Account.
	Nickname       string // Required, non-empty after trimming.
	Introduction   string
	GenderCode     *int // Optional reference into the gender lookup table.
	AgeGroupCode   *int // Optional reference into the age-group lookup table.
	OccupationCode *int // Optional reference into the occupation lookup table.
	UpdatedAt      time.Time
}

// StoreProfile holds data specific to the "mobile food vendor" account type.
type StoreProfile struct {
	ID           int64
	AccountID    int64  // Foreign key linking this profile to its Account.
	StoreName    string // Required, non-empty after trimming.
	Introduction string
	StoreURL     string
	UpdatedAt    time.Time
}
