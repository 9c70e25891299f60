// Package entity contains the core business objects of the project.
package entity

// Session is the decoded content of a signed session token. It is derived
// from the Account table at issue/refresh time and never persisted.
//
// AccountID, UserID and StoreID are nil until the email has been resolved to
// an account. Onboarding state is purely a function of UserID/StoreID
// presence; the provider-supplied IsNewUser flag is carried but never used
// for gating.
type Session struct {
	Email     string
	AccountID *int64
	UserID    *int64 // Set when the resolved account owns a user profile.
	StoreID   *int64 // Set when the resolved account owns a store profile.
	IsNewUser bool
}

// Onboarded reports whether the session belongs to a fully onboarded
// account. A session with both ids set is treated the same as one with
// either.
func (s *Session) Onboarded() bool {
	if s == nil {
		return false
	}

	return s.UserID != nil || s.StoreID != nil
}
