// Package entity contains the core business objects of the project.
package entity

// AccountType represents which sub-profile an account owns.
type AccountType string

const (
	// AccountTypeUser indicates a regular user account.
	AccountTypeUser AccountType = "user"
	// AccountTypeStore indicates a mobile food vendor account.
	AccountTypeStore AccountType = "store"
)

// String returns the string representation of the AccountType.
func (t AccountType) String() string {
	return string(t)
}

// IsValid checks if the AccountType is a valid value.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeUser, AccountTypeStore:
		return true
	default:
		return false
	}
}
