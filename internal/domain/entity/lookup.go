// Package entity contains the core business objects of the project.
package entity

// LookupEntry is one row of a static code-to-name table (gender, age group,
// occupation). The application only ever reads these; seeding happens in
// migrations.
type LookupEntry struct {
	Code int
	Name string
}

// LookupKind identifies which static table a LookupEntry belongs to.
type LookupKind string

const (
	// LookupGender is the gender code table.
	LookupGender LookupKind = "gender"
	// LookupAgeGroup is the age-group code table.
	LookupAgeGroup LookupKind = "age_group"
	// LookupOccupation is the occupation code table.
	LookupOccupation LookupKind = "occupation"
)
