package repository

import (
	"context"

	"kitchenlink/internal/domain/entity"
)

// LookupRepository reads the static code tables referenced by user profiles.
// These tables are seeded by migrations and never written by the application.
type LookupRepository interface {
	// List retrieves every entry of the given code table, ordered by code.
	List(ctx context.Context, kind entity.LookupKind) ([]*entity.LookupEntry, error)

	// Exists reports whether a code is present in the given table.
	Exists(ctx context.Context, kind entity.LookupKind, code int) (bool, error)
}
