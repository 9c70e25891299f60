package postgres

import (
	"context"

	"kitchenlink/internal/domain/entity"
	domainerrors "kitchenlink/internal/domain/errors"
	"kitchenlink/internal/domain/repository"
	"kitchenlink/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// lookupRepository implements the repository.LookupRepository interface.
// The code tables are read-only at runtime; migrations seed them.
type lookupRepository struct {
	db *gorm.DB
}

// NewLookupRepository is the constructor for lookupRepository.
func NewLookupRepository(db *gorm.DB) repository.LookupRepository {
	return &lookupRepository{
		db: db,
	}
}

// List retrieves every entry of the given code table, ordered by code.
func (repo *lookupRepository) List(ctx context.Context, kind entity.LookupKind) ([]*entity.LookupEntry, error) {
	tableModel, err := lookupTableModel(kind)
	if err != nil {
		return nil, err
	}

	type row struct {
		Code int
		Name string
	}
	var rows []row

	if err := repo.db.WithContext(ctx).
		Model(tableModel).
		Order("code ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list %s entries", kind)
	}

	entries := make([]*entity.LookupEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, &entity.LookupEntry{Code: r.Code, Name: r.Name})
	}

	return entries, nil
}

// Exists reports whether a code is present in the given table.
func (repo *lookupRepository) Exists(ctx context.Context, kind entity.LookupKind, code int) (bool, error) {
	tableModel, err := lookupTableModel(kind)
	if err != nil {
		return false, err
	}

	var count int64

	if err := repo.db.WithContext(ctx).
		Model(tableModel).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check lookup code")
	}

	return count > 0, nil
}

func lookupTableModel(kind entity.LookupKind) (any, error) {
	switch kind {
	case entity.LookupGender:
		return &model.GenderModel{}, nil
	case entity.LookupAgeGroup:
		return &model.AgeGroupModel{}, nil
	case entity.LookupOccupation:
		return &model.OccupationModel{}, nil
	default:
		return nil, errors.Errorf("unknown lookup kind: %s", kind)
	}
}
