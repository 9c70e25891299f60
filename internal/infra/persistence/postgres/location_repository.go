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

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// Create persists a new opening-schedule entry.
func (repo *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid account reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindByID retrieves a single location by its id.
func (repo *locationRepository) FindByID(ctx context.Context, id int64) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// FindByAccountID retrieves all locations owned by a store account, ordered by opening date.
func (repo *locationRepository) FindByAccountID(ctx context.Context, accountID int64) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("opening_date ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locations by account")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// Update modifies an existing location.
func (repo *locationRepository) Update(ctx context.Context, location *entity.Location) error {
	updates := map[string]any{
		"latitude":      location.Latitude,
		"longitude":     location.Longitude,
		"opening_date":  location.OpeningDate,
		"location_name": location.LocationName,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("id = ?", location.ID).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// Delete removes a location by its id.
func (repo *locationRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LocationModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// DeleteByAccountID removes all locations owned by an account.
func (repo *locationRepository) DeleteByAccountID(ctx context.Context, accountID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&model.LocationModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete locations by account")
	}

	return nil
}

// fromLocationDomain converts a domain entity to its persistence model.
func fromLocationDomain(location *entity.Location) *model.LocationModel {
	return &model.LocationModel{
		ID:           location.ID,
		AccountID:    location.AccountID,
		Latitude:     location.Latitude,
		Longitude:    location.Longitude,
		OpeningDate:  location.OpeningDate,
		LocationName: location.LocationName,
	}
}

// toLocationDomain converts a persistence model to its domain entity.
func toLocationDomain(locationM *model.LocationModel) *entity.Location {
	return &entity.Location{
		ID:           locationM.ID,
		AccountID:    locationM.AccountID,
		Latitude:     locationM.Latitude,
		Longitude:    locationM.Longitude,
		OpeningDate:  locationM.OpeningDate,
		LocationName: locationM.LocationName,
		CreatedAt:    locationM.CreatedAt,
		UpdatedAt:    locationM.UpdatedAt,
	}
}
