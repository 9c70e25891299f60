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

// opinionRepository implements the repository.OpinionRepository interface.
type opinionRepository struct {
	db *gorm.DB
}

// NewOpinionRepository is the constructor for opinionRepository.
func NewOpinionRepository(db *gorm.DB) repository.OpinionRepository {
	return &opinionRepository{
		db: db,
	}
}

// Create persists a new opinion.
func (repo *opinionRepository) Create(ctx context.Context, opinion *entity.Opinion) error {
	opinionM := fromOpinionDomain(opinion)

	if err := repo.db.WithContext(ctx).Create(opinionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid account reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create opinion")
	}

	opinion.ID = opinionM.ID
	opinion.PostedAt = opinionM.PostedAt

	return nil
}

// FindByID retrieves a single opinion by its id.
func (repo *opinionRepository) FindByID(ctx context.Context, id int64) (*entity.Opinion, error) {
	var opinionM model.OpinionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&opinionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOpinionNotFound
		}

		return nil, errors.Wrap(err, "failed to find opinion by ID")
	}

	return toOpinionDomain(&opinionM), nil
}

// FindByAccountID retrieves all opinions posted by an account, newest first.
func (repo *opinionRepository) FindByAccountID(ctx context.Context, accountID int64) ([]*entity.Opinion, error) {
	var opinionModels []*model.OpinionModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("posted_at DESC").
		Find(&opinionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find opinions by account")
	}

	return toOpinionDomainSlice(opinionModels), nil
}

// FindInBoundingBox retrieves opinions inside the given coordinate box, newest first.
// The box is a coarse pre-filter; callers refine by true distance.
func (repo *opinionRepository) FindInBoundingBox(ctx context.Context, minLat, maxLat, minLng, maxLng float64) ([]*entity.Opinion, error) {
	var opinionModels []*model.OpinionModel

	if err := repo.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", minLat, maxLat).
		Where("longitude BETWEEN ? AND ?", minLng, maxLng).
		Order("posted_at DESC").
		Find(&opinionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find opinions in bounding box")
	}

	return toOpinionDomainSlice(opinionModels), nil
}

// FindAll retrieves every opinion, newest first.
func (repo *opinionRepository) FindAll(ctx context.Context) ([]*entity.Opinion, error) {
	var opinionModels []*model.OpinionModel

	if err := repo.db.WithContext(ctx).
		Order("posted_at DESC").
		Find(&opinionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find opinions")
	}

	return toOpinionDomainSlice(opinionModels), nil
}

// Delete removes an opinion by its id.
func (repo *opinionRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OpinionModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("opinion still has dependent rows")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete opinion")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOpinionNotFound
	}

	return nil
}

// fromOpinionDomain converts a domain entity to its persistence model.
func fromOpinionDomain(opinion *entity.Opinion) *model.OpinionModel {
	return &model.OpinionModel{
		ID:          opinion.ID,
		AccountID:   opinion.AccountID,
		Latitude:    opinion.Latitude,
		Longitude:   opinion.Longitude,
		CommentText: opinion.CommentText,
		PostedAt:    opinion.PostedAt,
	}
}

// toOpinionDomain converts a persistence model to its domain entity.
func toOpinionDomain(opinionM *model.OpinionModel) *entity.Opinion {
	return &entity.Opinion{
		ID:          opinionM.ID,
		AccountID:   opinionM.AccountID,
		Latitude:    opinionM.Latitude,
		Longitude:   opinionM.Longitude,
		CommentText: opinionM.CommentText,
		PostedAt:    opinionM.PostedAt,
	}
}

func toOpinionDomainSlice(opinionModels []*model.OpinionModel) []*entity.Opinion {
	opinions := make([]*entity.Opinion, 0, len(opinionModels))
	for _, opinionM := range opinionModels {
		opinions = append(opinions, toOpinionDomain(opinionM))
	}

	return opinions
}
