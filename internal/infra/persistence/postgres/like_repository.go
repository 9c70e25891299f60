package postgres

import (
	"context"

	"kitchenlink/internal/domain/entity"
	domainerrors "kitchenlink/internal/domain/errors"
	"kitchenlink/internal/domain/repository"
	"kitchenlink/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// likeRepository implements the repository.LikeRepository interface.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{
		db: db,
	}
}

// Exists reports whether a like exists for the (opinion, account) pair.
func (repo *likeRepository) Exists(ctx context.Context, opinionID, accountID int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("opinion_id = ? AND account_id = ?", opinionID, accountID).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check like existence")
	}

	return count > 0, nil
}

// Create persists a new like. The composite primary key makes duplicate
// inserts fail at the constraint level, which is authoritative under races.
func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeM := &model.LikeModel{
		OpinionID: like.OpinionID,
		AccountID: like.AccountID,
	}

	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrLikeExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid opinion or account reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create like")
	}

	like.CreatedAt = likeM.CreatedAt

	return nil
}

// Delete removes the like for the (opinion, account) pair.
func (repo *likeRepository) Delete(ctx context.Context, opinionID, accountID int64) error {
	result := repo.db.WithContext(ctx).
		Where("opinion_id = ? AND account_id = ?", opinionID, accountID).
		Delete(&model.LikeModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete like")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLikeNotFound
	}

	return nil
}

// CountByOpinionID returns the number of likes on an opinion.
func (repo *likeRepository) CountByOpinionID(ctx context.Context, opinionID int64) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("opinion_id = ?", opinionID).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count likes")
	}

	return count, nil
}

// DeleteByOpinionID removes all likes on an opinion.
func (repo *likeRepository) DeleteByOpinionID(ctx context.Context, opinionID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("opinion_id = ?", opinionID).
		Delete(&model.LikeModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete likes by opinion")
	}

	return nil
}

// DeleteByAccountID removes all likes made by an account.
func (repo *likeRepository) DeleteByAccountID(ctx context.Context, accountID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&model.LikeModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete likes by account")
	}

	return nil
}
