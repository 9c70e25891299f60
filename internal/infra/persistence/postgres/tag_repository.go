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

// tagRepository implements the repository.TagRepository interface.
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository is the constructor for tagRepository.
func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{
		db: db,
	}
}

// ListTags retrieves all tags ordered by id.
func (repo *tagRepository) ListTags(ctx context.Context) ([]*entity.Tag, error) {
	var tagModels []*model.TagModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&tagModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	tags := make([]*entity.Tag, 0, len(tagModels))
	for _, tagM := range tagModels {
		tags = append(tags, &entity.Tag{ID: tagM.ID, Name: tagM.Name})
	}

	return tags, nil
}

// FindTagByID retrieves a single tag by its id.
func (repo *tagRepository) FindTagByID(ctx context.Context, id int64) (*entity.Tag, error) {
	var tagM model.TagModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tagM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTagNotFound
		}

		return nil, errors.Wrap(err, "failed to find tag by ID")
	}

	return &entity.Tag{ID: tagM.ID, Name: tagM.Name}, nil
}

// AttachmentExists reports whether the tag is attached to the opinion.
func (repo *tagRepository) AttachmentExists(ctx context.Context, opinionID, tagID int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OpinionTagModel{}).
		Where("opinion_id = ? AND tag_id = ?", opinionID, tagID).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check tag attachment")
	}

	return count > 0, nil
}

// Attach associates a tag with an opinion. The composite primary key makes
// duplicate attachments fail at the constraint level.
func (repo *tagRepository) Attach(ctx context.Context, opinionID, tagID int64) error {
	attachment := &model.OpinionTagModel{
		OpinionID: opinionID,
		TagID:     tagID,
	}

	if err := repo.db.WithContext(ctx).Create(attachment).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrOpinionTagExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid opinion or tag reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to attach tag")
	}

	return nil
}

// Detach removes the association between a tag and an opinion.
func (repo *tagRepository) Detach(ctx context.Context, opinionID, tagID int64) error {
	result := repo.db.WithContext(ctx).
		Where("opinion_id = ? AND tag_id = ?", opinionID, tagID).
		Delete(&model.OpinionTagModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to detach tag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTagNotFound
	}

	return nil
}

// ListByOpinionID retrieves all tags attached to an opinion.
func (repo *tagRepository) ListByOpinionID(ctx context.Context, opinionID int64) ([]*entity.Tag, error) {
	var tagModels []*model.TagModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN opinion_tags ON opinion_tags.tag_id = tags.id").
		Where("opinion_tags.opinion_id = ?", opinionID).
		Order("tags.id ASC").
		Find(&tagModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tags by opinion")
	}

	tags := make([]*entity.Tag, 0, len(tagModels))
	for _, tagM := range tagModels {
		tags = append(tags, &entity.Tag{ID: tagM.ID, Name: tagM.Name})
	}

	return tags, nil
}

// DetachAllFromOpinion removes every tag association on an opinion.
func (repo *tagRepository) DetachAllFromOpinion(ctx context.Context, opinionID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("opinion_id = ?", opinionID).
		Delete(&model.OpinionTagModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to detach tags from opinion")
	}

	return nil
}
