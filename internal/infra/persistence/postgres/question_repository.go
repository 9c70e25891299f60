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

// questionRepository implements the repository.QuestionRepository interface.
type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository is the constructor for questionRepository.
func NewQuestionRepository(db *gorm.DB) repository.QuestionRepository {
	return &questionRepository{
		db: db,
	}
}

// Create persists a new question.
func (repo *questionRepository) Create(ctx context.Context, question *entity.Question) error {
	questionM := fromQuestionDomain(question)

	if err := repo.db.WithContext(ctx).Create(questionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid store reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create question")
	}

	question.ID = questionM.ID
	question.CreatedAt = questionM.CreatedAt

	return nil
}

// FindByID retrieves a single question by its id.
func (repo *questionRepository) FindByID(ctx context.Context, id int64) (*entity.Question, error) {
	var questionM model.QuestionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&questionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuestionNotFound
		}

		return nil, errors.Wrap(err, "failed to find question by ID")
	}

	return toQuestionDomain(&questionM), nil
}

// FindByStoreID retrieves all questions published by a store, newest first.
func (repo *questionRepository) FindByStoreID(ctx context.Context, storeID int64) ([]*entity.Question, error) {
	var questionModels []*model.QuestionModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&questionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find questions by store")
	}

	return toQuestionDomainSlice(questionModels), nil
}

// FindAll retrieves every question, newest first.
func (repo *questionRepository) FindAll(ctx context.Context) ([]*entity.Question, error) {
	var questionModels []*model.QuestionModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&questionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find questions")
	}

	return toQuestionDomainSlice(questionModels), nil
}

// Delete removes a question by its id.
func (repo *questionRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.QuestionModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("question still has dependent answers")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete question")
	}

	if result.RowsAffected == 0 {
		return repository.ErrQuestionNotFound
	}

	return nil
}

// fromQuestionDomain converts a domain entity to its persistence model.
func fromQuestionDomain(question *entity.Question) *model.QuestionModel {
	return &model.QuestionModel{
		ID:           question.ID,
		StoreID:      question.StoreID,
		Latitude:     question.Latitude,
		Longitude:    question.Longitude,
		QuestionText: question.QuestionText,
		Option1Text:  question.Option1Text,
		Option2Text:  question.Option2Text,
	}
}

// toQuestionDomain converts a persistence model to its domain entity.
func toQuestionDomain(questionM *model.QuestionModel) *entity.Question {
	return &entity.Question{
		ID:           questionM.ID,
		StoreID:      questionM.StoreID,
		Latitude:     questionM.Latitude,
		Longitude:    questionM.Longitude,
		QuestionText: questionM.QuestionText,
		Option1Text:  questionM.Option1Text,
		Option2Text:  questionM.Option2Text,
		CreatedAt:    questionM.CreatedAt,
	}
}

func toQuestionDomainSlice(questionModels []*model.QuestionModel) []*entity.Question {
	questions := make([]*entity.Question, 0, len(questionModels))
	for _, questionM := range questionModels {
		questions = append(questions, toQuestionDomain(questionM))
	}

	return questions
}
