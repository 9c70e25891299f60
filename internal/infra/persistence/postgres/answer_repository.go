package postgres

import (
	"context"
	"time"

	"kitchenlink/internal/domain/entity"
	domainerrors "kitchenlink/internal/domain/errors"
	"kitchenlink/internal/domain/repository"
	"kitchenlink/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// answerRepository implements the repository.AnswerRepository interface.
type answerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository is the constructor for answerRepository.
func NewAnswerRepository(db *gorm.DB) repository.AnswerRepository {
	return &answerRepository{
		db: db,
	}
}

// Find retrieves the answer for the (account, question) pair.
func (repo *answerRepository) Find(ctx context.Context, accountID, questionID int64) (*entity.Answer, error) {
	var answerM model.AnswerModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ? AND question_id = ?", accountID, questionID).
		First(&answerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAnswerNotFound
		}

		return nil, errors.Wrap(err, "failed to find answer")
	}

	return toAnswerDomain(&answerM), nil
}

// Create persists a new answer.
func (repo *answerRepository) Create(ctx context.Context, answer *entity.Answer) error {
	answerM := &model.AnswerModel{
		AccountID:      answer.AccountID,
		QuestionID:     answer.QuestionID,
		SelectedOption: answer.SelectedOption,
		AnsweredAt:     time.Now(),
	}

	if err := repo.db.WithContext(ctx).Create(answerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAnswerExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid question or account reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create answer")
	}

	answer.AnsweredAt = answerM.AnsweredAt

	return nil
}

// Update overwrites the selected option of an existing answer and
// refreshes its timestamp.
func (repo *answerRepository) Update(ctx context.Context, answer *entity.Answer) error {
	answeredAt := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.AnswerModel{}).
		Where("account_id = ? AND question_id = ?", answer.AccountID, answer.QuestionID).
		Updates(map[string]any{
			"selected_option": answer.SelectedOption,
			"answered_at":     answeredAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update answer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAnswerNotFound
	}

	answer.AnsweredAt = answeredAt

	return nil
}

// ListByQuestionID retrieves all answers on a question.
func (repo *answerRepository) ListByQuestionID(ctx context.Context, questionID int64) ([]*entity.Answer, error) {
	var answerModels []*model.AnswerModel

	if err := repo.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Find(&answerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list answers by question")
	}

	answers := make([]*entity.Answer, 0, len(answerModels))
	for _, answerM := range answerModels {
		answers = append(answers, toAnswerDomain(answerM))
	}

	return answers, nil
}

// DeleteByQuestionID removes all answers on a question.
func (repo *answerRepository) DeleteByQuestionID(ctx context.Context, questionID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Delete(&model.AnswerModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete answers by question")
	}

	return nil
}

// DeleteByAccountID removes all answers made by an account.
func (repo *answerRepository) DeleteByAccountID(ctx context.Context, accountID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&model.AnswerModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete answers by account")
	}

	return nil
}

// toAnswerDomain converts a persistence model to its domain entity.
func toAnswerDomain(answerM *model.AnswerModel) *entity.Answer {
	return &entity.Answer{
		AccountID:      answerM.AccountID,
		QuestionID:     answerM.QuestionID,
		SelectedOption: answerM.SelectedOption,
		AnsweredAt:     answerM.AnsweredAt,
	}
}
