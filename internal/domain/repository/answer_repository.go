package repository

import (
	"context"
	"errors"

	"kitchenlink/internal/domain/entity"
)

// ErrAnswerNotFound is returned when an answer lookup by composite key misses.
var ErrAnswerNotFound = errors.New("answer not found")

// ErrAnswerExists is returned when creating an answer that violates the
// (account_id, question_id) unique constraint.
var ErrAnswerExists = errors.New("answer already exists")

// AnswerRepository defines persistence operations for poll answers.
type AnswerRepository interface {
	// Find retrieves the answer for the (account, question) pair.
	Find(ctx context.Context, accountID, questionID int64) (*entity.Answer, error)

	// Create persists a new answer.
	Create(ctx context.Context, answer *entity.Answer) error

	// Update overwrites the selected option of an existing answer.
	Update(ctx context.Context, answer *entity.Answer) error

	// ListByQuestionID retrieves all answers on a question.
	ListByQuestionID(ctx context.Context, questionID int64) ([]*entity.Answer, error)

	// DeleteByQuestionID removes all answers on a question.
	DeleteByQuestionID(ctx context.Context, questionID int64) error

	// DeleteByAccountID removes all answers made by an account.
	DeleteByAccountID(ctx context.Context, accountID int64) error
}
