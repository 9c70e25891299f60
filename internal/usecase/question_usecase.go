package usecase

import (
	"context"

	"kitchenlink/internal/domain/entity"
)

// PublishQuestionInput defines the data required to publish a two-option poll.
type PublishQuestionInput struct {
	StoreID      int64
	Latitude     float64
	Longitude    float64
	QuestionText string
	Option1Text  string
	Option2Text  string
}

// AnswerQuestionInput defines one account's choice on a question.
type AnswerQuestionInput struct {
	AccountID      int64
	QuestionID     int64
	SelectedOption int
}

// QuestionOutput returns one question.
type QuestionOutput struct {
	Question *entity.Question
}

// QuestionListOutput returns a set of questions.
type QuestionListOutput struct {
	Questions []*entity.Question
}

// AnswerOutput returns one answer.
type AnswerOutput struct {
	Answer *entity.Answer
}

// QuestionUsecase defines the interface for poll operations.
type QuestionUsecase interface {
	// PublishQuestion persists a new question for a store.
	PublishQuestion(ctx context.Context, input *PublishQuestionInput) (*QuestionOutput, error)

	// GetQuestion retrieves one question by id.
	GetQuestion(ctx context.Context, questionID int64) (*QuestionOutput, error)

	// ListQuestions retrieves every question, newest first.
	ListQuestions(ctx context.Context) (*QuestionListOutput, error)

	// ListQuestionsByStore retrieves the questions published by a store.
	ListQuestionsByStore(ctx context.Context, storeID int64) (*QuestionListOutput, error)

	// DeleteQuestion removes the question and its answers, answers first,
	// inside one transaction. Only the owning store may delete.
	DeleteQuestion(ctx context.Context, questionID, storeID int64) error

	// AnswerQuestion records or updates an account's answer (upsert by
	// the (account, question) natural key).
	AnswerQuestion(ctx context.Context, input *AnswerQuestionInput) (*AnswerOutput, error)

	// GetAnswer retrieves the answer for the (account, question) pair.
	GetAnswer(ctx context.Context, accountID, questionID int64) (*AnswerOutput, error)
}
