package repository

import (
	"context"
	"errors"

	"kitchenlink/internal/domain/entity"
)

// ErrQuestionNotFound is returned when a question lookup by id misses.
var ErrQuestionNotFound = errors.New("question not found")

// QuestionRepository defines persistence operations for store polls.
type QuestionRepository interface {
	// Create persists a new question.
	Create(ctx context.Context, question *entity.Question) error

	// FindByID retrieves a single question by its id.
	FindByID(ctx context.Context, id int64) (*entity.Question, error)

	// FindByStoreID retrieves all questions published by a store.
	FindByStoreID(ctx context.Context, storeID int64) ([]*entity.Question, error)

	// FindAll retrieves every question, newest first.
	FindAll(ctx context.Context) ([]*entity.Question, error)

	// Delete removes a question by its id. Dependent answers must already
	// be gone.
	Delete(ctx context.Context, id int64) error
}
