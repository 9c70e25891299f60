package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"kitchenlink/internal/domain/entity"
	domainerrors "kitchenlink/internal/domain/errors"
	"kitchenlink/internal/domain/repository"
	mockRepo "kitchenlink/internal/mocks/repository"
	"kitchenlink/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQuestionServiceForTest(t *testing.T) (usecase.QuestionUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockQuestionRepository, *mockRepo.MockAnswerRepository) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	questionRepo := mockRepo.NewMockQuestionRepository(t)
	answerRepo := mockRepo.NewMockAnswerRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewQuestionService(QuestionServiceParams{
		TxManager:    txManager,
		QuestionRepo: questionRepo,
		AnswerRepo:   answerRepo,
		Logger:       logger,
	})

	return svc, txManager, questionRepo, answerRepo
}

func TestQuestionService_PublishQuestion_MissingText(t *testing.T) {
	svc, _, _, _ := newQuestionServiceForTest(t)

	output, err := svc.PublishQuestion(context.Background(), &usecase.PublishQuestionInput{
		StoreID:      1,
		Latitude:     35.0,
		Longitude:    139.0,
		QuestionText: "which curry?",
		Option1Text:  "mild",
		Option2Text:  " ",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestQuestionService_AnswerQuestion_CreateThenUpdate(t *testing.T) {
	svc, _, questionRepo, answerRepo := newQuestionServiceForTest(t)

	ctx := context.Background()
	question := &entity.Question{ID: 1, StoreID: 1}

	// First answer inserts a new row.
	questionRepo.EXPECT().FindByID(ctx, int64(1)).Return(question, nil)
	answerRepo.EXPECT().Find(ctx, int64(1), int64(1)).Return(nil, repository.ErrAnswerNotFound).Once()
	answerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Answer")).Return(nil).Once()

	first, err := svc.AnswerQuestion(ctx, &usecase.AnswerQuestionInput{
		AccountID: 1, QuestionID: 1, SelectedOption: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Answer.SelectedOption)

	// Second answer updates the existing row in place and carries the
	// refreshed timestamp back out.
	questionRepo.EXPECT().FindByID(ctx, int64(1)).Return(question, nil)
	firstAnsweredAt := time.Now().Add(-time.Hour)
	existing := &entity.Answer{AccountID: 1, QuestionID: 1, SelectedOption: 1, AnsweredAt: firstAnsweredAt}
	answerRepo.EXPECT().Find(ctx, int64(1), int64(1)).Return(existing, nil).Once()
	answerRepo.EXPECT().Update(ctx, existing).
		Run(func(ctx context.Context, answer *entity.Answer) {
			answer.AnsweredAt = time.Now()
		}).
		Return(nil).Once()

	second, err := svc.AnswerQuestion(ctx, &usecase.AnswerQuestionInput{
		AccountID: 1, QuestionID: 1, SelectedOption: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Answer.SelectedOption)
	assert.True(t, second.Answer.AnsweredAt.After(firstAnsweredAt))
}

func TestQuestionService_AnswerQuestion_RaceLoserUpdatesRow(t *testing.T) {
	svc, _, questionRepo, answerRepo := newQuestionServiceForTest(t)

	ctx := context.Background()
	questionRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Question{ID: 1, StoreID: 1}, nil)

	// A concurrent first answer commits between the lookup and the insert.
	// The unique constraint rejects the insert and the answer is applied as
	// an update instead.
	answerRepo.EXPECT().Find(ctx, int64(1), int64(1)).Return(nil, repository.ErrAnswerNotFound).Once()
	answerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Answer")).Return(repository.ErrAnswerExists).Once()
	answerRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Answer")).
		Run(func(ctx context.Context, answer *entity.Answer) {
			assert.Equal(t, int64(1), answer.AccountID)
			assert.Equal(t, int64(1), answer.QuestionID)
			assert.Equal(t, 2, answer.SelectedOption)
		}).
		Return(nil).Once()

	output, err := svc.AnswerQuestion(ctx, &usecase.AnswerQuestionInput{
		AccountID: 1, QuestionID: 1, SelectedOption: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, output.Answer.SelectedOption)
}

func TestQuestionService_AnswerQuestion_InvalidOption(t *testing.T) {
	svc, _, _, _ := newQuestionServiceForTest(t)

	output, err := svc.AnswerQuestion(context.Background(), &usecase.AnswerQuestionInput{
		AccountID: 1, QuestionID: 1, SelectedOption: 3,
	})

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestQuestionService_DeleteQuestion_AnswersFirstThenGone(t *testing.T) {
	svc, txManager, questionRepo, _ := newQuestionServiceForTest(t)

	ctx := context.Background()
	questionRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.Question{ID: 7, StoreID: 3}, nil).Once()

	var calls []string
	record := func(name string) func(ctx context.Context, id int64) {
		return func(ctx context.Context, id int64) { calls = append(calls, name) }
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockQuestionRepo := mockRepo.NewMockQuestionRepository(t)
			mockAnswerRepo := mockRepo.NewMockAnswerRepository(t)

			mockFactory.EXPECT().QuestionRepo().Return(mockQuestionRepo)
			mockFactory.EXPECT().AnswerRepo().Return(mockAnswerRepo)

			mockAnswerRepo.EXPECT().DeleteByQuestionID(ctx, int64(7)).
				Run(record("answers")).Return(nil)
			mockQuestionRepo.EXPECT().Delete(ctx, int64(7)).
				Run(record("question")).Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	require.NoError(t, svc.DeleteQuestion(ctx, 7, 3))
	assert.Equal(t, []string{"answers", "question"}, calls)

	// A subsequent fetch misses.
	questionRepo.EXPECT().FindByID(ctx, int64(7)).Return(nil, repository.ErrQuestionNotFound).Once()

	output, err := svc.GetQuestion(ctx, 7)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Nil(t, output)
}

func TestQuestionService_DeleteQuestion_WrongStore(t *testing.T) {
	svc, _, questionRepo, _ := newQuestionServiceForTest(t)

	ctx := context.Background()
	questionRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.Question{ID: 7, StoreID: 3}, nil)

	err := svc.DeleteQuestion(ctx, 7, 99)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
