package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "kitchenlink/internal/delivery/context"
	"kitchenlink/internal/domain/entity"
	domainerrors "kitchenlink/internal/domain/errors"
	"kitchenlink/internal/domain/repository"
	"kitchenlink/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// questionService implements the QuestionUsecase interface.
type questionService struct {
	txManager    repository.TransactionManager
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	logger       *slog.Logger
}

// QuestionServiceParams holds dependencies for QuestionService, injected by Fx.
type QuestionServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	QuestionRepo repository.QuestionRepository
	AnswerRepo   repository.AnswerRepository
	Logger       *slog.Logger
}

// NewQuestionService is the constructor for questionService.
func NewQuestionService(params QuestionServiceParams) usecase.QuestionUsecase {
	return &questionService{
		txManager:    params.TxManager,
		questionRepo: params.QuestionRepo,
		answerRepo:   params.AnswerRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *questionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PublishQuestion persists a new question for a store.
func (srv *questionService) PublishQuestion(ctx context.Context, input *usecase.PublishQuestionInput) (*usecase.QuestionOutput, error) {
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	questionText := strings.TrimSpace(input.QuestionText)
	option1 := strings.TrimSpace(input.Option1Text)
	option2 := strings.TrimSpace(input.Option2Text)
	if questionText == "" || option1 == "" || option2 == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("questionText and both options must not be empty")
	}

	question := &entity.Question{
		StoreID:      input.StoreID,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		QuestionText: questionText,
		Option1Text:  option1,
		Option2Text:  option2,
	}

	if err := srv.questionRepo.Create(ctx, question); err != nil {
		srv.log(ctx).Error("Failed to create question",
			slog.Int64("storeID", input.StoreID),
			slog.Any("error", err))

		return nil, err
	}

	return &usecase.QuestionOutput{Question: question}, nil
}

// GetQuestion retrieves one question by id.
func (srv *questionService) GetQuestion(ctx context.Context, questionID int64) (*usecase.QuestionOutput, error) {
	question, err := srv.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("question not found")
		}

		return nil, errors.Wrap(err, "failed to load question")
	}

	return &usecase.QuestionOutput{Question: question}, nil
}

// ListQuestions retrieves every question, newest first.
func (srv *questionService) ListQuestions(ctx context.Context) (*usecase.QuestionListOutput, error) {
	questions, err := srv.questionRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list questions")
	}

	return &usecase.QuestionListOutput{Questions: questions}, nil
}

// ListQuestionsByStore retrieves the questions published by a store.
func (srv *questionService) ListQuestionsByStore(ctx context.Context, storeID int64) (*usecase.QuestionListOutput, error) {
	questions, err := srv.questionRepo.FindByStoreID(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list questions by store")
	}

	return &usecase.QuestionListOutput{Questions: questions}, nil
}

// DeleteQuestion removes the question and its answers, answers first,
// inside one transaction.
func (srv *questionService) DeleteQuestion(ctx context.Context, questionID, storeID int64) error {
	question, err := srv.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("question not found")
		}

		return errors.Wrap(err, "failed to load question for deletion")
	}
	if question.StoreID != storeID {
		return domainerrors.ErrForbidden.WrapMessage("question belongs to a different store")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AnswerRepo().DeleteByQuestionID(ctx, questionID); err != nil {
			return errors.Wrap(err, "failed to delete answers for question")
		}

		return repoFactory.QuestionRepo().Delete(ctx, questionID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete question aggregate",
			slog.Int64("questionID", questionID),
			slog.Any("error", err))

		return err
	}

	return nil
}

// AnswerQuestion records or updates an account's answer. A second answer
// from the same account updates the existing row in place.
func (srv *questionService) AnswerQuestion(ctx context.Context, input *usecase.AnswerQuestionInput) (*usecase.AnswerOutput, error) {
	if !entity.ValidAnswerOption(input.SelectedOption) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("selectedOption must be 1 or 2")
	}

	if _, err := srv.questionRepo.FindByID(ctx, input.QuestionID); err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("question not found")
		}

		return nil, errors.Wrap(err, "failed to load question for answering")
	}

	answer := &entity.Answer{
		AccountID:      input.AccountID,
		QuestionID:     input.QuestionID,
		SelectedOption: input.SelectedOption,
	}

	existing, err := srv.answerRepo.Find(ctx, input.AccountID, input.QuestionID)
	switch {
	case err == nil:
		existing.SelectedOption = input.SelectedOption
		if err := srv.answerRepo.Update(ctx, existing); err != nil {
			return nil, errors.Wrap(err, "failed to update answer")
		}
		answer = existing
	case errors.Is(err, repository.ErrAnswerNotFound):
		createErr := srv.answerRepo.Create(ctx, answer)
		if createErr == nil {
			break
		}
		// A concurrent first answer can slip in between the lookup and the
		// insert; the unique constraint is the authoritative signal, and the
		// loser falls back to updating the row.
		if !errors.Is(createErr, repository.ErrAnswerExists) {
			return nil, errors.Wrap(createErr, "failed to create answer")
		}
		if err := srv.answerRepo.Update(ctx, answer); err != nil {
			return nil, errors.Wrap(err, "failed to update answer")
		}
	default:
		return nil, errors.Wrap(err, "failed to look up existing answer")
	}

	return &usecase.AnswerOutput{Answer: answer}, nil
}

// GetAnswer retrieves the answer for the (account, question) pair.
func (srv *questionService) GetAnswer(ctx context.Context, accountID, questionID int64) (*usecase.AnswerOutput, error) {
	answer, err := srv.answerRepo.Find(ctx, accountID, questionID)
	if err != nil {
		if errors.Is(err, repository.ErrAnswerNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("answer not found")
		}

		return nil, errors.Wrap(err, "failed to load answer")
	}

	return &usecase.AnswerOutput{Answer: answer}, nil
}
