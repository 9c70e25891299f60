package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"kitchenlink/internal/delivery/http/response"
	domainerrors "kitchenlink/internal/domain/errors"
	"kitchenlink/internal/usecase"
)

// QuestionHandler holds dependencies for poll handlers.
type QuestionHandler struct {
	questionUsecase usecase.QuestionUsecase
	logger          *slog.Logger
}

// NewQuestionHandler is the constructor for QuestionHandler, injected by Fx.
func NewQuestionHandler(questionUsecase usecase.QuestionUsecase, logger *slog.Logger) *QuestionHandler {
	return &QuestionHandler{
		questionUsecase: questionUsecase,
		logger:          logger,
	}
}

type publishQuestionRequest struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	QuestionText string  `json:"questionText" validate:"required"`
	Option1Text  string  `json:"option1Text" validate:"required"`
	Option2Text  string  `json:"option2Text" validate:"required"`
}

// PublishQuestion publishes a two-option poll for the caller's store.
func (h *QuestionHandler) PublishQuestion(c echo.Context) error {
	storeID, err := requireStoreID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req publishQuestionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid question input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.questionUsecase.PublishQuestion(c.Request().Context(), &usecase.PublishQuestionInput{
		StoreID:      storeID,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		QuestionText: req.QuestionText,
		Option1Text:  req.Option1Text,
		Option2Text:  req.Option2Text,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Question)
}

// ListQuestions returns polls, optionally restricted to one store via the
// storeId query parameter.
func (h *QuestionHandler) ListQuestions(c echo.Context) error {
	if storeParam := c.QueryParam("storeId"); storeParam != "" {
		storeID, err := parseQueryID(storeParam, "storeId")
		if err != nil {
			return errors.WithStack(err)
		}

		output, err := h.questionUsecase.ListQuestionsByStore(c.Request().Context(), storeID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, output.Questions)
	}

	output, err := h.questionUsecase.ListQuestions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Questions)
}

// GetQuestion returns one poll by id.
func (h *QuestionHandler) GetQuestion(c echo.Context) error {
	questionID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.questionUsecase.GetQuestion(c.Request().Context(), questionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Question)
}

// DeleteQuestion removes a poll the caller's store published, answers first.
func (h *QuestionHandler) DeleteQuestion(c echo.Context) error {
	storeID, err := requireStoreID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	questionID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.questionUsecase.DeleteQuestion(c.Request().Context(), questionID, storeID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

type answerRequest struct {
	SelectedOption int `json:"selectedOption" validate:"required"`
}

// AnswerQuestion records or updates the caller's answer to a poll. A
// second answer replaces the first.
func (h *QuestionHandler) AnswerQuestion(c echo.Context) error {
	callerID, err := requireAccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	accountID, err := parseIDParam(c, "accountId")
	if err != nil {
		return errors.WithStack(err)
	}
	questionID, err := parseIDParam(c, "questionId")
	if err != nil {
		return errors.WithStack(err)
	}
	if accountID != callerID {
		return domainerrors.ErrForbidden.WithDetails("cannot answer on behalf of another account")
	}

	var req answerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid answer input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.questionUsecase.AnswerQuestion(c.Request().Context(), &usecase.AnswerQuestionInput{
		AccountID:      accountID,
		QuestionID:     questionID,
		SelectedOption: req.SelectedOption,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Answer)
}

// GetAnswer returns the stored answer for the (account, question) pair.
func (h *QuestionHandler) GetAnswer(c echo.Context) error {
	accountID, err := parseIDParam(c, "accountId")
	if err != nil {
		return errors.WithStack(err)
	}
	questionID, err := parseIDParam(c, "questionId")
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.questionUsecase.GetAnswer(c.Request().Context(), accountID, questionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Answer)
}
