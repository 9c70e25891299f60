package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"kitchenlink/internal/delivery/http/response"
	domainerrors "kitchenlink/internal/domain/errors"
	"kitchenlink/internal/usecase"
)

// OpinionHandler holds dependencies for opinion, like, and tag handlers.
type OpinionHandler struct {
	opinionUsecase usecase.OpinionUsecase
	logger         *slog.Logger
}

// NewOpinionHandler is the constructor for OpinionHandler, injected by Fx.
func NewOpinionHandler(opinionUsecase usecase.OpinionUsecase, logger *slog.Logger) *OpinionHandler {
	return &OpinionHandler{
		opinionUsecase: opinionUsecase,
		logger:         logger,
	}
}

type postOpinionRequest struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CommentText string  `json:"commentText" validate:"required"`
}

// PostOpinion creates a map-pinned opinion authored by the caller.
func (h *OpinionHandler) PostOpinion(c echo.Context) error {
	accountID, err := requireAccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req postOpinionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid opinion input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.opinionUsecase.PostOpinion(c.Request().Context(), &usecase.PostOpinionInput{
		AccountID:   accountID,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		CommentText: req.CommentText,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Opinion)
}

// ListOpinions returns opinions, optionally filtered by proximity when
// lat and lng query parameters are present.
func (h *OpinionHandler) ListOpinions(c echo.Context) error {
	latParam := c.QueryParam("lat")
	lngParam := c.QueryParam("lng")

	if latParam == "" && lngParam == "" {
		output, err := h.opinionUsecase.ListOpinions(c.Request().Context())
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, output.Opinions)
	}

	lat, err := strconv.ParseFloat(latParam, 64)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("lat must be numeric")
	}
	lng, err := strconv.ParseFloat(lngParam, 64)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("lng must be numeric")
	}

	var radius float64
	if radiusParam := c.QueryParam("radius"); radiusParam != "" {
		radius, err = strconv.ParseFloat(radiusParam, 64)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("radius must be numeric")
		}
	}

	output, err := h.opinionUsecase.ListNearbyOpinions(c.Request().Context(), &usecase.NearbyOpinionsInput{
		Latitude:     lat,
		Longitude:    lng,
		RadiusMeters: radius,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Opinions)
}

// GetOpinion returns one opinion with its like count and tags.
func (h *OpinionHandler) GetOpinion(c echo.Context) error {
	opinionID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.opinionUsecase.GetOpinion(c.Request().Context(), opinionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"opinion":    output.Opinion,
		"like_count": output.LikeCount,
		"tags":       output.Tags,
	})
}

// DeleteOpinion removes an opinion the caller authored, together with its
// likes and tag associations.
func (h *OpinionHandler) DeleteOpinion(c echo.Context) error {
	accountID, err := requireAccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	opinionID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.opinionUsecase.DeleteOpinion(c.Request().Context(), opinionID, accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

type likeRequest struct {
	OpinionID int64 `json:"opinionId" validate:"required"`
}

// LikeOpinion records a like by the caller; liking twice yields 409.
func (h *OpinionHandler) LikeOpinion(c echo.Context) error {
	accountID, err := requireAccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req likeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid like input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.opinionUsecase.LikeOpinion(c.Request().Context(), req.OpinionID, accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "liked"})
}

// UnlikeOpinion removes a like. The account id in the path must be the
// caller's own.
func (h *OpinionHandler) UnlikeOpinion(c echo.Context) error {
	callerID, err := requireAccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	opinionID, err := parseIDParam(c, "opinionId")
	if err != nil {
		return errors.WithStack(err)
	}
	accountID, err := parseIDParam(c, "accountId")
	if err != nil {
		return errors.WithStack(err)
	}
	if accountID != callerID {
		return domainerrors.ErrForbidden.WithDetails("cannot remove another account's like")
	}

	if err := h.opinionUsecase.UnlikeOpinion(c.Request().Context(), opinionID, accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

type tagAttachmentRequest struct {
	TagID int64 `json:"tagId" validate:"required"`
}

// AttachTag associates a tag with an opinion; attaching twice yields 409.
func (h *OpinionHandler) AttachTag(c echo.Context) error {
	if _, err := requireAccountID(c); err != nil {
		return errors.WithStack(err)
	}

	opinionID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req tagAttachmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid tag input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.opinionUsecase.AttachTag(c.Request().Context(), opinionID, req.TagID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "tag attached"})
}

// DetachTag removes a tag association from an opinion.
func (h *OpinionHandler) DetachTag(c echo.Context) error {
	if _, err := requireAccountID(c); err != nil {
		return errors.WithStack(err)
	}

	opinionID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}
	tagID, err := parseIDParam(c, "tagId")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.opinionUsecase.DetachTag(c.Request().Context(), opinionID, tagID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// ListTags returns every available tag.
func (h *OpinionHandler) ListTags(c echo.Context) error {
	output, err := h.opinionUsecase.ListTags(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Tags)
}
