package impl

import (
	"context"
	"log/slog"
	"strings"

	"kitchenlink/config"
	deliverycontext "kitchenlink/internal/delivery/context"
	"kitchenlink/internal/domain/entity"
	domainerrors "kitchenlink/internal/domain/errors"
	"kitchenlink/internal/domain/repository"
	"kitchenlink/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultNearbyRadiusMeters = 1000.0
	defaultNearbyMaxResults   = 100
)

// opinionService implements the OpinionUsecase interface.
type opinionService struct {
	txManager          repository.TransactionManager
	opinionRepo        repository.OpinionRepository
	likeRepo           repository.LikeRepository
	tagRepo            repository.TagRepository
	nearbyRadiusMeters float64
	nearbyMaxResults   int
	logger             *slog.Logger
}

// OpinionServiceParams holds dependencies for OpinionService, injected by Fx.
type OpinionServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OpinionRepo repository.OpinionRepository
	LikeRepo    repository.LikeRepository
	TagRepo     repository.TagRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOpinionService is the constructor for opinionService.
func NewOpinionService(params OpinionServiceParams) usecase.OpinionUsecase {
	radius := defaultNearbyRadiusMeters
	maxResults := defaultNearbyMaxResults
	if params.Config != nil && params.Config.Opinions != nil {
		if params.Config.Opinions.NearbyRadiusMeters > 0 {
			radius = params.Config.Opinions.NearbyRadiusMeters
		}
		if params.Config.Opinions.MaxResults > 0 {
			maxResults = params.Config.Opinions.MaxResults
		}
	}

	return &opinionService{
		txManager:          params.TxManager,
		opinionRepo:        params.OpinionRepo,
		likeRepo:           params.LikeRepo,
		tagRepo:            params.TagRepo,
		nearbyRadiusMeters: radius,
		nearbyMaxResults:   maxResults,
		logger:             params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *opinionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PostOpinion persists a new opinion.
func (srv *opinionService) PostOpinion(ctx context.Context, input *usecase.PostOpinionInput) (*usecase.OpinionOutput, error) {
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	commentText := strings.TrimSpace(input.CommentText)
	if commentText == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("commentText must not be empty")
	}

	opinion := &entity.Opinion{
		AccountID:   input.AccountID,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		CommentText: commentText,
	}

	if err := srv.opinionRepo.Create(ctx, opinion); err != nil {
		srv.log(ctx).Error("Failed to create opinion",
			slog.Int64("accountID", input.AccountID),
			slog.Any("error", err))

		return nil, err
	}

	return &usecase.OpinionOutput{Opinion: opinion}, nil
}

// GetOpinion retrieves one opinion with its like count and tags.
func (srv *opinionService) GetOpinion(ctx context.Context, opinionID int64) (*usecase.OpinionOutput, error) {
	opinion, err := srv.opinionRepo.FindByID(ctx, opinionID)
	if err != nil {
		if errors.Is(err, repository.ErrOpinionNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("opinion not found")
		}

		return nil, errors.Wrap(err, "failed to load opinion")
	}

	likeCount, err := srv.likeRepo.CountByOpinionID(ctx, opinionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count likes")
	}

	tags, err := srv.tagRepo.ListByOpinionID(ctx, opinionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list opinion tags")
	}

	return &usecase.OpinionOutput{
		Opinion:   opinion,
		LikeCount: likeCount,
		Tags:      tags,
	}, nil
}

// ListOpinions retrieves every opinion, newest first.
func (srv *opinionService) ListOpinions(ctx context.Context) (*usecase.OpinionListOutput, error) {
	opinions, err := srv.opinionRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list opinions")
	}

	return &usecase.OpinionListOutput{Opinions: opinions}, nil
}

// ListNearbyOpinions retrieves opinions within a radius of a coordinate.
// The repository pre-filters by bounding box; the true haversine distance
// decides membership.
func (srv *opinionService) ListNearbyOpinions(ctx context.Context, input *usecase.NearbyOpinionsInput) (*usecase.OpinionListOutput, error) {
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	radius := input.RadiusMeters
	if radius <= 0 {
		radius = srv.nearbyRadiusMeters
	}

	center := orb.Point{input.Longitude, input.Latitude}
	bound := geo.NewBoundAroundPoint(center, radius)

	candidates, err := srv.opinionRepo.FindInBoundingBox(ctx,
		bound.Min.Lat(), bound.Max.Lat(),
		bound.Min.Lon(), bound.Max.Lon())
	if err != nil {
		return nil, errors.Wrap(err, "failed to query opinions in bounding box")
	}

	nearby := make([]*entity.Opinion, 0, len(candidates))
	for _, opinion := range candidates {
		point := orb.Point{opinion.Longitude, opinion.Latitude}
		if geo.DistanceHaversine(center, point) <= radius {
			nearby = append(nearby, opinion)
		}
		if len(nearby) >= srv.nearbyMaxResults {
			break
		}
	}

	return &usecase.OpinionListOutput{Opinions: nearby}, nil
}

// DeleteOpinion removes the opinion aggregate inside one transaction:
// likes first, then tag associations, then the opinion itself.
func (srv *opinionService) DeleteOpinion(ctx context.Context, opinionID, accountID int64) error {
	opinion, err := srv.opinionRepo.FindByID(ctx, opinionID)
	if err != nil {
		if errors.Is(err, repository.ErrOpinionNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("opinion not found")
		}

		return errors.Wrap(err, "failed to load opinion for deletion")
	}
	if opinion.AccountID != accountID {
		return domainerrors.ErrForbidden.WrapMessage("opinion belongs to a different account")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return deleteOpinionAggregate(ctx, repoFactory, opinionID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete opinion aggregate",
			slog.Int64("opinionID", opinionID),
			slog.Any("error", err))

		return err
	}

	return nil
}

// deleteOpinionAggregate removes an opinion's dependents in referential
// order, then the opinion row. Shared with account deletion.
func deleteOpinionAggregate(ctx context.Context, repoFactory repository.RepositoryFactory, opinionID int64) error {
	if err := repoFactory.LikeRepo().DeleteByOpinionID(ctx, opinionID); err != nil {
		return errors.Wrap(err, "failed to delete likes for opinion")
	}

	if err := repoFactory.TagRepo().DetachAllFromOpinion(ctx, opinionID); err != nil {
		return errors.Wrap(err, "failed to detach tags from opinion")
	}

	if err := repoFactory.OpinionRepo().Delete(ctx, opinionID); err != nil {
		return errors.Wrap(err, "failed to delete opinion")
	}

	return nil
}

// LikeOpinion records a like. The existence pre-check yields the friendly
// conflict; the unique constraint stays authoritative under races.
func (srv *opinionService) LikeOpinion(ctx context.Context, opinionID, accountID int64) error {
	if _, err := srv.opinionRepo.FindByID(ctx, opinionID); err != nil {
		if errors.Is(err, repository.ErrOpinionNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("opinion not found")
		}

		return errors.Wrap(err, "failed to load opinion for like")
	}

	exists, err := srv.likeRepo.Exists(ctx, opinionID, accountID)
	if err != nil {
		return errors.Wrap(err, "failed to check like existence")
	}
	if exists {
		return domainerrors.ErrLikeConflict
	}

	like := &entity.Like{OpinionID: opinionID, AccountID: accountID}
	if err := srv.likeRepo.Create(ctx, like); err != nil {
		if errors.Is(err, repository.ErrLikeExists) {
			return domainerrors.ErrLikeConflict
		}

		srv.log(ctx).Error("Failed to create like",
			slog.Int64("opinionID", opinionID),
			slog.Int64("accountID", accountID),
			slog.Any("error", err))

		return err
	}

	return nil
}

// UnlikeOpinion removes an existing like.
func (srv *opinionService) UnlikeOpinion(ctx context.Context, opinionID, accountID int64) error {
	if err := srv.likeRepo.Delete(ctx, opinionID, accountID); err != nil {
		if errors.Is(err, repository.ErrLikeNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("like not found")
		}

		return errors.Wrap(err, "failed to delete like")
	}

	return nil
}

// AttachTag associates a tag with an opinion.
func (srv *opinionService) AttachTag(ctx context.Context, opinionID, tagID int64) error {
	if _, err := srv.opinionRepo.FindByID(ctx, opinionID); err != nil {
		if errors.Is(err, repository.ErrOpinionNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("opinion not found")
		}

		return errors.Wrap(err, "failed to load opinion for tagging")
	}
	if _, err := srv.tagRepo.FindTagByID(ctx, tagID); err != nil {
		if errors.Is(err, repository.ErrTagNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("tag not found")
		}

		return errors.Wrap(err, "failed to load tag")
	}

	exists, err := srv.tagRepo.AttachmentExists(ctx, opinionID, tagID)
	if err != nil {
		return errors.Wrap(err, "failed to check tag attachment")
	}
	if exists {
		return domainerrors.ErrTagConflict
	}

	if err := srv.tagRepo.Attach(ctx, opinionID, tagID); err != nil {
		if errors.Is(err, repository.ErrOpinionTagExists) {
			return domainerrors.ErrTagConflict
		}

		return errors.Wrap(err, "failed to attach tag")
	}

	return nil
}

// DetachTag removes the association between a tag and an opinion.
func (srv *opinionService) DetachTag(ctx context.Context, opinionID, tagID int64) error {
	if err := srv.tagRepo.Detach(ctx, opinionID, tagID); err != nil {
		if errors.Is(err, repository.ErrTagNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("tag attachment not found")
		}

		return errors.Wrap(err, "failed to detach tag")
	}

	return nil
}

// ListTags returns every available tag.
func (srv *opinionService) ListTags(ctx context.Context) (*usecase.TagListOutput, error) {
	tags, err := srv.tagRepo.ListTags(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	return &usecase.TagListOutput{Tags: tags}, nil
}
