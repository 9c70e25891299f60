package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"kitchenlink/internal/domain/entity"
	domainerrors "kitchenlink/internal/domain/errors"
	"kitchenlink/internal/domain/repository"
	mockRepo "kitchenlink/internal/mocks/repository"
	"kitchenlink/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOpinionServiceForTest(t *testing.T) (usecase.OpinionUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockOpinionRepository, *mockRepo.MockLikeRepository, *mockRepo.MockTagRepository) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	opinionRepo := mockRepo.NewMockOpinionRepository(t)
	likeRepo := mockRepo.NewMockLikeRepository(t)
	tagRepo := mockRepo.NewMockTagRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewOpinionService(OpinionServiceParams{
		TxManager:   txManager,
		OpinionRepo: opinionRepo,
		LikeRepo:    likeRepo,
		TagRepo:     tagRepo,
		Logger:      logger,
	})

	return svc, txManager, opinionRepo, likeRepo, tagRepo
}

func TestOpinionService_PostOpinion_EmptyComment(t *testing.T) {
	svc, _, _, _, _ := newOpinionServiceForTest(t)

	output, err := svc.PostOpinion(context.Background(), &usecase.PostOpinionInput{
		AccountID:   1,
		Latitude:    35.0,
		Longitude:   139.0,
		CommentText: "  ",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestOpinionService_PostOpinion_BadCoordinates(t *testing.T) {
	svc, _, _, _, _ := newOpinionServiceForTest(t)

	output, err := svc.PostOpinion(context.Background(), &usecase.PostOpinionInput{
		AccountID:   1,
		Latitude:    95.0,
		Longitude:   139.0,
		CommentText: "tasty",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestOpinionService_LikeOpinion_FirstTimeSucceeds(t *testing.T) {
	svc, _, opinionRepo, likeRepo, _ := newOpinionServiceForTest(t)

	ctx := context.Background()
	opinionRepo.EXPECT().FindByID(ctx, int64(10)).Return(&entity.Opinion{ID: 10}, nil)
	likeRepo.EXPECT().Exists(ctx, int64(10), int64(2)).Return(false, nil)
	likeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Like")).Return(nil)

	err := svc.LikeOpinion(ctx, 10, 2)

	require.NoError(t, err)
}

func TestOpinionService_LikeOpinion_SecondTimeConflicts(t *testing.T) {
	svc, _, opinionRepo, likeRepo, _ := newOpinionServiceForTest(t)

	ctx := context.Background()
	opinionRepo.EXPECT().FindByID(ctx, int64(10)).Return(&entity.Opinion{ID: 10}, nil)
	likeRepo.EXPECT().Exists(ctx, int64(10), int64(2)).Return(true, nil)

	err := svc.LikeOpinion(ctx, 10, 2)

	assert.ErrorIs(t, err, domainerrors.ErrLikeConflict)
}

func TestOpinionService_LikeOpinion_RaceLosesToConstraint(t *testing.T) {
	// The pre-check passes but a concurrent insert wins; the unique
	// constraint is the authoritative conflict signal.
	svc, _, opinionRepo, likeRepo, _ := newOpinionServiceForTest(t)

	ctx := context.Background()
	opinionRepo.EXPECT().FindByID(ctx, int64(10)).Return(&entity.Opinion{ID: 10}, nil)
	likeRepo.EXPECT().Exists(ctx, int64(10), int64(2)).Return(false, nil)
	likeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Like")).Return(repository.ErrLikeExists)

	err := svc.LikeOpinion(ctx, 10, 2)

	assert.ErrorIs(t, err, domainerrors.ErrLikeConflict)
}

func TestOpinionService_UnlikeThenRelike(t *testing.T) {
	svc, _, opinionRepo, likeRepo, _ := newOpinionServiceForTest(t)

	ctx := context.Background()
	likeRepo.EXPECT().Delete(ctx, int64(10), int64(2)).Return(nil)

	require.NoError(t, svc.UnlikeOpinion(ctx, 10, 2))

	opinionRepo.EXPECT().FindByID(ctx, int64(10)).Return(&entity.Opinion{ID: 10}, nil)
	likeRepo.EXPECT().Exists(ctx, int64(10), int64(2)).Return(false, nil)
	likeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Like")).Return(nil)

	require.NoError(t, svc.LikeOpinion(ctx, 10, 2))
}

func TestOpinionService_DeleteOpinion_AggregateOrdering(t *testing.T) {
	svc, txManager, opinionRepo, _, _ := newOpinionServiceForTest(t)

	ctx := context.Background()
	opinionRepo.EXPECT().FindByID(ctx, int64(10)).Return(&entity.Opinion{ID: 10, AccountID: 2}, nil)

	var calls []string
	record := func(name string) func(ctx context.Context, id int64) {
		return func(ctx context.Context, id int64) { calls = append(calls, name) }
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOpinionRepo := mockRepo.NewMockOpinionRepository(t)
			mockLikeRepo := mockRepo.NewMockLikeRepository(t)
			mockTagRepo := mockRepo.NewMockTagRepository(t)

			mockFactory.EXPECT().OpinionRepo().Return(mockOpinionRepo)
			mockFactory.EXPECT().LikeRepo().Return(mockLikeRepo)
			mockFactory.EXPECT().TagRepo().Return(mockTagRepo)

			mockLikeRepo.EXPECT().DeleteByOpinionID(ctx, int64(10)).
				Run(record("likes")).Return(nil)
			mockTagRepo.EXPECT().DetachAllFromOpinion(ctx, int64(10)).
				Run(record("tags")).Return(nil)
			mockOpinionRepo.EXPECT().Delete(ctx, int64(10)).
				Run(record("opinion")).Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	err := svc.DeleteOpinion(ctx, 10, 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"likes", "tags", "opinion"}, calls)
}

func TestOpinionService_DeleteOpinion_NotOwner(t *testing.T) {
	svc, _, opinionRepo, _, _ := newOpinionServiceForTest(t)

	ctx := context.Background()
	opinionRepo.EXPECT().FindByID(ctx, int64(10)).Return(&entity.Opinion{ID: 10, AccountID: 2}, nil)

	err := svc.DeleteOpinion(ctx, 10, 99)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOpinionService_ListNearbyOpinions_FiltersByDistance(t *testing.T) {
	svc, _, opinionRepo, _, _ := newOpinionServiceForTest(t)

	ctx := context.Background()
	// Tokyo station as the center; one pin a few hundred meters away, one
	// across the city. The bounding box admits both, the haversine filter
	// keeps only the close one.
	near := &entity.Opinion{ID: 1, Latitude: 35.6820, Longitude: 139.7680}
	far := &entity.Opinion{ID: 2, Latitude: 35.7000, Longitude: 139.9000}

	opinionRepo.EXPECT().
		FindInBoundingBox(ctx,
			mock.AnythingOfType("float64"), mock.AnythingOfType("float64"),
			mock.AnythingOfType("float64"), mock.AnythingOfType("float64")).
		Return([]*entity.Opinion{near, far}, nil)

	output, err := svc.ListNearbyOpinions(ctx, &usecase.NearbyOpinionsInput{
		Latitude:     35.6812,
		Longitude:    139.7671,
		RadiusMeters: 1000,
	})

	require.NoError(t, err)
	require.Len(t, output.Opinions, 1)
	assert.Equal(t, int64(1), output.Opinions[0].ID)
}

func TestOpinionService_AttachTag_DuplicateConflicts(t *testing.T) {
	svc, _, opinionRepo, _, tagRepo := newOpinionServiceForTest(t)

	ctx := context.Background()
	opinionRepo.EXPECT().FindByID(ctx, int64(10)).Return(&entity.Opinion{ID: 10}, nil)
	tagRepo.EXPECT().FindTagByID(ctx, int64(3)).Return(&entity.Tag{ID: 3, Name: "spicy"}, nil)
	tagRepo.EXPECT().AttachmentExists(ctx, int64(10), int64(3)).Return(true, nil)

	err := svc.AttachTag(ctx, 10, 3)

	assert.ErrorIs(t, err, domainerrors.ErrTagConflict)
}

func TestOpinionService_GetOpinion_WithLikesAndTags(t *testing.T) {
	svc, _, opinionRepo, likeRepo, tagRepo := newOpinionServiceForTest(t)

	ctx := context.Background()
	opinion := &entity.Opinion{ID: 10, AccountID: 2, CommentText: "tasty"}
	tags := []*entity.Tag{{ID: 3, Name: "spicy"}}

	opinionRepo.EXPECT().FindByID(ctx, int64(10)).Return(opinion, nil)
	likeRepo.EXPECT().CountByOpinionID(ctx, int64(10)).Return(int64(4), nil)
	tagRepo.EXPECT().ListByOpinionID(ctx, int64(10)).Return(tags, nil)

	output, err := svc.GetOpinion(ctx, 10)

	require.NoError(t, err)
	assert.Equal(t, opinion, output.Opinion)
	assert.Equal(t, int64(4), output.LikeCount)
	assert.Equal(t, tags, output.Tags)
}
