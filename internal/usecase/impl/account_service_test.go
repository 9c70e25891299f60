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
	mockService "kitchenlink/internal/mocks/service"
	"kitchenlink/internal/usecase"
	"kitchenlink/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountServiceForTest(t *testing.T) (usecase.AccountUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockAccountRepository, *mockRepo.MockLookupRepository, *mockService.MockQRCodeService) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	lookupRepo := mockRepo.NewMockLookupRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		TxManager:     txManager,
		AccountRepo:   accountRepo,
		LookupRepo:    lookupRepo,
		QRCodeService: qrcodeService,
		Logger:        logger,
	})

	return service, txManager, accountRepo, lookupRepo, qrcodeService
}

func TestAccountService_CreateUserAccount_Success(t *testing.T) {
	service, txManager, _, lookupRepo, _ := newAccountServiceForTest(t)

	ctx := context.Background()
	genderCode := 1
	input := &usecase.CreateUserAccountInput{
		Email:      "Alice@Example.COM",
		Nickname:   "alice",
		GenderCode: &genderCode,
	}

	lookupRepo.EXPECT().Exists(ctx, entity.LookupGender, genderCode).Return(true, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().
				FindByEmailDigest(ctx, util.EmailDigest("alice@example.com")).
				Return(nil, repository.ErrAccountNotFound)
			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := service.CreateUserAccount(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", output.Account.Email)
	assert.Equal(t, entity.AccountTypeUser, output.Account.Type)
	require.NotNil(t, output.Account.UserProfile)
	assert.Equal(t, "alice", output.Account.UserProfile.Nickname)
}

func TestAccountService_CreateUserAccount_MissingNickname(t *testing.T) {
	service, _, _, _, _ := newAccountServiceForTest(t)

	output, err := service.CreateUserAccount(context.Background(), &usecase.CreateUserAccountInput{
		Email:    "alice@example.com",
		Nickname: "   ",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestAccountService_CreateUserAccount_UnknownLookupCode(t *testing.T) {
	service, _, _, lookupRepo, _ := newAccountServiceForTest(t)

	ctx := context.Background()
	genderCode := 99
	lookupRepo.EXPECT().Exists(ctx, entity.LookupGender, genderCode).Return(false, nil)

	output, err := service.CreateUserAccount(ctx, &usecase.CreateUserAccountInput{
		Email:      "alice@example.com",
		Nickname:   "alice",
		GenderCode: &genderCode,
	})

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestAccountService_CreateStoreAccount_EmailTaken(t *testing.T) {
	service, txManager, _, _, _ := newAccountServiceForTest(t)

	ctx := context.Background()
	existing := &entity.Account{ID: 7, Email: "taken@example.com"}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByEmailDigest(ctx, util.EmailDigest("taken@example.com")).
				Return(existing, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrAccountAlreadyExists)

	output, err := service.CreateStoreAccount(ctx, &usecase.CreateStoreAccountInput{
		Email:     "taken@example.com",
		StoreName: "Curry Truck",
	})

	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
	assert.Nil(t, output)
}

func TestAccountService_UpdateStoreProfile_Partial(t *testing.T) {
	service, _, accountRepo, _, _ := newAccountServiceForTest(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:   3,
		Type: entity.AccountTypeStore,
		StoreProfile: &entity.StoreProfile{
			ID:           11,
			AccountID:    3,
			StoreName:    "Curry Truck",
			Introduction: "spicy",
			StoreURL:     "https://old.example.com",
		},
	}
	newName := "Curry Truck Deluxe"

	accountRepo.EXPECT().FindByID(ctx, int64(3)).Return(account, nil)
	accountRepo.EXPECT().
		UpdateStoreProfile(ctx, mock.AnythingOfType("*entity.StoreProfile")).
		Return(nil)

	output, err := service.UpdateStoreProfile(ctx, &usecase.UpdateStoreProfileInput{
		AccountID: 3,
		StoreName: &newName,
	})

	require.NoError(t, err)
	assert.Equal(t, "Curry Truck Deluxe", output.Account.StoreProfile.StoreName)
	// Untouched fields keep their values.
	assert.Equal(t, "spicy", output.Account.StoreProfile.Introduction)
	assert.Equal(t, "https://old.example.com", output.Account.StoreProfile.StoreURL)
}

func TestAccountService_UpdateUserProfile_WrongType(t *testing.T) {
	service, _, accountRepo, _, _ := newAccountServiceForTest(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           3,
		Type:         entity.AccountTypeStore,
		StoreProfile: &entity.StoreProfile{ID: 11, AccountID: 3, StoreName: "Curry Truck"},
	}

	accountRepo.EXPECT().FindByID(ctx, int64(3)).Return(account, nil)

	nickname := "alice"
	output, err := service.UpdateUserProfile(ctx, &usecase.UpdateUserProfileInput{
		AccountID: 3,
		Nickname:  &nickname,
	})

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestAccountService_DeleteAccount_StoreCascadeOrdering(t *testing.T) {
	service, txManager, accountRepo, _, _ := newAccountServiceForTest(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           5,
		Type:         entity.AccountTypeStore,
		StoreProfile: &entity.StoreProfile{ID: 21, AccountID: 5, StoreName: "Curry Truck"},
	}

	accountRepo.EXPECT().FindByID(ctx, int64(5)).Return(account, nil)

	var calls []string
	record := func(name string) func(ctx context.Context, id int64) {
		return func(ctx context.Context, id int64) { calls = append(calls, name) }
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockLocationRepo := mockRepo.NewMockLocationRepository(t)
			mockOpinionRepo := mockRepo.NewMockOpinionRepository(t)
			mockLikeRepo := mockRepo.NewMockLikeRepository(t)
			mockTagRepo := mockRepo.NewMockTagRepository(t)
			mockQuestionRepo := mockRepo.NewMockQuestionRepository(t)
			mockAnswerRepo := mockRepo.NewMockAnswerRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().LocationRepo().Return(mockLocationRepo)
			mockFactory.EXPECT().OpinionRepo().Return(mockOpinionRepo)
			mockFactory.EXPECT().LikeRepo().Return(mockLikeRepo)
			mockFactory.EXPECT().TagRepo().Return(mockTagRepo)
			mockFactory.EXPECT().QuestionRepo().Return(mockQuestionRepo)
			mockFactory.EXPECT().AnswerRepo().Return(mockAnswerRepo)

			mockAnswerRepo.EXPECT().DeleteByAccountID(ctx, int64(5)).
				Run(record("answers")).Return(nil)
			mockLikeRepo.EXPECT().DeleteByAccountID(ctx, int64(5)).
				Run(record("likes")).Return(nil)
			mockOpinionRepo.EXPECT().FindByAccountID(ctx, int64(5)).
				Return([]*entity.Opinion{{ID: 31, AccountID: 5}}, nil)
			mockLikeRepo.EXPECT().DeleteByOpinionID(ctx, int64(31)).
				Run(record("opinion likes")).Return(nil)
			mockTagRepo.EXPECT().DetachAllFromOpinion(ctx, int64(31)).
				Run(record("opinion tags")).Return(nil)
			mockOpinionRepo.EXPECT().Delete(ctx, int64(31)).
				Run(record("opinion")).Return(nil)
			mockLocationRepo.EXPECT().DeleteByAccountID(ctx, int64(5)).
				Run(record("locations")).Return(nil)
			mockQuestionRepo.EXPECT().FindByStoreID(ctx, int64(21)).
				Return([]*entity.Question{{ID: 41, StoreID: 21}}, nil)
			mockAnswerRepo.EXPECT().DeleteByQuestionID(ctx, int64(41)).
				Run(record("question answers")).Return(nil)
			mockQuestionRepo.EXPECT().Delete(ctx, int64(41)).
				Run(record("question")).Return(nil)
			mockAccountRepo.EXPECT().Delete(ctx, int64(5)).
				Run(record("account")).Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	err := service.DeleteAccount(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"answers",
		"likes",
		"opinion likes",
		"opinion tags",
		"opinion",
		"locations",
		"question answers",
		"question",
		"account",
	}, calls)
}

func TestAccountService_DeleteAccount_NotFound(t *testing.T) {
	service, _, accountRepo, _, _ := newAccountServiceForTest(t)

	ctx := context.Background()
	accountRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrAccountNotFound)

	err := service.DeleteAccount(ctx, 404)

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_ListLookupTables(t *testing.T) {
	service, _, _, lookupRepo, _ := newAccountServiceForTest(t)

	ctx := context.Background()
	genders := []*entity.LookupEntry{{Code: 1, Name: "female"}}
	ageGroups := []*entity.LookupEntry{{Code: 2, Name: "20s"}}
	occupations := []*entity.LookupEntry{{Code: 3, Name: "engineer"}}

	lookupRepo.EXPECT().List(ctx, entity.LookupGender).Return(genders, nil)
	lookupRepo.EXPECT().List(ctx, entity.LookupAgeGroup).Return(ageGroups, nil)
	lookupRepo.EXPECT().List(ctx, entity.LookupOccupation).Return(occupations, nil)

	output, err := service.ListLookupTables(ctx)

	require.NoError(t, err)
	assert.Equal(t, genders, output.Genders)
	assert.Equal(t, ageGroups, output.AgeGroups)
	assert.Equal(t, occupations, output.Occupations)
}
