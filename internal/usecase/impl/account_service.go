// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "kitchenlink/internal/delivery/context"
	"kitchenlink/internal/domain/entity"
	domainerrors "kitchenlink/internal/domain/errors"
	"kitchenlink/internal/domain/repository"
	"kitchenlink/internal/domain/service"
	"kitchenlink/internal/usecase"
	"kitchenlink/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager     repository.TransactionManager
	accountRepo   repository.AccountRepository
	lookupRepo    repository.LookupRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	AccountRepo   repository.AccountRepository
	LookupRepo    repository.LookupRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:     params.TxManager,
		accountRepo:   params.AccountRepo,
		lookupRepo:    params.LookupRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUserAccount creates the account and its user sub-profile in one transaction.
func (srv *accountService) CreateUserAccount(ctx context.Context, input *usecase.CreateUserAccountInput) (*usecase.AccountOutput, error) {
	nickname := strings.TrimSpace(input.Nickname)
	if nickname == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("nickname must not be empty")
	}

	if err := srv.validateLookupCodes(ctx, input.GenderCode, input.AgeGroupCode, input.OccupationCode); err != nil {
		return nil, err
	}

	email := util.NormalizeEmail(input.Email)
	account := &entity.Account{
		Email:       email,
		EmailDigest: util.EmailDigest(email),
		Type:        entity.AccountTypeUser,
		UserProfile: &entity.UserProfile{
			Nickname:       nickname,
			Introduction:   strings.TrimSpace(input.Introduction),
			GenderCode:     input.GenderCode,
			AgeGroupCode:   input.AgeGroupCode,
			OccupationCode: input.OccupationCode,
		},
	}

	return srv.executeAccountCreation(ctx, account)
}

// CreateStoreAccount creates the account and its store sub-profile in one transaction.
func (srv *accountService) CreateStoreAccount(ctx context.Context, input *usecase.CreateStoreAccountInput) (*usecase.AccountOutput, error) {
	storeName := strings.TrimSpace(input.StoreName)
	if storeName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("storeName must not be empty")
	}

	email := util.NormalizeEmail(input.Email)
	account := &entity.Account{
		Email:       email,
		EmailDigest: util.EmailDigest(email),
		Type:        entity.AccountTypeStore,
		StoreProfile: &entity.StoreProfile{
			StoreName:    storeName,
			Introduction: strings.TrimSpace(input.Introduction),
			StoreURL:     strings.TrimSpace(input.StoreURL),
		},
	}

	return srv.executeAccountCreation(ctx, account)
}

// executeAccountCreation runs the duplicate check and the compound insert
// inside one transaction. The unique constraint on the email digest stays
// authoritative under concurrent creates for the same email.
func (srv *accountService) executeAccountCreation(ctx context.Context, account *entity.Account) (*usecase.AccountOutput, error) {
	srv.log(ctx).Info("Creating account",
		slog.String("type", account.Type.String()),
		slog.String("email", account.Email))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, err := accountRepo.FindByEmailDigest(ctx, account.EmailDigest)
		if err == nil {
			return domainerrors.ErrAccountAlreadyExists
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check for existing account")
		}

		return accountRepo.Create(ctx, account)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create account",
			slog.String("type", account.Type.String()),
			slog.String("email", account.Email),
			slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Account created",
		slog.String("type", account.Type.String()),
		slog.Int64("accountID", account.ID))

	return &usecase.AccountOutput{Account: account}, nil
}

// GetAccount retrieves an account with its sub-profile by id.
func (srv *accountService) GetAccount(ctx context.Context, accountID int64) (*usecase.AccountOutput, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return &usecase.AccountOutput{Account: account}, nil
}

// GetAccountByEmail retrieves an account by its normalized email.
func (srv *accountService) GetAccountByEmail(ctx context.Context, email string) (*usecase.AccountOutput, error) {
	account, err := srv.accountRepo.FindByEmailDigest(ctx, util.EmailDigest(email))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to load account by email")
	}

	return &usecase.AccountOutput{Account: account}, nil
}

// UpdateUserProfile applies a partial update to the user sub-profile.
func (srv *accountService) UpdateUserProfile(ctx context.Context, input *usecase.UpdateUserProfileInput) (*usecase.AccountOutput, error) {
	account, err := srv.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to load account for update")
	}
	if account.Type != entity.AccountTypeUser || account.UserProfile == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("account does not own a user profile")
	}

	profile := account.UserProfile
	if input.Nickname != nil {
		nickname := strings.TrimSpace(*input.Nickname)
		if nickname == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("nickname must not be empty")
		}
		profile.Nickname = nickname
	}
	if input.Introduction != nil {
		profile.Introduction = strings.TrimSpace(*input.Introduction)
	}
	if input.GenderCode != nil {
		profile.GenderCode = input.GenderCode
	}
	if input.AgeGroupCode != nil {
		profile.AgeGroupCode = input.AgeGroupCode
	}
	if input.OccupationCode != nil {
		profile.OccupationCode = input.OccupationCode
	}

	if err := srv.validateLookupCodes(ctx, profile.GenderCode, profile.AgeGroupCode, profile.OccupationCode); err != nil {
		return nil, err
	}

	if err := srv.accountRepo.UpdateUserProfile(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to update user profile",
			slog.Int64("accountID", input.AccountID),
			slog.Any("error", err))

		return nil, err
	}

	return &usecase.AccountOutput{Account: account}, nil
}

// UpdateStoreProfile applies a partial update to the store sub-profile.
func (srv *accountService) UpdateStoreProfile(ctx context.Context, input *usecase.UpdateStoreProfileInput) (*usecase.AccountOutput, error) {
	account, err := srv.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to load account for update")
	}
	if account.Type != entity.AccountTypeStore || account.StoreProfile == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("account does not own a store profile")
	}

	profile := account.StoreProfile
	if input.StoreName != nil {
		storeName := strings.TrimSpace(*input.StoreName)
		if storeName == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("storeName must not be empty")
		}
		profile.StoreName = storeName
	}
	if input.Introduction != nil {
		profile.Introduction = strings.TrimSpace(*input.Introduction)
	}
	if input.StoreURL != nil {
		profile.StoreURL = strings.TrimSpace(*input.StoreURL)
	}

	if err := srv.accountRepo.UpdateStoreProfile(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to update store profile",
			slog.Int64("accountID", input.AccountID),
			slog.Any("error", err))

		return nil, err
	}

	return &usecase.AccountOutput{Account: account}, nil
}

// DeleteAccount removes the account, its sub-profile, and all dependent rows
// in referential order, inside one transaction. A mid-sequence failure rolls
// back entirely rather than leaving an orphaned row.
func (srv *accountService) DeleteAccount(ctx context.Context, accountID int64) error {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to load account for deletion")
	}

	srv.log(ctx).Info("Deleting account",
		slog.Int64("accountID", accountID),
		slog.String("type", account.Type.String()))

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.deleteAccountDependents(ctx, repoFactory, account); err != nil {
			return err
		}

		return repoFactory.AccountRepo().Delete(ctx, accountID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete account",
			slog.Int64("accountID", accountID),
			slog.Any("error", err))

		return err
	}

	return nil
}

// deleteAccountDependents removes everything referencing the account before
// the account row itself: answers and likes by the account, the account's
// opinion aggregates, its locations, and for stores its questions.
func (srv *accountService) deleteAccountDependents(ctx context.Context, repoFactory repository.RepositoryFactory, account *entity.Account) error {
	if err := repoFactory.AnswerRepo().DeleteByAccountID(ctx, account.ID); err != nil {
		return errors.Wrap(err, "failed to delete answers for account")
	}

	if err := repoFactory.LikeRepo().DeleteByAccountID(ctx, account.ID); err != nil {
		return errors.Wrap(err, "failed to delete likes for account")
	}

	opinions, err := repoFactory.OpinionRepo().FindByAccountID(ctx, account.ID)
	if err != nil {
		return errors.Wrap(err, "failed to list opinions for account")
	}
	for _, opinion := range opinions {
		if err := deleteOpinionAggregate(ctx, repoFactory, opinion.ID); err != nil {
			return err
		}
	}

	if err := repoFactory.LocationRepo().DeleteByAccountID(ctx, account.ID); err != nil {
		return errors.Wrap(err, "failed to delete locations for account")
	}

	if account.Type == entity.AccountTypeStore && account.StoreProfile != nil {
		questions, err := repoFactory.QuestionRepo().FindByStoreID(ctx, account.StoreProfile.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list questions for store")
		}
		for _, question := range questions {
			if err := repoFactory.AnswerRepo().DeleteByQuestionID(ctx, question.ID); err != nil {
				return errors.Wrap(err, "failed to delete answers for question")
			}
			if err := repoFactory.QuestionRepo().Delete(ctx, question.ID); err != nil {
				return errors.Wrap(err, "failed to delete question")
			}
		}
	}

	return nil
}

// ListLookupTables returns the static code tables for profile forms.
func (srv *accountService) ListLookupTables(ctx context.Context) (*usecase.LookupTablesOutput, error) {
	genders, err := srv.lookupRepo.List(ctx, entity.LookupGender)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list genders")
	}

	ageGroups, err := srv.lookupRepo.List(ctx, entity.LookupAgeGroup)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list age groups")
	}

	occupations, err := srv.lookupRepo.List(ctx, entity.LookupOccupation)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list occupations")
	}

	return &usecase.LookupTablesOutput{
		Genders:     genders,
		AgeGroups:   ageGroups,
		Occupations: occupations,
	}, nil
}

// GetStoreShareQR renders a QR code PNG linking to the store profile.
func (srv *accountService) GetStoreShareQR(ctx context.Context, storeID int64) ([]byte, error) {
	png, err := srv.qrcodeService.GenerateStoreShareQR(storeID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate store QR code",
			slog.Int64("storeID", storeID),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate store QR code")
	}

	return png, nil
}

// validateLookupCodes rejects profile writes referencing unknown codes.
func (srv *accountService) validateLookupCodes(ctx context.Context, genderCode, ageGroupCode, occupationCode *int) error {
	checks := []struct {
		kind entity.LookupKind
		code *int
	}{
		{entity.LookupGender, genderCode},
		{entity.LookupAgeGroup, ageGroupCode},
		{entity.LookupOccupation, occupationCode},
	}

	for _, check := range checks {
		if check.code == nil {
			continue
		}

		ok, err := srv.lookupRepo.Exists(ctx, check.kind, *check.code)
		if err != nil {
			return errors.Wrapf(err, "failed to validate %s code", check.kind)
		}
		if !ok {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown " + string(check.kind) + " code")
		}
	}

	return nil
}
