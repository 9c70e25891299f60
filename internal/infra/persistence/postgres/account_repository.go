// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"kitchenlink/internal/domain/entity"
	domainerrors "kitchenlink/internal/domain/errors"
	"kitchenlink/internal/domain/repository"
	"kitchenlink/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// FindByID retrieves a single account with its sub-profile preloaded.
func (repo *accountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Preload("UserProfile").
		Preload("StoreProfile").
		Where("id = ?", id).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by ID")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmailDigest retrieves a single account by the digest of its normalized email.
func (repo *accountRepository) FindByEmailDigest(ctx context.Context, digest string) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Preload("UserProfile").
		Preload("StoreProfile").
		Where("email_digest = ?", digest).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email digest")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account together with its sub-profile in one insert.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("invalid lookup code reference")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Update the entity with generated values
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt
	if account.UserProfile != nil && accountM.UserProfile != nil {
		account.UserProfile.ID = accountM.UserProfile.ID
		account.UserProfile.AccountID = accountM.ID
	}
	if account.StoreProfile != nil && accountM.StoreProfile != nil {
		account.StoreProfile.ID = accountM.StoreProfile.ID
		account.StoreProfile.AccountID = accountM.ID
	}

	return nil
}

// UpdateUserProfile modifies the user sub-profile only.
func (repo *accountRepository) UpdateUserProfile(ctx context.Context, profile *entity.UserProfile) error {
	updates := map[string]any{
		"nickname":        profile.Nickname,
		"introduction":    profile.Introduction,
		"gender_code":     profile.GenderCode,
		"age_group_code":  profile.AgeGroupCode,
		"occupation_code": profile.OccupationCode,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(updates)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrAccountUpdateFailed.WrapMessage("invalid lookup code reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// UpdateStoreProfile modifies the store sub-profile only.
func (repo *accountRepository) UpdateStoreProfile(ctx context.Context, profile *entity.StoreProfile) error {
	updates := map[string]any{
		"store_name":   profile.StoreName,
		"introduction": profile.Introduction,
		"store_url":    profile.StoreURL,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.StoreProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update store profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Delete removes the account and its sub-profile rows.
func (repo *accountRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", id).
		Delete(&model.UserProfileModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user profile")
	}

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", id).
		Delete(&model.StoreProfileModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete store profile")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AccountModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrAccountHasDependents
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete account")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// fromAccountDomain converts a domain entity to its persistence model.
func fromAccountDomain(account *entity.Account) *model.AccountModel {
	accountM := &model.AccountModel{
		ID:          account.ID,
		Email:       account.Email,
		EmailDigest: account.EmailDigest,
		AccountType: account.Type.String(),
	}

	if account.UserProfile != nil {
		accountM.UserProfile = &model.UserProfileModel{
			ID:             account.UserProfile.ID,
			AccountID:      account.UserProfile.AccountID,
			Nickname:       account.UserProfile.Nickname,
			Introduction:   account.UserProfile.Introduction,
			GenderCode:     account.UserProfile.GenderCode,
			AgeGroupCode:   account.UserProfile.AgeGroupCode,
			OccupationCode: account.UserProfile.OccupationCode,
		}
	}

	if account.StoreProfile != nil {
		accountM.StoreProfile = &model.StoreProfileModel{
			ID:           account.StoreProfile.ID,
			AccountID:    account.StoreProfile.AccountID,
			StoreName:    account.StoreProfile.StoreName,
			Introduction: account.StoreProfile.Introduction,
			StoreURL:     account.StoreProfile.StoreURL,
		}
	}

	return accountM
}

// toAccountDomain converts a persistence model to its domain entity.
func toAccountDomain(accountM *model.AccountModel) *entity.Account {
	account := &entity.Account{
		ID:          accountM.ID,
		Email:       accountM.Email,
		EmailDigest: accountM.EmailDigest,
		Type:        entity.AccountType(accountM.AccountType),
		CreatedAt:   accountM.CreatedAt,
		UpdatedAt:   accountM.UpdatedAt,
	}

	if accountM.UserProfile != nil {
		account.UserProfile = &entity.UserProfile{
			ID:             accountM.UserProfile.ID,
			AccountID:      accountM.UserProfile.AccountID,
			Nickname:       accountM.UserProfile.Nickname,
			Introduction:   accountM.UserProfile.Introduction,
			GenderCode:     accountM.UserProfile.GenderCode,
			AgeGroupCode:   accountM.UserProfile.AgeGroupCode,
			OccupationCode: accountM.UserProfile.OccupationCode,
			UpdatedAt:      accountM.UserProfile.UpdatedAt,
		}
	}

	if accountM.StoreProfile != nil {
		account.StoreProfile = &entity.StoreProfile{
			ID:           accountM.StoreProfile.ID,
			AccountID:    accountM.StoreProfile.AccountID,
			StoreName:    accountM.StoreProfile.StoreName,
			Introduction: accountM.StoreProfile.Introduction,
			StoreURL:     accountM.StoreProfile.StoreURL,
			UpdatedAt:    accountM.StoreProfile.UpdatedAt,
		}
	}

	return account
}
