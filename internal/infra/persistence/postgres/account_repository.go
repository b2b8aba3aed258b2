package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/policy"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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

// Create persists a new account.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if !policy.IsReachable(account.Role, account.Status) {
		return repository.ErrIllegalAccountState
	}

	accountM := fromAccountDomain(account)
	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		return translateAccountWriteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update writes every mutable column of the account.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	if !policy.IsReachable(account.Role, account.Status) {
		return repository.ErrIllegalAccountState
	}

	account.UpdatedAt = time.Now()
	accountM := fromAccountDomain(account)

	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{ID: account.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(accountM)
	if result.Error != nil {
		return translateAccountWriteError(result.Error, "failed to update account")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ?", id), "failed to find account by ID")
}

// FindByIDForUpdate takes a row lock so concurrent decisions on the same account serialise.
func (repo *accountRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(
		repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id),
		"failed to lock account",
	)
}

func (repo *accountRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.Account, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("external_id = ?", externalID), "failed to find account by external ID")
}

func (repo *accountRepository) FindByDeviceID(ctx context.Context, deviceID string) (*entity.Account, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("device_id = ?", deviceID), "failed to find account by device ID")
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("email = ?", email), "failed to find account by email")
}

func (repo *accountRepository) FindByMobile(ctx context.Context, mobile string) (*entity.Account, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("mobile = ?", mobile), "failed to find account by mobile")
}

// List returns one page of accounts, oldest first.
func (repo *accountRepository) List(ctx context.Context, filter repository.AccountFilter, page entity.PageRequest) ([]*entity.Account, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if filter.Role != nil {
			db = db.Where("role = ?", filter.Role.String())
		}
		if filter.Status != nil {
			db = db.Where("status = ?", filter.Status.String())
		}

		return db
	}

	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Scopes(scope).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count accounts")
	}

	var accountModels []*model.AccountModel
	if err := repo.db.WithContext(ctx).
		Scopes(scope).
		Order("created_at ASC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&accountModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, total, nil
}

func (repo *accountRepository) findOne(query *gorm.DB, details string) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := query.First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, details)
	}

	return toAccountDomain(&accountM), nil
}

func translateAccountWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return uniqueViolationError(err)
	case isCheckConstraintViolation(err):
		return repository.ErrIllegalAccountState
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrRequiredFields.WrapMessage(details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// --- Mapper Functions ---

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:         data.ID,
		ExternalID: data.ExternalID,
		DeviceID:   data.DeviceID,
		Email:      data.Email,
		Mobile:     data.Mobile,
		Role:       entity.Role(data.Role),
		Status:     entity.Status(data.Status),
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		PinCode:    data.PinCode,
		City:       data.City,
		State:      data.State,
		Address:    data.Address,
		Store: entity.StoreProfile{
			Name:         data.StoreName,
			Address:      data.StoreAddress,
			FacebookURL:  data.FacebookURL,
			InstagramURL: data.InstagramURL,
			YoutubeURL:   data.YoutubeURL,
		},
		ProfilePhoto:    toMediaRef(data.ProfilePhotoURL, data.ProfilePhotoKey),
		CoverPhoto:      toMediaRef(data.CoverPhotoURL, data.CoverPhotoKey),
		IsEmailVerified: data.IsEmailVerified,
		IsPhoneVerified: data.IsPhoneVerified,
		IsActive:        data.IsActive,
		ReviewedAt:      data.ReviewedAt,
		ReviewNote:      data.ReviewNote,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	profileURL, profileKey := fromMediaRef(data.ProfilePhoto)
	coverURL, coverKey := fromMediaRef(data.CoverPhoto)

	return &model.AccountModel{
		ID:              data.ID,
		ExternalID:      data.ExternalID,
		DeviceID:        data.DeviceID,
		Email:           data.Email,
		Mobile:          data.Mobile,
		Role:            data.Role.String(),
		Status:          data.Status.String(),
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		PinCode:         data.PinCode,
		City:            data.City,
		State:           data.State,
		Address:         data.Address,
		StoreName:       data.Store.Name,
		StoreAddress:    data.Store.Address,
		FacebookURL:     data.Store.FacebookURL,
		InstagramURL:    data.Store.InstagramURL,
		YoutubeURL:      data.Store.YoutubeURL,
		ProfilePhotoURL: profileURL,
		ProfilePhotoKey: profileKey,
		CoverPhotoURL:   coverURL,
		CoverPhotoKey:   coverKey,
		IsEmailVerified: data.IsEmailVerified,
		IsPhoneVerified: data.IsPhoneVerified,
		IsActive:        data.IsActive,
		ReviewedAt:      data.ReviewedAt,
		ReviewNote:      data.ReviewNote,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toMediaRef(url, key string) *entity.MediaRef {
	if url == "" {
		return nil
	}

	return &entity.MediaRef{URL: url, Key: key}
}

func fromMediaRef(ref *entity.MediaRef) (url, key string) {
	if ref == nil {
		return "", ""
	}

	return ref.URL, ref.Key
}
