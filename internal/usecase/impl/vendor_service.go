package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/policy"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/domain/validation"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	profilePhotoFolder = "vendors/profile"
	coverPhotoFolder   = "vendors/cover"
)

type vendorService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	storage     service.ObjectStorage
	publisher   service.EventPublisher
	notifier    service.NotificationService
	qrCode      service.QRCodeService
	limits      pageLimits
	logger      *slog.Logger
	now         func() time.Time
}

// VendorServiceParams holds dependencies for VendorService, injected by Fx.
type VendorServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Storage     service.ObjectStorage
	Publisher   service.EventPublisher
	Notifier    service.NotificationService
	QRCode      service.QRCodeService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewVendorService is the constructor for vendorService.
func NewVendorService(params VendorServiceParams) usecase.VendorUsecase {
	return &vendorService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		storage:     params.Storage,
		publisher:   params.Publisher,
		notifier:    params.Notifier,
		qrCode:      params.QRCode,
		limits:      newPageLimits(params.Config),
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *vendorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdateProfile stages new photos in object storage, commits the profile and deletes the staged
// photos again if the commit fails. Replaced photos are removed once the commit succeeds.
func (srv *vendorService) UpdateProfile(
	ctx context.Context,
	vendorID uuid.UUID,
	input *usecase.UpdateVendorInput,
) (*entity.Account, error) {
	if err := validateVendorUpdate(input); err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, findAccountError(err, domainerrors.ErrAccountNotFound)
	}
	if _, err := policy.Decide(policy.UpdateVendorProfile, policy.StateOf(account), ""); err != nil {
		return nil, err
	}

	profilePhoto, err := srv.stage(ctx, profilePhotoFolder, input.ProfilePhoto)
	if err != nil {
		return nil, err
	}
	coverPhoto, err := srv.stage(ctx, coverPhotoFolder, input.CoverPhoto)
	if err != nil {
		discardObjects(ctx, srv.log(ctx), srv.storage, objectKey(profilePhoto))

		return nil, err
	}

	var (
		updated  *entity.Account
		replaced []string
	)

	err = commitOrCompensate(ctx, srv.log(ctx), srv.storage, []*service.StoredObject{profilePhoto, coverPhoto}, func() error {
		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			accountRepo := repoFactory.NewAccountRepository()

			locked, err := accountRepo.FindByIDForUpdate(ctx, vendorID)
			if err != nil {
				return findAccountError(err, domainerrors.ErrAccountNotFound)
			}
			if _, err := policy.Decide(policy.UpdateVendorProfile, policy.StateOf(locked), ""); err != nil {
				return err
			}

			applyVendorUpdate(locked, input)

			replaced = replaced[:0]
			if profilePhoto != nil {
				replaced = appendMediaKey(replaced, locked.ProfilePhoto)
				locked.ProfilePhoto = &entity.MediaRef{URL: profilePhoto.URL, Key: profilePhoto.Key}
			}
			if coverPhoto != nil {
				replaced = appendMediaKey(replaced, locked.CoverPhoto)
				locked.CoverPhoto = &entity.MediaRef{URL: coverPhoto.URL, Key: coverPhoto.Key}
			}

			if err := accountRepo.Update(ctx, locked); err != nil {
				return accountWriteError(err)
			}
			updated = locked

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	discardObjects(ctx, srv.log(ctx), srv.storage, replaced...)
	srv.log(ctx).Info("Vendor profile updated", slog.String("account_id", vendorID.String()))

	return updated, nil
}

// ListPending pages through vendor applications, oldest first.
func (srv *vendorService) ListPending(ctx context.Context, page entity.PageRequest) (*usecase.AccountPage, error) {
	page = srv.limits.normalize(page)
	role, status := entity.RoleVendorPending, entity.StatusPending

	accounts, total, err := srv.accountRepo.List(ctx, repository.AccountFilter{Role: &role, Status: &status}, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending vendors")
	}

	return &usecase.AccountPage{Accounts: accounts, Pagination: entity.NewPagination(page, total)}, nil
}

// Decide applies an admin decision to a pending application. The event and push notification are
// sent after commit and never fail the decision.
func (srv *vendorService) Decide(
	ctx context.Context,
	admin *entity.Account,
	input *usecase.VendorDecisionInput,
) (*entity.Account, error) {
	action, err := policy.ParseModerationAction(input.Action)
	if err != nil {
		return nil, err
	}
	transition, err := policy.VendorTransition(action)
	if err != nil {
		return nil, err
	}

	var actorRole entity.Role
	if admin != nil {
		actorRole = admin.Role
	}

	var (
		decided *entity.Account
		plan    *policy.Plan
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := accountRepo.FindByIDForUpdate(ctx, input.VendorID)
		if err != nil {
			return findAccountError(err, domainerrors.ErrAccountNotFound)
		}

		plan, err = policy.Decide(transition, policy.StateOf(account), actorRole)
		if err != nil {
			return err
		}

		account.Role, account.Status = plan.To.Role, plan.To.Status
		if plan.StampReview {
			reviewedAt := srv.now()
			account.ReviewedAt = &reviewedAt
			account.ReviewNote = strings.TrimSpace(input.Note)
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			return accountWriteError(err)
		}
		decided = account

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Vendor application decided",
		slog.String("account_id", decided.ID.String()),
		slog.String("action", string(action)),
	)

	srv.announceDecision(ctx, admin, decided, plan, action)

	return decided, nil
}

// StorefrontQR renders the public storefront link of a live vendor.
func (srv *vendorService) StorefrontQR(ctx context.Context, vendorID uuid.UUID) (*usecase.StorefrontQROutput, error) {
	account, err := srv.accountRepo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, findAccountError(err, domainerrors.ErrAccountNotFound)
	}

	if account.Role != entity.RoleVendor || account.Status != entity.StatusLive {
		if account.Role == entity.RoleVendorPending || account.Role == entity.RoleVendor {
			return nil, policy.ApprovalPending(*policy.StateOf(account))
		}

		return nil, domainerrors.ErrForbidden.WithMessage("Only vendors have a storefront")
	}

	png, err := srv.qrCode.GenerateStorefrontQR(vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate storefront QR code")
	}

	return &usecase.StorefrontQROutput{URL: srv.qrCode.StorefrontURL(vendorID), PNG: png}, nil
}

func (srv *vendorService) stage(ctx context.Context, folder string, file *usecase.FileInput) (*service.StoredObject, error) {
	if file == nil {
		return nil, nil
	}

	stored, err := srv.storage.Upload(ctx, service.Upload{
		Folder:      folder,
		Filename:    file.Filename,
		ContentType: file.ContentType,
		Data:        file.Data,
	})
	if err != nil {
		return nil, providerError(srv.log(ctx), err, domainerrors.ErrStorageFailed, "Failed to upload vendor photo")
	}

	return stored, nil
}

func (srv *vendorService) announceDecision(
	ctx context.Context,
	admin *entity.Account,
	vendor *entity.Account,
	plan *policy.Plan,
	action policy.ModerationAction,
) {
	if plan.Event != "" {
		event := &service.DomainEvent{
			ID:          uuid.NewString(),
			Type:        plan.Event,
			RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
			AggregateID: vendor.ID.String(),
			OccurredAt:  srv.now().UTC(),
			Attributes: map[string]string{
				"role":   vendor.Role.String(),
				"status": vendor.Status.String(),
			},
		}
		if admin != nil {
			event.ActorID = admin.ID.String()
		}
		if vendor.ReviewNote != "" {
			event.Attributes["note"] = vendor.ReviewNote
		}

		if err := srv.publisher.Publish(ctx, event); err != nil {
			srv.log(ctx).Warn("Failed to publish vendor decision", slog.String("event", plan.Event), slog.Any("error", err))
		}
	}

	title, body := "Application approved", "Your store is now live."
	if action == policy.ActionReject {
		title, body = "Application not approved", "Your vendor application was not approved."
		if vendor.ReviewNote != "" {
			body += " " + vendor.ReviewNote
		}
	}

	data := map[string]string{"type": plan.Event, "status": vendor.Status.APIName()}
	if err := srv.notifier.SendToTopic(ctx, service.VendorTopic(vendor.ID.String()), title, body, data); err != nil {
		srv.log(ctx).Warn("Failed to notify vendor", slog.String("account_id", vendor.ID.String()), slog.Any("error", err))
	}
}

func validateVendorUpdate(input *usecase.UpdateVendorInput) error {
	if input.Email != nil {
		if err := validation.Email(strings.TrimSpace(*input.Email)); err != nil {
			return err
		}
	}
	if input.Mobile != nil {
		if err := validation.Mobile(strings.TrimSpace(*input.Mobile)); err != nil {
			return err
		}
	}
	if input.StoreName != nil && strings.TrimSpace(*input.StoreName) == "" {
		return domainerrors.ErrRequiredFields.WithDetails("storeName")
	}
	if input.StoreAddress != nil && strings.TrimSpace(*input.StoreAddress) == "" {
		return domainerrors.ErrRequiredFields.WithDetails("storeAddress")
	}

	return nil
}

func applyVendorUpdate(account *entity.Account, input *usecase.UpdateVendorInput) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}

	set(&account.FirstName, input.FirstName)
	set(&account.LastName, input.LastName)
	set(&account.PinCode, input.PinCode)
	set(&account.City, input.City)
	set(&account.State, input.State)
	set(&account.Address, input.Address)
	set(&account.Store.Name, input.StoreName)
	set(&account.Store.Address, input.StoreAddress)
	set(&account.Store.FacebookURL, input.FacebookURL)
	set(&account.Store.InstagramURL, input.InstagramURL)
	set(&account.Store.YoutubeURL, input.YoutubeURL)

	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email != entity.StringValue(account.Email) {
			account.IsEmailVerified = false
		}
		account.Email = entity.StringPtr(email)
	}
	if input.Mobile != nil {
		mobile := strings.TrimSpace(*input.Mobile)
		if mobile != entity.StringValue(account.Mobile) {
			account.IsPhoneVerified = false
		}
		account.Mobile = entity.StringPtr(mobile)
	}
}

func appendMediaKey(keys []string, ref *entity.MediaRef) []string {
	if ref == nil || ref.Key == "" {
		return keys
	}

	return append(keys, ref.Key)
}

func objectKey(obj *service.StoredObject) string {
	if obj == nil {
		return ""
	}

	return obj.Key
}
