// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

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

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	otp         service.OTPProvider
	identity    service.IdentityVerifier
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	OTP         service.OTPProvider
	Identity    service.IdentityVerifier
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		otp:         params.OTP,
		identity:    params.Identity,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateGuest bootstraps a guest account for the device. Replays return the stored account.
func (srv *accountService) CreateGuest(ctx context.Context, deviceID string) (*usecase.GuestOutput, error) {
	if err := validation.DeviceID(deviceID); err != nil {
		return nil, err
	}
	deviceID = strings.TrimSpace(deviceID)

	existing, err := srv.findByDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		srv.log(ctx).Debug("Guest already exists", slog.String("account_id", existing.ID.String()))

		return &usecase.GuestOutput{Account: existing}, nil
	}

	account, err := srv.commitTransition(ctx, policy.Bootstrap, nil, func(account *entity.Account) {
		account.DeviceID = &deviceID
	})
	if err != nil {
		// A concurrent bootstrap for the same device won the insert.
		if errors.Is(err, domainerrors.ErrDeviceTaken) {
			if existing, findErr := srv.findByDevice(ctx, deviceID); findErr == nil && existing != nil {
				return &usecase.GuestOutput{Account: existing}, nil
			}
		}

		return nil, err
	}

	srv.log(ctx).Info("Guest created", slog.String("account_id", account.ID.String()))

	return &usecase.GuestOutput{Account: account, Created: true}, nil
}

// RegisterCustomer signs up a customer, promoting the device's guest record when one exists.
func (srv *accountService) RegisterCustomer(ctx context.Context, input *usecase.RegisterCustomerInput) (*entity.Account, error) {
	form := normalizeRegistration(input)
	if err := validateRegistration(&form, nil); err != nil {
		return nil, err
	}

	current, err := srv.findByDevice(ctx, form.DeviceID)
	if err != nil {
		return nil, err
	}

	if _, err := policy.Decide(policy.RegisterCustomer, policy.StateOf(current), ""); err != nil {
		return nil, err
	}

	if err := srv.ensureContactsAvailable(ctx, form.Email, form.Mobile, current); err != nil {
		return nil, err
	}

	if err := srv.verifyOTP(ctx, form.Mobile, form.OTP); err != nil {
		return nil, err
	}

	account, err := srv.commitTransition(ctx, policy.RegisterCustomer, accountIDOf(current), func(account *entity.Account) {
		applyRegistration(account, &form)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Customer registered", slog.String("account_id", account.ID.String()))

	return account, nil
}

// RegisterVendor submits a vendor application. Authenticated customers take the upgrade path so the
// code is checked against their stored mobile.
func (srv *accountService) RegisterVendor(
	ctx context.Context,
	input *usecase.RegisterVendorInput,
	caller *entity.Account,
) (*entity.Account, error) {
	if caller != nil && caller.Role == entity.RoleCustomer {
		return srv.UpgradeToVendor(ctx, &usecase.UpgradeToVendorInput{
			AccountID:  caller.ID,
			StoreInput: input.StoreInput,
			OTP:        input.OTP,
		})
	}

	form := normalizeRegistration(&input.RegisterCustomerInput)
	store := normalizeStore(input.StoreInput)
	if err := validateRegistration(&form, &store); err != nil {
		return nil, err
	}

	current := caller
	if current == nil {
		var err error
		if current, err = srv.findByDevice(ctx, form.DeviceID); err != nil {
			return nil, err
		}
	} else if form.DeviceID != "" {
		other, err := srv.findByDevice(ctx, form.DeviceID)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != current.ID {
			return nil, domainerrors.ErrDeviceTaken
		}
	}

	if _, err := policy.Decide(policy.SubmitVendorApplication, policy.StateOf(current), ""); err != nil {
		return nil, err
	}

	if err := srv.ensureContactsAvailable(ctx, form.Email, form.Mobile, current); err != nil {
		return nil, err
	}

	if err := srv.verifyOTP(ctx, form.Mobile, form.OTP); err != nil {
		return nil, err
	}

	account, err := srv.commitTransition(ctx, policy.SubmitVendorApplication, accountIDOf(current), func(account *entity.Account) {
		applyRegistration(account, &form)
		applyStore(account, store)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Vendor application submitted", slog.String("account_id", account.ID.String()))

	return account, nil
}

// UpgradeToVendor moves a customer to VENDOR_PENDING. The code is checked against the mobile on
// file, never one supplied with the request.
func (srv *accountService) UpgradeToVendor(ctx context.Context, input *usecase.UpgradeToVendorInput) (*entity.Account, error) {
	store := normalizeStore(input.StoreInput)
	code := strings.TrimSpace(input.OTP)

	if err := validation.Required(map[string]string{
		"storeName":    store.StoreName,
		"storeAddress": store.StoreAddress,
		"otp":          code,
	}); err != nil {
		return nil, err
	}
	if err := validation.OTP(code); err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		return nil, findAccountError(err, domainerrors.ErrAccountNotFound)
	}

	plan, err := policy.Decide(policy.UpgradeToVendor, policy.StateOf(account), "")
	if err != nil {
		return nil, err
	}

	if plan.OTP == policy.OTPAccountMobile {
		mobile := entity.StringValue(account.Mobile)
		if mobile == "" {
			return nil, domainerrors.ErrValidationFailed.WithMessage("No mobile number on file for OTP verification")
		}
		if err := srv.verifyOTP(ctx, mobile, code); err != nil {
			return nil, err
		}
	}

	upgraded, err := srv.commitTransition(ctx, policy.UpgradeToVendor, &account.ID, func(account *entity.Account) {
		applyStore(account, store)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Customer upgraded to vendor applicant", slog.String("account_id", upgraded.ID.String()))

	return upgraded, nil
}

// GetStatus looks up the role and status of an account.
func (srv *accountService) GetStatus(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, findAccountError(err, domainerrors.ErrAccountNotFound)
	}

	return account, nil
}

// SendOTP dispatches a code to mobile.
func (srv *accountService) SendOTP(ctx context.Context, mobile string) error {
	mobile = strings.TrimSpace(mobile)
	if err := validation.Mobile(mobile); err != nil {
		return err
	}

	if err := srv.otp.Send(ctx, mobile); err != nil {
		return providerError(srv.log(ctx), err, domainerrors.ErrOTPProvider, "Failed to send OTP")
	}

	return nil
}

// VerifyOTP checks a code without changing any account.
func (srv *accountService) VerifyOTP(ctx context.Context, mobile, code string) error {
	mobile, code = strings.TrimSpace(mobile), strings.TrimSpace(code)
	if err := validation.Required(map[string]string{"mobile": mobile, "otp": code}); err != nil {
		return err
	}
	if err := validation.Mobile(mobile); err != nil {
		return err
	}
	if err := validation.OTP(code); err != nil {
		return err
	}

	return srv.verifyOTP(ctx, mobile, code)
}

// Login signs in the verified identity: a linked account is refreshed, an account with the same
// email is linked, otherwise a USER account is created.
func (srv *accountService) Login(ctx context.Context, credential string) (*usecase.LoginOutput, error) {
	identity, err := srv.verifyCredential(ctx, credential)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(identity.Email))
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Email is required from identity account")
	}
	if err := validation.Email(email); err != nil {
		return nil, err
	}

	markVerified := func(account *entity.Account) {
		account.IsEmailVerified = identity.EmailVerified
	}

	linked, err := srv.accountRepo.FindByExternalID(ctx, identity.Subject)
	switch {
	case err == nil:
		account, err := srv.commitTransition(ctx, policy.VerifyIdentity, &linked.ID, markVerified)
		if err != nil {
			return nil, err
		}

		return &usecase.LoginOutput{Account: account, Outcome: usecase.LoginExisting}, nil
	case !errors.Is(err, repository.ErrAccountNotFound):
		return nil, errors.Wrap(err, "failed to find account by identity")
	}

	byEmail, err := srv.accountRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if byEmail.ExternalID != nil {
			return nil, domainerrors.ErrConflict.WithMessage("Email is linked to another identity")
		}

		account, err := srv.commitTransition(ctx, policy.VerifyIdentity, &byEmail.ID, func(account *entity.Account) {
			account.ExternalID = &identity.Subject
			markVerified(account)
		})
		if err != nil {
			return nil, err
		}
		srv.log(ctx).Info("Identity linked to existing account", slog.String("account_id", account.ID.String()))

		return &usecase.LoginOutput{Account: account, Outcome: usecase.LoginLinked}, nil
	case !errors.Is(err, repository.ErrAccountNotFound):
		return nil, errors.Wrap(err, "failed to find account by email")
	}

	firstName, lastName := validation.SplitDisplayName(identity.Name)
	account, err := srv.commitTransition(ctx, policy.VerifyIdentity, nil, func(account *entity.Account) {
		account.ExternalID = &identity.Subject
		account.Email = &email
		account.FirstName = firstName
		account.LastName = lastName
		markVerified(account)
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Account created from identity", slog.String("account_id", account.ID.String()))

	return &usecase.LoginOutput{Account: account, Outcome: usecase.LoginCreated}, nil
}

// ResolveCaller maps a bearer credential onto an active, registered account.
func (srv *accountService) ResolveCaller(ctx context.Context, credential string) (*entity.Account, error) {
	identity, err := srv.verifyCredential(ctx, credential)
	if err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByExternalID(ctx, identity.Subject)
	if err != nil {
		return nil, findAccountError(err, domainerrors.ErrUnregistered)
	}

	if !account.IsActive {
		return nil, domainerrors.ErrAccountDeactivated
	}

	return account, nil
}

// Profile reloads the caller's account.
func (srv *accountService) Profile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, findAccountError(err, domainerrors.ErrAccountNotFound)
	}

	return account, nil
}

// Logout has no server-side session to revoke; credentials are discarded by the client.
func (srv *accountService) Logout(ctx context.Context, account *entity.Account) error {
	if account != nil {
		srv.log(ctx).Info("Account logged out", slog.String("account_id", account.ID.String()))
	}

	return nil
}

// --- helpers ---

// commitTransition re-evaluates t against the locked account row, or against no account when
// accountID is nil, applies mutate and writes the result in one transaction.
func (srv *accountService) commitTransition(
	ctx context.Context,
	t policy.Transition,
	accountID *uuid.UUID,
	mutate func(*entity.Account),
) (*entity.Account, error) {
	var saved *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account := &entity.Account{IsActive: true}
		var current *policy.State
		if accountID != nil {
			locked, err := accountRepo.FindByIDForUpdate(ctx, *accountID)
			if err != nil {
				return findAccountError(err, domainerrors.ErrAccountNotFound)
			}
			account = locked
			current = policy.StateOf(locked)
		}

		plan, err := policy.Decide(t, current, "")
		if err != nil {
			return err
		}

		mutate(account)
		account.Role, account.Status = plan.To.Role, plan.To.Status

		if accountID == nil {
			err = accountRepo.Create(ctx, account)
		} else {
			err = accountRepo.Update(ctx, account)
		}
		if err != nil {
			return accountWriteError(err)
		}

		saved = account

		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// findByDevice returns the account bound to deviceID, or nil when there is none.
func (srv *accountService) findByDevice(ctx context.Context, deviceID string) (*entity.Account, error) {
	if deviceID == "" {
		return nil, nil
	}

	account, err := srv.accountRepo.FindByDeviceID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find account by device")
	}

	return account, nil
}

// ensureContactsAvailable fails when email or mobile belongs to an account other than self.
func (srv *accountService) ensureContactsAvailable(ctx context.Context, email, mobile string, self *entity.Account) error {
	lookups := []struct {
		value string
		find  func(context.Context, string) (*entity.Account, error)
	}{
		{email, srv.accountRepo.FindByEmail},
		{mobile, srv.accountRepo.FindByMobile},
	}

	for _, lookup := range lookups {
		found, err := lookup.find(ctx, lookup.value)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				continue
			}

			return errors.Wrap(err, "failed to check existing account")
		}
		if self == nil || found.ID != self.ID {
			return domainerrors.ErrAccountExists
		}
	}

	return nil
}

func (srv *accountService) verifyOTP(ctx context.Context, mobile, code string) error {
	ok, err := srv.otp.Verify(ctx, mobile, code)
	if err != nil {
		return providerError(srv.log(ctx), err, domainerrors.ErrOTPProvider, "Failed to verify OTP")
	}
	if !ok {
		return domainerrors.ErrOTPInvalid
	}

	return nil
}

func (srv *accountService) verifyCredential(ctx context.Context, credential string) (*service.VerifiedIdentity, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	identity, err := srv.identity.Verify(ctx, credential)
	switch {
	case err == nil:
		return identity, nil
	case errors.Is(err, service.ErrCredentialExpired):
		return nil, domainerrors.ErrTokenExpired
	case errors.Is(err, service.ErrCredentialInvalid):
		return nil, domainerrors.ErrTokenInvalid
	default:
		return nil, providerError(srv.log(ctx), err, domainerrors.ErrIdentityProvider, "Identity verification failed")
	}
}

func accountIDOf(account *entity.Account) *uuid.UUID {
	if account == nil {
		return nil
	}

	return &account.ID
}

func normalizeRegistration(input *usecase.RegisterCustomerInput) usecase.RegisterCustomerInput {
	return usecase.RegisterCustomerInput{
		DeviceID:  strings.TrimSpace(input.DeviceID),
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Mobile:    strings.TrimSpace(input.Mobile),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		PinCode:   strings.TrimSpace(input.PinCode),
		City:      strings.TrimSpace(input.City),
		State:     strings.TrimSpace(input.State),
		Address:   strings.TrimSpace(input.Address),
		OTP:       strings.TrimSpace(input.OTP),
	}
}

func normalizeStore(input usecase.StoreInput) usecase.StoreInput {
	return usecase.StoreInput{
		StoreName:    strings.TrimSpace(input.StoreName),
		StoreAddress: strings.TrimSpace(input.StoreAddress),
		FacebookURL:  strings.TrimSpace(input.FacebookURL),
		InstagramURL: strings.TrimSpace(input.InstagramURL),
		YoutubeURL:   strings.TrimSpace(input.YoutubeURL),
	}
}

// validateRegistration checks presence first, then formats. store is nil for customer sign-up.
func validateRegistration(form *usecase.RegisterCustomerInput, store *usecase.StoreInput) error {
	required := map[string]string{
		"firstName": form.FirstName,
		"lastName":  form.LastName,
		"mobile":    form.Mobile,
		"email":     form.Email,
		"pinCode":   form.PinCode,
		"city":      form.City,
		"state":     form.State,
		"address":   form.Address,
		"otp":       form.OTP,
	}
	if store != nil {
		required["storeName"] = store.StoreName
		required["storeAddress"] = store.StoreAddress
	}
	if err := validation.Required(required); err != nil {
		return err
	}

	if err := validation.Email(form.Email); err != nil {
		return err
	}
	if err := validation.Mobile(form.Mobile); err != nil {
		return err
	}

	return validation.OTP(form.OTP)
}

func applyRegistration(account *entity.Account, form *usecase.RegisterCustomerInput) {
	if account.DeviceID == nil {
		account.DeviceID = entity.StringPtr(form.DeviceID)
	}
	account.FirstName = form.FirstName
	account.LastName = form.LastName
	account.Email = entity.StringPtr(form.Email)
	account.Mobile = entity.StringPtr(form.Mobile)
	account.PinCode = form.PinCode
	account.City = form.City
	account.State = form.State
	account.Address = form.Address
	account.IsPhoneVerified = true
}

func applyStore(account *entity.Account, store usecase.StoreInput) {
	account.Store = entity.StoreProfile{
		Name:         store.StoreName,
		Address:      store.StoreAddress,
		FacebookURL:  store.FacebookURL,
		InstagramURL: store.InstagramURL,
		YoutubeURL:   store.YoutubeURL,
	}
}
