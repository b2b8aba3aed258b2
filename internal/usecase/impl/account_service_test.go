package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	otp         *mockSvc.MockOTPProvider
	identity    *mockSvc.MockIdentityVerifier
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	otp := mockSvc.NewMockOTPProvider(t)
	identity := mockSvc.NewMockIdentityVerifier(t)

	svc := NewAccountService(AccountServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		OTP:         otp,
		Identity:    identity,
		Logger:      newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:     svc,
		txManager:   txManager,
		accountRepo: accountRepo,
		otp:         otp,
		identity:    identity,
	}
}

func (fx accountServiceFixtures) inTx(t *testing.T) {
	expectTx(t, fx.txManager, txRepos{accounts: fx.accountRepo})
}

func validCustomerInput() *usecase.RegisterCustomerInput {
	return &usecase.RegisterCustomerInput{
		DeviceID:  "device-1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Mobile:    "9876543210",
		Email:     " Ada@Example.com ",
		PinCode:   "560001",
		City:      "Bengaluru",
		State:     "Karnataka",
		Address:   "1 MG Road",
		OTP:       "123456",
	}
}

func TestAccountService_CreateGuest_New(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByDeviceID(ctx, "device-1").Return(nil, repository.ErrAccountNotFound)
	fx.inTx(t)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) { account.ID = uuid.New() }).
		Return(nil)

	out, err := fx.service.CreateGuest(ctx, "device-1")
	require.NoError(t, err)
	assert.True(t, out.Created)
	assert.Equal(t, entity.RoleGuest, out.Account.Role)
	assert.Equal(t, entity.StatusPending, out.Account.Status)
	assert.Equal(t, "device-1", entity.StringValue(out.Account.DeviceID))
	assert.True(t, out.Account.IsActive)
}

func TestAccountService_CreateGuest_ReplayReturnsExisting(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	existing := newAccount(entity.RoleCustomer, entity.StatusApproved)
	fx.accountRepo.EXPECT().FindByDeviceID(ctx, "device-1").Return(existing, nil)

	out, err := fx.service.CreateGuest(ctx, "device-1")
	require.NoError(t, err)
	assert.False(t, out.Created)
	assert.Same(t, existing, out.Account)
}

func TestAccountService_CreateGuest_ConcurrentInsertReturnsWinner(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	winner := newAccount(entity.RoleGuest, entity.StatusPending)
	fx.accountRepo.EXPECT().FindByDeviceID(ctx, "device-1").Return(nil, repository.ErrAccountNotFound).Once()
	fx.inTx(t)
	fx.accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(repository.ErrDuplicateDevice)
	fx.accountRepo.EXPECT().FindByDeviceID(ctx, "device-1").Return(winner, nil).Once()

	out, err := fx.service.CreateGuest(ctx, "device-1")
	require.NoError(t, err)
	assert.False(t, out.Created)
	assert.Equal(t, winner.ID, out.Account.ID)
}

func TestAccountService_CreateGuest_BlankDevice(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.CreateGuest(context.Background(), "  ")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidDeviceID)
}

func TestAccountService_RegisterCustomer_PromotesGuest(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	guest := newAccount(entity.RoleGuest, entity.StatusPending)
	guest.DeviceID = strPtr("device-1")

	fx.accountRepo.EXPECT().FindByDeviceID(ctx, "device-1").Return(guest, nil)
	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByMobile(ctx, "9876543210").Return(nil, repository.ErrAccountNotFound)
	fx.otp.EXPECT().Verify(ctx, "9876543210", "123456").Return(true, nil)
	fx.inTx(t)
	fx.accountRepo.EXPECT().FindByIDForUpdate(ctx, guest.ID).Return(guest, nil)
	fx.accountRepo.EXPECT().Update(ctx, guest).Return(nil)

	account, err := fx.service.RegisterCustomer(ctx, validCustomerInput())
	require.NoError(t, err)
	assert.Equal(t, guest.ID, account.ID)
	assert.Equal(t, entity.RoleCustomer, account.Role)
	assert.Equal(t, entity.StatusApproved, account.Status)
	assert.Equal(t, "ada@example.com", entity.StringValue(account.Email))
	assert.Equal(t, "device-1", entity.StringValue(account.DeviceID))
	assert.True(t, account.IsPhoneVerified)
}

func TestAccountService_RegisterCustomer_WithoutDevice(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	input := validCustomerInput()
	input.DeviceID = ""

	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByMobile(ctx, "9876543210").Return(nil, repository.ErrAccountNotFound)
	fx.otp.EXPECT().Verify(ctx, "9876543210", "123456").Return(true, nil)
	fx.inTx(t)
	fx.accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	account, err := fx.service.RegisterCustomer(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, account.Role)
	assert.Nil(t, account.DeviceID)
}

func TestAccountService_RegisterCustomer_MissingFields(t *testing.T) {
	fx := createTestAccountService(t)

	input := validCustomerInput()
	input.FirstName = ""
	input.City = " "

	_, err := fx.service.RegisterCustomer(context.Background(), input)
	require.ErrorIs(t, err, domainerrors.ErrRequiredFields)

	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "city, firstName", appErr.Details())
}

func TestAccountService_RegisterCustomer_InvalidMobile(t *testing.T) {
	fx := createTestAccountService(t)

	input := validCustomerInput()
	input.Mobile = "12345"

	_, err := fx.service.RegisterCustomer(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMobile)
}

func TestAccountService_RegisterCustomer_AlreadyRegisteredDevice(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	customer := newAccount(entity.RoleCustomer, entity.StatusApproved)
	fx.accountRepo.EXPECT().FindByDeviceID(ctx, "device-1").Return(customer, nil)

	_, err := fx.service.RegisterCustomer(ctx, validCustomerInput())
	assert.ErrorIs(t, err, domainerrors.ErrDeviceTaken)
}

func TestAccountService_RegisterCustomer_EmailTakenSkipsOTP(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	other := newAccount(entity.RoleCustomer, entity.StatusApproved)
	fx.accountRepo.EXPECT().FindByDeviceID(ctx, "device-1").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(other, nil)

	_, err := fx.service.RegisterCustomer(ctx, validCustomerInput())
	assert.ErrorIs(t, err, domainerrors.ErrAccountExists)
}

func TestAccountService_RegisterCustomer_MobileTakenSkipsOTP(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	other := newAccount(entity.RoleCustomer, entity.StatusApproved)
	fx.accountRepo.EXPECT().FindByDeviceID(ctx, "device-1").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByMobile(ctx, "9876543210").Return(other, nil)

	_, err := fx.service.RegisterCustomer(ctx, validCustomerInput())
	assert.ErrorIs(t, err, domainerrors.ErrAccountExists)
}

func TestAccountService_RegisterCustomer_RejectedOTP(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByDeviceID(ctx, "device-1").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByMobile(ctx, "9876543210").Return(nil, repository.ErrAccountNotFound)
	fx.otp.EXPECT().Verify(ctx, "9876543210", "123456").Return(false, nil)

	_, err := fx.service.RegisterCustomer(ctx, validCustomerInput())
	assert.ErrorIs(t, err, domainerrors.ErrOTPInvalid)
}

func TestAccountService_RegisterCustomer_OTPProviderFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByDeviceID(ctx, "device-1").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByMobile(ctx, "9876543210").Return(nil, repository.ErrAccountNotFound)
	fx.otp.EXPECT().Verify(ctx, "9876543210", "123456").Return(false, errors.New("gateway timeout"))

	_, err := fx.service.RegisterCustomer(ctx, validCustomerInput())
	assert.ErrorIs(t, err, domainerrors.ErrOTPProvider)
}

func TestAccountService_RegisterCustomer_WriteConflict(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByDeviceID(ctx, "device-1").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByMobile(ctx, "9876543210").Return(nil, repository.ErrAccountNotFound)
	fx.otp.EXPECT().Verify(ctx, "9876543210", "123456").Return(true, nil)
	fx.inTx(t)
	fx.accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(repository.ErrDuplicateMobile)

	_, err := fx.service.RegisterCustomer(ctx, validCustomerInput())
	assert.ErrorIs(t, err, domainerrors.ErrAccountExists)
}

func TestAccountService_RegisterVendor_NewApplicant(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	input := &usecase.RegisterVendorInput{
		RegisterCustomerInput: *validCustomerInput(),
		StoreInput:            usecase.StoreInput{StoreName: "Ada's Lamps", StoreAddress: "2 MG Road"},
	}
	input.DeviceID = ""

	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByMobile(ctx, "9876543210").Return(nil, repository.ErrAccountNotFound)
	fx.otp.EXPECT().Verify(ctx, "9876543210", "123456").Return(true, nil)
	fx.inTx(t)
	fx.accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	account, err := fx.service.RegisterVendor(ctx, input, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendorPending, account.Role)
	assert.Equal(t, entity.StatusPending, account.Status)
	assert.Equal(t, "Ada's Lamps", account.Store.Name)
}

func TestAccountService_RegisterVendor_MissingStoreFields(t *testing.T) {
	fx := createTestAccountService(t)

	input := &usecase.RegisterVendorInput{RegisterCustomerInput: *validCustomerInput()}

	_, err := fx.service.RegisterVendor(context.Background(), input, nil)
	require.ErrorIs(t, err, domainerrors.ErrRequiredFields)
	assert.Contains(t, err.Error(), "storeAddress, storeName")
}

func TestAccountService_RegisterVendor_CustomerCallerIsUpgraded(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	customer := newAccount(entity.RoleCustomer, entity.StatusApproved)
	customer.Mobile = strPtr("9123456780")

	input := &usecase.RegisterVendorInput{
		RegisterCustomerInput: usecase.RegisterCustomerInput{OTP: "654321"},
		StoreInput:            usecase.StoreInput{StoreName: "Ada's Lamps", StoreAddress: "2 MG Road"},
	}

	fx.accountRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	fx.otp.EXPECT().Verify(ctx, "9123456780", "654321").Return(true, nil)
	fx.inTx(t)
	fx.accountRepo.EXPECT().FindByIDForUpdate(ctx, customer.ID).Return(customer, nil)
	fx.accountRepo.EXPECT().Update(ctx, customer).Return(nil)

	account, err := fx.service.RegisterVendor(ctx, input, customer)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendorPending, account.Role)
	assert.Equal(t, "2 MG Road", account.Store.Address)
}

func TestAccountService_RegisterVendor_DeviceBelongsToAnotherAccount(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	caller := newAccount(entity.RoleUser, entity.StatusApproved)
	other := newAccount(entity.RoleGuest, entity.StatusPending)

	input := &usecase.RegisterVendorInput{
		RegisterCustomerInput: *validCustomerInput(),
		StoreInput:            usecase.StoreInput{StoreName: "Ada's Lamps", StoreAddress: "2 MG Road"},
	}

	fx.accountRepo.EXPECT().FindByDeviceID(ctx, "device-1").Return(other, nil)

	_, err := fx.service.RegisterVendor(ctx, input, caller)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceTaken)
}

func TestAccountService_RegisterVendor_ExistingVendorRejected(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	vendor := newAccount(entity.RoleVendor, entity.StatusLive)
	input := &usecase.RegisterVendorInput{
		RegisterCustomerInput: *validCustomerInput(),
		StoreInput:            usecase.StoreInput{StoreName: "Ada's Lamps", StoreAddress: "2 MG Road"},
	}

	fx.accountRepo.EXPECT().FindByDeviceID(ctx, "device-1").Return(vendor, nil)

	_, err := fx.service.RegisterVendor(ctx, input, nil)
	assert.ErrorIs(t, err, domainerrors.ErrAccountExists)
}

func TestAccountService_UpgradeToVendor_OnlyCustomers(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	guest := newAccount(entity.RoleGuest, entity.StatusPending)
	fx.accountRepo.EXPECT().FindByID(ctx, guest.ID).Return(guest, nil)

	_, err := fx.service.UpgradeToVendor(ctx, &usecase.UpgradeToVendorInput{
		AccountID:  guest.ID,
		StoreInput: usecase.StoreInput{StoreName: "Shop", StoreAddress: "Street"},
		OTP:        "123456",
	})
	assert.ErrorIs(t, err, domainerrors.ErrOnlyCustomersUpgrade)
}

func TestAccountService_UpgradeToVendor_NoMobileOnFile(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	customer := newAccount(entity.RoleCustomer, entity.StatusApproved)
	fx.accountRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

	_, err := fx.service.UpgradeToVendor(ctx, &usecase.UpgradeToVendorInput{
		AccountID:  customer.ID,
		StoreInput: usecase.StoreInput{StoreName: "Shop", StoreAddress: "Street"},
		OTP:        "123456",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_GetStatus_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.accountRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.GetStatus(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_SendOTP(t *testing.T) {
	tests := []struct {
		name    string
		mobile  string
		sendErr error
		wantErr error
	}{
		{name: "sent", mobile: "9876543210"},
		{name: "invalid mobile", mobile: "0123", wantErr: domainerrors.ErrInvalidMobile},
		{name: "provider failure", mobile: "9876543210", sendErr: errors.New("503"), wantErr: domainerrors.ErrOTPProvider},
		{name: "throttled passes through", mobile: "9876543210", sendErr: domainerrors.ErrOTPThrottled, wantErr: domainerrors.ErrOTPThrottled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)
			ctx := context.Background()

			if tt.wantErr != domainerrors.ErrInvalidMobile {
				fx.otp.EXPECT().Send(ctx, tt.mobile).Return(tt.sendErr)
			}

			err := fx.service.SendOTP(ctx, tt.mobile)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccountService_VerifyOTP(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.otp.EXPECT().Verify(ctx, "9876543210", "123456").Return(true, nil)

	require.NoError(t, fx.service.VerifyOTP(ctx, "9876543210", "123456"))
	assert.ErrorIs(t, fx.service.VerifyOTP(ctx, "9876543210", "12ab"), domainerrors.ErrOTPInvalid)
	assert.ErrorIs(t, fx.service.VerifyOTP(ctx, "", "123456"), domainerrors.ErrRequiredFields)
}

func TestAccountService_Login_ExistingIdentity(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	account := newAccount(entity.RoleUser, entity.StatusApproved)
	fx.identity.EXPECT().Verify(ctx, "token").Return(&service.VerifiedIdentity{
		Subject: "sub-1", Email: "ada@example.com", EmailVerified: true,
	}, nil)
	fx.accountRepo.EXPECT().FindByExternalID(ctx, "sub-1").Return(account, nil)
	fx.inTx(t)
	fx.accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().Update(ctx, account).Return(nil)

	out, err := fx.service.Login(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, usecase.LoginExisting, out.Outcome)
	assert.True(t, out.Account.IsEmailVerified)
}

func TestAccountService_Login_LinksAccountByEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	customer := newAccount(entity.RoleCustomer, entity.StatusApproved)
	customer.Email = strPtr("ada@example.com")

	fx.identity.EXPECT().Verify(ctx, "token").Return(&service.VerifiedIdentity{
		Subject: "sub-1", Email: "Ada@Example.com",
	}, nil)
	fx.accountRepo.EXPECT().FindByExternalID(ctx, "sub-1").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(customer, nil)
	fx.inTx(t)
	fx.accountRepo.EXPECT().FindByIDForUpdate(ctx, customer.ID).Return(customer, nil)
	fx.accountRepo.EXPECT().Update(ctx, customer).Return(nil)

	out, err := fx.service.Login(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, usecase.LoginLinked, out.Outcome)
	assert.Equal(t, "sub-1", entity.StringValue(out.Account.ExternalID))
	// Linking never demotes the account.
	assert.Equal(t, entity.RoleCustomer, out.Account.Role)
}

func TestAccountService_Login_CreatesUser(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.identity.EXPECT().Verify(ctx, "token").Return(&service.VerifiedIdentity{
		Subject: "sub-1", Email: "ada@example.com", Name: "Ada King Lovelace", EmailVerified: true,
	}, nil)
	fx.accountRepo.EXPECT().FindByExternalID(ctx, "sub-1").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.inTx(t)
	fx.accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	out, err := fx.service.Login(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, usecase.LoginCreated, out.Outcome)
	assert.Equal(t, entity.RoleUser, out.Account.Role)
	assert.Equal(t, entity.StatusApproved, out.Account.Status)
	assert.Equal(t, "Ada", out.Account.FirstName)
	assert.Equal(t, "King Lovelace", out.Account.LastName)
	assert.True(t, out.Account.IsEmailVerified)
}

func TestAccountService_Login_EmailLinkedToOtherIdentity(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	owner := newAccount(entity.RoleUser, entity.StatusApproved)
	owner.ExternalID = strPtr("sub-other")

	fx.identity.EXPECT().Verify(ctx, "token").Return(&service.VerifiedIdentity{Subject: "sub-1", Email: "ada@example.com"}, nil)
	fx.accountRepo.EXPECT().FindByExternalID(ctx, "sub-1").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(owner, nil)

	_, err := fx.service.Login(ctx, "token")
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestAccountService_Login_CredentialErrors(t *testing.T) {
	tests := []struct {
		name      string
		verifyErr error
		wantErr   error
	}{
		{name: "expired", verifyErr: service.ErrCredentialExpired, wantErr: domainerrors.ErrTokenExpired},
		{name: "invalid", verifyErr: service.ErrCredentialInvalid, wantErr: domainerrors.ErrTokenInvalid},
		{name: "provider down", verifyErr: errors.New("connection refused"), wantErr: domainerrors.ErrIdentityProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)
			ctx := context.Background()

			fx.identity.EXPECT().Verify(ctx, "token").Return(nil, tt.verifyErr)

			_, err := fx.service.Login(ctx, "token")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccountService_Login_MissingCredential(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.Login(context.Background(), " ")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAccountService_ResolveCaller(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	active := newAccount(entity.RoleCustomer, entity.StatusApproved)
	inactive := newAccount(entity.RoleCustomer, entity.StatusApproved)
	inactive.IsActive = false

	fx.identity.EXPECT().Verify(ctx, "active").Return(&service.VerifiedIdentity{Subject: "sub-active"}, nil)
	fx.identity.EXPECT().Verify(ctx, "inactive").Return(&service.VerifiedIdentity{Subject: "sub-inactive"}, nil)
	fx.identity.EXPECT().Verify(ctx, "unknown").Return(&service.VerifiedIdentity{Subject: "sub-unknown"}, nil)
	fx.accountRepo.EXPECT().FindByExternalID(ctx, "sub-active").Return(active, nil)
	fx.accountRepo.EXPECT().FindByExternalID(ctx, "sub-inactive").Return(inactive, nil)
	fx.accountRepo.EXPECT().FindByExternalID(ctx, "sub-unknown").Return(nil, repository.ErrAccountNotFound)

	account, err := fx.service.ResolveCaller(ctx, "active")
	require.NoError(t, err)
	assert.Equal(t, active.ID, account.ID)

	_, err = fx.service.ResolveCaller(ctx, "inactive")
	assert.ErrorIs(t, err, domainerrors.ErrAccountDeactivated)

	_, err = fx.service.ResolveCaller(ctx, "unknown")
	assert.ErrorIs(t, err, domainerrors.ErrUnregistered)
}
