package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/policy"
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

var vendorTestNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// vendorServiceFixtures holds all test dependencies for vendor service tests.
type vendorServiceFixtures struct {
	service     usecase.VendorUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	storage     *mockSvc.MockObjectStorage
	publisher   *mockSvc.MockEventPublisher
	notifier    *mockSvc.MockNotificationService
	qrCode      *mockSvc.MockQRCodeService
}

func createTestVendorService(t *testing.T) vendorServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	storage := mockSvc.NewMockObjectStorage(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	notifier := mockSvc.NewMockNotificationService(t)
	qrCode := mockSvc.NewMockQRCodeService(t)

	svc := NewVendorService(VendorServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		Storage:     storage,
		Publisher:   publisher,
		Notifier:    notifier,
		QRCode:      qrCode,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
	svc.(*vendorService).now = func() time.Time { return vendorTestNow }

	return vendorServiceFixtures{
		service:     svc,
		txManager:   txManager,
		accountRepo: accountRepo,
		storage:     storage,
		publisher:   publisher,
		notifier:    notifier,
		qrCode:      qrCode,
	}
}

func (fx vendorServiceFixtures) inTx(t *testing.T) {
	expectTx(t, fx.txManager, txRepos{accounts: fx.accountRepo})
}

func liveVendor() *entity.Account {
	vendor := newAccount(entity.RoleVendor, entity.StatusLive)
	vendor.Email = strPtr("shop@example.com")
	vendor.IsEmailVerified = true
	vendor.Store = entity.StoreProfile{Name: "Lamps", Address: "1 MG Road"}

	return vendor
}

func uploadIn(folder string) interface{} {
	return mock.MatchedBy(func(upload service.Upload) bool { return upload.Folder == folder })
}

func TestVendorService_UpdateProfile_TextFields(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()

	vendor := liveVendor()
	fx.accountRepo.EXPECT().FindByID(ctx, vendor.ID).Return(vendor, nil)
	fx.inTx(t)
	fx.accountRepo.EXPECT().FindByIDForUpdate(ctx, vendor.ID).Return(vendor, nil)
	fx.accountRepo.EXPECT().Update(ctx, vendor).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, vendor.ID, &usecase.UpdateVendorInput{
		StoreName: strPtr(" Bright Lamps "),
		Email:     strPtr("NEW@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Bright Lamps", updated.Store.Name)
	assert.Equal(t, "1 MG Road", updated.Store.Address)
	assert.Equal(t, "new@example.com", entity.StringValue(updated.Email))
	assert.False(t, updated.IsEmailVerified)
}

func TestVendorService_UpdateProfile_ReplacesPhoto(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()

	vendor := liveVendor()
	vendor.ProfilePhoto = &entity.MediaRef{URL: "https://cdn/old.jpg", Key: "vendors/profile/old.jpg"}

	fx.accountRepo.EXPECT().FindByID(ctx, vendor.ID).Return(vendor, nil)
	fx.storage.EXPECT().Upload(ctx, uploadIn(profilePhotoFolder)).
		Return(&service.StoredObject{URL: "https://cdn/new.jpg", Key: "vendors/profile/new.jpg"}, nil)
	fx.inTx(t)
	fx.accountRepo.EXPECT().FindByIDForUpdate(ctx, vendor.ID).Return(vendor, nil)
	fx.accountRepo.EXPECT().Update(ctx, vendor).Return(nil)
	fx.storage.EXPECT().Delete(mock.Anything, "vendors/profile/old.jpg").Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, vendor.ID, &usecase.UpdateVendorInput{
		ProfilePhoto: &usecase.FileInput{Filename: "me.jpg", ContentType: "image/jpeg", Data: []byte("jpeg")},
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ProfilePhoto)
	assert.Equal(t, "vendors/profile/new.jpg", updated.ProfilePhoto.Key)
}

func TestVendorService_UpdateProfile_WriteFailureRemovesStagedPhotos(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()

	vendor := liveVendor()
	fx.accountRepo.EXPECT().FindByID(ctx, vendor.ID).Return(vendor, nil)
	fx.storage.EXPECT().Upload(ctx, uploadIn(profilePhotoFolder)).
		Return(&service.StoredObject{URL: "https://cdn/p.jpg", Key: "vendors/profile/p.jpg"}, nil)
	fx.storage.EXPECT().Upload(ctx, uploadIn(coverPhotoFolder)).
		Return(&service.StoredObject{URL: "https://cdn/c.jpg", Key: "vendors/cover/c.jpg"}, nil)
	fx.inTx(t)
	fx.accountRepo.EXPECT().FindByIDForUpdate(ctx, vendor.ID).Return(vendor, nil)
	fx.accountRepo.EXPECT().Update(ctx, vendor).Return(errors.New("connection reset"))
	fx.storage.EXPECT().Delete(mock.Anything, "vendors/profile/p.jpg").Return(nil)
	fx.storage.EXPECT().Delete(mock.Anything, "vendors/cover/c.jpg").Return(errors.New("bucket unavailable"))

	_, err := fx.service.UpdateProfile(ctx, vendor.ID, &usecase.UpdateVendorInput{
		ProfilePhoto: &usecase.FileInput{Filename: "p.jpg", ContentType: "image/jpeg", Data: []byte("p")},
		CoverPhoto:   &usecase.FileInput{Filename: "c.jpg", ContentType: "image/jpeg", Data: []byte("c")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestVendorService_UpdateProfile_CoverUploadFailureDiscardsProfilePhoto(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()

	vendor := liveVendor()
	fx.accountRepo.EXPECT().FindByID(ctx, vendor.ID).Return(vendor, nil)
	fx.storage.EXPECT().Upload(ctx, uploadIn(profilePhotoFolder)).
		Return(&service.StoredObject{URL: "https://cdn/p.jpg", Key: "vendors/profile/p.jpg"}, nil)
	fx.storage.EXPECT().Upload(ctx, uploadIn(coverPhotoFolder)).Return(nil, errors.New("timeout"))
	fx.storage.EXPECT().Delete(mock.Anything, "vendors/profile/p.jpg").Return(nil)

	_, err := fx.service.UpdateProfile(ctx, vendor.ID, &usecase.UpdateVendorInput{
		ProfilePhoto: &usecase.FileInput{Filename: "p.jpg", ContentType: "image/jpeg", Data: []byte("p")},
		CoverPhoto:   &usecase.FileInput{Filename: "c.jpg", ContentType: "image/jpeg", Data: []byte("c")},
	})
	assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)
}

func TestVendorService_UpdateProfile_PendingVendor(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()

	pending := newAccount(entity.RoleVendorPending, entity.StatusPending)
	fx.accountRepo.EXPECT().FindByID(ctx, pending.ID).Return(pending, nil)

	_, err := fx.service.UpdateProfile(ctx, pending.ID, &usecase.UpdateVendorInput{FirstName: strPtr("Ada")})
	require.ErrorIs(t, err, domainerrors.ErrApprovalPending)

	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"currentRole": "VENDOR_PENDING", "currentStatus": "PENDING"}, appErr.Data())
}

func TestVendorService_UpdateProfile_BlankStoreName(t *testing.T) {
	fx := createTestVendorService(t)

	_, err := fx.service.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateVendorInput{StoreName: strPtr(" ")})
	assert.ErrorIs(t, err, domainerrors.ErrRequiredFields)
}

func TestVendorService_ListPending(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()

	role, status := entity.RoleVendorPending, entity.StatusPending
	applicants := []*entity.Account{newAccount(role, status), newAccount(role, status)}

	fx.accountRepo.EXPECT().
		List(ctx, repository.AccountFilter{Role: &role, Status: &status}, entity.PageRequest{Page: 1, Limit: 10}).
		Return(applicants, 12, nil)

	page, err := fx.service.ListPending(ctx, entity.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, page.Accounts, 2)
	assert.Equal(t, entity.Pagination{Page: 1, Limit: 10, Total: 12, Pages: 2}, page.Pagination)
}

func TestVendorService_Decide_Approve(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()

	admin := newAccount(entity.RoleAdmin, entity.StatusApproved)
	pending := newAccount(entity.RoleVendorPending, entity.StatusPending)

	fx.inTx(t)
	fx.accountRepo.EXPECT().FindByIDForUpdate(ctx, pending.ID).Return(pending, nil)
	fx.accountRepo.EXPECT().Update(ctx, pending).Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Type == policy.EventVendorApproved &&
				event.AggregateID == pending.ID.String() &&
				event.ActorID == admin.ID.String()
		})).
		Return(nil)
	fx.notifier.EXPECT().
		SendToTopic(ctx, service.VendorTopic(pending.ID.String()), "Application approved", mock.Anything, mock.Anything).
		Return(nil)

	decided, err := fx.service.Decide(ctx, admin, &usecase.VendorDecisionInput{VendorID: pending.ID, Action: "approve"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendor, decided.Role)
	assert.Equal(t, entity.StatusLive, decided.Status)
	require.NotNil(t, decided.ReviewedAt)
	assert.Equal(t, vendorTestNow, *decided.ReviewedAt)
}

func TestVendorService_Decide_RejectKeepsApplicationPending(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()

	admin := newAccount(entity.RoleAdmin, entity.StatusApproved)
	pending := newAccount(entity.RoleVendorPending, entity.StatusPending)

	fx.inTx(t)
	fx.accountRepo.EXPECT().FindByIDForUpdate(ctx, pending.ID).Return(pending, nil)
	fx.accountRepo.EXPECT().Update(ctx, pending).Return(nil)
	// Delivery failures never undo the decision.
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).Return(errors.New("broker down"))
	fx.notifier.EXPECT().
		SendToTopic(ctx, service.VendorTopic(pending.ID.String()), "Application not approved", mock.Anything, mock.Anything).
		Return(errors.New("fcm down"))

	decided, err := fx.service.Decide(ctx, admin, &usecase.VendorDecisionInput{
		VendorID: pending.ID,
		Action:   "reject",
		Note:     " Missing GST number ",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendorPending, decided.Role)
	assert.Equal(t, entity.StatusPending, decided.Status)
	assert.True(t, decided.IsRejected())
	assert.Equal(t, "Missing GST number", decided.ReviewNote)
}

func TestVendorService_Decide_InvalidAction(t *testing.T) {
	fx := createTestVendorService(t)

	admin := newAccount(entity.RoleAdmin, entity.StatusApproved)
	_, err := fx.service.Decide(context.Background(), admin, &usecase.VendorDecisionInput{VendorID: uuid.New(), Action: "maybe"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAction)
}

func TestVendorService_Decide_Guards(t *testing.T) {
	tests := []struct {
		name    string
		actor   *entity.Account
		target  *entity.Account
		wantErr error
	}{
		{
			name:    "non-admin actor",
			actor:   liveVendor(),
			target:  newAccount(entity.RoleVendorPending, entity.StatusPending),
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:    "already live",
			actor:   newAccount(entity.RoleAdmin, entity.StatusApproved),
			target:  liveVendor(),
			wantErr: domainerrors.ErrOnlyPendingVendors,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestVendorService(t)
			ctx := context.Background()

			fx.inTx(t)
			fx.accountRepo.EXPECT().FindByIDForUpdate(ctx, tt.target.ID).Return(tt.target, nil)

			_, err := fx.service.Decide(ctx, tt.actor, &usecase.VendorDecisionInput{VendorID: tt.target.ID, Action: "approve"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVendorService_StorefrontQR(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()

	vendor := liveVendor()
	fx.accountRepo.EXPECT().FindByID(ctx, vendor.ID).Return(vendor, nil)
	fx.qrCode.EXPECT().GenerateStorefrontQR(vendor.ID).Return([]byte("\x89PNG"), nil)
	fx.qrCode.EXPECT().StorefrontURL(vendor.ID).Return("https://shop.example.com/store/" + vendor.ID.String())

	out, err := fx.service.StorefrontQR(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), out.PNG)
	assert.Contains(t, out.URL, vendor.ID.String())
}

func TestVendorService_StorefrontQR_NotLive(t *testing.T) {
	tests := []struct {
		name    string
		account *entity.Account
		wantErr error
	}{
		{name: "pending vendor", account: newAccount(entity.RoleVendorPending, entity.StatusPending), wantErr: domainerrors.ErrApprovalPending},
		{name: "customer", account: newAccount(entity.RoleCustomer, entity.StatusApproved), wantErr: domainerrors.ErrForbidden},
		{name: "admin", account: newAccount(entity.RoleAdmin, entity.StatusApproved), wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestVendorService(t)
			ctx := context.Background()

			fx.accountRepo.EXPECT().FindByID(ctx, tt.account.ID).Return(tt.account, nil)

			_, err := fx.service.StorefrontQR(ctx, tt.account.ID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
