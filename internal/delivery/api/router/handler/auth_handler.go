// Package handler contains the HTTP handlers of the marketplace API.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AuthHandler serves onboarding, OTP and sign-in routes.
type AuthHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// GuestRequest carries the device id when it is not part of the path.
type GuestRequest struct {
	DeviceID string `json:"deviceId"`
}

// RegisterCustomerRequest is the customer sign-up body.
type RegisterCustomerRequest struct {
	DeviceID  string `json:"deviceId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
	PinCode   string `json:"pinCode"`
	City      string `json:"city"`
	State     string `json:"state"`
	Address   string `json:"address"`
	OTP       string `json:"otp"`
}

// StoreRequest holds the storefront fields of a vendor application.
type StoreRequest struct {
	StoreName    string `json:"storeName"`
	StoreAddress string `json:"storeAddress"`
	FacebookURL  string `json:"facebookUrl" validate:"omitempty,url"`
	InstagramURL string `json:"instagramUrl" validate:"omitempty,url"`
	YoutubeURL   string `json:"youtubeUrl" validate:"omitempty,url"`
}

// RegisterVendorRequest is the vendor application body.
type RegisterVendorRequest struct {
	RegisterCustomerRequest
	StoreRequest
}

// UpdateRoleRequest upgrades the calling customer to a vendor applicant.
type UpdateRoleRequest struct {
	StoreRequest
	OTP string `json:"otp" validate:"required"`
}

// SendOTPRequest asks for a code to be sent to mobile.
type SendOTPRequest struct {
	Mobile string `json:"mobile" validate:"required,mobile"`
}

// VerifyOTPRequest checks a code for mobile.
type VerifyOTPRequest struct {
	Mobile string `json:"mobile" validate:"required,mobile"`
	OTP    string `json:"otp" validate:"required,otp"`
}

// CreateGuest bootstraps a guest from the path or body device id.
func (h *AuthHandler) CreateGuest(c echo.Context) error {
	deviceID := c.Param("id")
	if deviceID == "" {
		var req GuestRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
		deviceID = req.DeviceID
	}

	output, err := h.accountUC.CreateGuest(c.Request().Context(), strings.TrimSpace(deviceID))
	if err != nil {
		return errors.WithStack(err)
	}

	if output.Created {
		return response.Created(c, newLifecycleResponse(output.Account), "Guest created")
	}

	return response.OK(c, newLifecycleResponse(output.Account), "Guest already exists")
}

// RegisterCustomer handles OTP-gated customer registration.
func (h *AuthHandler) RegisterCustomer(c echo.Context) error {
	var req RegisterCustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.accountUC.RegisterCustomer(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newAccountResponse(account), "Customer registered successfully")
}

// RegisterVendor submits a vendor application. Authenticated customers are upgraded in place.
func (h *AuthHandler) RegisterVendor(c echo.Context) error {
	var req RegisterVendorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	caller, _ := middleware.CurrentAccount(c)

	account, err := h.accountUC.RegisterVendor(c.Request().Context(), &usecase.RegisterVendorInput{
		RegisterCustomerInput: *req.RegisterCustomerRequest.toInput(),
		StoreInput:            req.StoreRequest.toInput(),
	}, caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newLifecycleResponse(account), "Vendor submitted")
}

// UpdateRole upgrades the calling customer to a vendor applicant.
func (h *AuthHandler) UpdateRole(c echo.Context) error {
	caller, err := middleware.CurrentAccount(c)
	if err != nil {
		return err
	}

	var req UpdateRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.accountUC.UpgradeToVendor(c.Request().Context(), &usecase.UpgradeToVendorInput{
		AccountID:  caller.ID,
		StoreInput: req.StoreRequest.toInput(),
		OTP:        strings.TrimSpace(req.OTP),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newLifecycleResponse(account), "Role update submitted")
}

// Status reports the role and status of an account.
func (h *AuthHandler) Status(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	account, err := h.accountUC.GetStatus(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newLifecycleResponse(account), "Status retrieved")
}

// SendOTP sends a one-time code to a mobile number.
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req SendOTPRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.accountUC.SendOTP(c.Request().Context(), req.Mobile); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "OTP sent")
}

// VerifyOTP checks a one-time code without touching any account.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req VerifyOTPRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.accountUC.VerifyOTP(c.Request().Context(), req.Mobile, req.OTP); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "OTP verified")
}

// Login signs in with an identity credential, linking or creating the account as needed.
func (h *AuthHandler) Login(c echo.Context) error {
	token, err := middleware.BearerToken(c)
	if err != nil {
		return err
	}

	output, err := h.accountUC.Login(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	data := newAccountResponse(output.Account)
	switch output.Outcome {
	case usecase.LoginLinked:
		return response.OK(c, data, "Account linked successfully")
	case usecase.LoginCreated:
		return response.Success(c, http.StatusCreated, data, "User created successfully")
	default:
		return response.OK(c, data, "Login successful")
	}
}

// Profile returns the caller's account.
func (h *AuthHandler) Profile(c echo.Context) error {
	caller, err := middleware.CurrentAccount(c)
	if err != nil {
		return err
	}

	account, err := h.accountUC.Profile(c.Request().Context(), caller.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newAccountResponse(account), "Profile retrieved")
}

// Logout acknowledges a sign out. Credentials are discarded client side.
func (h *AuthHandler) Logout(c echo.Context) error {
	caller, err := middleware.CurrentAccount(c)
	if err != nil {
		return err
	}

	if err := h.accountUC.Logout(c.Request().Context(), caller); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Logout successful")
}

func (r *RegisterCustomerRequest) toInput() *usecase.RegisterCustomerInput {
	return &usecase.RegisterCustomerInput{
		DeviceID:  strings.TrimSpace(r.DeviceID),
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Mobile:    strings.TrimSpace(r.Mobile),
		Email:     strings.TrimSpace(r.Email),
		PinCode:   strings.TrimSpace(r.PinCode),
		City:      strings.TrimSpace(r.City),
		State:     strings.TrimSpace(r.State),
		Address:   strings.TrimSpace(r.Address),
		OTP:       strings.TrimSpace(r.OTP),
	}
}

func (r *StoreRequest) toInput() usecase.StoreInput {
	return usecase.StoreInput{
		StoreName:    strings.TrimSpace(r.StoreName),
		StoreAddress: strings.TrimSpace(r.StoreAddress),
		FacebookURL:  strings.TrimSpace(r.FacebookURL),
		InstagramURL: strings.TrimSpace(r.InstagramURL),
		YoutubeURL:   strings.TrimSpace(r.YoutubeURL),
	}
}
