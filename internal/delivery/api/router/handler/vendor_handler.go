package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"marketplace/config"
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/policy"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"
	"marketplace/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	formProfilePhoto = "profilePhoto"
	formCoverPhoto   = "coverPhoto"

	headerStorefrontURL = "X-Storefront-Url"
)

// VendorHandlerParams holds dependencies for VendorHandler, injected by Fx.
type VendorHandlerParams struct {
	fx.In

	VendorUC usecase.VendorUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// VendorHandler serves vendor profile routes and the admin review queue.
type VendorHandler struct {
	vendorUC      usecase.VendorUsecase
	maxUploadSize int64
	logger        *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler.
func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	var maxUploadSize int64
	if params.Config.Storage != nil {
		maxUploadSize = params.Config.Storage.MaxUploadSize
	}

	return &VendorHandler{
		vendorUC:      params.VendorUC,
		maxUploadSize: maxUploadSize,
		logger:        params.Logger,
	}
}

// UpdateVendorRequest is the JSON form of a profile update. Multipart requests use the same names.
type UpdateVendorRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Mobile       *string `json:"mobile" validate:"omitempty,mobile"`
	Email        *string `json:"email" validate:"omitempty,email"`
	PinCode      *string `json:"pinCode"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Address      *string `json:"address"`
	StoreName    *string `json:"storeName"`
	StoreAddress *string `json:"storeAddress"`
	FacebookURL  *string `json:"facebookUrl" validate:"omitempty,url"`
	InstagramURL *string `json:"instagramUrl" validate:"omitempty,url"`
	YoutubeURL   *string `json:"youtubeUrl" validate:"omitempty,url"`
}

// VendorDecisionRequest is an admin decision on a vendor application.
type VendorDecisionRequest struct {
	Action string `json:"action"`
	Note   string `json:"note" validate:"max=500"`
}

// PendingQuery pages the review queue.
type PendingQuery struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// UpdateProfile applies a partial update, optionally replacing the profile and cover photos.
func (h *VendorHandler) UpdateProfile(c echo.Context) error {
	caller, err := middleware.CurrentAccount(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateVendorInput
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		input, err = h.multipartInput(c)
	} else {
		input, err = h.jsonInput(c)
	}
	if err != nil {
		return err
	}

	account, err := h.vendorUC.UpdateProfile(c.Request().Context(), caller.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newAccountResponse(account), "Vendor information updated")
}

// StorefrontQR renders the caller's storefront link as a PNG.
func (h *VendorHandler) StorefrontQR(c echo.Context) error {
	caller, err := middleware.CurrentAccount(c)
	if err != nil {
		return err
	}

	output, err := h.vendorUC.StorefrontQR(c.Request().Context(), caller.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(headerStorefrontURL, output.URL)

	return c.Blob(http.StatusOK, "image/png", output.PNG)
}

// ListPending pages through vendor applications awaiting review.
func (h *VendorHandler) ListPending(c echo.Context) error {
	var query PendingQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}

	page, err := h.vendorUC.ListPending(c.Request().Context(), entityPage(query.Page, query.Limit))
	if err != nil {
		return errors.WithStack(err)
	}

	vendors := make([]*AccountResponse, 0, len(page.Accounts))
	for _, account := range page.Accounts {
		vendors = append(vendors, newAccountResponse(account))
	}

	return response.OK(c, &AccountPageResponse{Vendors: vendors, Pagination: page.Pagination}, "Pending vendors retrieved")
}

// Decide approves or rejects a vendor application.
func (h *VendorHandler) Decide(c echo.Context) error {
	admin, err := middleware.CurrentAccount(c)
	if err != nil {
		return err
	}

	vendorID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req VendorDecisionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.vendorUC.Decide(c.Request().Context(), admin, &usecase.VendorDecisionInput{
		VendorID: vendorID,
		Action:   req.Action,
		Note:     strings.TrimSpace(req.Note),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Vendor live"
	if action, _ := policy.ParseModerationAction(req.Action); action == policy.ActionReject {
		message = "Vendor application rejected"
	}

	return response.OK(c, newAccountResponse(account), message)
}

func (h *VendorHandler) jsonInput(c echo.Context) (*usecase.UpdateVendorInput, error) {
	var req UpdateVendorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return nil, err
	}

	return req.toInput(), nil
}

func (h *VendorHandler) multipartInput(c echo.Context) (*usecase.UpdateVendorInput, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Invalid multipart form"), err.Error())
	}

	value := func(key string) *string {
		values, ok := form.Value[key]
		if !ok || len(values) == 0 {
			return nil
		}

		return &values[0]
	}

	req := UpdateVendorRequest{
		FirstName:    value("firstName"),
		LastName:     value("lastName"),
		Mobile:       value("mobile"),
		Email:        value("email"),
		PinCode:      value("pinCode"),
		City:         value("city"),
		State:        value("state"),
		Address:      value("address"),
		StoreName:    value("storeName"),
		StoreAddress: value("storeAddress"),
		FacebookURL:  value("facebookUrl"),
		InstagramURL: value("instagramUrl"),
		YoutubeURL:   value("youtubeUrl"),
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	input := req.toInput()
	if input.ProfilePhoto, err = h.readImage(form, formProfilePhoto); err != nil {
		return nil, err
	}
	if input.CoverPhoto, err = h.readImage(form, formCoverPhoto); err != nil {
		return nil, err
	}

	return input, nil
}

// readImage loads the named file part and checks that its content is an image.
func (h *VendorHandler) readImage(form *multipart.Form, field string) (*usecase.FileInput, error) {
	headers := form.File[field]
	if len(headers) == 0 {
		return nil, nil
	}
	header := headers[0]

	if h.maxUploadSize > 0 && header.Size > h.maxUploadSize {
		return nil, domainerrors.ErrValidationFailed.WithMessage(field + " exceeds the maximum upload size of " + util.FormatBytes(h.maxUploadSize))
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", field)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", field)
	}

	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return nil, domainerrors.ErrUnsupportedMedia.WithData(map[string]string{
			"field":       field,
			"contentType": detected.String(),
		})
	}

	return &usecase.FileInput{
		Filename:    header.Filename,
		ContentType: detected.String(),
		Data:        data,
	}, nil
}

func (r *UpdateVendorRequest) toInput() *usecase.UpdateVendorInput {
	return &usecase.UpdateVendorInput{
		FirstName:    trimmedPtr(r.FirstName),
		LastName:     trimmedPtr(r.LastName),
		Mobile:       trimmedPtr(r.Mobile),
		Email:        trimmedPtr(r.Email),
		PinCode:      trimmedPtr(r.PinCode),
		City:         trimmedPtr(r.City),
		State:        trimmedPtr(r.State),
		Address:      trimmedPtr(r.Address),
		StoreName:    trimmedPtr(r.StoreName),
		StoreAddress: trimmedPtr(r.StoreAddress),
		FacebookURL:  trimmedPtr(r.FacebookURL),
		InstagramURL: trimmedPtr(r.InstagramURL),
		YoutubeURL:   trimmedPtr(r.YoutubeURL),
	}
}
