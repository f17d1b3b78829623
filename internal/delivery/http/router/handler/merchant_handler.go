package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sitd/internal/delivery/http/response"
	"sitd/internal/errors"
	"sitd/internal/usecase"
)

// CreateMerchantRequest is the body of POST /merchants.
type CreateMerchantRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=120"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// MerchantIDParam binds the :id path segment.
type MerchantIDParam struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

// ResolveQRQuery binds GET /merchants/qr/resolve.
type ResolveQRQuery struct {
	Data string `query:"data" validate:"required,max=2048"`
}

// MerchantHandler serves the merchant catalog.
type MerchantHandler struct {
	uc usecase.MerchantUsecase
}

// NewMerchantHandler is the constructor for MerchantHandler, injected by Fx.
func NewMerchantHandler(uc usecase.MerchantUsecase) *MerchantHandler {
	return &MerchantHandler{uc: uc}
}

// ListMerchants returns one page of merchants, newest first.
func (h *MerchantHandler) ListMerchants(c echo.Context) error {
	query := new(PageQuery)
	if err := bindAndValidate(c, query); err != nil {
		return err
	}

	page, err := h.uc.ListMerchants(c.Request().Context(), query.toPageRequest())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPageData(page, newMerchantResponse))
}

// CreateMerchant adds a merchant.
func (h *MerchantHandler) CreateMerchant(c echo.Context) error {
	req := new(CreateMerchantRequest)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	merchant, err := h.uc.CreateMerchant(c.Request().Context(), &usecase.CreateMerchantInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newMerchantResponse(merchant))
}

// GetMerchant returns one merchant.
func (h *MerchantHandler) GetMerchant(c echo.Context) error {
	param := new(MerchantIDParam)
	if err := bindAndValidate(c, param); err != nil {
		return err
	}

	merchant, err := h.uc.GetMerchant(c.Request().Context(), param.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newMerchantResponse(merchant))
}

// MerchantQRCode renders a PNG QR code linking to the merchant.
func (h *MerchantHandler) MerchantQRCode(c echo.Context) error {
	param := new(MerchantIDParam)
	if err := bindAndValidate(c, param); err != nil {
		return err
	}

	png, err := h.uc.MerchantQRCode(c.Request().Context(), param.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ResolveMerchantQR looks up the merchant behind scanned QR data.
func (h *MerchantHandler) ResolveMerchantQR(c echo.Context) error {
	query := new(ResolveQRQuery)
	if err := bindAndValidate(c, query); err != nil {
		return err
	}

	merchant, err := h.uc.ResolveMerchantQR(c.Request().Context(), query.Data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newMerchantResponse(merchant))
}
