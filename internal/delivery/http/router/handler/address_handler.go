package handler

import (
	"log/slog"
	"net/http"

	"dailyfresh/internal/delivery/http/response"
	domainerrors "dailyfresh/internal/domain/errors"
	"dailyfresh/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddressHandler holds dependencies for shipping-address handlers.
type AddressHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		uc:     uc,
		logger: logger,
	}
}

type addAddressRequest struct {
	Receiver string `json:"receiver" validate:"required"`
	Addr     string `json:"addr" validate:"required"`
	ZipCode  string `json:"zip_code"`
	Phone    string `json:"phone" validate:"required"`
}

// AddAddress handles adding a new shipping address.
func (h *AddressHandler) AddAddress(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req addAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	address, err := h.uc.AddAddress(c.Request().Context(), userID, usecase.AddAddressInput{
		Receiver: req.Receiver,
		Addr:     req.Addr,
		ZipCode:  req.ZipCode,
		Phone:    req.Phone,
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return response.FormError(c, appErr, req)
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAddressView(address), "Address added successfully")
}

type addressListView struct {
	Addresses []*AddressView `json:"addresses"`
	Default   *AddressView   `json:"default,omitempty"`
}

// ListAddresses returns all addresses of the current user, default first.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addresses, err := h.uc.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	view := addressListView{Addresses: newAddressViews(addresses)}
	for _, address := range addresses {
		if address.IsDefault {
			view.Default = newAddressView(address)

			break
		}
	}

	return response.Success(c, http.StatusOK, view, "Addresses retrieved successfully")
}
