package handler

import (
	"log/slog"
	"net/http"

	"dailyfresh/internal/delivery/http/response"
	"dailyfresh/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for shopping-cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

type addCartRequest struct {
	SkuID    uuid.UUID `json:"sku_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,min=1"`
}

// Add stacks units of a SKU onto the cart.
func (h *CartHandler) Add(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req addCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.uc.Add(c.Request().Context(), userID, req.SkuID, req.Quantity); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart entry added successfully")
}

type updateCartRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// UpdateQuantity overwrites the quantity of a cart entry.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	skuID, err := uuid.Parse(c.Param("sku"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid sku id")
	}

	var req updateCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.uc.UpdateQuantity(c.Request().Context(), userID, skuID, req.Quantity); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart entry updated successfully")
}

// Remove deletes one SKU entry from the cart.
func (h *CartHandler) Remove(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	skuID, err := uuid.Parse(c.Param("sku"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid sku id")
	}

	if err := h.uc.Remove(c.Request().Context(), userID, skuID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart entry removed successfully")
}

// List serves the joined cart view model.
func (h *CartHandler) List(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cart, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCartView(cart), "Cart retrieved successfully")
}

type cartCountView struct {
	Count int64 `json:"count"`
}

// Count serves the cart badge count.
func (h *CartHandler) Count(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	count, err := h.uc.Count(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cartCountView{Count: count}, "Cart count retrieved successfully")
}
