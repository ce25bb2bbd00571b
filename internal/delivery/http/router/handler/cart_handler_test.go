package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dailyfresh/internal/delivery/http/validator"
	"dailyfresh/internal/domain/entity"
	mocksusecase "dailyfresh/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCartHandler(t *testing.T) (*CartHandler, *mocksusecase.MockCartUsecase) {
	uc := mocksusecase.NewMockCartUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewCartHandler(uc, logger), uc
}

func newAuthedJSONContext(method, target, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	return c, rec
}

func TestCartHandler_Add_Success(t *testing.T) {
	h, uc := newTestCartHandler(t)
	userID := uuid.New()
	skuID := uuid.New()

	uc.EXPECT().Add(mock.Anything, userID, skuID, 2).Return(nil)

	c, rec := newAuthedJSONContext(http.MethodPost, "/cart",
		`{"sku_id":"`+skuID.String()+`","quantity":2}`, userID)

	require.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestCartHandler_Add_MissingUser(t *testing.T) {
	h, _ := newTestCartHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(`{"quantity":1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartHandler_Add_ValidationRejectsBeforeUsecase(t *testing.T) {
	skuID := uuid.New()

	for name, body := range map[string]string{
		"missing sku":   `{"quantity":2}`,
		"zero quantity": `{"sku_id":"` + skuID.String() + `","quantity":0}`,
	} {
		t.Run(name, func(t *testing.T) {
			h, _ := newTestCartHandler(t)

			c, rec := newAuthedJSONContext(http.MethodPost, "/cart", body, uuid.New())

			require.NoError(t, h.Add(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
		})
	}
}

func TestCartHandler_UpdateQuantity_ZeroQuantityRejected(t *testing.T) {
	h, _ := newTestCartHandler(t)
	skuID := uuid.New()

	c, rec := newAuthedJSONContext(http.MethodPut, "/cart/"+skuID.String(),
		`{"quantity":0}`, uuid.New())
	c.SetParamNames("sku")
	c.SetParamValues(skuID.String())

	require.NoError(t, h.UpdateQuantity(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestCartHandler_UpdateQuantity_Success(t *testing.T) {
	h, uc := newTestCartHandler(t)
	userID := uuid.New()
	skuID := uuid.New()

	uc.EXPECT().UpdateQuantity(mock.Anything, userID, skuID, 5).Return(nil)

	c, rec := newAuthedJSONContext(http.MethodPut, "/cart/"+skuID.String(),
		`{"quantity":5}`, userID)
	c.SetParamNames("sku")
	c.SetParamValues(skuID.String())

	require.NoError(t, h.UpdateQuantity(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_UpdateQuantity_BadSkuID(t *testing.T) {
	h, _ := newTestCartHandler(t)

	c, rec := newAuthedJSONContext(http.MethodPut, "/cart/not-a-uuid",
		`{"quantity":5}`, uuid.New())
	c.SetParamNames("sku")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.UpdateQuantity(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_Remove_Success(t *testing.T) {
	h, uc := newTestCartHandler(t)
	userID := uuid.New()
	skuID := uuid.New()

	uc.EXPECT().Remove(mock.Anything, userID, skuID).Return(nil)

	c, rec := newAuthedJSONContext(http.MethodDelete, "/cart/"+skuID.String(), "", userID)
	c.SetParamNames("sku")
	c.SetParamValues(skuID.String())

	require.NoError(t, h.Remove(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_List_Success(t *testing.T) {
	h, uc := newTestCartHandler(t)
	userID := uuid.New()

	sku := &entity.GoodsSKU{ID: uuid.New(), Name: "草莓", Price: 1500}
	uc.EXPECT().List(mock.Anything, userID).Return(&entity.Cart{
		UserID:      userID,
		Lines:       []*entity.CartLine{{Sku: sku, Quantity: 2, Amount: 3000}},
		TotalCount:  2,
		TotalAmount: 3000,
	}, nil)

	c, rec := newAuthedJSONContext(http.MethodGet, "/cart", "", userID)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"total_count":2`)
	assert.Contains(t, body, `"total_amount":3000`)
	assert.Contains(t, body, "草莓")
}

func TestCartHandler_Count_Success(t *testing.T) {
	h, uc := newTestCartHandler(t)
	userID := uuid.New()

	uc.EXPECT().Count(mock.Anything, userID).Return(int64(3), nil)

	c, rec := newAuthedJSONContext(http.MethodGet, "/cart/count", "", userID)

	require.NoError(t, h.Count(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":3`)
}
