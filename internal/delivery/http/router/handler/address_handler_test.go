package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"dailyfresh/internal/domain/entity"
	mocksusecase "dailyfresh/internal/mocks/usecase"
	"dailyfresh/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAddressHandler(t *testing.T) (*AddressHandler, *mocksusecase.MockAddressUsecase) {
	uc := mocksusecase.NewMockAddressUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAddressHandler(uc, logger), uc
}

func TestAddressHandler_AddAddress_Success(t *testing.T) {
	h, uc := newTestAddressHandler(t)
	userID := uuid.New()

	uc.EXPECT().
		AddAddress(mock.Anything, userID, usecase.AddAddressInput{
			Receiver: "张三",
			Addr:     "长安街1号",
			ZipCode:  "100000",
			Phone:    "13812345678",
		}).
		Return(&entity.Address{
			ID:        uuid.New(),
			Receiver:  "张三",
			Addr:      "长安街1号",
			ZipCode:   "100000",
			Phone:     "13812345678",
			IsDefault: true,
		}, nil)

	c, rec := newAuthedJSONContext(http.MethodPost, "/user/address",
		`{"receiver":"张三","addr":"长安街1号","zip_code":"100000","phone":"13812345678"}`, userID)

	require.NoError(t, h.AddAddress(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_default":true`)
}

func TestAddressHandler_AddAddress_ValidationRejectsBeforeUsecase(t *testing.T) {
	for name, body := range map[string]string{
		"missing phone":    `{"receiver":"张三","addr":"长安街1号"}`,
		"missing receiver": `{"addr":"长安街1号","phone":"13812345678"}`,
		"missing addr":     `{"receiver":"张三","phone":"13812345678"}`,
	} {
		t.Run(name, func(t *testing.T) {
			h, _ := newTestAddressHandler(t)

			c, rec := newAuthedJSONContext(http.MethodPost, "/user/address", body, uuid.New())

			require.NoError(t, h.AddAddress(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
		})
	}
}
