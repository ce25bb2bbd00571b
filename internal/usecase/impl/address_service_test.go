package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"dailyfresh/internal/domain/entity"
	domainerrors "dailyfresh/internal/domain/errors"
	"dailyfresh/internal/domain/repository"
	mockRepo "dailyfresh/internal/mocks/repository"
	"dailyfresh/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// addressServiceFixtures holds all test dependencies for address service tests.
type addressServiceFixtures struct {
	service     usecase.AddressUsecase
	txManager   *mockRepo.MockTransactionManager
	addressRepo *mockRepo.MockAddressRepository
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAddressService(AddressServiceParams{
		TxManager:   txManager,
		AddressRepo: addressRepo,
		Logger:      logger,
	})

	return addressServiceFixtures{
		service:     svc,
		txManager:   txManager,
		addressRepo: addressRepo,
	}
}

func validAddAddressInput() usecase.AddAddressInput {
	return usecase.AddAddressInput{
		Receiver: "张三",
		Addr:     "北京市海淀区中关村大街1号",
		ZipCode:  "100080",
		Phone:    "13812345678",
	}
}

func TestAddressService_AddAddress_FirstBecomesDefault(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := validAddAddressInput()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().FindDefaultByUserForUpdate(ctx, userID).Return(nil, repository.ErrAddressNotFound)
			mockAddressRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Address")).
				Run(func(ctx context.Context, address *entity.Address) {
					assert.True(t, address.IsDefault)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	address, err := fx.service.AddAddress(ctx, userID, input)

	require.NoError(t, err)
	require.NotNil(t, address)
	assert.True(t, address.IsDefault)
	assert.Equal(t, userID, address.UserID)
	assert.Equal(t, input.Receiver, address.Receiver)
	assert.Equal(t, input.Phone, address.Phone)
}

func TestAddressService_AddAddress_SubsequentIsNotDefault(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := validAddAddressInput()
	existingDefault := &entity.Address{ID: uuid.New(), UserID: userID, IsDefault: true}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().FindDefaultByUserForUpdate(ctx, userID).Return(existingDefault, nil)
			mockAddressRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Address")).
				Run(func(ctx context.Context, address *entity.Address) {
					assert.False(t, address.IsDefault)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	address, err := fx.service.AddAddress(ctx, userID, input)

	require.NoError(t, err)
	assert.False(t, address.IsDefault)
}

func TestAddressService_AddAddress_IncompleteData(t *testing.T) {
	fx := createTestAddressService(t)

	for _, input := range []usecase.AddAddressInput{
		{Receiver: "", Addr: "somewhere", Phone: "13812345678"},
		{Receiver: "张三", Addr: "", Phone: "13812345678"},
		{Receiver: "张三", Addr: "somewhere", Phone: ""},
	} {
		address, err := fx.service.AddAddress(context.Background(), uuid.New(), input)

		require.ErrorIs(t, err, domainerrors.ErrIncompleteData)
		assert.Nil(t, address)
	}
}

func TestAddressService_AddAddress_InvalidPhone(t *testing.T) {
	fx := createTestAddressService(t)

	for name, phone := range map[string]string{
		"bad second digit": "12012345678",
		"too short":        "1300000000",
		"non numeric":      "1381234567a",
	} {
		t.Run(name, func(t *testing.T) {
			input := validAddAddressInput()
			input.Phone = phone

			address, err := fx.service.AddAddress(context.Background(), uuid.New(), input)

			require.ErrorIs(t, err, domainerrors.ErrInvalidPhone)
			assert.Nil(t, address)
		})
	}
}

func TestAddressService_AddAddress_DefaultConflict(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := validAddAddressInput()

	// Two concurrent first addresses: the loser of the race hits the partial
	// unique index instead of the row lock.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().AddressRepo().Return(mockAddressRepo)
			mockAddressRepo.EXPECT().FindDefaultByUserForUpdate(ctx, userID).Return(nil, repository.ErrAddressNotFound)
			mockAddressRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Address")).Return(repository.ErrDefaultAddressConflict)

			return fn(mockFactory)
		})

	address, err := fx.service.AddAddress(ctx, userID, input)

	require.ErrorIs(t, err, domainerrors.ErrDefaultAddressConflict)
	assert.Nil(t, address)
}

func TestAddressService_ListAddresses_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addresses := []*entity.Address{
		{ID: uuid.New(), UserID: userID, IsDefault: true},
		{ID: uuid.New(), UserID: userID},
	}

	fx.addressRepo.EXPECT().FindByUser(ctx, userID).Return(addresses, nil)

	got, err := fx.service.ListAddresses(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, addresses, got)
}

func TestAddressService_DefaultAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	address := &entity.Address{ID: uuid.New(), UserID: userID, IsDefault: true}

	fx.addressRepo.EXPECT().FindDefaultByUser(ctx, userID).Return(address, nil)

	got, err := fx.service.DefaultAddress(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, address, got)
}

func TestAddressService_DefaultAddress_NoneExists(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.addressRepo.EXPECT().FindDefaultByUser(ctx, userID).Return(nil, repository.ErrAddressNotFound)

	got, err := fx.service.DefaultAddress(ctx, userID)

	require.NoError(t, err)
	assert.Nil(t, got)
}
