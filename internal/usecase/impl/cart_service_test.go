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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service   usecase.CartUsecase
	cartRepo  *mockRepo.MockCartRepository
	goodsRepo *mockRepo.MockGoodsRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	goodsRepo := mockRepo.NewMockGoodsRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCartService(CartServiceParams{
		CartRepo:  cartRepo,
		GoodsRepo: goodsRepo,
		Logger:    logger,
	})

	return cartServiceFixtures{
		service:   svc,
		cartRepo:  cartRepo,
		goodsRepo: goodsRepo,
	}
}

func testSku(stock int, price int64) *entity.GoodsSKU {
	return &entity.GoodsSKU{
		ID:    uuid.New(),
		Name:  "草莓",
		Price: price,
		Unite: "500g",
		Stock: stock,
	}
}

func TestCartService_Add_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	sku := testSku(10, 1500)

	fx.goodsRepo.EXPECT().FindSkuByID(ctx, sku.ID).Return(sku, nil)
	// The store calls run under a derived timeout context.
	fx.cartRepo.EXPECT().Get(mock.Anything, userID, sku.ID).Return(3, nil)
	fx.cartRepo.EXPECT().Set(mock.Anything, userID, sku.ID, 5).Return(nil)

	err := fx.service.Add(ctx, userID, sku.ID, 2)

	require.NoError(t, err)
}

func TestCartService_Add_InvalidQuantity(t *testing.T) {
	fx := createTestCartService(t)

	for _, quantity := range []int{0, -1} {
		err := fx.service.Add(context.Background(), uuid.New(), uuid.New(), quantity)

		require.ErrorIs(t, err, domainerrors.ErrIncompleteData)
	}
}

func TestCartService_Add_UnknownSku(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	skuID := uuid.New()

	fx.goodsRepo.EXPECT().FindSkuByID(ctx, skuID).Return(nil, repository.ErrGoodsNotFound)

	err := fx.service.Add(ctx, uuid.New(), skuID, 1)

	require.ErrorIs(t, err, domainerrors.ErrGoodsNotFound)
}

func TestCartService_Add_StockCeiling(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	sku := testSku(5, 1500)

	fx.goodsRepo.EXPECT().FindSkuByID(ctx, sku.ID).Return(sku, nil)
	fx.cartRepo.EXPECT().Get(mock.Anything, userID, sku.ID).Return(4, nil)

	err := fx.service.Add(ctx, userID, sku.ID, 2)

	require.ErrorIs(t, err, domainerrors.ErrGoodsStockShort)
}

func TestCartService_UpdateQuantity_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	sku := testSku(10, 1500)

	fx.goodsRepo.EXPECT().FindSkuByID(ctx, sku.ID).Return(sku, nil)
	fx.cartRepo.EXPECT().Set(mock.Anything, userID, sku.ID, 7).Return(nil)

	err := fx.service.UpdateQuantity(ctx, userID, sku.ID, 7)

	require.NoError(t, err)
}

func TestCartService_UpdateQuantity_StockCeiling(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	sku := testSku(5, 1500)

	fx.goodsRepo.EXPECT().FindSkuByID(ctx, sku.ID).Return(sku, nil)

	err := fx.service.UpdateQuantity(ctx, uuid.New(), sku.ID, 6)

	require.ErrorIs(t, err, domainerrors.ErrGoodsStockShort)
}

func TestCartService_Remove_Success(t *testing.T) {
	fx := createTestCartService(t)

	userID := uuid.New()
	skuID := uuid.New()

	fx.cartRepo.EXPECT().Remove(mock.Anything, userID, skuID).Return(nil)

	err := fx.service.Remove(context.Background(), userID, skuID)

	require.NoError(t, err)
}

func TestCartService_List_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	skuA := testSku(10, 1500)
	skuB := testSku(20, 800)

	contents := map[uuid.UUID]int{
		skuA.ID: 2,
		skuB.ID: 3,
	}

	fx.cartRepo.EXPECT().GetAll(mock.Anything, userID).Return(contents, nil)
	fx.goodsRepo.EXPECT().
		FindSkusByIDs(ctx, mock.MatchedBy(func(ids []uuid.UUID) bool {
			return len(ids) == 2
		})).
		Return([]*entity.GoodsSKU{skuA, skuB}, nil)

	cart, err := fx.service.List(ctx, userID)

	require.NoError(t, err)
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, 5, cart.TotalCount)
	assert.Equal(t, int64(2*1500+3*800), cart.TotalAmount)

	for _, line := range cart.Lines {
		assert.Equal(t, int64(line.Quantity)*line.Sku.Price, line.Amount)
	}
}

func TestCartService_List_Empty(t *testing.T) {
	fx := createTestCartService(t)

	userID := uuid.New()

	fx.cartRepo.EXPECT().GetAll(mock.Anything, userID).Return(map[uuid.UUID]int{}, nil)

	cart, err := fx.service.List(context.Background(), userID)

	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
	assert.Zero(t, cart.TotalCount)
	assert.Zero(t, cart.TotalAmount)
}

func TestCartService_List_DropsVanishedSkus(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	sku := testSku(10, 1500)
	vanishedID := uuid.New()

	contents := map[uuid.UUID]int{
		sku.ID:     2,
		vanishedID: 1,
	}

	fx.cartRepo.EXPECT().GetAll(mock.Anything, userID).Return(contents, nil)
	fx.goodsRepo.EXPECT().
		FindSkusByIDs(ctx, mock.MatchedBy(func(ids []uuid.UUID) bool {
			return len(ids) == 2
		})).
		Return([]*entity.GoodsSKU{sku}, nil)

	cart, err := fx.service.List(ctx, userID)

	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, sku.ID, cart.Lines[0].Sku.ID)
	assert.Equal(t, 2, cart.TotalCount)
}

func TestCartService_Count_Success(t *testing.T) {
	fx := createTestCartService(t)

	userID := uuid.New()

	fx.cartRepo.EXPECT().Count(mock.Anything, userID).Return(int64(4), nil)

	count, err := fx.service.Count(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestCartService_Count_DegradesToZero(t *testing.T) {
	fx := createTestCartService(t)

	userID := uuid.New()

	fx.cartRepo.EXPECT().Count(mock.Anything, userID).Return(int64(0), errors.New("store unavailable"))

	count, err := fx.service.Count(context.Background(), userID)

	require.NoError(t, err)
	assert.Zero(t, count)
}
