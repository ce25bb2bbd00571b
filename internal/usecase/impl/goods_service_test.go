package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"dailyfresh/internal/domain/constants"
	"dailyfresh/internal/domain/entity"
	domainerrors "dailyfresh/internal/domain/errors"
	"dailyfresh/internal/domain/repository"
	mockRepo "dailyfresh/internal/mocks/repository"
	mockService "dailyfresh/internal/mocks/service"
	"dailyfresh/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// goodsServiceFixtures holds all test dependencies for goods service tests.
type goodsServiceFixtures struct {
	service       usecase.GoodsUsecase
	goodsRepo     *mockRepo.MockGoodsRepository
	userRepo      *mockRepo.MockUserRepository
	addressRepo   *mockRepo.MockAddressRepository
	cartRepo      *mockRepo.MockCartRepository
	historyRepo   *mockRepo.MockHistoryRepository
	qrcodeService *mockService.MockQRCodeService
}

func createTestGoodsService(t *testing.T) goodsServiceFixtures {
	goodsRepo := mockRepo.NewMockGoodsRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	historyRepo := mockRepo.NewMockHistoryRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewGoodsService(GoodsServiceParams{
		GoodsRepo:     goodsRepo,
		UserRepo:      userRepo,
		AddressRepo:   addressRepo,
		CartRepo:      cartRepo,
		HistoryRepo:   historyRepo,
		QRCodeService: qrcodeService,
		Logger:        logger,
	})

	return goodsServiceFixtures{
		service:       svc,
		goodsRepo:     goodsRepo,
		userRepo:      userRepo,
		addressRepo:   addressRepo,
		cartRepo:      cartRepo,
		historyRepo:   historyRepo,
		qrcodeService: qrcodeService,
	}
}

func TestGoodsService_Index_Success(t *testing.T) {
	fx := createTestGoodsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fruits := &entity.GoodsType{ID: uuid.New(), Name: "新鲜水果"}
	seafood := &entity.GoodsType{ID: uuid.New(), Name: "海鲜水产"}

	fruitImage := []*entity.IndexTypeGoodsBanner{{ID: uuid.New(), TypeID: fruits.ID, DisplayType: entity.BannerDisplayImage}}
	fruitTitle := []*entity.IndexTypeGoodsBanner{{ID: uuid.New(), TypeID: fruits.ID, DisplayType: entity.BannerDisplayTitle}}
	goodsBanners := []*entity.IndexGoodsBanner{{ID: uuid.New(), Index: 1}}
	promotionBanners := []*entity.IndexPromotionBanner{{ID: uuid.New(), Name: "吃货暑假趴", Index: 1}}

	fx.goodsRepo.EXPECT().FindTypes(ctx).Return([]*entity.GoodsType{fruits, seafood}, nil)
	fx.goodsRepo.EXPECT().FindTypeBanners(ctx, fruits.ID, entity.BannerDisplayImage).Return(fruitImage, nil)
	fx.goodsRepo.EXPECT().FindTypeBanners(ctx, fruits.ID, entity.BannerDisplayTitle).Return(fruitTitle, nil)
	fx.goodsRepo.EXPECT().FindTypeBanners(ctx, seafood.ID, entity.BannerDisplayImage).Return(nil, nil)
	fx.goodsRepo.EXPECT().FindTypeBanners(ctx, seafood.ID, entity.BannerDisplayTitle).Return(nil, nil)
	fx.goodsRepo.EXPECT().FindGoodsBanners(ctx).Return(goodsBanners, nil)
	fx.goodsRepo.EXPECT().FindPromotionBanners(ctx).Return(promotionBanners, nil)
	fx.cartRepo.EXPECT().Count(mock.Anything, userID).Return(int64(3), nil)

	output, err := fx.service.Index(ctx, userID)

	require.NoError(t, err)
	require.Len(t, output.Showcases, 2)
	assert.Equal(t, fruits, output.Showcases[0].Type)
	assert.Equal(t, fruitImage, output.Showcases[0].ImageBanners)
	assert.Equal(t, fruitTitle, output.Showcases[0].TitleBanners)
	assert.Equal(t, goodsBanners, output.GoodsBanners)
	assert.Equal(t, promotionBanners, output.PromotionBanners)
	assert.Equal(t, int64(3), output.CartCount)
}

func TestGoodsService_Index_AnonymousHasZeroCartCount(t *testing.T) {
	fx := createTestGoodsService(t)

	ctx := context.Background()

	fx.goodsRepo.EXPECT().FindTypes(ctx).Return(nil, nil)
	fx.goodsRepo.EXPECT().FindGoodsBanners(ctx).Return(nil, nil)
	fx.goodsRepo.EXPECT().FindPromotionBanners(ctx).Return(nil, nil)

	output, err := fx.service.Index(ctx, uuid.Nil)

	require.NoError(t, err)
	assert.Zero(t, output.CartCount)
}

func TestGoodsService_Index_CartCountDegrades(t *testing.T) {
	fx := createTestGoodsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.goodsRepo.EXPECT().FindTypes(ctx).Return(nil, nil)
	fx.goodsRepo.EXPECT().FindGoodsBanners(ctx).Return(nil, nil)
	fx.goodsRepo.EXPECT().FindPromotionBanners(ctx).Return(nil, nil)
	fx.cartRepo.EXPECT().Count(mock.Anything, userID).Return(int64(0), errors.New("store unavailable"))

	output, err := fx.service.Index(ctx, userID)

	require.NoError(t, err)
	assert.Zero(t, output.CartCount)
}

func TestGoodsService_Detail_Success(t *testing.T) {
	fx := createTestGoodsService(t)

	ctx := context.Background()
	userID := uuid.New()
	sku := &entity.GoodsSKU{ID: uuid.New(), TypeID: uuid.New(), Name: "草莓"}
	newSkus := []*entity.GoodsSKU{{ID: uuid.New(), TypeID: sku.TypeID}}

	fx.goodsRepo.EXPECT().FindSkuByID(ctx, sku.ID).Return(sku, nil)
	fx.goodsRepo.EXPECT().FindNewByType(ctx, sku.TypeID, newArrivalLimit).Return(newSkus, nil)
	fx.historyRepo.EXPECT().Push(mock.Anything, userID, sku.ID).Return(nil)
	fx.historyRepo.EXPECT().Trim(mock.Anything, userID, constants.HistoryMax).Return(nil)
	fx.cartRepo.EXPECT().Count(mock.Anything, userID).Return(int64(2), nil)

	output, err := fx.service.Detail(ctx, sku.ID, userID)

	require.NoError(t, err)
	assert.Equal(t, sku, output.Sku)
	assert.Equal(t, newSkus, output.NewSkus)
	assert.Equal(t, int64(2), output.CartCount)
}

func TestGoodsService_Detail_AnonymousSkipsHistory(t *testing.T) {
	fx := createTestGoodsService(t)

	ctx := context.Background()
	sku := &entity.GoodsSKU{ID: uuid.New(), TypeID: uuid.New(), Name: "草莓"}

	fx.goodsRepo.EXPECT().FindSkuByID(ctx, sku.ID).Return(sku, nil)
	fx.goodsRepo.EXPECT().FindNewByType(ctx, sku.TypeID, newArrivalLimit).Return(nil, nil)

	output, err := fx.service.Detail(ctx, sku.ID, uuid.Nil)

	require.NoError(t, err)
	assert.Zero(t, output.CartCount)
}

func TestGoodsService_Detail_HistoryFailureDoesNotFailPage(t *testing.T) {
	fx := createTestGoodsService(t)

	ctx := context.Background()
	userID := uuid.New()
	sku := &entity.GoodsSKU{ID: uuid.New(), TypeID: uuid.New(), Name: "草莓"}

	fx.goodsRepo.EXPECT().FindSkuByID(ctx, sku.ID).Return(sku, nil)
	fx.goodsRepo.EXPECT().FindNewByType(ctx, sku.TypeID, newArrivalLimit).Return(nil, nil)
	fx.historyRepo.EXPECT().Push(mock.Anything, userID, sku.ID).Return(errors.New("store unavailable"))
	fx.cartRepo.EXPECT().Count(mock.Anything, userID).Return(int64(0), nil)

	output, err := fx.service.Detail(ctx, sku.ID, userID)

	require.NoError(t, err)
	assert.Equal(t, sku, output.Sku)
}

func TestGoodsService_Detail_UnknownSku(t *testing.T) {
	fx := createTestGoodsService(t)

	ctx := context.Background()
	skuID := uuid.New()

	fx.goodsRepo.EXPECT().FindSkuByID(ctx, skuID).Return(nil, repository.ErrGoodsNotFound)

	output, err := fx.service.Detail(ctx, skuID, uuid.Nil)

	require.ErrorIs(t, err, domainerrors.ErrGoodsNotFound)
	assert.Nil(t, output)
}

func TestGoodsService_UserCenterInfo_Success(t *testing.T) {
	fx := createTestGoodsService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "zhangsan"}
	address := &entity.Address{ID: uuid.New(), UserID: userID, IsDefault: true}

	skuA := &entity.GoodsSKU{ID: uuid.New(), Name: "草莓"}
	skuB := &entity.GoodsSKU{ID: uuid.New(), Name: "三文鱼"}
	skuC := &entity.GoodsSKU{ID: uuid.New(), Name: "奶油草莓"}
	historyIDs := []uuid.UUID{skuC.ID, skuA.ID, skuB.ID}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.addressRepo.EXPECT().FindDefaultByUser(ctx, userID).Return(address, nil)
	fx.historyRepo.EXPECT().Recent(mock.Anything, userID, constants.HistoryMax).Return(historyIDs, nil)
	// The catalog query returns in arbitrary order; the join restores the
	// visit order.
	fx.goodsRepo.EXPECT().FindSkusByIDs(ctx, historyIDs).Return([]*entity.GoodsSKU{skuA, skuB, skuC}, nil)

	output, err := fx.service.UserCenterInfo(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, address, output.DefaultAddress)
	require.Len(t, output.RecentSkus, 3)
	assert.Equal(t, skuC.ID, output.RecentSkus[0].ID)
	assert.Equal(t, skuA.ID, output.RecentSkus[1].ID)
	assert.Equal(t, skuB.ID, output.RecentSkus[2].ID)
}

func TestGoodsService_UserCenterInfo_DropsVanishedHistoryEntries(t *testing.T) {
	fx := createTestGoodsService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "zhangsan"}

	sku := &entity.GoodsSKU{ID: uuid.New(), Name: "草莓"}
	vanishedID := uuid.New()
	historyIDs := []uuid.UUID{vanishedID, sku.ID}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.addressRepo.EXPECT().FindDefaultByUser(ctx, userID).Return(nil, repository.ErrAddressNotFound)
	fx.historyRepo.EXPECT().Recent(mock.Anything, userID, constants.HistoryMax).Return(historyIDs, nil)
	fx.goodsRepo.EXPECT().FindSkusByIDs(ctx, historyIDs).Return([]*entity.GoodsSKU{sku}, nil)

	output, err := fx.service.UserCenterInfo(ctx, userID)

	require.NoError(t, err)
	assert.Nil(t, output.DefaultAddress)
	require.Len(t, output.RecentSkus, 1)
	assert.Equal(t, sku.ID, output.RecentSkus[0].ID)
}

func TestGoodsService_UserCenterInfo_HistoryDegradesToEmpty(t *testing.T) {
	fx := createTestGoodsService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "zhangsan"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.addressRepo.EXPECT().FindDefaultByUser(ctx, userID).Return(nil, repository.ErrAddressNotFound)
	fx.historyRepo.EXPECT().Recent(mock.Anything, userID, constants.HistoryMax).Return(nil, errors.New("store unavailable"))

	output, err := fx.service.UserCenterInfo(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, output.RecentSkus)
}

func TestGoodsService_UserCenterInfo_UnknownUser(t *testing.T) {
	fx := createTestGoodsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.UserCenterInfo(ctx, userID)

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, output)
}

func TestGoodsService_ShareQR_Success(t *testing.T) {
	fx := createTestGoodsService(t)

	ctx := context.Background()
	sku := &entity.GoodsSKU{ID: uuid.New(), Name: "草莓"}
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.goodsRepo.EXPECT().FindSkuByID(ctx, sku.ID).Return(sku, nil)
	fx.qrcodeService.EXPECT().GenerateSkuShareQR(sku.ID).Return(png, nil)

	got, err := fx.service.ShareQR(ctx, sku.ID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestGoodsService_ShareQR_UnknownSku(t *testing.T) {
	fx := createTestGoodsService(t)

	ctx := context.Background()
	skuID := uuid.New()

	fx.goodsRepo.EXPECT().FindSkuByID(ctx, skuID).Return(nil, repository.ErrGoodsNotFound)

	got, err := fx.service.ShareQR(ctx, skuID)

	require.ErrorIs(t, err, domainerrors.ErrGoodsNotFound)
	assert.Nil(t, got)
}
