package impl

import (
	"context"
	"log/slog"
	"time"

	"dailyfresh/config"
	deliverycontext "dailyfresh/internal/delivery/context"
	"dailyfresh/internal/domain/constants"
	"dailyfresh/internal/domain/entity"
	domainerrors "dailyfresh/internal/domain/errors"
	"dailyfresh/internal/domain/repository"
	"dailyfresh/internal/domain/service"
	"dailyfresh/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultStoreTimeout = 200 * time.Millisecond
	newArrivalLimit     = 2
)

// goodsService implements the GoodsUsecase interface. It composes the
// read-only catalog with the ephemeral cart/history store; store failures
// degrade the page instead of failing it.
type goodsService struct {
	goodsRepo     repository.GoodsRepository
	userRepo      repository.UserRepository
	addressRepo   repository.AddressRepository
	cartRepo      repository.CartRepository
	historyRepo   repository.HistoryRepository
	qrcodeService service.QRCodeService
	storeTimeout  time.Duration
	logger        *slog.Logger
}

// GoodsServiceParams holds dependencies for GoodsService, injected by Fx.
type GoodsServiceParams struct {
	fx.In

	GoodsRepo     repository.GoodsRepository
	UserRepo      repository.UserRepository
	AddressRepo   repository.AddressRepository
	CartRepo      repository.CartRepository
	HistoryRepo   repository.HistoryRepository
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewGoodsService is the constructor for goodsService.
func NewGoodsService(params GoodsServiceParams) usecase.GoodsUsecase {
	storeTimeout := defaultStoreTimeout
	if params.Config != nil && params.Config.Redis != nil && params.Config.Redis.OpTimeout > 0 {
		storeTimeout = params.Config.Redis.OpTimeout
	}

	return &goodsService{
		goodsRepo:     params.GoodsRepo,
		userRepo:      params.UserRepo,
		addressRepo:   params.AddressRepo,
		cartRepo:      params.CartRepo,
		historyRepo:   params.HistoryRepo,
		qrcodeService: params.QRCodeService,
		storeTimeout:  storeTimeout,
		logger:        params.Logger,
	}
}

func (srv *goodsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Index builds the index page projection: per-category showcases, the two
// banner strips, and the visitor's cart badge.
func (srv *goodsService) Index(ctx context.Context, userID uuid.UUID) (*usecase.IndexOutput, error) {
	types, err := srv.goodsRepo.FindTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load goods types")
	}

	showcases := make([]*entity.TypeShowcase, 0, len(types))
	for _, goodsType := range types {
		imageBanners, err := srv.goodsRepo.FindTypeBanners(ctx, goodsType.ID, entity.BannerDisplayImage)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load image banners")
		}
		titleBanners, err := srv.goodsRepo.FindTypeBanners(ctx, goodsType.ID, entity.BannerDisplayTitle)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load title banners")
		}

		showcases = append(showcases, &entity.TypeShowcase{
			Type:         goodsType,
			ImageBanners: imageBanners,
			TitleBanners: titleBanners,
		})
	}

	goodsBanners, err := srv.goodsRepo.FindGoodsBanners(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load goods banners")
	}

	promotionBanners, err := srv.goodsRepo.FindPromotionBanners(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load promotion banners")
	}

	return &usecase.IndexOutput{
		Showcases:        showcases,
		GoodsBanners:     goodsBanners,
		PromotionBanners: promotionBanners,
		CartCount:        srv.cartCount(ctx, userID),
	}, nil
}

// Detail builds the product detail page. Authenticated visits are recorded
// in the browsing history; a history write failure only costs the record.
func (srv *goodsService) Detail(ctx context.Context, skuID, userID uuid.UUID) (*usecase.DetailOutput, error) {
	sku, err := srv.goodsRepo.FindSkuByID(ctx, skuID)
	if err != nil {
		if errors.Is(err, repository.ErrGoodsNotFound) {
			return nil, domainerrors.ErrGoodsNotFound
		}

		return nil, errors.Wrap(err, "failed to load sku")
	}

	newSkus, err := srv.goodsRepo.FindNewByType(ctx, sku.TypeID, newArrivalLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load new arrivals")
	}

	if userID != uuid.Nil {
		srv.recordVisit(ctx, userID, skuID)
	}

	return &usecase.DetailOutput{
		Sku:       sku,
		NewSkus:   newSkus,
		CartCount: srv.cartCount(ctx, userID),
	}, nil
}

// UserCenterInfo builds the user-center info page: the user record, the
// default address and the recently-viewed SKUs in visit order.
func (srv *goodsService) UserCenterInfo(ctx context.Context, userID uuid.UUID) (*usecase.UserCenterOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	defaultAddress, err := srv.addressRepo.FindDefaultByUser(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrAddressNotFound) {
		return nil, errors.Wrap(err, "failed to load default address")
	}

	return &usecase.UserCenterOutput{
		User:           user,
		DefaultAddress: defaultAddress,
		RecentSkus:     srv.recentSkus(ctx, userID),
	}, nil
}

// ShareQR renders the PNG share QR code of a SKU.
func (srv *goodsService) ShareQR(ctx context.Context, skuID uuid.UUID) ([]byte, error) {
	if _, err := srv.goodsRepo.FindSkuByID(ctx, skuID); err != nil {
		if errors.Is(err, repository.ErrGoodsNotFound) {
			return nil, domainerrors.ErrGoodsNotFound
		}

		return nil, errors.Wrap(err, "failed to load sku")
	}

	png, err := srv.qrcodeService.GenerateSkuShareQR(skuID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share qrcode")
	}

	return png, nil
}

// cartCount returns the visitor's cart badge, degraded to 0 for anonymous
// visitors and when the ephemeral store does not answer in time.
func (srv *goodsService) cartCount(ctx context.Context, userID uuid.UUID) int64 {
	if userID == uuid.Nil {
		return 0
	}

	storeCtx, cancel := context.WithTimeout(ctx, srv.storeTimeout)
	defer cancel()

	count, err := srv.cartRepo.Count(storeCtx, userID)
	if err != nil {
		srv.log(ctx).Warn("Cart count degraded",
			slog.Any("userID", userID),
			slog.Any("error", err),
		)

		return 0
	}

	return count
}

// recordVisit moves the SKU to the head of the history and trims to the cap.
func (srv *goodsService) recordVisit(ctx context.Context, userID, skuID uuid.UUID) {
	storeCtx, cancel := context.WithTimeout(ctx, srv.storeTimeout)
	defer cancel()

	if err := srv.historyRepo.Push(storeCtx, userID, skuID); err != nil {
		srv.log(ctx).Warn("History push failed",
			slog.Any("userID", userID),
			slog.Any("skuID", skuID),
			slog.Any("error", err),
		)

		return
	}
	if err := srv.historyRepo.Trim(storeCtx, userID, constants.HistoryMax); err != nil {
		srv.log(ctx).Warn("History trim failed",
			slog.Any("userID", userID),
			slog.Any("error", err),
		)
	}
}

// recentSkus joins the history ids against a fresh catalog query. The query
// result carries no ordering, so the join walks the ids in push order; ids
// whose SKU vanished are dropped. Store failures degrade to an empty list.
func (srv *goodsService) recentSkus(ctx context.Context, userID uuid.UUID) []*entity.GoodsSKU {
	storeCtx, cancel := context.WithTimeout(ctx, srv.storeTimeout)
	defer cancel()

	ids, err := srv.historyRepo.Recent(storeCtx, userID, constants.HistoryMax)
	if err != nil {
		srv.log(ctx).Warn("History read degraded",
			slog.Any("userID", userID),
			slog.Any("error", err),
		)

		return nil
	}
	if len(ids) == 0 {
		return nil
	}

	skus, err := srv.goodsRepo.FindSkusByIDs(ctx, ids)
	if err != nil {
		srv.log(ctx).Warn("History join degraded",
			slog.Any("userID", userID),
			slog.Any("error", err),
		)

		return nil
	}

	byID := make(map[uuid.UUID]*entity.GoodsSKU, len(skus))
	for _, sku := range skus {
		byID[sku.ID] = sku
	}

	ordered := make([]*entity.GoodsSKU, 0, len(ids))
	for _, id := range ids {
		if sku, ok := byID[id]; ok {
			ordered = append(ordered, sku)
		}
	}

	return ordered
}
