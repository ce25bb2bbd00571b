package impl

import (
	"context"
	"log/slog"
	"time"

	"dailyfresh/config"
	deliverycontext "dailyfresh/internal/delivery/context"
	"dailyfresh/internal/domain/entity"
	domainerrors "dailyfresh/internal/domain/errors"
	"dailyfresh/internal/domain/repository"
	"dailyfresh/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface. Quantities live in the
// ephemeral store; every stock decision re-reads the durable SKU record.
type cartService struct {
	cartRepo     repository.CartRepository
	goodsRepo    repository.GoodsRepository
	storeTimeout time.Duration
	logger       *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo  repository.CartRepository
	GoodsRepo repository.GoodsRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	storeTimeout := defaultStoreTimeout
	if params.Config != nil && params.Config.Redis != nil && params.Config.Redis.OpTimeout > 0 {
		storeTimeout = params.Config.Redis.OpTimeout
	}

	return &cartService{
		cartRepo:     params.CartRepo,
		goodsRepo:    params.GoodsRepo,
		storeTimeout: storeTimeout,
		logger:       params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add stacks quantity units of a SKU onto the cart entry, capped by stock.
func (srv *cartService) Add(ctx context.Context, userID, skuID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return domainerrors.ErrIncompleteData
	}

	sku, err := srv.findSku(ctx, skuID)
	if err != nil {
		return err
	}

	storeCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	current, err := srv.cartRepo.Get(storeCtx, userID, skuID)
	if err != nil {
		return errors.Wrap(err, "failed to read cart entry")
	}

	total := current + quantity
	if total > sku.Stock {
		return domainerrors.ErrGoodsStockShort
	}

	if err := srv.cartRepo.Set(storeCtx, userID, skuID, total); err != nil {
		return errors.Wrap(err, "failed to write cart entry")
	}

	srv.log(ctx).Debug("Cart entry added",
		slog.Any("userID", userID),
		slog.Any("skuID", skuID),
		slog.Int("quantity", total),
	)

	return nil
}

// UpdateQuantity overwrites the quantity of a cart entry, capped by stock.
func (srv *cartService) UpdateQuantity(ctx context.Context, userID, skuID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return domainerrors.ErrIncompleteData
	}

	sku, err := srv.findSku(ctx, skuID)
	if err != nil {
		return err
	}
	if quantity > sku.Stock {
		return domainerrors.ErrGoodsStockShort
	}

	storeCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	if err := srv.cartRepo.Set(storeCtx, userID, skuID, quantity); err != nil {
		return errors.Wrap(err, "failed to write cart entry")
	}

	return nil
}

// Remove deletes one SKU entry from the cart.
func (srv *cartService) Remove(ctx context.Context, userID, skuID uuid.UUID) error {
	storeCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	if err := srv.cartRepo.Remove(storeCtx, userID, skuID); err != nil {
		return errors.Wrap(err, "failed to remove cart entry")
	}

	return nil
}

// List joins the cart against the catalog. Entries whose SKU vanished from
// the catalog are dropped from the view.
func (srv *cartService) List(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	storeCtx, cancel := srv.storeContext(ctx)
	contents, err := srv.cartRepo.GetAll(storeCtx, userID)
	cancel()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cart")
	}

	cart := &entity.Cart{UserID: userID}
	if len(contents) == 0 {
		return cart, nil
	}

	ids := make([]uuid.UUID, 0, len(contents))
	for id := range contents {
		ids = append(ids, id)
	}

	skus, err := srv.goodsRepo.FindSkusByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to join cart against catalog")
	}

	for _, sku := range skus {
		quantity := contents[sku.ID]
		if quantity <= 0 {
			continue
		}

		line := &entity.CartLine{
			Sku:      sku,
			Quantity: quantity,
			Amount:   int64(quantity) * sku.Price,
		}
		cart.Lines = append(cart.Lines, line)
		cart.TotalCount += quantity
		cart.TotalAmount += line.Amount
	}

	return cart, nil
}

// Count returns the number of distinct cart entries, degraded to 0 when the
// ephemeral store does not answer in time.
func (srv *cartService) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	storeCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	count, err := srv.cartRepo.Count(storeCtx, userID)
	if err != nil {
		srv.log(ctx).Warn("Cart count degraded",
			slog.Any("userID", userID),
			slog.Any("error", err),
		)

		return 0, nil
	}

	return count, nil
}

func (srv *cartService) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, srv.storeTimeout)
}

func (srv *cartService) findSku(ctx context.Context, skuID uuid.UUID) (*entity.GoodsSKU, error) {
	sku, err := srv.goodsRepo.FindSkuByID(ctx, skuID)
	if err != nil {
		if errors.Is(err, repository.ErrGoodsNotFound) {
			return nil, domainerrors.ErrGoodsNotFound
		}

		return nil, errors.Wrap(err, "failed to load sku")
	}

	return sku, nil
}
