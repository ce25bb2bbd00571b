package repository

import (
	"context"

	"dailyfresh/internal/domain/entity"
	"dailyfresh/internal/errors"

	"github.com/google/uuid"
)

// ErrGoodsNotFound is returned when a SKU is not found.
var ErrGoodsNotFound = errors.New("goods sku not found")

// GoodsRepository defines the read-only interface over the product catalog.
// This subsystem never writes catalog records.
type GoodsRepository interface {
	// FindSkuByID retrieves a single SKU by its unique ID.
	FindSkuByID(ctx context.Context, id uuid.UUID) (*entity.GoodsSKU, error)

	// FindSkusByIDs retrieves the SKUs matching the given ids. The result
	// carries no ordering guarantee; callers that care about order must
	// re-order it themselves.
	FindSkusByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.GoodsSKU, error)

	// FindNewByType retrieves the newest SKUs of a category, newest first.
	FindNewByType(ctx context.Context, typeID uuid.UUID, limit int) ([]*entity.GoodsSKU, error)

	// FindTypes retrieves all product categories.
	FindTypes(ctx context.Context) ([]*entity.GoodsType, error)

	// FindGoodsBanners retrieves the index carousel slides ordered by index.
	FindGoodsBanners(ctx context.Context) ([]*entity.IndexGoodsBanner, error)

	// FindPromotionBanners retrieves the index promotion tiles ordered by index.
	FindPromotionBanners(ctx context.Context) ([]*entity.IndexPromotionBanner, error)

	// FindTypeBanners retrieves the showcase slots of one category and display
	// type, ordered by index.
	FindTypeBanners(ctx context.Context, typeID uuid.UUID, display entity.BannerDisplayType) ([]*entity.IndexTypeGoodsBanner, error)
}
