package usecase

import (
	"context"

	"dailyfresh/internal/domain/entity"

	"github.com/google/uuid"
)

// IndexOutput is the composed view model of the storefront index page.
type IndexOutput struct {
	Showcases        []*entity.TypeShowcase
	GoodsBanners     []*entity.IndexGoodsBanner
	PromotionBanners []*entity.IndexPromotionBanner
	CartCount        int64 // 0 for anonymous visitors and on store degradation.
}

// DetailOutput is the view model of a product detail page.
type DetailOutput struct {
	Sku       *entity.GoodsSKU
	NewSkus   []*entity.GoodsSKU // Newest SKUs of the same category.
	CartCount int64
}

// UserCenterOutput is the view model of the user-center info page.
type UserCenterOutput struct {
	User           *entity.User
	DefaultAddress *entity.Address    // nil when the user has no default.
	RecentSkus     []*entity.GoodsSKU // Recently viewed, newest first.
}

// GoodsUsecase defines the interface for the read-only storefront pages.
// Operations taking a userID accept uuid.Nil for anonymous visitors.
type GoodsUsecase interface {
	// Index builds the index page projection.
	Index(ctx context.Context, userID uuid.UUID) (*IndexOutput, error)

	// Detail builds the product detail page and, for authenticated visitors,
	// records the visit in the browsing history.
	Detail(ctx context.Context, skuID, userID uuid.UUID) (*DetailOutput, error)

	// UserCenterInfo builds the user-center info page.
	UserCenterInfo(ctx context.Context, userID uuid.UUID) (*UserCenterOutput, error)

	// ShareQR renders the PNG share QR code of a SKU.
	ShareQR(ctx context.Context, skuID uuid.UUID) ([]byte, error)
}
