// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BannerDisplayType distinguishes the two render styles of a per-category banner slot.
type BannerDisplayType int

const (
	// BannerDisplayTitle renders the SKU as a text link.
	BannerDisplayTitle BannerDisplayType = 0
	// BannerDisplayImage renders the SKU as an image tile.
	BannerDisplayImage BannerDisplayType = 1
)

// GoodsType is a product category shown on the storefront index page.
type GoodsType struct {
	ID    uuid.UUID // The Global Unique Identifier (GUID) for the category.
	Name  string    // Display name of the category.
	Logo  string    // Identifier of the category glyph.
	Image string    // URL of the category banner image.
}

// GoodsSKU is a sellable product record. This subsystem reads it;
// catalog management happens elsewhere.
type GoodsSKU struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the SKU.
	TypeID    uuid.UUID // Category this SKU belongs to.
	Name      string    // Display name.
	Desc      string    // Short description shown on listing pages.
	Price     int64     // Unit price in cents.
	Unite     string    // Sales unit, e.g. "500g".
	Image     string    // URL of the product image.
	Stock     int       // Units available; the cart ceiling.
	Sales     int       // Units sold, for display only.
	Status    int       // 1 = on sale, 0 = delisted.
	CreatedAt time.Time // Timestamp of when this SKU was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// IndexGoodsBanner is one slide of the index-page carousel.
type IndexGoodsBanner struct {
	ID    uuid.UUID
	SkuID uuid.UUID // SKU the slide links to.
	Image string    // Slide image URL.
	Index int       // Display order, ascending.
}

// IndexPromotionBanner is one promotion tile on the index page.
type IndexPromotionBanner struct {
	ID    uuid.UUID
	Name  string // Promotion title.
	URL   string // Landing page of the promotion.
	Image string // Tile image URL.
	Index int    // Display order, ascending.
}

// IndexTypeGoodsBanner is a per-category showcase slot on the index page.
type IndexTypeGoodsBanner struct {
	ID          uuid.UUID
	TypeID      uuid.UUID         // Category the slot belongs to.
	SkuID       uuid.UUID         // SKU shown in the slot.
	DisplayType BannerDisplayType // Title link or image tile.
	Index       int               // Display order within the category, ascending.
}

// TypeShowcase is the composed view model for one category block of the index
// page. The projection is built explicitly instead of attaching banner lists
// onto the category record at request time.
type TypeShowcase struct {
	Type         *GoodsType
	ImageBanners []*IndexTypeGoodsBanner
	TitleBanners []*IndexTypeGoodsBanner
}
