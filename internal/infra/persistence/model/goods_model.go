package model

import (
	"time"

	"github.com/google/uuid"
)

// GoodsTypeModel mirrors the 'goods_types' table.
type GoodsTypeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string    `gorm:"type:varchar(20);not null"`
	Logo      string    `gorm:"type:varchar(20)"`
	Image     string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GoodsTypeModel) TableName() string {
	return "goods_types"
}

// GoodsSKUModel mirrors the 'goods_skus' table. Price is stored in cents.
type GoodsSKUModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	TypeID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Desc      string    `gorm:"type:varchar(255)"`
	Price     int64     `gorm:"not null"`
	Unite     string    `gorm:"type:varchar(20);not null"`
	Image     string    `gorm:"type:varchar(255)"`
	Stock     int       `gorm:"not null;default:1"`
	Sales     int       `gorm:"not null;default:0"`
	Status    int       `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Type *GoodsTypeModel `gorm:"foreignKey:TypeID"`
}

// TableName explicitly sets the table name for GORM.
func (GoodsSKUModel) TableName() string {
	return "goods_skus"
}

// IndexGoodsBannerModel mirrors the 'index_goods_banners' table.
type IndexGoodsBannerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SkuID     uuid.UUID `gorm:"type:uuid;not null"`
	Image     string    `gorm:"type:varchar(255)"`
	Index     int       `gorm:"column:display_index;not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (IndexGoodsBannerModel) TableName() string {
	return "index_goods_banners"
}

// IndexPromotionBannerModel mirrors the 'index_promotion_banners' table.
type IndexPromotionBannerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string    `gorm:"type:varchar(20);not null"`
	URL       string    `gorm:"type:varchar(255);not null"`
	Image     string    `gorm:"type:varchar(255)"`
	Index     int       `gorm:"column:display_index;not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (IndexPromotionBannerModel) TableName() string {
	return "index_promotion_banners"
}

// IndexTypeGoodsBannerModel mirrors the 'index_type_goods_banners' table.
// DisplayType 0 renders the SKU as a text link, 1 as an image tile.
type IndexTypeGoodsBannerModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	TypeID      uuid.UUID `gorm:"type:uuid;not null;index"`
	SkuID       uuid.UUID `gorm:"type:uuid;not null"`
	DisplayType int       `gorm:"not null;default:1"`
	Index       int       `gorm:"column:display_index;not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (IndexTypeGoodsBannerModel) TableName() string {
	return "index_type_goods_banners"
}
