package postgres

import (
	"context"

	"dailyfresh/internal/domain/entity"
	"dailyfresh/internal/domain/repository"
	"dailyfresh/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// goodsRepository implements the read-only domain.GoodsRepository interface
// using GORM. Catalog writes happen in a separate back office.
type goodsRepository struct {
	db *gorm.DB
}

// NewGoodsRepository is the constructor for goodsRepository.
func NewGoodsRepository(db *gorm.DB) repository.GoodsRepository {
	return &goodsRepository{db: db}
}

// FindSkuByID retrieves a single SKU by its unique ID.
func (repo *goodsRepository) FindSkuByID(ctx context.Context, id uuid.UUID) (*entity.GoodsSKU, error) {
	var skuM model.GoodsSKUModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&skuM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGoodsNotFound
		}

		return nil, errors.Wrap(err, "failed to find sku by id")
	}

	return toSkuDomain(&skuM), nil
}

// FindSkusByIDs retrieves the SKUs matching the given ids, unordered.
func (repo *goodsRepository) FindSkusByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.GoodsSKU, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var skuMs []*model.GoodsSKUModel
	err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&skuMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find skus by ids")
	}

	skus := make([]*entity.GoodsSKU, 0, len(skuMs))
	for _, skuM := range skuMs {
		skus = append(skus, toSkuDomain(skuM))
	}

	return skus, nil
}

// FindNewByType retrieves the newest SKUs of a category, newest first.
func (repo *goodsRepository) FindNewByType(ctx context.Context, typeID uuid.UUID, limit int) ([]*entity.GoodsSKU, error) {
	var skuMs []*model.GoodsSKUModel
	err := repo.db.WithContext(ctx).
		Where("type_id = ?", typeID).
		Order("created_at DESC").
		Limit(limit).
		Find(&skuMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find new skus by type")
	}

	skus := make([]*entity.GoodsSKU, 0, len(skuMs))
	for _, skuM := range skuMs {
		skus = append(skus, toSkuDomain(skuM))
	}

	return skus, nil
}

// FindTypes retrieves all product categories.
func (repo *goodsRepository) FindTypes(ctx context.Context) ([]*entity.GoodsType, error) {
	var typeMs []*model.GoodsTypeModel
	err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&typeMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find goods types")
	}

	types := make([]*entity.GoodsType, 0, len(typeMs))
	for _, typeM := range typeMs {
		types = append(types, &entity.GoodsType{
			ID:    typeM.ID,
			Name:  typeM.Name,
			Logo:  typeM.Logo,
			Image: typeM.Image,
		})
	}

	return types, nil
}

// FindGoodsBanners retrieves the index carousel slides ordered by index.
func (repo *goodsRepository) FindGoodsBanners(ctx context.Context) ([]*entity.IndexGoodsBanner, error) {
	var bannerMs []*model.IndexGoodsBannerModel
	err := repo.db.WithContext(ctx).
		Order("display_index ASC").
		Find(&bannerMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find goods banners")
	}

	banners := make([]*entity.IndexGoodsBanner, 0, len(bannerMs))
	for _, bannerM := range bannerMs {
		banners = append(banners, &entity.IndexGoodsBanner{
			ID:    bannerM.ID,
			SkuID: bannerM.SkuID,
			Image: bannerM.Image,
			Index: bannerM.Index,
		})
	}

	return banners, nil
}

// FindPromotionBanners retrieves the index promotion tiles ordered by index.
func (repo *goodsRepository) FindPromotionBanners(ctx context.Context) ([]*entity.IndexPromotionBanner, error) {
	var bannerMs []*model.IndexPromotionBannerModel
	err := repo.db.WithContext(ctx).
		Order("display_index ASC").
		Find(&bannerMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find promotion banners")
	}

	banners := make([]*entity.IndexPromotionBanner, 0, len(bannerMs))
	for _, bannerM := range bannerMs {
		banners = append(banners, &entity.IndexPromotionBanner{
			ID:    bannerM.ID,
			Name:  bannerM.Name,
			URL:   bannerM.URL,
			Image: bannerM.Image,
			Index: bannerM.Index,
		})
	}

	return banners, nil
}

// FindTypeBanners retrieves the showcase slots of one category and display type.
func (repo *goodsRepository) FindTypeBanners(ctx context.Context, typeID uuid.UUID, display entity.BannerDisplayType) ([]*entity.IndexTypeGoodsBanner, error) {
	var bannerMs []*model.IndexTypeGoodsBannerModel
	err := repo.db.WithContext(ctx).
		Where("type_id = ? AND display_type = ?", typeID, int(display)).
		Order("display_index ASC").
		Find(&bannerMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find type banners")
	}

	banners := make([]*entity.IndexTypeGoodsBanner, 0, len(bannerMs))
	for _, bannerM := range bannerMs {
		banners = append(banners, &entity.IndexTypeGoodsBanner{
			ID:          bannerM.ID,
			TypeID:      bannerM.TypeID,
			SkuID:       bannerM.SkuID,
			DisplayType: entity.BannerDisplayType(bannerM.DisplayType),
			Index:       bannerM.Index,
		})
	}

	return banners, nil
}

// toSkuDomain converts a GORM GoodsSKUModel to a domain GoodsSKU entity.
func toSkuDomain(data *model.GoodsSKUModel) *entity.GoodsSKU {
	if data == nil {
		return nil
	}

	return &entity.GoodsSKU{
		ID:        data.ID,
		TypeID:    data.TypeID,
		Name:      data.Name,
		Desc:      data.Desc,
		Price:     data.Price,
		Unite:     data.Unite,
		Image:     data.Image,
		Stock:     data.Stock,
		Sales:     data.Sales,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
