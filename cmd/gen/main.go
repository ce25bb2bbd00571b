package main

import (
	"dailyfresh/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.RefreshTokenModel{},
		model.AddressModel{},
		model.GoodsTypeModel{},
		model.GoodsSKUModel{},
		model.IndexGoodsBannerModel{},
		model.IndexPromotionBannerModel{},
		model.IndexTypeGoodsBannerModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
