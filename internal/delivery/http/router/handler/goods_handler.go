package handler

import (
	"log/slog"
	"net/http"

	"dailyfresh/internal/delivery/http/response"
	"dailyfresh/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GoodsHandler holds dependencies for the storefront page handlers.
type GoodsHandler struct {
	uc     usecase.GoodsUsecase
	logger *slog.Logger
}

// NewGoodsHandler is the constructor for GoodsHandler, injected by Fx.
func NewGoodsHandler(uc usecase.GoodsUsecase, logger *slog.Logger) *GoodsHandler {
	return &GoodsHandler{
		uc:     uc,
		logger: logger,
	}
}

// Index serves the storefront index view model.
func (h *GoodsHandler) Index(c echo.Context) error {
	output, err := h.uc.Index(c.Request().Context(), visitorUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	view := &IndexView{
		Showcases:        make([]*ShowcaseView, 0, len(output.Showcases)),
		GoodsBanners:     make([]*GoodsBannerView, 0, len(output.GoodsBanners)),
		PromotionBanners: make([]*PromotionBannerView, 0, len(output.PromotionBanners)),
		CartCount:        output.CartCount,
	}
	for _, showcase := range output.Showcases {
		view.Showcases = append(view.Showcases, newShowcaseView(showcase))
	}
	for _, banner := range output.GoodsBanners {
		view.GoodsBanners = append(view.GoodsBanners, &GoodsBannerView{
			SkuID: banner.SkuID,
			Image: banner.Image,
			Index: banner.Index,
		})
	}
	for _, banner := range output.PromotionBanners {
		view.PromotionBanners = append(view.PromotionBanners, &PromotionBannerView{
			Name:  banner.Name,
			URL:   banner.URL,
			Image: banner.Image,
			Index: banner.Index,
		})
	}

	return response.Success(c, http.StatusOK, view, "Index retrieved successfully")
}

type detailView struct {
	Sku       *SkuView   `json:"sku"`
	NewSkus   []*SkuView `json:"new_skus"`
	CartCount int64      `json:"cart_count"`
}

// Detail serves a product detail view model.
func (h *GoodsHandler) Detail(c echo.Context) error {
	skuID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid sku id")
	}

	output, err := h.uc.Detail(c.Request().Context(), skuID, visitorUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detailView{
		Sku:       newSkuView(output.Sku),
		NewSkus:   newSkuViews(output.NewSkus),
		CartCount: output.CartCount,
	}, "Goods detail retrieved successfully")
}

// ShareQR serves the PNG share QR code of a SKU.
func (h *GoodsHandler) ShareQR(c echo.Context) error {
	skuID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid sku id")
	}

	png, err := h.uc.ShareQR(c.Request().Context(), skuID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

type userCenterView struct {
	User           *UserView    `json:"user"`
	DefaultAddress *AddressView `json:"default_address,omitempty"`
	RecentSkus     []*SkuView   `json:"recent_skus"`
}

// UserCenterInfo serves the user-center info page view model.
func (h *GoodsHandler) UserCenterInfo(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.uc.UserCenterInfo(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, userCenterView{
		User:           newUserView(output.User),
		DefaultAddress: newAddressView(output.DefaultAddress),
		RecentSkus:     newSkuViews(output.RecentSkus),
	}, "User center info retrieved successfully")
}
