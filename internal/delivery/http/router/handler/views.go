package handler

import (
	"dailyfresh/internal/domain/entity"

	"github.com/google/uuid"
)

// View models keep entity internals, the password hash above all, out of the
// wire format.

// UserView is the public projection of a user record.
type UserView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	IsActive bool      `json:"is_active"`
}

func newUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	return &UserView{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsActive: user.IsActive,
	}
}

// AddressView is the wire form of a shipping address.
type AddressView struct {
	ID        uuid.UUID `json:"id"`
	Receiver  string    `json:"receiver"`
	Addr      string    `json:"addr"`
	ZipCode   string    `json:"zip_code,omitempty"`
	Phone     string    `json:"phone"`
	IsDefault bool      `json:"is_default"`
}

func newAddressView(address *entity.Address) *AddressView {
	if address == nil {
		return nil
	}

	return &AddressView{
		ID:        address.ID,
		Receiver:  address.Receiver,
		Addr:      address.Addr,
		ZipCode:   address.ZipCode,
		Phone:     address.Phone,
		IsDefault: address.IsDefault,
	}
}

func newAddressViews(addresses []*entity.Address) []*AddressView {
	views := make([]*AddressView, 0, len(addresses))
	for _, address := range addresses {
		views = append(views, newAddressView(address))
	}

	return views
}

// SkuView is the wire form of a catalog SKU.
type SkuView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Desc  string    `json:"desc,omitempty"`
	Price int64     `json:"price"` // Unit price in cents.
	Unite string    `json:"unite"`
	Image string    `json:"image"`
	Stock int       `json:"stock"`
	Sales int       `json:"sales"`
}

func newSkuView(sku *entity.GoodsSKU) *SkuView {
	if sku == nil {
		return nil
	}

	return &SkuView{
		ID:    sku.ID,
		Name:  sku.Name,
		Desc:  sku.Desc,
		Price: sku.Price,
		Unite: sku.Unite,
		Image: sku.Image,
		Stock: sku.Stock,
		Sales: sku.Sales,
	}
}

func newSkuViews(skus []*entity.GoodsSKU) []*SkuView {
	views := make([]*SkuView, 0, len(skus))
	for _, sku := range skus {
		views = append(views, newSkuView(sku))
	}

	return views
}

// TypeView is the wire form of a product category.
type TypeView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Logo  string    `json:"logo"`
	Image string    `json:"image"`
}

// TypeBannerView is one showcase slot of a category block.
type TypeBannerView struct {
	SkuID uuid.UUID `json:"sku_id"`
	Index int       `json:"index"`
}

// ShowcaseView is one category block of the index page.
type ShowcaseView struct {
	Type         *TypeView         `json:"type"`
	ImageBanners []*TypeBannerView `json:"image_banners"`
	TitleBanners []*TypeBannerView `json:"title_banners"`
}

// GoodsBannerView is one carousel slide of the index page.
type GoodsBannerView struct {
	SkuID uuid.UUID `json:"sku_id"`
	Image string    `json:"image"`
	Index int       `json:"index"`
}

// PromotionBannerView is one promotion tile of the index page.
type PromotionBannerView struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Image string `json:"image"`
	Index int    `json:"index"`
}

// IndexView is the index page view model.
type IndexView struct {
	Showcases        []*ShowcaseView        `json:"showcases"`
	GoodsBanners     []*GoodsBannerView     `json:"goods_banners"`
	PromotionBanners []*PromotionBannerView `json:"promotion_banners"`
	CartCount        int64                  `json:"cart_count"`
}

func newTypeBannerViews(banners []*entity.IndexTypeGoodsBanner) []*TypeBannerView {
	views := make([]*TypeBannerView, 0, len(banners))
	for _, banner := range banners {
		views = append(views, &TypeBannerView{SkuID: banner.SkuID, Index: banner.Index})
	}

	return views
}

func newShowcaseView(output *entity.TypeShowcase) *ShowcaseView {
	return &ShowcaseView{
		Type: &TypeView{
			ID:    output.Type.ID,
			Name:  output.Type.Name,
			Logo:  output.Type.Logo,
			Image: output.Type.Image,
		},
		ImageBanners: newTypeBannerViews(output.ImageBanners),
		TitleBanners: newTypeBannerViews(output.TitleBanners),
	}
}

// CartLineView is one joined cart line.
type CartLineView struct {
	Sku      *SkuView `json:"sku"`
	Quantity int      `json:"quantity"`
	Amount   int64    `json:"amount"` // Quantity * unit price, in cents.
}

// CartView is the joined cart view model.
type CartView struct {
	Lines       []*CartLineView `json:"lines"`
	TotalCount  int             `json:"total_count"`
	TotalAmount int64           `json:"total_amount"`
}

func newCartView(cart *entity.Cart) *CartView {
	view := &CartView{
		Lines:       make([]*CartLineView, 0, len(cart.Lines)),
		TotalCount:  cart.TotalCount,
		TotalAmount: cart.TotalAmount,
	}
	for _, line := range cart.Lines {
		view.Lines = append(view.Lines, &CartLineView{
			Sku:      newSkuView(line.Sku),
			Quantity: line.Quantity,
			Amount:   line.Amount,
		})
	}

	return view
}
