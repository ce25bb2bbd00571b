package usecase

import (
	"context"

	"dailyfresh/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase defines the interface for shopping-cart operations. Cart
// contents live in the ephemeral store; every operation re-checks the durable
// SKU record where stock matters.
type CartUsecase interface {
	// Add puts quantity units of a SKU into the cart, stacking onto any
	// existing entry, capped by the SKU's stock.
	Add(ctx context.Context, userID, skuID uuid.UUID, quantity int) error

	// UpdateQuantity overwrites the quantity of a cart entry, capped by stock.
	UpdateQuantity(ctx context.Context, userID, skuID uuid.UUID, quantity int) error

	// Remove deletes one SKU entry from the cart.
	Remove(ctx context.Context, userID, skuID uuid.UUID) error

	// List joins the cart against the catalog and returns lines with amounts.
	List(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Count returns the number of distinct SKU entries, degraded to 0 when the
	// ephemeral store is unreachable.
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
}
