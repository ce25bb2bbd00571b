package repository

import (
	"context"

	"github.com/google/uuid"
)

// CartRepository defines the interface over the ephemeral cart store.
// Cart contents live in a per-user hash of SKU id to quantity; they have no
// relational backing, and eviction is managed by the store itself.
type CartRepository interface {
	// Count returns the number of distinct SKU entries in the user's cart.
	Count(ctx context.Context, userID uuid.UUID) (int64, error)

	// GetAll returns the full SKU-to-quantity mapping of the user's cart.
	GetAll(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int, error)

	// Get returns the quantity of one SKU in the user's cart, 0 when absent.
	Get(ctx context.Context, userID, skuID uuid.UUID) (int, error)

	// Set stores the quantity of one SKU in the user's cart.
	Set(ctx context.Context, userID, skuID uuid.UUID, quantity int) error

	// Remove deletes one SKU entry from the user's cart.
	Remove(ctx context.Context, userID, skuID uuid.UUID) error

	// Clear deletes the user's whole cart.
	Clear(ctx context.Context, userID uuid.UUID) error
}

// HistoryRepository defines the interface over the ephemeral browsing-history
// store: a per-user list of SKU ids, newest first.
type HistoryRepository interface {
	// Push moves skuID to the head of the user's history. An existing entry
	// for the same SKU is removed first, so the list stays duplicate-free.
	Push(ctx context.Context, userID, skuID uuid.UUID) error

	// Trim caps the user's history to the max most recent entries.
	Trim(ctx context.Context, userID uuid.UUID, max int) error

	// Recent returns up to limit SKU ids, newest first, in push order.
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]uuid.UUID, error)
}
