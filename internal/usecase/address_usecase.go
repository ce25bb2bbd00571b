package usecase

import (
	"context"

	"dailyfresh/internal/domain/entity"

	"github.com/google/uuid"
)

// AddAddressInput defines the data required to add a shipping address.
type AddAddressInput struct {
	Receiver string
	Addr     string
	ZipCode  string
	Phone    string
}

// AddressUsecase defines the interface for shipping-address operations.
type AddressUsecase interface {
	// AddAddress validates and persists a new address. The first address a
	// user adds becomes their default; later ones never demote it.
	AddAddress(ctx context.Context, userID uuid.UUID, input AddAddressInput) (*entity.Address, error)

	// ListAddresses returns all addresses of the user, default first.
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// DefaultAddress returns the user's default address, or nil when the user
	// has none.
	DefaultAddress(ctx context.Context, userID uuid.UUID) (*entity.Address, error)
}
