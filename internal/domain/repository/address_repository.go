package repository

import (
	"context"

	"dailyfresh/internal/domain/entity"
	"dailyfresh/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
	// ErrDefaultAddressConflict is returned when a second default address
	// would be created for the same user.
	ErrDefaultAddressConflict = errors.New("user already has a default address")
)

// AddressRepository defines the interface for shipping-address database operations.
type AddressRepository interface {
	// Create persists a new address. The single-default invariant is backed by
	// a partial unique index on (user_id) where is_default; a violation
	// surfaces as ErrDefaultAddressConflict.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves an address by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindByUser retrieves all addresses of a user, default first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// FindDefaultByUser retrieves the user's default address.
	// Returns ErrAddressNotFound when no default address exists.
	FindDefaultByUser(ctx context.Context, userID uuid.UUID) (*entity.Address, error)

	// FindDefaultByUserForUpdate is FindDefaultByUser under a row lock, for
	// use inside a transaction that decides whether a new address becomes the
	// default. Returns ErrAddressNotFound when no default address exists.
	FindDefaultByUserForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Address, error)
}
