package impl

import (
	"context"
	"log/slog"
	"regexp"

	deliverycontext "dailyfresh/internal/delivery/context"
	"dailyfresh/internal/domain/entity"
	domainerrors "dailyfresh/internal/domain/errors"
	"dailyfresh/internal/domain/repository"
	"dailyfresh/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// phonePattern matches the mainland mobile numbers the storefront ships to.
var phonePattern = regexp.MustCompile(`^1[34578][0-9]{9}$`)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddAddress validates and persists a new address. The default-or-not
// decision and the insert run in one transaction: the current default row is
// read under a row lock, and the partial unique index catches whatever the
// lock cannot, so two concurrent first addresses never both become default.
func (srv *addressService) AddAddress(ctx context.Context, userID uuid.UUID, input usecase.AddAddressInput) (*entity.Address, error) {
	if input.Receiver == "" || input.Addr == "" || input.Phone == "" {
		return nil, domainerrors.ErrIncompleteData
	}
	if !phonePattern.MatchString(input.Phone) {
		return nil, domainerrors.ErrInvalidPhone
	}

	address := &entity.Address{
		UserID:   userID,
		Receiver: input.Receiver,
		Addr:     input.Addr,
		ZipCode:  input.ZipCode,
		Phone:    input.Phone,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		_, err := addressRepo.FindDefaultByUserForUpdate(ctx, userID)
		switch {
		case errors.Is(err, repository.ErrAddressNotFound):
			address.IsDefault = true
		case err != nil:
			return errors.Wrap(err, "failed to look up default address")
		}

		if err := addressRepo.Create(ctx, address); err != nil {
			if errors.Is(err, repository.ErrDefaultAddressConflict) {
				return domainerrors.ErrDefaultAddressConflict
			}

			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Address added",
		slog.Any("userID", userID),
		slog.Any("addressID", address.ID),
		slog.Bool("isDefault", address.IsDefault),
	)

	return address, nil
}

// ListAddresses returns all addresses of the user, default first.
func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// DefaultAddress returns the user's default address, or nil when none exists.
func (srv *addressService) DefaultAddress(ctx context.Context, userID uuid.UUID) (*entity.Address, error) {
	address, err := srv.addressRepo.FindDefaultByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load default address")
	}

	return address, nil
}
