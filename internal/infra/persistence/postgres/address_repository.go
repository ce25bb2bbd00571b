package postgres

import (
	"context"

	"dailyfresh/internal/domain/entity"
	domainerrors "dailyfresh/internal/domain/errors"
	"dailyfresh/internal/domain/repository"
	"dailyfresh/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// addressRepository implements the domain.AddressRepository interface using GORM.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// Create persists a new address. The partial unique index on (user_id) where
// is_default backs the single-default invariant; a second default row for the
// same user fails here even when two requests raced past the pre-check.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDefaultAddressConflict
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrIncompleteData
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAddressNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindByID retrieves an address by its unique ID.
func (repo *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by id")
	}

	return toAddressDomain(&addressM), nil
}

// FindByUser retrieves all addresses of a user, default first, then newest first.
func (repo *addressRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	var addressMs []*model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&addressMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by user")
	}

	addresses := make([]*entity.Address, 0, len(addressMs))
	for _, addressM := range addressMs {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// FindDefaultByUser retrieves the user's default address.
func (repo *addressRepository) FindDefaultByUser(ctx context.Context, userID uuid.UUID) (*entity.Address, error) {
	return repo.findDefault(ctx, repo.db, userID)
}

// FindDefaultByUserForUpdate is FindDefaultByUser under a row lock. Inside a
// transaction this serializes the default-or-not decision for concurrent
// creates by the same user.
func (repo *addressRepository) FindDefaultByUserForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Address, error) {
	return repo.findDefault(ctx, repo.db.Clauses(clause.Locking{Strength: "UPDATE"}), userID)
}

func (repo *addressRepository) findDefault(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	err := db.WithContext(ctx).
		Where("user_id = ? AND is_default", userID).
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find default address")
	}

	return toAddressDomain(&addressM), nil
}

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:        data.ID,
		UserID:    data.UserID,
		Receiver:  data.Receiver,
		Addr:      data.Addr,
		ZipCode:   data.ZipCode,
		Phone:     data.Phone,
		IsDefault: data.IsDefault,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Receiver:  data.Receiver,
		Addr:      data.Addr,
		ZipCode:   data.ZipCode,
		Phone:     data.Phone,
		IsDefault: data.IsDefault,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
