package redis

import (
	"context"
	"strconv"

	"dailyfresh/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart_"

// cartRepository implements the domain.CartRepository interface over a
// per-user redis hash mapping SKU id to quantity.
type cartRepository struct {
	client *redis.Client
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(client *redis.Client) repository.CartRepository {
	return &cartRepository{client: client}
}

func cartKey(userID uuid.UUID) string {
	return cartKeyPrefix + userID.String()
}

// Count returns the number of distinct SKU entries in the user's cart.
func (r *cartRepository) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := r.client.HLen(ctx, cartKey(userID)).Result()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count cart entries")
	}

	return count, nil
}

// GetAll returns the full SKU-to-quantity mapping of the user's cart.
// Entries whose field or value does not parse are skipped.
func (r *cartRepository) GetAll(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int, error) {
	raw, err := r.client.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cart")
	}

	cart := make(map[uuid.UUID]int, len(raw))
	for field, value := range raw {
		skuID, err := uuid.Parse(field)
		if err != nil {
			continue
		}
		quantity, err := strconv.Atoi(value)
		if err != nil || quantity <= 0 {
			continue
		}
		cart[skuID] = quantity
	}

	return cart, nil
}

// Get returns the quantity of one SKU in the user's cart, 0 when absent.
func (r *cartRepository) Get(ctx context.Context, userID, skuID uuid.UUID) (int, error) {
	value, err := r.client.HGet(ctx, cartKey(userID), skuID.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}

		return 0, errors.Wrap(err, "failed to read cart entry")
	}

	quantity, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrap(err, "corrupt cart entry")
	}

	return quantity, nil
}

// Set stores the quantity of one SKU in the user's cart.
func (r *cartRepository) Set(ctx context.Context, userID, skuID uuid.UUID, quantity int) error {
	err := r.client.HSet(ctx, cartKey(userID), skuID.String(), quantity).Err()
	if err != nil {
		return errors.Wrap(err, "failed to write cart entry")
	}

	return nil
}

// Remove deletes one SKU entry from the user's cart.
func (r *cartRepository) Remove(ctx context.Context, userID, skuID uuid.UUID) error {
	err := r.client.HDel(ctx, cartKey(userID), skuID.String()).Err()
	if err != nil {
		return errors.Wrap(err, "failed to delete cart entry")
	}

	return nil
}

// Clear deletes the user's whole cart.
func (r *cartRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	err := r.client.Del(ctx, cartKey(userID)).Err()
	if err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}
