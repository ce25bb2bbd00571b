package redis

import (
	"context"

	"dailyfresh/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const historyKeyPrefix = "history_"

// historyRepository implements the domain.HistoryRepository interface over a
// per-user redis list of SKU ids, newest first.
type historyRepository struct {
	client *redis.Client
}

// NewHistoryRepository is the constructor for historyRepository.
func NewHistoryRepository(client *redis.Client) repository.HistoryRepository {
	return &historyRepository{client: client}
}

func historyKey(userID uuid.UUID) string {
	return historyKeyPrefix + userID.String()
}

// Push moves skuID to the head of the user's history. The LRem before LPush
// keeps the list duplicate-free; a revisited SKU resurfaces at the head.
func (r *historyRepository) Push(ctx context.Context, userID, skuID uuid.UUID) error {
	key := historyKey(userID)
	member := skuID.String()

	if err := r.client.LRem(ctx, key, 0, member).Err(); err != nil {
		return errors.Wrap(err, "failed to dedupe history")
	}
	if err := r.client.LPush(ctx, key, member).Err(); err != nil {
		return errors.Wrap(err, "failed to push history entry")
	}

	return nil
}

// Trim caps the user's history to the max most recent entries.
func (r *historyRepository) Trim(ctx context.Context, userID uuid.UUID, max int) error {
	if max <= 0 {
		return nil
	}

	err := r.client.LTrim(ctx, historyKey(userID), 0, int64(max)-1).Err()
	if err != nil {
		return errors.Wrap(err, "failed to trim history")
	}

	return nil
}

// Recent returns up to limit SKU ids, newest first. Unparseable entries are skipped.
func (r *historyRepository) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]uuid.UUID, error) {
	if limit <= 0 {
		return nil, nil
	}

	raw, err := r.client.LRange(ctx, historyKey(userID), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read history")
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, member := range raw {
		skuID, err := uuid.Parse(member)
		if err != nil {
			continue
		}
		ids = append(ids, skuID)
	}

	return ids, nil
}
