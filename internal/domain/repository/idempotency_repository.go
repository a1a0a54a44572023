package repository

import (
	"context"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
)

// IdempotencyRepository persists processed idempotency keys so replayed
// submissions return the cached response.
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key, sessionID string) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, key *entity.IdempotencyKey) error
}
