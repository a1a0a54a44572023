package repository

import (
	"context"
	"sync"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
	"github.com/ordersheet/ordersheet-api/internal/domain/repository"
)

type idempotencyRepository struct {
	store repository.TabularStore
	mu    sync.Mutex
}

// NewIdempotencyRepository creates an idempotency repository persisting
// keys through the tabular store, so replay detection survives a
// restart on either backend.
func NewIdempotencyRepository(store repository.TabularStore) repository.IdempotencyRepository {
	return &idempotencyRepository{store: store}
}

func (r *idempotencyRepository) GetByKey(ctx context.Context, key, sessionID string) (*entity.IdempotencyKey, error) {
	rows, _, err := r.store.Read(ctx, entity.TableIdempotencyKeys)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		k := entity.IdempotencyKeyFromSheet(row)
		if k.Key == key && k.SessionID == sessionID {
			return &k, nil
		}
	}
	return nil, nil
}

func (r *idempotencyRepository) Create(ctx context.Context, key *entity.IdempotencyKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, _, err := r.store.Read(ctx, entity.TableIdempotencyKeys)
	if err != nil {
		return err
	}

	// Prune expired keys while the table is in hand; it would otherwise
	// only ever grow.
	kept := make([]entity.SheetRow, 0, len(rows)+1)
	for _, row := range rows {
		if k := entity.IdempotencyKeyFromSheet(row); !k.IsExpired() {
			kept = append(kept, row)
		}
	}
	kept = append(kept, key.SheetRow())

	return r.store.Write(ctx, entity.TableIdempotencyKeys, kept)
}
