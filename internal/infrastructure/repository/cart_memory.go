package repository

import (
	"sync"
	"time"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
	"github.com/ordersheet/ordersheet-api/internal/domain/repository"
	"github.com/ordersheet/ordersheet-api/pkg/apperror"
)

type cartEntry struct {
	lines    []entity.CartLine
	lastSeen time.Time
}

// MemoryCartRepository holds session carts in process memory. Carts are
// deliberately not persisted; a restart drops them. Stale sessions are
// swept on a background ticker.
type MemoryCartRepository struct {
	carts map[string]*cartEntry
	mu    sync.RWMutex
	ttl   time.Duration
}

// NewMemoryCartRepository creates an in-memory cart repository whose
// sessions expire after ttl of inactivity.
func NewMemoryCartRepository(ttl time.Duration) *MemoryCartRepository {
	r := &MemoryCartRepository{
		carts: make(map[string]*cartEntry),
		ttl:   ttl,
	}
	go r.cleanupLoop()
	return r
}

var _ repository.CartRepository = (*MemoryCartRepository)(nil)

func (r *MemoryCartRepository) Get(sessionID string) *entity.Cart {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart := &entity.Cart{SessionID: sessionID, Lines: []entity.CartLine{}}
	if entry, ok := r.carts[sessionID]; ok {
		cart.Lines = append(cart.Lines, entry.lines...)
	}
	return cart
}

func (r *MemoryCartRepository) Add(sessionID string, line entity.CartLine) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.carts[sessionID]
	if !ok {
		entry = &cartEntry{}
		r.carts[sessionID] = entry
	}
	entry.lines = append(entry.lines, line)
	entry.lastSeen = time.Now()
}

func (r *MemoryCartRepository) Update(sessionID string, index, orderQty, bonusQty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.carts[sessionID]
	if !ok || index < 0 || index >= len(entry.lines) {
		return apperror.NewNotFoundError("Cart line")
	}
	entry.lines[index].OrderQuantity = orderQty
	entry.lines[index].BonusQuantity = bonusQty
	entry.lastSeen = time.Now()
	return nil
}

func (r *MemoryCartRepository) Remove(sessionID string, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.carts[sessionID]
	if !ok || index < 0 || index >= len(entry.lines) {
		return apperror.NewNotFoundError("Cart line")
	}
	entry.lines = append(entry.lines[:index], entry.lines[index+1:]...)
	entry.lastSeen = time.Now()
	return nil
}

func (r *MemoryCartRepository) Clear(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
}

func (r *MemoryCartRepository) cleanupLoop() {
	if r.ttl <= 0 {
		return
	}
	ticker := time.NewTicker(r.ttl / 2)
	defer ticker.Stop()

	for range ticker.C {
		r.sweep(time.Now())
	}
}

// sweep removes sessions idle past the TTL.
func (r *MemoryCartRepository) sweep(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := now.Add(-r.ttl)
	for sessionID, entry := range r.carts {
		if entry.lastSeen.Before(cutoff) {
			delete(r.carts, sessionID)
		}
	}
}
