package repository

import (
	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
)

// CartRepository holds per-session carts. Carts are exclusive to their
// session and in-memory only; no context is taken because no call ever
// blocks on an external resource.
type CartRepository interface {
	// Get returns a copy of the session's cart, creating an empty one
	// for unknown sessions.
	Get(sessionID string) *entity.Cart

	Add(sessionID string, line entity.CartLine)

	// Update changes the quantities of the line at index. It fails with
	// apperror.ErrNotFound when the index is out of range.
	Update(sessionID string, index, orderQty, bonusQty int) error

	// Remove deletes the line at index.
	Remove(sessionID string, index int) error

	Clear(sessionID string)
}
