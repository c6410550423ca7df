// Package store is the persistence collaborator for session state.
// State is saved as opaque serialized records keyed by a fixed set of
// named slots; a missing or unreadable record always means "start from
// defaults" for the owning service, never a fatal error.
package store

import (
	"context"

	"github.com/esenmoda/esen/internal"
)

// Slot names used by the application services.
const (
	SlotCurrentUser    = "current_user"
	SlotFavorites      = "favorites"
	SlotOrders         = "orders"
	SlotCoupons        = "coupons"
	SlotShippingPolicy = "shipping_policy"
)

// Store defines the slot persistence interface.
// Implementations can use the local filesystem, memory, or any backend
// that can hold small opaque records.
type Store interface {
	// Load retrieves the record stored in a slot.
	// Returns an error satisfying IsNotFound when the slot is empty.
	Load(ctx context.Context, slot string) ([]byte, error)

	// Save stores a record in a slot, replacing any previous record.
	Save(ctx context.Context, slot string, record []byte) error

	// Delete empties a slot. Deleting an empty slot is a no-op.
	Delete(ctx context.Context, slot string) error

	// Exists reports whether a slot currently holds a record.
	Exists(ctx context.Context, slot string) (bool, error)
}

// New creates a Store implementation based on configuration.
func New(cfg internal.StoreConfig) (Store, error) {
	switch cfg.Provider {
	case "local", "":
		return NewLocal(cfg.DataDir)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, ErrUnknownProvider(cfg.Provider)
	}
}
