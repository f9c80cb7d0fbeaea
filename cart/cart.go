// Package cart models the buyer-side shopping cart: a locally persisted list
// of product snapshots with chosen sizes, never round-tripped to the server
// until checkout. Mutations publish change events so any mounted badge can
// recompute its count, and a second store instance on the same backing file
// sees the change too (the cross-tab case).
package cart

import (
	"errors"

	"kc414/model"
)

// StorageKey is the fixed key the cart state lives under.
const StorageKey = "cart"

// Sizes is the fixed size enumeration a buyer picks from before an item can
// be added.
var Sizes = []string{"S", "M", "L", "XL"}

// ErrInvalidSize is returned by Add when the selected size is not one of Sizes.
var ErrInvalidSize = errors.New("cart: selected size must be one of S, M, L, XL")

// Change describes a cart content change delivered to subscribers. External
// is true when the change was written by another store instance sharing the
// same backing state, false for mutations made through this instance.
type Change struct {
	Items    []model.CartItem
	External bool
}

// Store is the cart repository. Load never fails: missing or unparseable
// state reads as an empty cart.
type Store interface {
	Load() []model.CartItem
	Save(items []model.CartItem) error
	Add(item model.CartItem) error
	RemoveByProductID(productID int64) error
	Clear() error
	// Subscribe returns a channel of cart changes and a cancel func. The
	// channel is closed when cancelled.
	Subscribe() (<-chan Change, func())
}

func validSize(size string) bool {
	for _, s := range Sizes {
		if s == size {
			return true
		}
	}
	return false
}

func removeByProductID(items []model.CartItem, productID int64) []model.CartItem {
	kept := make([]model.CartItem, 0, len(items))
	for _, item := range items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	return kept
}
