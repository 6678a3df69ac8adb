package state

import (
	"context"
	"slices"
	"sync"

	"github.com/DelcyVillalba/chic-storefront/internal/core/domain"
	"github.com/DelcyVillalba/chic-storefront/internal/core/port"
)

// A Wishlist stores product snapshots by value, at most one per id.
type Wishlist struct {
	store port.Store

	mu    sync.RWMutex
	items []domain.Product
}

func NewWishlist(ctx context.Context, store port.Store) *Wishlist {
	w := &Wishlist{store: store}
	restore(ctx, store, WishlistKey, &w.items)
	return w
}

func (w *Wishlist) Items() []domain.Product {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.items)
}

// Toggle removes p when saved, otherwise appends it. It reports whether p is
// saved afterwards.
func (w *Wishlist) Toggle(ctx context.Context, p domain.Product) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	saved := false
	if i := w.indexOf(p.ID); i >= 0 {
		w.items = slices.Delete(w.items, i, i+1)
	} else {
		w.items = append(w.items, p)
		saved = true
	}
	w.persist(ctx)
	return saved
}

func (w *Wishlist) IsSaved(id int) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.indexOf(id) >= 0
}

func (w *Wishlist) Remove(ctx context.Context, id int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.indexOf(id)
	if i < 0 {
		return false
	}
	w.items = slices.Delete(w.items, i, i+1)
	w.persist(ctx)
	return true
}

func (w *Wishlist) Clear(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.items = nil
	w.persist(ctx)
}

func (w *Wishlist) indexOf(id int) int {
	return slices.IndexFunc(w.items, func(p domain.Product) bool {
		return p.ID == id
	})
}

func (w *Wishlist) persist(ctx context.Context) {
	items := w.items
	if items == nil {
		items = []domain.Product{}
	}
	persist(ctx, w.store, WishlistKey, items)
}
