package state

import (
	"testing"

	"github.com/DelcyVillalba/chic-storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlist(t *testing.T) {
	p1 := domain.Product{ID: 1, Title: "Backpack", Price: 50}
	p2 := domain.Product{ID: 2, Title: "Ring", Price: 10}

	t.Run("ToggleTwiceRestoresState", func(t *testing.T) {
		w := NewWishlist(t.Context(), newFakeStore())
		w.Toggle(t.Context(), p1)
		before := w.Items()

		assert.True(t, w.Toggle(t.Context(), p2))
		assert.True(t, w.IsSaved(2))
		assert.False(t, w.Toggle(t.Context(), p2))
		assert.False(t, w.IsSaved(2))

		assert.Equal(t, before, w.Items())
	})

	t.Run("StoresSnapshot", func(t *testing.T) {
		w := NewWishlist(t.Context(), newFakeStore())
		p := p1
		w.Toggle(t.Context(), p)
		p.Price = 1

		items := w.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 50.0, items[0].Price)
	})

	t.Run("RemoveAndClear", func(t *testing.T) {
		s := newFakeStore()
		w := NewWishlist(t.Context(), s)
		w.Toggle(t.Context(), p1)
		w.Toggle(t.Context(), p2)

		assert.True(t, w.Remove(t.Context(), 1))
		assert.False(t, w.Remove(t.Context(), 1))
		assert.Equal(t, []domain.Product{p2}, w.Items())

		w.Clear(t.Context())
		assert.Empty(t, w.Items())
		v, _ := s.get(WishlistKey)
		assert.JSONEq(t, "[]", v)
	})

	t.Run("RestoresFromStorage", func(t *testing.T) {
		s := newFakeStore()
		w := NewWishlist(t.Context(), s)
		w.Toggle(t.Context(), p2)

		restored := NewWishlist(t.Context(), s)
		assert.True(t, restored.IsSaved(2))
	})

	t.Run("UnparsableStorageGivesEmptyList", func(t *testing.T) {
		s := newFakeStore()
		s.put(WishlistKey, `{"id":1}`)
		w := NewWishlist(t.Context(), s)
		assert.Empty(t, w.Items())
	})
}
