package state

import (
	"testing"

	"github.com/DelcyVillalba/chic-storefront/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart(t *testing.T) {
	p1 := domain.Product{ID: 1, Title: "Backpack", Price: 50}
	p2 := domain.Product{ID: 2, Title: "Ring", Price: 9.99}

	t.Run("AddSameIDMergesLines", func(t *testing.T) {
		c := NewCart(t.Context(), newFakeStore())

		c.Add(t.Context(), p1, 2)
		assert.Equal(t, 2, c.TotalItems())
		assert.True(t, decimal.NewFromInt(100).Equal(c.TotalPrice()))

		c.Add(t.Context(), p1, 1)
		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 3, lines[0].Qty)
		assert.Equal(t, 3, c.TotalItems())
		assert.True(t, decimal.NewFromInt(150).Equal(c.TotalPrice()))
	})

	t.Run("AddDefaultsToOneUnit", func(t *testing.T) {
		c := NewCart(t.Context(), newFakeStore())
		c.Add(t.Context(), p2, 0)
		assert.Equal(t, 1, c.TotalItems())
	})

	t.Run("TotalPriceIsExact", func(t *testing.T) {
		c := NewCart(t.Context(), newFakeStore())
		c.Add(t.Context(), p2, 3)
		c.Add(t.Context(), domain.Product{ID: 3, Price: 0.1}, 3)
		assert.Equal(t, "30.27", c.TotalPrice().String())
	})

	t.Run("SetQtyAndRemove", func(t *testing.T) {
		c := NewCart(t.Context(), newFakeStore())
		c.Add(t.Context(), p1, 1)
		c.Add(t.Context(), p2, 1)

		assert.True(t, c.SetQty(t.Context(), 2, 4))
		assert.False(t, c.SetQty(t.Context(), 99, 4))
		assert.Equal(t, 5, c.TotalItems())

		assert.True(t, c.Remove(t.Context(), 1))
		assert.False(t, c.Remove(t.Context(), 1))
		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].ID)

		c.Clear(t.Context())
		assert.Empty(t, c.Lines())
		assert.Equal(t, 0, c.TotalItems())
		assert.True(t, c.TotalPrice().IsZero())
	})

	t.Run("SetQtyDoesNotClamp", func(t *testing.T) {
		c := NewCart(t.Context(), newFakeStore())
		c.Add(t.Context(), p1, 2)
		require.True(t, c.SetQty(t.Context(), 1, 0))
		assert.Equal(t, 0, c.Lines()[0].Qty)
	})

	t.Run("PersistsEveryMutation", func(t *testing.T) {
		s := newFakeStore()
		c := NewCart(t.Context(), s)
		c.Add(t.Context(), p1, 2)
		c.SetQty(t.Context(), 1, 5)
		c.Remove(t.Context(), 7)
		assert.Equal(t, 2, s.writes)

		restored := NewCart(t.Context(), s)
		assert.Equal(t, c.Lines(), restored.Lines())

		c.Clear(t.Context())
		v, ok := s.get(CartKey)
		require.True(t, ok)
		assert.JSONEq(t, "[]", v)
	})

	t.Run("StoredShapeIsFlatLine", func(t *testing.T) {
		s := newFakeStore()
		c := NewCart(t.Context(), s)
		c.Add(t.Context(), domain.Product{ID: 7, Title: "Ring", Price: 10, Image: "r.png"}, 2)

		v, _ := s.get(CartKey)
		assert.JSONEq(t,
			`[{"id":7,"title":"Ring","description":"","category":"","price":10,"image":"r.png","qty":2}]`,
			v)
	})

	t.Run("UnparsableStorageGivesEmptyCart", func(t *testing.T) {
		s := newFakeStore()
		s.put(CartKey, "{not json")
		c := NewCart(t.Context(), s)
		assert.Empty(t, c.Lines())
	})

	t.Run("WriteFailureKeepsMemoryState", func(t *testing.T) {
		s := newFakeStore()
		s.failWrite = true
		c := NewCart(t.Context(), s)
		c.Add(t.Context(), p1, 1)
		assert.Equal(t, 1, c.TotalItems())
		_, ok := s.get(CartKey)
		assert.False(t, ok)
	})
}
