package state

import (
	"context"
	"slices"
	"sync"

	"github.com/DelcyVillalba/chic-storefront/internal/core/domain"
	"github.com/DelcyVillalba/chic-storefront/internal/core/port"
	"github.com/shopspring/decimal"
)

// A Cart holds at most one line per product id.
type Cart struct {
	store port.Store

	mu    sync.RWMutex
	lines []domain.CartLine
}

func NewCart(ctx context.Context, store port.Store) *Cart {
	c := &Cart{store: store}
	restore(ctx, store, CartKey, &c.lines)
	return c
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.lines)
}

// Add increments the line for p by qty, appending a new line when p is not
// in the cart yet. A qty below 1 adds a single unit.
func (c *Cart) Add(ctx context.Context, p domain.Product, qty int) {
	if qty < 1 {
		qty = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(p.ID); i >= 0 {
		c.lines[i].Qty += qty
	} else {
		c.lines = append(c.lines, domain.CartLine{Product: p, Qty: qty})
	}
	c.persist(ctx)
}

// SetQty replaces the quantity of the line for id. The quantity is stored as
// given; callers clamp it.
func (c *Cart) SetQty(ctx context.Context, id, qty int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.lines[i].Qty = qty
	c.persist(ctx)
	return true
}

func (c *Cart) Remove(ctx context.Context, id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.lines = slices.Delete(c.lines, i, i+1)
	c.persist(ctx)
	return true
}

func (c *Cart) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	c.persist(ctx)
}

func (c *Cart) TotalItems() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, l := range c.lines {
		n += l.Qty
	}
	return n
}

func (c *Cart) TotalPrice() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := decimal.Zero
	for _, l := range c.lines {
		line := decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Qty)))
		total = total.Add(line)
	}
	return total
}

func (c *Cart) indexOf(id int) int {
	return slices.IndexFunc(c.lines, func(l domain.CartLine) bool {
		return l.ID == id
	})
}

func (c *Cart) persist(ctx context.Context) {
	lines := c.lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	persist(ctx, c.store, CartKey, lines)
}
