package state

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/DelcyVillalba/chic-storefront/internal/core/domain"
	"github.com/DelcyVillalba/chic-storefront/internal/core/port"
)

var ErrInvalidTheme = errors.New("invalid theme")

type Theme struct {
	store port.Store

	mu   sync.RWMutex
	mode domain.ThemeMode
}

func NewTheme(ctx context.Context, store port.Store) *Theme {
	t := &Theme{store: store, mode: domain.ThemeLight}

	var mode domain.ThemeMode
	if restore(ctx, store, ThemeKey, &mode) && validTheme(mode) {
		t.mode = mode
	}
	return t
}

func (t *Theme) Mode() domain.ThemeMode {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.mode
}

func (t *Theme) Set(ctx context.Context, mode domain.ThemeMode) error {
	const op = "Theme.Set"

	if !validTheme(mode) {
		return fmt.Errorf("%s: %w: %q", op, ErrInvalidTheme, mode)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.mode = mode
	persist(ctx, t.store, ThemeKey, t.mode)
	return nil
}

func (t *Theme) Toggle(ctx context.Context) domain.ThemeMode {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.mode == domain.ThemeDark {
		t.mode = domain.ThemeLight
	} else {
		t.mode = domain.ThemeDark
	}
	persist(ctx, t.store, ThemeKey, t.mode)
	return t.mode
}

func validTheme(m domain.ThemeMode) bool {
	return m == domain.ThemeLight || m == domain.ThemeDark
}
