// Package state holds the shopper-side containers that survive restarts.
//
// Each container restores its value from a [port.Store] once at creation and
// rewrites the full value after every mutation. Storage failures never
// surface to callers: a missing or unreadable value becomes the default and
// a failed write leaves the in-memory value authoritative.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/DelcyVillalba/chic-storefront/internal/core/port"
)

const (
	CartKey     = "cart"
	WishlistKey = "wishlist"
	ThemeKey    = "theme"
	SettingsKey = "business-settings"
)

// restore decodes the value under key into dst.
//
// It reports false when the key is absent or the value is unparsable,
// leaving dst untouched.
func restore[T any](ctx context.Context, s port.Store, key string, dst *T) bool {
	const op = "state.restore"
	log := slog.With("op", op, "key", key)

	data, err := s.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, port.ErrNotFound) {
			log.Warn("failed to read stored value", "err", err)
		}
		return false
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.Warn("discarded unparsable stored value", "err", err)
		return false
	}
	*dst = v
	return true
}

func persist(ctx context.Context, s port.Store, key string, v any) {
	const op = "state.persist"
	log := slog.With("op", op, "key", key)

	data, err := json.Marshal(v)
	if err != nil {
		log.Warn("failed to encode value", "err", err)
		return
	}
	if err := s.Save(ctx, key, data); err != nil {
		log.Warn("failed to write value", "err", err)
	}
}

func forget(ctx context.Context, s port.Store, key string) {
	const op = "state.forget"
	if err := s.Delete(ctx, key); err != nil {
		slog.Warn("failed to delete value", "op", op, "key", key, "err", err)
	}
}
