package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/DelcyVillalba/chic-storefront/internal/core/domain"
	"github.com/DelcyVillalba/chic-storefront/internal/core/port"
	"github.com/go-playground/validator/v10"
)

var ErrInvalidSettings = errors.New("invalid settings")

// DefaultSettings returns a fresh copy of the built-in business settings.
func DefaultSettings() domain.BusinessSettings {
	return domain.BusinessSettings{
		StoreName: "Chic Tech",
		Email:     "contacto@chictech.com.ar",
		Phone:     "+54 11 5555-0100",
		Whatsapp:  "+5491155550100",
		Address:   "Av. Corrientes 1234, CABA",
		Instagram: "@chictech",
		Currency:  "ARS",
	}
}

// Settings holds the business settings.
//
// Stored values and patches are merged on two levels: top-level keys replace
// the current value, except catalogDefaults, which merges key by key.
type Settings struct {
	store    port.Store
	validate *validator.Validate

	mu      sync.RWMutex
	current domain.BusinessSettings
}

func NewSettings(ctx context.Context, store port.Store) *Settings {
	const op = "NewSettings"
	log := slog.With("op", op)

	s := &Settings{
		store:    store,
		validate: validator.New(),
		current:  DefaultSettings(),
	}

	var raw json.RawMessage
	if !restore(ctx, store, SettingsKey, &raw) {
		return s
	}
	merged, err := merge(s.current, raw)
	if err != nil {
		log.Warn("discarded stored settings of unexpected shape", "err", err)
		return s
	}
	s.current = merged
	return s
}

func (s *Settings) Get() domain.BusinessSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.current)
}

// Update merges patch onto the current settings and persists the result.
//
// A malformed patch, or one producing invalid settings, leaves the current
// settings untouched and returns an error wrapping ErrInvalidSettings.
func (s *Settings) Update(
	ctx context.Context, patch json.RawMessage,
) (domain.BusinessSettings, error) {
	const op = "Settings.Update"

	s.mu.Lock()
	defer s.mu.Unlock()

	merged, err := merge(s.current, patch)
	if err != nil {
		return clone(s.current), fmt.Errorf("%s: %w: %w", op, ErrInvalidSettings, err)
	}
	if err := s.validate.Struct(merged); err != nil {
		return clone(s.current), fmt.Errorf("%s: %w: %w", op, ErrInvalidSettings, err)
	}

	s.current = merged
	persist(ctx, s.store, SettingsKey, s.current)
	return clone(s.current), nil
}

// Reset restores the defaults and deletes the stored value.
func (s *Settings) Reset(ctx context.Context) domain.BusinessSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = DefaultSettings()
	forget(ctx, s.store, SettingsKey)
	return clone(s.current)
}

// merge decodes patch over a copy of base. encoding/json keeps fields absent
// from patch, which gives the two-level merge since catalogDefaults is the
// only nested object.
func merge(
	base domain.BusinessSettings, patch json.RawMessage,
) (domain.BusinessSettings, error) {
	out := clone(base)
	if err := json.Unmarshal(patch, &out); err != nil {
		return base, err
	}
	return out, nil
}

func clone(s domain.BusinessSettings) domain.BusinessSettings {
	if s.CatalogDefaults.Min != nil {
		v := *s.CatalogDefaults.Min
		s.CatalogDefaults.Min = &v
	}
	if s.CatalogDefaults.Max != nil {
		v := *s.CatalogDefaults.Max
		s.CatalogDefaults.Max = &v
	}
	return s
}
