package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/DelcyVillalba/chic-storefront/internal/core/domain"
	"github.com/DelcyVillalba/chic-storefront/internal/core/port"
)

// A Loader holds the translated catalog snapshot and derives pages from it.
//
// Every Load supersedes the previous one: a fetch that completes after a
// newer Load started, or after Close, is discarded.
type Loader struct {
	fetcher    port.CatalogFetcher
	translator Translator

	mu       sync.RWMutex
	gen      uint64
	closed   bool
	loading  bool
	errMsg   string
	products []domain.LocalizedProduct
}

func NewLoader(fetcher port.CatalogFetcher, translator Translator) *Loader {
	if fetcher == nil {
		panic("catalog.NewLoader: fetcher is nil") // develop mistake
	}
	// pending until the first Load completes
	return &Loader{fetcher: fetcher, translator: translator, loading: true}
}

// Load fetches the full collection and replaces the snapshot.
//
// It blocks until the fetch completes. Failures are reported through
// Query().Error, never returned.
func (l *Loader) Load(ctx context.Context) {
	const op = "Loader.Load"
	log := slog.With("op", op)

	gen, ok := l.begin()
	if !ok {
		return
	}

	raw, err := l.fetcher.FetchProducts(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || gen != l.gen {
		log.Debug("discarded stale catalog response", "gen", gen)
		return
	}

	l.loading = false
	if err != nil {
		l.errMsg = fmt.Sprintf("could not load products: %v", err)
		log.Error("failed to fetch products", "err", err)
		return
	}

	l.products = l.translator.TranslateAll(raw)
	log.Info("catalog loaded", "nProducts", len(l.products))
}

func (l *Loader) begin() (uint64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return 0, false
	}
	l.gen++
	l.loading = true
	l.errMsg = ""
	l.products = nil
	return l.gen, true
}

// Close invalidates any in-flight Load.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	l.loading = false
}

func (l *Loader) Query(params domain.FilterParams) port.CatalogResult {
	l.mu.RLock()
	all, loading, errMsg := l.products, l.loading, l.errMsg
	l.mu.RUnlock()

	page := Derive(all, params)
	return port.CatalogResult{
		Data:       page.Data,
		Loading:    loading,
		Error:      errMsg,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
}

func (l *Loader) Product(id int) (domain.LocalizedProduct, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, p := range l.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.LocalizedProduct{}, false
}

func (l *Loader) Categories(ctx context.Context) ([]domain.Category, error) {
	const op = "Loader.Categories"

	keys, err := l.fetcher.FetchCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]domain.Category, len(keys))
	for i, k := range keys {
		out[i] = domain.Category{Key: k, Label: l.translator.CategoryLabel(k)}
	}
	return out, nil
}
