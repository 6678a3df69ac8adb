package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DelcyVillalba/chic-storefront/internal/core/catalog"
	"github.com/DelcyVillalba/chic-storefront/internal/core/domain"
	"github.com/DelcyVillalba/chic-storefront/internal/core/port"
	"github.com/DelcyVillalba/chic-storefront/internal/core/state"
	"github.com/google/uuid"
)

var _ port.CatalogReader = (*Service)(nil)
var _ port.CartManager = (*Service)(nil)
var _ port.WishlistManager = (*Service)(nil)
var _ port.SettingsManager = (*Service)(nil)
var _ port.ThemeManager = (*Service)(nil)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrLineNotFound    = errors.New("product is not in the list")
)

type Containers struct {
	Cart     *state.Cart
	Wishlist *state.Wishlist
	Settings *state.Settings
	Theme    *state.Theme
}

// NewContainers restores every persisted container from store.
func NewContainers(ctx context.Context, store port.Store) Containers {
	return Containers{
		Cart:     state.NewCart(ctx, store),
		Wishlist: state.NewWishlist(ctx, store),
		Settings: state.NewSettings(ctx, store),
		Theme:    state.NewTheme(ctx, store),
	}
}

type Service struct {
	loader    *catalog.Loader
	c         Containers
	publisher port.ActivityPublisher
	perPage   int
	now       func() time.Time
}

// New builds the service. A nil publisher disables activity events.
func New(
	loader *catalog.Loader,
	containers Containers,
	publisher port.ActivityPublisher,
	perPage int,
) *Service {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	if perPage <= 0 {
		perPage = catalog.DefaultPerPage
	}
	return &Service{
		loader:    loader,
		c:         containers,
		publisher: publisher,
		perPage:   perPage,
		now:       time.Now,
	}
}

func (s *Service) PerPage() int {
	return s.perPage
}

func (s *Service) QueryCatalog(params domain.FilterParams) port.CatalogResult {
	if params.PerPage <= 0 {
		params.PerPage = s.perPage
	}
	return s.loader.Query(params)
}

// RefreshCatalog re-runs the catalog fetch from scratch.
func (s *Service) RefreshCatalog(ctx context.Context) {
	s.loader.Load(ctx)
}

func (s *Service) Product(id int) (domain.LocalizedProduct, bool) {
	return s.loader.Product(id)
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	const op = "Service.Categories"

	cs, err := s.loader.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cs, nil
}

func (s *Service) CatalogDefaults() domain.CatalogDefaults {
	return s.c.Settings.Get().CatalogDefaults
}

func (s *Service) Cart() port.CartSummary {
	return port.CartSummary{
		Lines:      s.c.Cart.Lines(),
		TotalItems: s.c.Cart.TotalItems(),
		TotalPrice: s.c.Cart.TotalPrice(),
	}
}

func (s *Service) AddToCart(ctx context.Context, productID, qty int) error {
	const op = "Service.AddToCart"

	p, ok := s.loader.Product(productID)
	if !ok {
		return fmt.Errorf("%s: %w: %d", op, ErrProductNotFound, productID)
	}
	if qty < 1 {
		qty = 1
	}
	s.c.Cart.Add(ctx, p.Product, qty)
	s.publish(ctx, domain.ActivityCartAdd, productID, qty)
	return nil
}

func (s *Service) SetCartQty(ctx context.Context, productID, qty int) error {
	const op = "Service.SetCartQty"

	if !s.c.Cart.SetQty(ctx, productID, qty) {
		return fmt.Errorf("%s: %w: %d", op, ErrLineNotFound, productID)
	}
	s.publish(ctx, domain.ActivityCartSetQty, productID, qty)
	return nil
}

func (s *Service) RemoveFromCart(ctx context.Context, productID int) error {
	const op = "Service.RemoveFromCart"

	if !s.c.Cart.Remove(ctx, productID) {
		return fmt.Errorf("%s: %w: %d", op, ErrLineNotFound, productID)
	}
	s.publish(ctx, domain.ActivityCartRemove, productID, 0)
	return nil
}

func (s *Service) ClearCart(ctx context.Context) error {
	s.c.Cart.Clear(ctx)
	s.publish(ctx, domain.ActivityCartClear, 0, 0)
	return nil
}

func (s *Service) Wishlist() []domain.Product {
	return s.c.Wishlist.Items()
}

func (s *Service) ToggleWishlist(
	ctx context.Context, productID int,
) (bool, error) {
	const op = "Service.ToggleWishlist"

	p, ok := s.loader.Product(productID)
	if !ok {
		// a saved snapshot can still be unsaved after it left the catalog
		if !s.c.Wishlist.IsSaved(productID) {
			return false, fmt.Errorf("%s: %w: %d", op, ErrProductNotFound, productID)
		}
		p.ID = productID
	}

	saved := s.c.Wishlist.Toggle(ctx, p.Product)
	kind := domain.ActivityWishlistRemove
	if saved {
		kind = domain.ActivityWishlistAdd
	}
	s.publish(ctx, kind, productID, 0)
	return saved, nil
}

func (s *Service) IsSaved(productID int) bool {
	return s.c.Wishlist.IsSaved(productID)
}

func (s *Service) RemoveFromWishlist(ctx context.Context, productID int) error {
	const op = "Service.RemoveFromWishlist"

	if !s.c.Wishlist.Remove(ctx, productID) {
		return fmt.Errorf("%s: %w: %d", op, ErrLineNotFound, productID)
	}
	s.publish(ctx, domain.ActivityWishlistRemove, productID, 0)
	return nil
}

func (s *Service) ClearWishlist(ctx context.Context) error {
	s.c.Wishlist.Clear(ctx)
	s.publish(ctx, domain.ActivityWishlistClear, 0, 0)
	return nil
}

func (s *Service) Settings() domain.BusinessSettings {
	return s.c.Settings.Get()
}

func (s *Service) UpdateSettings(
	ctx context.Context, patch json.RawMessage,
) (domain.BusinessSettings, error) {
	const op = "Service.UpdateSettings"

	v, err := s.c.Settings.Update(ctx, patch)
	if err != nil {
		return v, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

func (s *Service) ResetSettings(ctx context.Context) domain.BusinessSettings {
	return s.c.Settings.Reset(ctx)
}

func (s *Service) Theme() domain.ThemeMode {
	return s.c.Theme.Mode()
}

func (s *Service) SetTheme(ctx context.Context, mode domain.ThemeMode) error {
	const op = "Service.SetTheme"

	if err := s.c.Theme.Set(ctx, mode); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Service) ToggleTheme(ctx context.Context) domain.ThemeMode {
	return s.c.Theme.Toggle(ctx)
}

// publish never fails the mutation that triggered it.
func (s *Service) publish(
	ctx context.Context, kind domain.ActivityKind, productID, qty int,
) {
	const op = "Service.publish"

	evt := domain.ActivityEvent{
		ID:         uuid.NewString(),
		Kind:       kind,
		ProductID:  productID,
		Qty:        qty,
		OccurredAt: s.now(),
	}
	if err := s.publisher.PublishActivity(ctx, evt); err != nil {
		slog.Warn("failed to publish activity",
			"op", op, "kind", kind, "productID", productID, "err", err)
	}
}

type nopPublisher struct{}

func (nopPublisher) PublishActivity(context.Context, domain.ActivityEvent) error {
	return nil
}
