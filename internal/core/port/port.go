package port

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/DelcyVillalba/chic-storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

// A Store is the durable key/value storage backing the persisted containers.
//
// Load returns an error wrapping ErrNotFound when the key is absent.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type CatalogFetcher interface {
	FetchProducts(context.Context) ([]domain.Product, error)
	FetchCategories(context.Context) ([]string, error)
}

type ActivityPublisher interface {
	PublishActivity(context.Context, domain.ActivityEvent) error
}

// CatalogResult is what catalog consumers observe.
type CatalogResult struct {
	Data       []domain.LocalizedProduct `json:"data"`
	Loading    bool                      `json:"loading"`
	Error      string                    `json:"error,omitempty"`
	Total      int                       `json:"total"`
	TotalPages int                       `json:"totalPages"`
}

type CatalogReader interface {
	QueryCatalog(domain.FilterParams) CatalogResult
	RefreshCatalog(context.Context)
	Product(id int) (domain.LocalizedProduct, bool)
	Categories(context.Context) ([]domain.Category, error)
	CatalogDefaults() domain.CatalogDefaults
}

type CartSummary struct {
	Lines      []domain.CartLine `json:"lines"`
	TotalItems int               `json:"totalItems"`
	TotalPrice decimal.Decimal   `json:"totalPrice"`
}

type CartManager interface {
	Cart() CartSummary
	AddToCart(ctx context.Context, productID, qty int) error
	SetCartQty(ctx context.Context, productID, qty int) error
	RemoveFromCart(ctx context.Context, productID int) error
	ClearCart(ctx context.Context) error
}

type WishlistManager interface {
	Wishlist() []domain.Product
	ToggleWishlist(ctx context.Context, productID int) (saved bool, err error)
	IsSaved(productID int) bool
	RemoveFromWishlist(ctx context.Context, productID int) error
	ClearWishlist(ctx context.Context) error
}

type SettingsManager interface {
	Settings() domain.BusinessSettings
	UpdateSettings(ctx context.Context, patch json.RawMessage) (domain.BusinessSettings, error)
	ResetSettings(ctx context.Context) domain.BusinessSettings
}

type ThemeManager interface {
	Theme() domain.ThemeMode
	SetTheme(ctx context.Context, mode domain.ThemeMode) error
	ToggleTheme(ctx context.Context) domain.ThemeMode
}
