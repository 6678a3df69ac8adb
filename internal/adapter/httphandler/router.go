package httphandler

import (
	"net/http"

	"github.com/DelcyVillalba/chic-storefront/internal/core/port"
)

// Storefront is everything the HTTP API exposes.
type Storefront interface {
	port.CatalogReader
	port.CartManager
	port.WishlistManager
	port.SettingsManager
	port.ThemeManager
}

// NewRouter registers every route and wraps the mux with the middleware chain.
func NewRouter(sf Storefront) http.Handler {
	mux := http.NewServeMux()
	RegisterCatalog(mux, sf)
	RegisterCart(mux, sf)
	RegisterWishlist(mux, sf)
	RegisterSettings(mux, sf)
	RegisterTheme(mux, sf)
	return LogRequests(AllowJSON(mux))
}
