package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/DelcyVillalba/chic-storefront/internal/core/catalog"
	"github.com/DelcyVillalba/chic-storefront/internal/core/port"
)

type CatalogHandler struct {
	reader port.CatalogReader
}

func RegisterCatalog(mux *http.ServeMux, reader port.CatalogReader) {
	h := CatalogHandler{reader}
	mux.HandleFunc("GET /v1/catalog", h.GetCatalog)
	mux.HandleFunc("POST /v1/catalog/refresh", h.PostRefresh)
	mux.HandleFunc("GET /v1/catalog/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
}

// GetCatalog derives a page from the query string; absent keys fall back to
// the configured catalog defaults.
func (h CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	params := catalog.ParseFilterParams(
		r.URL.Query(), h.reader.CatalogDefaults(), 0,
	)
	writeJSON(w, http.StatusOK, h.reader.QueryCatalog(params))
}

func (h CatalogHandler) PostRefresh(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.PostRefresh"

	h.reader.RefreshCatalog(r.Context())
	res := h.reader.QueryCatalog(catalog.ParseFilterParams(
		r.URL.Query(), h.reader.CatalogDefaults(), 0,
	))
	if res.Error != "" {
		slog.Warn("catalog refresh failed", "op", op, "err", res.Error)
	}
	writeJSON(w, http.StatusOK, res)
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, ok := h.reader.Product(id)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCategories"

	cs, err := h.reader.Categories(r.Context())
	if err != nil {
		slog.Error("failed to fetch categories", "op", op, "err", err)
		writeError(w, http.StatusBadGateway, "categories unavailable")
		return
	}
	writeJSON(w, http.StatusOK, cs)
}
