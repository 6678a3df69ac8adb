package httphandler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/DelcyVillalba/chic-storefront/internal/core/port"
	"github.com/DelcyVillalba/chic-storefront/internal/core/service"
	"github.com/go-playground/validator/v10"
)

type WishlistHandler struct {
	wishlist port.WishlistManager
	validate *validator.Validate
}

func RegisterWishlist(mux *http.ServeMux, wishlist port.WishlistManager) {
	h := WishlistHandler{wishlist, validator.New()}
	mux.HandleFunc("GET /v1/wishlist", h.GetWishlist)
	mux.HandleFunc("GET /v1/wishlist/items/{id}", h.GetStatus)
	mux.HandleFunc("POST /v1/wishlist/toggle", h.PostToggle)
	mux.HandleFunc("DELETE /v1/wishlist/items/{id}", h.DeleteItem)
	mux.HandleFunc("DELETE /v1/wishlist", h.DeleteWishlist)
}

func (h WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.wishlist.Wishlist())
}

func (h WishlistHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, WishlistStatus{ID: id, Saved: h.wishlist.IsSaved(id)})
}

func (h WishlistHandler) PostToggle(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.PostToggle"
	log := slog.With("op", op)

	var body ToggleWishlist
	if err := decodeBody(r, h.validate, &body); err != nil {
		log.Warn("invalid request body", "err", err)
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	saved, err := h.wishlist.ToggleWishlist(r.Context(), body.ID)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, WishlistStatus{ID: body.ID, Saved: saved})
}

func (h WishlistHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.wishlist.RemoveFromWishlist(r.Context(), id); err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.wishlist.Wishlist())
}

func (h WishlistHandler) DeleteWishlist(w http.ResponseWriter, r *http.Request) {
	if err := h.wishlist.ClearWishlist(r.Context()); err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.wishlist.Wishlist())
}

func (h WishlistHandler) writeErr(w http.ResponseWriter, err error) {
	const op = "WishlistHandler.writeErr"

	switch {
	case errors.Is(err, service.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "product not found")
	case errors.Is(err, service.ErrLineNotFound):
		writeError(w, http.StatusNotFound, "product is not saved")
	default:
		slog.Error("wishlist operation failed", "op", op, "err", err)
		writeError(w, http.StatusInternalServerError, "wishlist unavailable")
	}
}
