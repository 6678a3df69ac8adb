package httphandler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/DelcyVillalba/chic-storefront/internal/core/port"
	"github.com/DelcyVillalba/chic-storefront/internal/core/service"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cart     port.CartManager
	validate *validator.Validate
}

func RegisterCart(mux *http.ServeMux, cart port.CartManager) {
	h := CartHandler{cart, validator.New()}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.PostItem)
	mux.HandleFunc("PUT /v1/cart/items/{id}", h.PutItem)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.DeleteItem)
	mux.HandleFunc("DELETE /v1/cart", h.DeleteCart)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cart.Cart())
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var body AddCartItem
	if err := decodeBody(r, h.validate, &body); err != nil {
		log.Warn("invalid request body", "err", err)
		writeError(w, http.StatusBadRequest, "invalid cart item")
		return
	}
	if body.Qty == 0 {
		body.Qty = 1
	}

	if err := h.cart.AddToCart(r.Context(), body.ID, body.Qty); err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cart.Cart())
}

func (h CartHandler) PutItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PutItem"
	log := slog.With("op", op)

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var body SetCartQty
	if err := decodeBody(r, h.validate, &body); err != nil {
		log.Warn("invalid request body", "err", err)
		writeError(w, http.StatusBadRequest, "qty must be at least 1")
		return
	}

	if err := h.cart.SetCartQty(r.Context(), id, body.Qty); err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cart.Cart())
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.cart.RemoveFromCart(r.Context(), id); err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cart.Cart())
}

func (h CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.ClearCart(r.Context()); err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cart.Cart())
}

func (h CartHandler) writeErr(w http.ResponseWriter, err error) {
	const op = "CartHandler.writeErr"

	switch {
	case errors.Is(err, service.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "product not found")
	case errors.Is(err, service.ErrLineNotFound):
		writeError(w, http.StatusNotFound, "product is not in the cart")
	default:
		slog.Error("cart operation failed", "op", op, "err", err)
		writeError(w, http.StatusInternalServerError, "cart unavailable")
	}
}
