package httphandler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/DelcyVillalba/chic-storefront/internal/core/port"
	"github.com/DelcyVillalba/chic-storefront/internal/core/state"
	"github.com/go-playground/validator/v10"
)

type ThemeHandler struct {
	theme    port.ThemeManager
	validate *validator.Validate
}

func RegisterTheme(mux *http.ServeMux, theme port.ThemeManager) {
	h := ThemeHandler{theme, validator.New()}
	mux.HandleFunc("GET /v1/theme", h.GetTheme)
	mux.HandleFunc("PUT /v1/theme", h.PutTheme)
	mux.HandleFunc("POST /v1/theme/toggle", h.PostToggle)
}

func (h ThemeHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ThemeBody{Theme: h.theme.Theme()})
}

func (h ThemeHandler) PutTheme(w http.ResponseWriter, r *http.Request) {
	const op = "ThemeHandler.PutTheme"
	log := slog.With("op", op)

	var body ThemeBody
	if err := decodeBody(r, h.validate, &body); err != nil {
		log.Warn("invalid request body", "err", err)
		writeError(w, http.StatusBadRequest, "theme must be light or dark")
		return
	}

	if err := h.theme.SetTheme(r.Context(), body.Theme); err != nil {
		if errors.Is(err, state.ErrInvalidTheme) {
			writeError(w, http.StatusBadRequest, "theme must be light or dark")
			return
		}
		log.Error("failed to set theme", "err", err)
		writeError(w, http.StatusInternalServerError, "theme unavailable")
		return
	}
	writeJSON(w, http.StatusOK, ThemeBody{Theme: h.theme.Theme()})
}

func (h ThemeHandler) PostToggle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ThemeBody{Theme: h.theme.ToggleTheme(r.Context())})
}
