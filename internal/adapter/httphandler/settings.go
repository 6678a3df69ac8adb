package httphandler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/DelcyVillalba/chic-storefront/internal/core/port"
	"github.com/DelcyVillalba/chic-storefront/internal/core/state"
)

type SettingsHandler struct {
	settings port.SettingsManager
}

func RegisterSettings(mux *http.ServeMux, settings port.SettingsManager) {
	h := SettingsHandler{settings}
	mux.HandleFunc("GET /v1/settings", h.GetSettings)
	mux.HandleFunc("PATCH /v1/settings", h.PatchSettings)
	mux.HandleFunc("DELETE /v1/settings", h.DeleteSettings)
}

func (h SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.settings.Settings())
}

// PatchSettings merges a partial settings document over the current value.
func (h SettingsHandler) PatchSettings(w http.ResponseWriter, r *http.Request) {
	const op = "SettingsHandler.PatchSettings"
	log := slog.With("op", op)

	patch, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil || !json.Valid(patch) {
		writeError(w, http.StatusBadRequest, "invalid settings document")
		return
	}

	v, err := h.settings.UpdateSettings(r.Context(), patch)
	if err != nil {
		if errors.Is(err, state.ErrInvalidSettings) {
			log.Warn("settings rejected", "err", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error("failed to update settings", "err", err)
		writeError(w, http.StatusInternalServerError, "settings unavailable")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h SettingsHandler) DeleteSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.settings.ResetSettings(r.Context()))
}
