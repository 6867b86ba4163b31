package handler

import (
	"log/slog"
	"net/http"

	"github.com/mverdier/foyer/internal/model"
	"github.com/mverdier/foyer/internal/prefs"
)

type SettingsHandler struct {
	prefs  *prefs.Store
	logger *slog.Logger
}

func NewSettingsHandler(pr *prefs.Store, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{prefs: pr, logger: logger}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.prefs.Get())
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.Preferences
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	writeJSON(w, http.StatusOK, h.prefs.Update(req))
}
