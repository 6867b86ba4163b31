package handler

import (
	"log/slog"
	"net/http"

	"github.com/mverdier/foyer/internal/advice"
)

type AdviceHandler struct {
	service *advice.Service
	logger  *slog.Logger
}

func NewAdviceHandler(svc *advice.Service, logger *slog.Logger) *AdviceHandler {
	return &AdviceHandler{service: svc, logger: logger}
}

type adviceResponse struct {
	Advice string `json:"advice"`
	Source string `json:"source"`
}

// Get asks the model for a short tip on the requested topic. Any failure,
// including a missing API key, falls back to the built-in advice so the
// dashboard always has something to show.
func (h *AdviceHandler) Get(w http.ResponseWriter, r *http.Request) {
	topic := r.URL.Query().Get("topic")

	text, err := h.service.Get(r.Context(), topic)
	if err != nil {
		h.logger.Warn("advice generation failed", "error", err)
		writeJSON(w, http.StatusOK, adviceResponse{Advice: advice.Fallback, Source: "fallback"})
		return
	}

	writeJSON(w, http.StatusOK, adviceResponse{Advice: text, Source: "model"})
}
