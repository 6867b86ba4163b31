package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/mverdier/foyer/internal/ledger"
)

type SavingHandler struct {
	ledger *ledger.Engine
	logger *slog.Logger
}

func NewSavingHandler(led *ledger.Engine, logger *slog.Logger) *SavingHandler {
	return &SavingHandler{ledger: led, logger: logger}
}

type savingRequest struct {
	Name     string  `json:"name"`
	Target   string  `json:"target"`
	Current  string  `json:"current"`
	Deadline *string `json:"deadline,omitempty"`
}

type adjustRequest struct {
	Amount string `json:"amount"`
	Mode   string `json:"mode"`
}

func (h *SavingHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.Savings())
}

func (h *SavingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req savingRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		badRequest(w, "name is required")
		return
	}

	goal, res := h.ledger.AddSavingGoal(req.Name, ledger.ParseAmount(req.Target), ledger.ParseAmount(req.Current), req.Deadline)
	if res.Applied {
		writeJSON(w, http.StatusCreated, goal)
		return
	}
	writeResult(w, res)
}

// Adjust moves a goal's current amount. Mode is one of add, subtract,
// reset, or fill; the amount is ignored for reset and fill.
func (h *SavingHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req adjustRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}

	goal, res := h.ledger.AdjustSaving(r.PathValue("id"), ledger.ParseAmount(req.Amount), ledger.AdjustMode(req.Mode))
	writeResultWith(w, res, goal)
}

func (h *SavingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.ledger.DeleteSavingGoal(r.PathValue("id")))
}
