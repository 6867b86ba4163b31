package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/mverdier/foyer/internal/ledger"
)

type DebtHandler struct {
	ledger *ledger.Engine
	logger *slog.Logger
}

func NewDebtHandler(led *ledger.Engine, logger *slog.Logger) *DebtHandler {
	return &DebtHandler{ledger: led, logger: logger}
}

type debtRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
	Reason string `json:"reason"`
}

func (h *DebtHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.Debts())
}

func (h *DebtHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req debtRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	req.From = strings.TrimSpace(req.From)
	req.To = strings.TrimSpace(req.To)
	if req.From == "" || req.To == "" {
		badRequest(w, "from and to are required")
		return
	}

	debt, res := h.ledger.AddDebt(req.From, req.To, ledger.ParseAmount(req.Amount), req.Reason)
	if res.Applied {
		writeJSON(w, http.StatusCreated, debt)
		return
	}
	writeResult(w, res)
}

func (h *DebtHandler) Delete(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.ledger.DeleteDebt(r.PathValue("id")))
}
