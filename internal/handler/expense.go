package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/mverdier/foyer/internal/ledger"
)

type ExpenseHandler struct {
	ledger *ledger.Engine
	logger *slog.Logger
}

func NewExpenseHandler(led *ledger.Engine, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{ledger: led, logger: logger}
}

// Monetary fields arrive as strings straight from form inputs; anything
// unparsable or negative coerces to zero.
type expenseRequest struct {
	Name     string `json:"name"`
	AmountP1 string `json:"amountP1"`
	AmountP2 string `json:"amountP2"`
	Settled  bool   `json:"settled"`
	Category string `json:"category"`
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.Expenses())
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		badRequest(w, "name is required")
		return
	}

	exp := h.ledger.AddExpense(req.Name, ledger.ParseAmount(req.AmountP1), ledger.ParseAmount(req.AmountP2), req.Category)
	writeJSON(w, http.StatusCreated, exp)
}

func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		badRequest(w, "name is required")
		return
	}

	exp, res := h.ledger.UpdateExpense(r.PathValue("id"), req.Name,
		ledger.ParseAmount(req.AmountP1), ledger.ParseAmount(req.AmountP2), req.Settled, req.Category)
	writeResultWith(w, res, exp)
}

func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.ledger.DeleteExpense(r.PathValue("id")))
}
