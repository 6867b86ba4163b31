package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/mverdier/foyer/internal/ledger"
)

type GroceryHandler struct {
	ledger *ledger.Engine
	logger *slog.Logger
}

func NewGroceryHandler(led *ledger.Engine, logger *slog.Logger) *GroceryHandler {
	return &GroceryHandler{ledger: led, logger: logger}
}

type groceryRequest struct {
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  string `json:"quantity"`
	Unit      string `json:"unit"`
	Bought    bool   `json:"bought"`
	ListName  string `json:"listName"`
}

type listRequest struct {
	Name string `json:"name"`
}

// ListItems returns the items of one list when the "list" query parameter
// is present, and every item otherwise.
func (h *GroceryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	if list := r.URL.Query().Get("list"); list != "" {
		writeJSON(w, http.StatusOK, h.ledger.GroceriesIn(list))
		return
	}
	writeJSON(w, http.StatusOK, h.ledger.Groceries())
}

func (h *GroceryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req groceryRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		badRequest(w, "name is required")
		return
	}

	item, res := h.ledger.AddGroceryItem(req.Name, ledger.ParseAmount(req.UnitPrice), ledger.ParseQuantity(req.Quantity), req.Unit, req.ListName)
	if res.Applied {
		writeJSON(w, http.StatusCreated, item)
		return
	}
	writeResult(w, res)
}

func (h *GroceryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req groceryRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		badRequest(w, "name is required")
		return
	}

	item, res := h.ledger.UpdateGroceryItem(r.PathValue("id"), req.Name,
		ledger.ParseAmount(req.UnitPrice), ledger.ParseQuantity(req.Quantity), req.Unit, req.Bought, req.ListName)
	writeResultWith(w, res, item)
}

func (h *GroceryHandler) ToggleBought(w http.ResponseWriter, r *http.Request) {
	item, res := h.ledger.ToggleBought(r.PathValue("id"))
	writeResultWith(w, res, item)
}

func (h *GroceryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.ledger.DeleteGroceryItem(r.PathValue("id")))
}

func (h *GroceryHandler) Lists(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"lists": h.ledger.Lists()})
}

func (h *GroceryHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req listRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	writeResult(w, h.ledger.AddList(req.Name))
}

func (h *GroceryHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.ledger.RemoveList(r.PathValue("name")))
}

// ListTotal answers the estimated total of a list, bought or not.
func (h *GroceryHandler) ListTotal(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	writeJSON(w, http.StatusOK, map[string]any{
		"listName": name,
		"total":    h.ledger.ListTotal(name),
	})
}
