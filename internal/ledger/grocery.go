package ledger

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mverdier/foyer/internal/command"
	"github.com/mverdier/foyer/internal/model"
)

func (e *Engine) Groceries() []model.GroceryItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]model.GroceryItem(nil), e.groceries...)
}

// GroceriesIn returns the items whose list name matches, in insertion order.
func (e *Engine) GroceriesIn(listName string) []model.GroceryItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	var items []model.GroceryItem
	for _, g := range e.groceries {
		if g.ListName == listName {
			items = append(items, g)
		}
	}
	return items
}

// AddGroceryItem creates an item on an existing list. The list name must
// reference a known list; quantity and price are clamped to non-negative.
func (e *Engine) AddGroceryItem(name string, unitPrice float64, quantity int, unit, listName string) (model.GroceryItem, command.Result) {
	e.mu.Lock()
	if !e.hasListLocked(listName) {
		e.mu.Unlock()
		return model.GroceryItem{}, command.Rejected(command.ReasonUnknownList)
	}

	if quantity < 0 {
		quantity = 0
	}
	g := model.GroceryItem{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		UnitPrice: clampNonNegative(unitPrice),
		Quantity:  quantity,
		Unit:      unit,
		ListName:  listName,
	}
	e.groceries = append(e.groceries, g)
	e.mu.Unlock()

	e.notify(CollectionGroceries, "created", g.ID)
	return g, command.Applied
}

// UpdateGroceryItem replaces the mutable fields of an item. Moving it to an
// unknown list is rejected with no partial change.
func (e *Engine) UpdateGroceryItem(id, name string, unitPrice float64, quantity int, unit string, bought bool, listName string) (model.GroceryItem, command.Result) {
	e.mu.Lock()
	if !e.hasListLocked(listName) {
		e.mu.Unlock()
		return model.GroceryItem{}, command.Rejected(command.ReasonUnknownList)
	}

	for i := range e.groceries {
		if e.groceries[i].ID != id {
			continue
		}
		if quantity < 0 {
			quantity = 0
		}
		e.groceries[i].Name = strings.TrimSpace(name)
		e.groceries[i].UnitPrice = clampNonNegative(unitPrice)
		e.groceries[i].Quantity = quantity
		e.groceries[i].Unit = unit
		e.groceries[i].Bought = bought
		e.groceries[i].ListName = listName
		updated := e.groceries[i]
		e.mu.Unlock()

		e.notify(CollectionGroceries, "updated", id)
		return updated, command.Applied
	}
	e.mu.Unlock()
	return model.GroceryItem{}, command.Rejected(command.ReasonNotFound)
}

// ToggleBought flips an item's bought flag.
func (e *Engine) ToggleBought(id string) (model.GroceryItem, command.Result) {
	e.mu.Lock()
	for i := range e.groceries {
		if e.groceries[i].ID != id {
			continue
		}
		e.groceries[i].Bought = !e.groceries[i].Bought
		updated := e.groceries[i]
		e.mu.Unlock()

		e.notify(CollectionGroceries, "updated", id)
		return updated, command.Applied
	}
	e.mu.Unlock()
	return model.GroceryItem{}, command.Rejected(command.ReasonNotFound)
}

func (e *Engine) DeleteGroceryItem(id string) command.Result {
	e.mu.Lock()
	removed := false
	for i := range e.groceries {
		if e.groceries[i].ID == id {
			e.groceries = append(e.groceries[:i], e.groceries[i+1:]...)
			removed = true
			break
		}
	}
	e.mu.Unlock()

	if !removed {
		return command.Rejected(command.ReasonNotFound)
	}
	e.notify(CollectionGroceries, "deleted", id)
	return command.Applied
}

// ListTotal sums unitPrice times quantity over the items of one list.
// The result does not depend on item order.
func (e *Engine) ListTotal(listName string) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	var total float64
	for _, g := range e.groceries {
		if g.ListName == listName {
			total += g.LineTotal()
		}
	}
	return total
}

// --- List names ---

func (e *Engine) Lists() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.lists...)
}

// AddList registers a new list name.
func (e *Engine) AddList(name string) command.Result {
	name = strings.TrimSpace(name)
	if name == "" {
		return command.Rejected(command.ReasonEmptyTitle)
	}

	e.mu.Lock()
	if e.hasListLocked(name) {
		e.mu.Unlock()
		return command.Rejected(command.ReasonDuplicateList)
	}
	e.lists = append(e.lists, name)
	e.mu.Unlock()

	e.notify(CollectionSettings, "updated", "grocery_lists")
	return command.Applied
}

// RemoveList deletes a list name. The reserved default list can never be
// removed, and neither can a list that still has items referencing it.
func (e *Engine) RemoveList(name string) command.Result {
	if name == DefaultList {
		return command.Rejected(command.ReasonReservedList)
	}

	e.mu.Lock()
	if !e.hasListLocked(name) {
		e.mu.Unlock()
		return command.Rejected(command.ReasonNotFound)
	}
	for _, g := range e.groceries {
		if g.ListName == name {
			e.mu.Unlock()
			return command.Rejected(command.ReasonListInUse)
		}
	}
	for i, l := range e.lists {
		if l == name {
			e.lists = append(e.lists[:i], e.lists[i+1:]...)
			break
		}
	}
	e.mu.Unlock()

	e.notify(CollectionSettings, "updated", "grocery_lists")
	return command.Applied
}

func (e *Engine) hasListLocked(name string) bool {
	for _, l := range e.lists {
		if l == name {
			return true
		}
	}
	return false
}
