// Package ledger owns the shared-expense, debt, saving-goal and grocery
// collections. Every command is a synchronous read-modify-write under one
// mutex; precondition checks and effects never interleave.
package ledger

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mverdier/foyer/internal/command"
	"github.com/mverdier/foyer/internal/model"
)

// DefaultList is the reserved grocery list name. It always exists and can
// never be deleted.
const DefaultList = "Général"

// Collection names reported to the notifier after a mutation.
const (
	CollectionExpenses  = "expenses"
	CollectionDebts     = "debts"
	CollectionSavings   = "savings"
	CollectionGroceries = "groceries"
	CollectionSettings  = "settings"
)

// Notifier is told about every applied mutation: which persisted collection
// changed, what happened, and the id of the affected record. Persistence and
// real-time sync hang off this; the engine itself stores nothing.
type Notifier func(collection, action, id string)

// Engine holds the ledger collections in memory.
type Engine struct {
	mu        sync.Mutex
	expenses  []model.Expense
	debts     []model.Debt
	savings   []model.SavingGoal
	groceries []model.GroceryItem
	lists     []string
	notify    Notifier
}

// NewEngine creates an empty engine. The default grocery list always exists.
func NewEngine(notify Notifier) *Engine {
	if notify == nil {
		notify = func(string, string, string) {}
	}
	return &Engine{
		lists:  []string{DefaultList},
		notify: notify,
	}
}

// Restore replaces all collections, typically from loaded snapshots.
// The reserved default list is re-added if the stored list set lost it.
func (e *Engine) Restore(expenses []model.Expense, debts []model.Debt, savings []model.SavingGoal, groceries []model.GroceryItem, lists []string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.expenses = append([]model.Expense(nil), expenses...)
	e.debts = append([]model.Debt(nil), debts...)
	e.savings = append([]model.SavingGoal(nil), savings...)
	e.groceries = append([]model.GroceryItem(nil), groceries...)

	e.lists = e.lists[:0]
	hasDefault := false
	for _, l := range lists {
		if l == DefaultList {
			hasDefault = true
		}
		e.lists = append(e.lists, l)
	}
	if !hasDefault {
		e.lists = append([]string{DefaultList}, e.lists...)
	}
}

// --- Expenses ---

func (e *Engine) Expenses() []model.Expense {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]model.Expense(nil), e.expenses...)
}

func (e *Engine) AddExpense(name string, amountP1, amountP2 float64, category string) model.Expense {
	exp := model.Expense{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(name),
		AmountP1: clampNonNegative(amountP1),
		AmountP2: clampNonNegative(amountP2),
		Category: category,
	}

	e.mu.Lock()
	e.expenses = append(e.expenses, exp)
	e.mu.Unlock()

	e.notify(CollectionExpenses, "created", exp.ID)
	return exp
}

// UpdateExpense replaces the mutable fields of an expense.
func (e *Engine) UpdateExpense(id, name string, amountP1, amountP2 float64, settled bool, category string) (model.Expense, command.Result) {
	e.mu.Lock()
	for i := range e.expenses {
		if e.expenses[i].ID != id {
			continue
		}
		e.expenses[i].Name = strings.TrimSpace(name)
		e.expenses[i].AmountP1 = clampNonNegative(amountP1)
		e.expenses[i].AmountP2 = clampNonNegative(amountP2)
		e.expenses[i].Settled = settled
		e.expenses[i].Category = category
		updated := e.expenses[i]
		e.mu.Unlock()

		e.notify(CollectionExpenses, "updated", id)
		return updated, command.Applied
	}
	e.mu.Unlock()
	return model.Expense{}, command.Rejected(command.ReasonNotFound)
}

func (e *Engine) DeleteExpense(id string) command.Result {
	e.mu.Lock()
	removed := false
	for i := range e.expenses {
		if e.expenses[i].ID == id {
			e.expenses = append(e.expenses[:i], e.expenses[i+1:]...)
			removed = true
			break
		}
	}
	e.mu.Unlock()

	if !removed {
		return command.Rejected(command.ReasonNotFound)
	}
	e.notify(CollectionExpenses, "deleted", id)
	return command.Applied
}

// --- Debts ---

func (e *Engine) Debts() []model.Debt {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]model.Debt(nil), e.debts...)
}

// AddDebt records a directional debt. A non-positive amount, including
// coerced non-numeric input, is rejected rather than stored.
func (e *Engine) AddDebt(from, to string, amount float64, reason string) (model.Debt, command.Result) {
	if amount <= 0 {
		return model.Debt{}, command.Rejected(command.ReasonNonPositiveValue)
	}

	d := model.Debt{
		ID:     uuid.NewString(),
		From:   strings.TrimSpace(from),
		To:     strings.TrimSpace(to),
		Amount: amount,
		Reason: reason,
	}

	e.mu.Lock()
	e.debts = append(e.debts, d)
	e.mu.Unlock()

	e.notify(CollectionDebts, "created", d.ID)
	return d, command.Applied
}

func (e *Engine) DeleteDebt(id string) command.Result {
	e.mu.Lock()
	removed := false
	for i := range e.debts {
		if e.debts[i].ID == id {
			e.debts = append(e.debts[:i], e.debts[i+1:]...)
			removed = true
			break
		}
	}
	e.mu.Unlock()

	if !removed {
		return command.Rejected(command.ReasonNotFound)
	}
	e.notify(CollectionDebts, "deleted", id)
	return command.Applied
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
