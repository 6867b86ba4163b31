package ledger

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mverdier/foyer/internal/command"
	"github.com/mverdier/foyer/internal/model"
)

// AdjustMode selects how AdjustSaving changes the current amount.
type AdjustMode string

const (
	AdjustAdd      AdjustMode = "add"
	AdjustSubtract AdjustMode = "subtract"
	AdjustReset    AdjustMode = "reset"
	AdjustFill     AdjustMode = "fill"
)

func (e *Engine) Savings() []model.SavingGoal {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]model.SavingGoal(nil), e.savings...)
}

// AddSavingGoal creates a goal. A non-positive target is rejected; the
// starting amount is clamped into [0, target].
func (e *Engine) AddSavingGoal(name string, target, current float64, deadline *string) (model.SavingGoal, command.Result) {
	if target <= 0 {
		return model.SavingGoal{}, command.Rejected(command.ReasonNonPositiveValue)
	}

	g := model.SavingGoal{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(name),
		Target:   target,
		Current:  clamp(current, 0, target),
		Deadline: deadline,
	}

	e.mu.Lock()
	e.savings = append(e.savings, g)
	e.mu.Unlock()

	e.notify(CollectionSavings, "created", g.ID)
	return g, command.Applied
}

// AdjustSaving moves a goal's current amount. Values pushed past 0 or the
// target are silently clamped, never rejected.
func (e *Engine) AdjustSaving(id string, delta float64, mode AdjustMode) (model.SavingGoal, command.Result) {
	e.mu.Lock()
	for i := range e.savings {
		if e.savings[i].ID != id {
			continue
		}

		g := &e.savings[i]
		switch mode {
		case AdjustAdd:
			g.Current += delta
		case AdjustSubtract:
			g.Current -= delta
		case AdjustReset:
			g.Current = 0
		case AdjustFill:
			g.Current = g.Target
		default:
			e.mu.Unlock()
			return model.SavingGoal{}, command.Rejected(command.ReasonUnknownMode)
		}
		g.Current = clamp(g.Current, 0, g.Target)

		updated := *g
		e.mu.Unlock()

		e.notify(CollectionSavings, "updated", id)
		return updated, command.Applied
	}
	e.mu.Unlock()
	return model.SavingGoal{}, command.Rejected(command.ReasonNotFound)
}

func (e *Engine) DeleteSavingGoal(id string) command.Result {
	e.mu.Lock()
	removed := false
	for i := range e.savings {
		if e.savings[i].ID == id {
			e.savings = append(e.savings[:i], e.savings[i+1:]...)
			removed = true
			break
		}
	}
	e.mu.Unlock()

	if !removed {
		return command.Rejected(command.ReasonNotFound)
	}
	e.notify(CollectionSavings, "deleted", id)
	return command.Applied
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
