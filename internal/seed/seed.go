// Package seed provides the first-run defaults used when no snapshot has
// been stored yet.
package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/mverdier/foyer/internal/dateutil"
	"github.com/mverdier/foyer/internal/gamify"
	"github.com/mverdier/foyer/internal/ledger"
	"github.com/mverdier/foyer/internal/model"
)

// DefaultEventCategories is the starting calendar vocabulary.
var DefaultEventCategories = []string{"Moments Ensemble", "Important", "Famille"}

// DefaultCategoryColors maps each default event category to its color.
var DefaultCategoryColors = map[string]string{
	"Moments Ensemble": "#D4AF37",
	"Important":        "#EF4444",
	"Famille":          "#10B981",
}

// Preferences returns the first-run household preferences.
func Preferences() model.Preferences {
	return model.Preferences{
		P1Name:          "Jean",
		P2Name:          "Monique",
		Theme:           "classic",
		P1Income:        2500,
		P2Income:        2200,
		TargetBudget:    1500,
		Currency:        "€",
		EventCategories: append([]string(nil), DefaultEventCategories...),
		CategoryColors:  copyColors(DefaultCategoryColors),
		EnableDebts:     true,
		ShowDebtWarning: true,
	}
}

// Expenses returns the starter expense pair.
func Expenses() []model.Expense {
	return []model.Expense{
		{ID: uuid.NewString(), Name: "Loyer", AmountP1: 400, AmountP2: 400, Settled: true, Category: "Foyer"},
		{ID: uuid.NewString(), Name: "Courses Bio", AmountP1: 85, AmountP2: 0, Category: "Alimentation"},
	}
}

// Savings returns the starter savings goal.
func Savings() []model.SavingGoal {
	return []model.SavingGoal{
		{ID: uuid.NewString(), Name: "Voyage Japon", Target: 3000, Current: 1200},
	}
}

// Groceries returns the starter grocery item, on the default list.
func Groceries() []model.GroceryItem {
	return []model.GroceryItem{
		{ID: uuid.NewString(), Name: "Lait d'avoine", UnitPrice: 2.5, Quantity: 2, Unit: "L", ListName: ledger.DefaultList},
	}
}

// Chores returns the six default chores.
func Chores() []model.Chore {
	return []model.Chore{
		{ID: uuid.NewString(), Title: "Sortir les poubelles", Points: 10},
		{ID: uuid.NewString(), Title: "Faire la vaisselle", Points: 15},
		{ID: uuid.NewString(), Title: "Nettoyer les toilettes", Points: 50},
		{ID: uuid.NewString(), Title: "Passer l'aspirateur", Points: 25},
		{ID: uuid.NewString(), Title: "Faire les courses", Points: 40},
		{ID: uuid.NewString(), Title: "Ménage complet", Points: 80},
	}
}

// Rewards returns the three default rewards.
func Rewards() []model.Reward {
	return []model.Reward{
		{ID: uuid.NewString(), Title: "Choisir le film Netflix", Threshold: 50},
		{ID: uuid.NewString(), Title: "Choisir le restaurant ce weekend", Threshold: 100},
		{ID: uuid.NewString(), Title: "Lieu des prochaines vacances", Threshold: 1000},
	}
}

// State returns the starter gamification state: a friendly head start for
// both partners and the current week's Monday as the reset anchor.
func State(now time.Time) model.GamificationState {
	return model.GamificationState{
		Points:        map[model.Actor]int{model.ActorP1: 45, model.ActorP2: 30},
		LastResetDate: dateutil.FormatDate(dateutil.StartOfWeek(now)),
	}
}

// Apply loads the defaults into the engines. Preferences are seeded at
// store construction; debts and events start empty.
func Apply(led *ledger.Engine, game *gamify.Engine, now time.Time) {
	led.Restore(Expenses(), nil, Savings(), Groceries(), []string{ledger.DefaultList})
	game.Restore(State(now), Chores(), Rewards())
}

func copyColors(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
