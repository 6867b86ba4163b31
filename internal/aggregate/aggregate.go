// Package aggregate computes derived read-only views over the engine
// collections. Nothing here mutates or persists anything; values are
// recomputed on every call.
package aggregate

import (
	"sort"

	"github.com/mverdier/foyer/internal/model"
)

// TotalContribution sums one actor's share across all expenses.
func TotalContribution(expenses []model.Expense, actor model.Actor) float64 {
	var total float64
	for _, e := range expenses {
		if actor == model.ActorP2 {
			total += e.AmountP2
		} else {
			total += e.AmountP1
		}
	}
	return total
}

// PointsRatio returns the first actor's share of the combined points,
// defined as 0.5 when both balances are zero.
func PointsRatio(p1, p2 int) float64 {
	if p1 <= 0 && p2 <= 0 {
		return 0.5
	}
	return float64(p1) / float64(p1+p2)
}

// RewardProgress returns how close a balance is to a threshold, capped at 1.
func RewardProgress(points, threshold int) float64 {
	if threshold <= 0 {
		return 1
	}
	p := float64(points) / float64(threshold)
	if p > 1 {
		return 1
	}
	return p
}

// SavingProgress returns current over target, capped at 1.
func SavingProgress(g model.SavingGoal) float64 {
	if g.Target <= 0 {
		return 0
	}
	p := g.Current / g.Target
	if p > 1 {
		return 1
	}
	return p
}

// CategoryTotal holds both actors' contributions for one expense category.
type CategoryTotal struct {
	Category string  `json:"category"`
	AmountP1 float64 `json:"amount_p1"`
	AmountP2 float64 `json:"amount_p2"`
}

// CategoryBreakdown groups expenses by category and sums each actor's share
// per group. Categories with no spend are omitted; the result is sorted by
// category name for stable output.
func CategoryBreakdown(expenses []model.Expense) []CategoryTotal {
	byCategory := make(map[string]*CategoryTotal)
	for _, e := range expenses {
		ct, ok := byCategory[e.Category]
		if !ok {
			ct = &CategoryTotal{Category: e.Category}
			byCategory[e.Category] = ct
		}
		ct.AmountP1 += e.AmountP1
		ct.AmountP2 += e.AmountP2
	}

	out := make([]CategoryTotal, 0, len(byCategory))
	for _, ct := range byCategory {
		if ct.AmountP1 > 0 || ct.AmountP2 > 0 {
			out = append(out, *ct)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}
