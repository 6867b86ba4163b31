package aggregate

import (
	"testing"

	"github.com/mverdier/foyer/internal/model"
)

func TestTotalContribution(t *testing.T) {
	expenses := []model.Expense{
		{Name: "Loyer", AmountP1: 400, AmountP2: 400, Category: "Foyer"},
		{Name: "Courses Bio", AmountP1: 85, AmountP2: 0, Category: "Alimentation"},
	}

	if got := TotalContribution(expenses, model.ActorP1); got != 485 {
		t.Errorf("p1 total = %v, want 485", got)
	}
	if got := TotalContribution(expenses, model.ActorP2); got != 400 {
		t.Errorf("p2 total = %v, want 400", got)
	}
	if got := TotalContribution(nil, model.ActorP1); got != 0 {
		t.Errorf("empty total = %v, want 0", got)
	}
}

func TestPointsRatio(t *testing.T) {
	tests := []struct {
		p1, p2 int
		want   float64
	}{
		{0, 0, 0.5},
		{45, 30, 0.6},
		{30, 45, 0.4},
		{10, 0, 1},
		{0, 10, 0},
	}
	for _, tt := range tests {
		if got := PointsRatio(tt.p1, tt.p2); got != tt.want {
			t.Errorf("PointsRatio(%d, %d) = %v, want %v", tt.p1, tt.p2, got, tt.want)
		}
	}
}

func TestRewardProgress(t *testing.T) {
	if got := RewardProgress(45, 50); got != 0.9 {
		t.Errorf("progress = %v, want 0.9", got)
	}
	if got := RewardProgress(80, 50); got != 1 {
		t.Errorf("progress = %v, want capped 1", got)
	}
	if got := RewardProgress(0, 50); got != 0 {
		t.Errorf("progress = %v, want 0", got)
	}
}

func TestSavingProgress(t *testing.T) {
	g := model.SavingGoal{Target: 3000, Current: 1200}
	if got := SavingProgress(g); got != 0.4 {
		t.Errorf("progress = %v, want 0.4", got)
	}
	if got := SavingProgress(model.SavingGoal{Target: 0, Current: 10}); got != 0 {
		t.Errorf("zero target progress = %v, want 0", got)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	expenses := []model.Expense{
		{AmountP1: 400, AmountP2: 400, Category: "Foyer"},
		{AmountP1: 85, AmountP2: 0, Category: "Alimentation"},
		{AmountP1: 0, AmountP2: 60, Category: "Foyer"},
		{AmountP1: 0, AmountP2: 0, Category: "Transport"},
	}

	got := CategoryBreakdown(expenses)
	if len(got) != 2 {
		t.Fatalf("groups = %d, want 2 (empty categories omitted)", len(got))
	}
	if got[0].Category != "Alimentation" || got[0].AmountP1 != 85 {
		t.Errorf("group 0 = %+v", got[0])
	}
	if got[1].Category != "Foyer" || got[1].AmountP1 != 400 || got[1].AmountP2 != 460 {
		t.Errorf("group 1 = %+v", got[1])
	}
}
