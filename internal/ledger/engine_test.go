package ledger

import (
	"testing"

	"github.com/mverdier/foyer/internal/command"
)

func TestExpenseCRUD(t *testing.T) {
	e := NewEngine(nil)

	exp := e.AddExpense("Loyer", 400, 400, "Foyer")
	if exp.ID == "" {
		t.Fatal("expected generated id")
	}
	if exp.Settled {
		t.Error("new expense should start unsettled")
	}

	updated, res := e.UpdateExpense(exp.ID, "Loyer", 450, 400, true, "Foyer")
	if !res.Applied {
		t.Fatalf("update rejected: %s", res.Reason)
	}
	if updated.AmountP1 != 450 || !updated.Settled {
		t.Errorf("update not applied: %+v", updated)
	}

	if _, res := e.UpdateExpense("nope", "x", 0, 0, false, ""); res.Applied {
		t.Error("expected rejection for unknown id")
	}

	if res := e.DeleteExpense(exp.ID); !res.Applied {
		t.Fatalf("delete rejected: %s", res.Reason)
	}
	if len(e.Expenses()) != 0 {
		t.Errorf("expected empty collection, got %d", len(e.Expenses()))
	}
	if res := e.DeleteExpense(exp.ID); res.Reason != command.ReasonNotFound {
		t.Errorf("reason = %s, want %s", res.Reason, command.ReasonNotFound)
	}
}

func TestExpenseAmountsClamped(t *testing.T) {
	e := NewEngine(nil)
	exp := e.AddExpense("Courses", -20, 85, "Alimentation")
	if exp.AmountP1 != 0 {
		t.Errorf("negative amount should clamp to 0, got %v", exp.AmountP1)
	}
	if exp.AmountP2 != 85 {
		t.Errorf("amount_p2 = %v, want 85", exp.AmountP2)
	}
}

func TestDebtRequiresPositiveAmount(t *testing.T) {
	e := NewEngine(nil)

	if _, res := e.AddDebt("Jean", "Monique", 0, "café"); res.Applied {
		t.Error("zero amount should be rejected")
	}
	if _, res := e.AddDebt("Jean", "Monique", -5, "café"); res.Applied {
		t.Error("negative amount should be rejected")
	}

	d, res := e.AddDebt("Jean", "Monique", 12.5, "café")
	if !res.Applied {
		t.Fatalf("add debt rejected: %s", res.Reason)
	}
	if len(e.Debts()) != 1 {
		t.Fatalf("debts = %d, want 1", len(e.Debts()))
	}
	if res := e.DeleteDebt(d.ID); !res.Applied {
		t.Fatalf("delete debt rejected: %s", res.Reason)
	}
}

func TestAdjustSavingClamping(t *testing.T) {
	e := NewEngine(nil)
	g, res := e.AddSavingGoal("Voyage Japon", 3000, 1200, nil)
	if !res.Applied {
		t.Fatalf("add goal rejected: %s", res.Reason)
	}

	steps := []struct {
		delta float64
		mode  AdjustMode
		want  float64
	}{
		{500, AdjustAdd, 1700},
		{2000, AdjustSubtract, 0},
		{5000, AdjustAdd, 3000},
		{0, AdjustReset, 0},
		{0, AdjustFill, 3000},
	}
	for _, s := range steps {
		got, res := e.AdjustSaving(g.ID, s.delta, s.mode)
		if !res.Applied {
			t.Fatalf("adjust %s rejected: %s", s.mode, res.Reason)
		}
		if got.Current != s.want {
			t.Errorf("mode %s delta %v: current = %v, want %v", s.mode, s.delta, got.Current, s.want)
		}
		if got.Current < 0 || got.Current > got.Target {
			t.Errorf("invariant broken: current %v outside [0, %v]", got.Current, got.Target)
		}
	}

	if _, res := e.AdjustSaving(g.ID, 1, AdjustMode("halve")); res.Reason != command.ReasonUnknownMode {
		t.Errorf("reason = %s, want %s", res.Reason, command.ReasonUnknownMode)
	}
}

func TestSavingGoalRequiresPositiveTarget(t *testing.T) {
	e := NewEngine(nil)
	if _, res := e.AddSavingGoal("rien", 0, 0, nil); res.Applied {
		t.Error("zero target should be rejected")
	}

	// Starting amount above target is clamped, not rejected.
	g, res := e.AddSavingGoal("petit", 100, 250, nil)
	if !res.Applied {
		t.Fatalf("add goal rejected: %s", res.Reason)
	}
	if g.Current != 100 {
		t.Errorf("current = %v, want clamped 100", g.Current)
	}
}

func TestGroceryListTotals(t *testing.T) {
	e := NewEngine(nil)
	if res := e.AddList("Pharmacie"); !res.Applied {
		t.Fatalf("add list rejected: %s", res.Reason)
	}

	if _, res := e.AddGroceryItem("Lait d'avoine", 2.5, 2, "L", DefaultList); !res.Applied {
		t.Fatalf("add item rejected: %s", res.Reason)
	}
	if _, res := e.AddGroceryItem("Pain", 1.2, 3, "pcs", DefaultList); !res.Applied {
		t.Fatalf("add item rejected: %s", res.Reason)
	}
	if _, res := e.AddGroceryItem("Doliprane", 4, 1, "boîte", "Pharmacie"); !res.Applied {
		t.Fatalf("add item rejected: %s", res.Reason)
	}

	// 2.5*2 + 1.2*3 = 8.6; the other list does not contribute.
	if got := e.ListTotal(DefaultList); got != 8.6 {
		t.Errorf("default list total = %v, want 8.6", got)
	}
	if got := e.ListTotal("Pharmacie"); got != 4 {
		t.Errorf("pharmacie total = %v, want 4", got)
	}
	if got := len(e.GroceriesIn(DefaultList)); got != 2 {
		t.Errorf("items in default list = %d, want 2", got)
	}
}

func TestGroceryListTotalOrderInvariant(t *testing.T) {
	prices := []struct {
		price float64
		qty   int
	}{{2.5, 2}, {1.2, 3}, {0.9, 10}, {15, 1}}

	forward := NewEngine(nil)
	for _, p := range prices {
		forward.AddGroceryItem("item", p.price, p.qty, "", DefaultList)
	}

	backward := NewEngine(nil)
	for i := len(prices) - 1; i >= 0; i-- {
		backward.AddGroceryItem("item", prices[i].price, prices[i].qty, "", DefaultList)
	}

	if forward.ListTotal(DefaultList) != backward.ListTotal(DefaultList) {
		t.Errorf("total depends on insertion order: %v vs %v",
			forward.ListTotal(DefaultList), backward.ListTotal(DefaultList))
	}
}

func TestGroceryItemUnknownListRejected(t *testing.T) {
	e := NewEngine(nil)
	if _, res := e.AddGroceryItem("Lait", 1, 1, "L", "Inconnu"); res.Reason != command.ReasonUnknownList {
		t.Errorf("reason = %s, want %s", res.Reason, command.ReasonUnknownList)
	}

	item, _ := e.AddGroceryItem("Lait", 1, 1, "L", DefaultList)
	if _, res := e.UpdateGroceryItem(item.ID, "Lait", 1, 1, "L", false, "Inconnu"); res.Reason != command.ReasonUnknownList {
		t.Errorf("reason = %s, want %s", res.Reason, command.ReasonUnknownList)
	}
}

func TestRemoveListRules(t *testing.T) {
	e := NewEngine(nil)

	if res := e.RemoveList(DefaultList); res.Reason != command.ReasonReservedList {
		t.Errorf("reason = %s, want %s", res.Reason, command.ReasonReservedList)
	}

	e.AddList("Week-end")
	if _, res := e.AddGroceryItem("Chips", 2, 1, "", "Week-end"); !res.Applied {
		t.Fatalf("add item rejected: %s", res.Reason)
	}
	if res := e.RemoveList("Week-end"); res.Reason != command.ReasonListInUse {
		t.Errorf("reason = %s, want %s", res.Reason, command.ReasonListInUse)
	}

	// Once empty, removal succeeds.
	items := e.GroceriesIn("Week-end")
	for _, it := range items {
		if res := e.DeleteGroceryItem(it.ID); !res.Applied {
			t.Fatalf("delete item rejected: %s", res.Reason)
		}
	}
	if res := e.RemoveList("Week-end"); !res.Applied {
		t.Errorf("remove of empty list rejected: %s", res.Reason)
	}

	if res := e.AddList(DefaultList); res.Reason != command.ReasonDuplicateList {
		t.Errorf("reason = %s, want %s", res.Reason, command.ReasonDuplicateList)
	}
}

func TestToggleBought(t *testing.T) {
	e := NewEngine(nil)
	item, _ := e.AddGroceryItem("Lait", 1, 1, "L", DefaultList)

	got, res := e.ToggleBought(item.ID)
	if !res.Applied || !got.Bought {
		t.Errorf("expected bought=true, got %+v (%s)", got, res.Reason)
	}
	got, _ = e.ToggleBought(item.ID)
	if got.Bought {
		t.Error("expected bought=false after second toggle")
	}
}

func TestNotifierReceivesMutations(t *testing.T) {
	type event struct{ collection, action string }
	var events []event
	e := NewEngine(func(collection, action, id string) {
		events = append(events, event{collection, action})
	})

	exp := e.AddExpense("Loyer", 400, 400, "Foyer")
	e.UpdateExpense(exp.ID, "Loyer", 400, 400, true, "Foyer")
	e.DeleteExpense(exp.ID)
	e.AddList("Marché")

	want := []event{
		{CollectionExpenses, "created"},
		{CollectionExpenses, "updated"},
		{CollectionExpenses, "deleted"},
		{CollectionSettings, "updated"},
	}
	if len(events) != len(want) {
		t.Fatalf("events = %d, want %d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, events[i], want[i])
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12.5", 12.5},
		{"12,5", 12.5},
		{" 3 ", 3},
		{"abc", 0},
		{"", 0},
		{"-4", 0},
	}
	for _, tt := range tests {
		if got := ParseAmount(tt.in); got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if got := ParseQuantity("3"); got != 3 {
		t.Errorf("ParseQuantity(3) = %d", got)
	}
	if got := ParseQuantity("beaucoup"); got != 0 {
		t.Errorf("ParseQuantity(beaucoup) = %d, want 0", got)
	}
}
