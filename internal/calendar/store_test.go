package calendar

import (
	"testing"
	"time"

	"github.com/mverdier/foyer/internal/command"
)

func TestEventsOnSortsByTime(t *testing.T) {
	s := NewStore(nil)
	s.Add("2024-05-17", "18:30", "Dîner", "", "Chez Luigi", "Moments Ensemble")
	s.Add("2024-05-17", "09:00", "Médecin", "", "", "Important")
	s.Add("2024-05-18", "10:00", "Marché", "", "", "Famille")
	s.Add("2024-05-17", "", "Anniversaire", "", "", "Famille")

	got := s.EventsOn("2024-05-17")
	if len(got) != 3 {
		t.Fatalf("events on 2024-05-17 = %d, want 3", len(got))
	}
	wantTitles := []string{"Anniversaire", "Médecin", "Dîner"}
	for i, w := range wantTitles {
		if got[i].Title != w {
			t.Errorf("event %d = %q, want %q", i, got[i].Title, w)
		}
	}
	if got[0].Time != "00:00" {
		t.Errorf("missing time should default to 00:00, got %q", got[0].Time)
	}
}

func TestEventsOnStableForEqualTimes(t *testing.T) {
	s := NewStore(nil)
	s.Add("2024-05-17", "09:00", "Premier", "", "", "")
	s.Add("2024-05-17", "09:00", "Deuxième", "", "", "")

	got := s.EventsOn("2024-05-17")
	if len(got) != 2 || got[0].Title != "Premier" || got[1].Title != "Deuxième" {
		t.Errorf("equal times should keep insertion order, got %+v", got)
	}
}

func TestEventsInMonth(t *testing.T) {
	s := NewStore(nil)
	s.Add("2024-04-30", "23:59", "Avant", "", "", "")
	s.Add("2024-05-01", "00:00", "Premier mai", "", "", "")
	s.Add("2024-05-31", "20:00", "Dernier", "", "", "")
	s.Add("2024-06-01", "00:00", "Après", "", "", "")
	s.Add("2024-05-15", "08:00", "Milieu", "", "", "")

	got := s.EventsInMonth(2024, time.May)
	if len(got) != 3 {
		t.Fatalf("events in may = %d, want 3", len(got))
	}
	wantTitles := []string{"Premier mai", "Milieu", "Dernier"}
	for i, w := range wantTitles {
		if got[i].Title != w {
			t.Errorf("event %d = %q, want %q", i, got[i].Title, w)
		}
	}
}

func TestNextUpcoming(t *testing.T) {
	s := NewStore(nil)

	if _, ok := s.NextUpcoming(time.Now()); ok {
		t.Error("empty store should have no upcoming event")
	}

	s.Add("2024-05-17", "09:00", "Passé", "", "", "")
	s.Add("2024-05-20", "18:00", "Futur lointain", "", "", "")
	s.Add("2024-05-18", "12:00", "Prochain", "", "", "")

	now := time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC)
	ev, ok := s.NextUpcoming(now)
	if !ok {
		t.Fatal("expected an upcoming event")
	}
	if ev.Title != "Prochain" {
		t.Errorf("next = %q, want %q", ev.Title, "Prochain")
	}

	// An event exactly at now counts as upcoming.
	now = time.Date(2024, 5, 18, 12, 0, 0, 0, time.UTC)
	ev, _ = s.NextUpcoming(now)
	if ev.Title != "Prochain" {
		t.Errorf("event at now should still match, got %q", ev.Title)
	}
}

func TestNextUpcomingTieKeepsInsertionOrder(t *testing.T) {
	s := NewStore(nil)
	s.Add("2024-05-18", "12:00", "Premier", "", "", "")
	s.Add("2024-05-18", "12:00", "Deuxième", "", "", "")

	ev, ok := s.NextUpcoming(time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC))
	if !ok || ev.Title != "Premier" {
		t.Errorf("tie should resolve to first inserted, got %+v", ev)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	s := NewStore(nil)
	ev, res := s.Add("2024-05-17", "18:30", "Dîner", "", "", "")
	if !res.Applied {
		t.Fatalf("add rejected: %s", res.Reason)
	}

	updated, res := s.Update(ev.ID, "2024-05-19", "19:00", "Dîner décalé", "resa faite", "Chez Luigi", "Important")
	if !res.Applied {
		t.Fatalf("update rejected: %s", res.Reason)
	}
	if updated.Date != "2024-05-19" || updated.Title != "Dîner décalé" {
		t.Errorf("update not applied: %+v", updated)
	}

	if res := s.Delete(ev.ID); !res.Applied {
		t.Fatalf("delete rejected: %s", res.Reason)
	}
	if res := s.Delete(ev.ID); res.Reason != command.ReasonNotFound {
		t.Errorf("reason = %s, want %s", res.Reason, command.ReasonNotFound)
	}
}

func TestAddRejectsMalformedDate(t *testing.T) {
	s := NewStore(nil)
	if _, res := s.Add("17/05/2024", "09:00", "x", "", "", ""); res.Reason != command.ReasonInvalidDate {
		t.Errorf("reason = %s, want %s", res.Reason, command.ReasonInvalidDate)
	}
	if len(s.Events()) != 0 {
		t.Error("rejected add must not mutate the collection")
	}
}
