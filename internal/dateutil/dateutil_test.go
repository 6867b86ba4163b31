package dateutil

import (
	"testing"
	"time"
)

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"friday", "2024-05-17", "2024-05-13"},
		{"monday is itself", "2024-05-13", "2024-05-13"},
		{"sunday goes back six days", "2024-05-19", "2024-05-13"},
		{"tuesday", "2024-05-14", "2024-05-13"},
		{"saturday", "2024-05-18", "2024-05-13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := time.Parse(DateLayout, tt.in)
			if err != nil {
				t.Fatalf("parse %q: %v", tt.in, err)
			}
			got := StartOfWeek(in).Format(DateLayout)
			if got != tt.want {
				t.Errorf("StartOfWeek(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestStartOfWeekKeepsLocationAndMidnight(t *testing.T) {
	loc := time.FixedZone("TST", 2*3600)
	in := time.Date(2024, 5, 17, 23, 45, 12, 0, loc)
	got := StartOfWeek(in)

	if got.Location() != loc {
		t.Errorf("location = %v, want %v", got.Location(), loc)
	}
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Errorf("expected midnight, got %v", got)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 5, 17, 0, 1, 0, 0, time.UTC)
	b := time.Date(2024, 5, 17, 23, 59, 59, 0, time.UTC)
	c := time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Error("expected same day for different times on 2024-05-17")
	}
	if SameDay(b, c) {
		t.Error("expected different days across midnight")
	}
}

func TestCombine(t *testing.T) {
	got, err := Combine("2024-05-17", "18:30", time.UTC)
	if err != nil {
		t.Fatalf("combine: %v", err)
	}
	want := time.Date(2024, 5, 17, 18, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Missing time defaults to midnight.
	got, err = Combine("2024-05-17", "", time.UTC)
	if err != nil {
		t.Fatalf("combine with empty clock: %v", err)
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("expected midnight, got %v", got)
	}

	if _, err := Combine("17/05/2024", "18:30", time.UTC); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestSortKey(t *testing.T) {
	if SortKey("2024-05-17", "") != "2024-05-17T00:00" {
		t.Errorf("empty clock should sort as midnight, got %s", SortKey("2024-05-17", ""))
	}
	if !(SortKey("2024-05-17", "09:00") < SortKey("2024-05-17", "18:30")) {
		t.Error("expected morning key to sort before evening key")
	}
	if !(SortKey("2024-05-17", "23:59") < SortKey("2024-05-18", "00:00")) {
		t.Error("expected earlier date to sort first regardless of time")
	}
}

func TestMonthRange(t *testing.T) {
	first, last := MonthRange(2024, time.February)
	if first != "2024-02-01" {
		t.Errorf("first = %s, want 2024-02-01", first)
	}
	if last != "2024-02-29" {
		t.Errorf("last = %s, want 2024-02-29 (leap year)", last)
	}

	first, last = MonthRange(2024, time.April)
	if first != "2024-04-01" || last != "2024-04-30" {
		t.Errorf("april range = %s..%s", first, last)
	}
}
