// Package calendar keeps the shared event collection and its date-indexed
// queries. Events are stored in insertion order; queries sort stably so that
// events sharing a date and time keep that order.
package calendar

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mverdier/foyer/internal/command"
	"github.com/mverdier/foyer/internal/dateutil"
	"github.com/mverdier/foyer/internal/model"
)

// Collection is the snapshot key for persisted events.
const Collection = "events"

// Notifier matches ledger.Notifier; the store reports applied mutations.
type Notifier func(collection, action, id string)

// Store holds calendar events in memory.
type Store struct {
	mu     sync.Mutex
	events []model.CalendarEvent
	notify Notifier
}

func NewStore(notify Notifier) *Store {
	if notify == nil {
		notify = func(string, string, string) {}
	}
	return &Store{notify: notify}
}

// Restore replaces the collection, typically from a loaded snapshot.
func (s *Store) Restore(events []model.CalendarEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append([]model.CalendarEvent(nil), events...)
}

func (s *Store) Events() []model.CalendarEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.CalendarEvent(nil), s.events...)
}

// Add creates an event. A missing time-of-day defaults to "00:00"; the date
// must parse as a calendar date.
func (s *Store) Add(date, clock, title, description, place, category string) (model.CalendarEvent, command.Result) {
	if _, err := time.Parse(dateutil.DateLayout, date); err != nil {
		return model.CalendarEvent{}, command.Rejected(command.ReasonInvalidDate)
	}
	if clock == "" {
		clock = "00:00"
	}

	ev := model.CalendarEvent{
		ID:          uuid.NewString(),
		Date:        date,
		Time:        clock,
		Title:       strings.TrimSpace(title),
		Description: description,
		Place:       place,
		Category:    category,
	}

	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()

	s.notify(Collection, "created", ev.ID)
	return ev, command.Applied
}

// Update replaces an event's fields.
func (s *Store) Update(id, date, clock, title, description, place, category string) (model.CalendarEvent, command.Result) {
	if _, err := time.Parse(dateutil.DateLayout, date); err != nil {
		return model.CalendarEvent{}, command.Rejected(command.ReasonInvalidDate)
	}
	if clock == "" {
		clock = "00:00"
	}

	s.mu.Lock()
	for i := range s.events {
		if s.events[i].ID != id {
			continue
		}
		s.events[i].Date = date
		s.events[i].Time = clock
		s.events[i].Title = strings.TrimSpace(title)
		s.events[i].Description = description
		s.events[i].Place = place
		s.events[i].Category = category
		updated := s.events[i]
		s.mu.Unlock()

		s.notify(Collection, "updated", id)
		return updated, command.Applied
	}
	s.mu.Unlock()
	return model.CalendarEvent{}, command.Rejected(command.ReasonNotFound)
}

func (s *Store) Delete(id string) command.Result {
	s.mu.Lock()
	removed := false
	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if !removed {
		return command.Rejected(command.ReasonNotFound)
	}
	s.notify(Collection, "deleted", id)
	return command.Applied
}

// EventsOn returns the events on an exact date, sorted ascending by
// time-of-day. Zero-padded "HH:MM" strings compare correctly as text.
func (s *Store) EventsOn(date string) []model.CalendarEvent {
	s.mu.Lock()
	var out []model.CalendarEvent
	for _, ev := range s.events {
		if ev.Date == date {
			out = append(out, ev)
		}
	}
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

// EventsInMonth returns the events within a calendar month, inclusive on
// both ends, sorted ascending by (date, time).
func (s *Store) EventsInMonth(year int, month time.Month) []model.CalendarEvent {
	first, last := dateutil.MonthRange(year, month)

	s.mu.Lock()
	var out []model.CalendarEvent
	for _, ev := range s.events {
		if ev.Date >= first && ev.Date <= last {
			out = append(out, ev)
		}
	}
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return dateutil.SortKey(out[i].Date, out[i].Time) < dateutil.SortKey(out[j].Date, out[j].Time)
	})
	return out
}

// NextUpcoming returns the earliest event at or after now. Ties on
// (date, time) resolve to the earliest-inserted event.
func (s *Store) NextUpcoming(now time.Time) (model.CalendarEvent, bool) {
	nowKey := dateutil.SortKey(now.Format(dateutil.DateLayout), now.Format(dateutil.ClockLayout))

	s.mu.Lock()
	sorted := append([]model.CalendarEvent(nil), s.events...)
	s.mu.Unlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		return dateutil.SortKey(sorted[i].Date, sorted[i].Time) < dateutil.SortKey(sorted[j].Date, sorted[j].Time)
	})

	for _, ev := range sorted {
		if dateutil.SortKey(ev.Date, ev.Time) >= nowKey {
			return ev, true
		}
	}
	return model.CalendarEvent{}, false
}
