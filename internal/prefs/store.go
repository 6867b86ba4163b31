// Package prefs owns the household preferences: partner names, display
// options and the category vocabulary. The other engines read from here
// but never write.
package prefs

import (
	"strings"
	"sync"

	"github.com/mverdier/foyer/internal/model"
)

// Notifier matches ledger.Notifier.
type Notifier func(collection, action, id string)

// Collection is the snapshot key whose blob carries the preferences.
const Collection = "settings"

type Store struct {
	mu     sync.Mutex
	prefs  model.Preferences
	notify Notifier
}

func NewStore(initial model.Preferences, notify Notifier) *Store {
	if notify == nil {
		notify = func(string, string, string) {}
	}
	return &Store{prefs: initial, notify: notify}
}

// Get returns a copy of the preferences.
func (s *Store) Get() model.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

// Name resolves an actor slot to its current display name.
func (s *Store) Name(a model.Actor) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs.Name(a)
}

// Update replaces the preferences. Blank partner names keep their previous
// value so the actor slots always resolve to something.
func (s *Store) Update(p model.Preferences) model.Preferences {
	s.mu.Lock()
	if strings.TrimSpace(p.P1Name) == "" {
		p.P1Name = s.prefs.P1Name
	}
	if strings.TrimSpace(p.P2Name) == "" {
		p.P2Name = s.prefs.P2Name
	}
	s.prefs = p
	updated := s.copyLocked()
	s.mu.Unlock()

	s.notify(Collection, "updated", "preferences")
	return updated
}

// Restore replaces the preferences without notifying, typically at load.
func (s *Store) Restore(p model.Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = p
}

func (s *Store) copyLocked() model.Preferences {
	p := s.prefs
	p.EventCategories = append([]string(nil), s.prefs.EventCategories...)
	if s.prefs.CategoryColors != nil {
		colors := make(map[string]string, len(s.prefs.CategoryColors))
		for k, v := range s.prefs.CategoryColors {
			colors[k] = v
		}
		p.CategoryColors = colors
	}
	return p
}
