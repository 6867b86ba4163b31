package snapshot

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"go.uber.org/multierr"

	"github.com/mverdier/foyer/internal/calendar"
	"github.com/mverdier/foyer/internal/gamify"
	"github.com/mverdier/foyer/internal/ledger"
	"github.com/mverdier/foyer/internal/model"
	"github.com/mverdier/foyer/internal/prefs"
)

// settingsBlob mirrors the on-disk shape of the settings snapshot: the
// preferences, gamification state, catalogs and list names travel together
// even though separate engines own them in memory.
type settingsBlob struct {
	Preferences  model.Preferences       `json:"preferences"`
	Gamification model.GamificationState `json:"gamification"`
	Chores       []model.Chore           `json:"chores"`
	Rewards      []model.Reward          `json:"rewards"`
	GroceryLists []string                `json:"grocery_lists"`
}

// Persister snapshots the engines into the blob store. Saves triggered by
// mutations are asynchronous and best-effort: a failed write is logged and
// the in-memory state stays authoritative.
type Persister struct {
	store    Store
	ledger   *ledger.Engine
	calendar *calendar.Store
	gamify   *gamify.Engine
	prefs    *prefs.Store
	logger   *slog.Logger

	wg sync.WaitGroup
}

func NewPersister(store Store, led *ledger.Engine, cal *calendar.Store, game *gamify.Engine, pr *prefs.Store, logger *slog.Logger) *Persister {
	return &Persister{
		store:    store,
		ledger:   led,
		calendar: cal,
		gamify:   game,
		prefs:    pr,
		logger:   logger,
	}
}

// CollectionChanged schedules an asynchronous save of one collection.
// Safe to call from the engines' notifier.
func (p *Persister) CollectionChanged(key string) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if err := p.SaveCollection(key); err != nil {
			p.logger.Warn("snapshot save failed, in-memory state unaffected", "key", key, "error", err)
		}
	}()
}

// Wait blocks until all scheduled saves have finished. Used on shutdown and
// in tests.
func (p *Persister) Wait() {
	p.wg.Wait()
}

// SaveCollection serializes one collection and writes it through the store.
func (p *Persister) SaveCollection(key string) error {
	blob, err := p.marshal(key)
	if err != nil {
		return err
	}
	return p.store.Save(key, blob)
}

// SaveAll writes every collection, collecting all failures.
func (p *Persister) SaveAll() error {
	var errs error
	for _, key := range Keys {
		errs = multierr.Append(errs, p.SaveCollection(key))
	}
	return errs
}

func (p *Persister) marshal(key string) ([]byte, error) {
	var v any
	switch key {
	case KeySettings:
		v = settingsBlob{
			Preferences:  p.prefs.Get(),
			Gamification: p.gamify.State(),
			Chores:       p.gamify.Chores(),
			Rewards:      p.gamify.Rewards(),
			GroceryLists: p.ledger.Lists(),
		}
	case KeyExpenses:
		v = p.ledger.Expenses()
	case KeySavings:
		v = p.ledger.Savings()
	case KeyGroceries:
		v = p.ledger.Groceries()
	case KeyDebts:
		v = p.ledger.Debts()
	case KeyEvents:
		v = p.calendar.Events()
	default:
		return nil, fmt.Errorf("unknown snapshot key %q", key)
	}

	blob, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal %q: %w", key, err)
	}
	return blob, nil
}

// LoadAll restores every stored collection into the engines. Absent keys
// leave the seeded state untouched, so a fresh database keeps its defaults.
func (p *Persister) LoadAll() error {
	var expenses []model.Expense
	var savings []model.SavingGoal
	var groceries []model.GroceryItem
	var debts []model.Debt
	lists := p.ledger.Lists()
	ledgerLoaded := false

	if ok, err := p.load(KeyExpenses, &expenses); err != nil {
		return err
	} else if ok {
		ledgerLoaded = true
	} else {
		expenses = p.ledger.Expenses()
	}
	if ok, err := p.load(KeySavings, &savings); err != nil {
		return err
	} else if ok {
		ledgerLoaded = true
	} else {
		savings = p.ledger.Savings()
	}
	if ok, err := p.load(KeyGroceries, &groceries); err != nil {
		return err
	} else if ok {
		ledgerLoaded = true
	} else {
		groceries = p.ledger.Groceries()
	}
	if ok, err := p.load(KeyDebts, &debts); err != nil {
		return err
	} else if ok {
		ledgerLoaded = true
	} else {
		debts = p.ledger.Debts()
	}

	var settings settingsBlob
	if ok, err := p.load(KeySettings, &settings); err != nil {
		return err
	} else if ok {
		p.prefs.Restore(settings.Preferences)
		p.gamify.Restore(settings.Gamification, settings.Chores, settings.Rewards)
		lists = settings.GroceryLists
		ledgerLoaded = true
	}

	if ledgerLoaded {
		p.ledger.Restore(expenses, debts, savings, groceries, lists)
	}

	var events []model.CalendarEvent
	if ok, err := p.load(KeyEvents, &events); err != nil {
		return err
	} else if ok {
		p.calendar.Restore(events)
	}

	return nil
}

func (p *Persister) load(key string, v any) (bool, error) {
	blob, ok, err := p.store.Load(key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(blob, v); err != nil {
		return false, fmt.Errorf("unmarshal %q: %w", key, err)
	}
	return true, nil
}
