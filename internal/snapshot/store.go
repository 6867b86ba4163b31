// Package snapshot persists each engine collection as one opaque blob keyed
// by collection name. The in-memory engines stay the source of truth; a
// failed write warns and moves on.
package snapshot

import (
	"database/sql"
	"fmt"
	"time"
)

// The six persisted collection keys.
const (
	KeySettings  = "settings"
	KeyExpenses  = "expenses"
	KeySavings   = "savings"
	KeyGroceries = "groceries"
	KeyDebts     = "debts"
	KeyEvents    = "events"
)

// Keys lists every persisted collection.
var Keys = []string{KeySettings, KeyExpenses, KeySavings, KeyGroceries, KeyDebts, KeyEvents}

// Store is the blob storage contract: load a collection snapshot or report
// it absent, and save a full replacement.
type Store interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, blob []byte) error
}

// SQLiteStore keeps snapshots in a single key/value table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Load(key string) ([]byte, bool, error) {
	var blob []byte
	err := s.db.QueryRow(`SELECT value FROM snapshots WHERE key = ?`, key).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load snapshot %q: %w", key, err)
	}
	return blob, true, nil
}

func (s *SQLiteStore) Save(key string, blob []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, blob, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save snapshot %q: %w", key, err)
	}
	return nil
}
