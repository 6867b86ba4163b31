package model

import "time"

// Chore is a repeatable task worth a fixed number of points.
type Chore struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Points int    `json:"points"`
}

// ChoreHistoryEntry records one completion. Title and actor name are copied
// at completion time so later renames never rewrite history.
type ChoreHistoryEntry struct {
	ID         string    `json:"id"`
	ChoreID    string    `json:"chore_id"`
	ChoreTitle string    `json:"chore_title"`
	ActorName  string    `json:"actor_name"`
	Points     int       `json:"points"`
	Timestamp  time.Time `json:"timestamp"`
}
