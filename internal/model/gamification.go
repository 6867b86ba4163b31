package model

// Actor identifies one of the two partners. The cardinality is fixed: every
// points map holds exactly these two keys.
type Actor string

const (
	ActorP1 Actor = "p1"
	ActorP2 Actor = "p2"
)

// Actors lists both partner slots.
var Actors = [2]Actor{ActorP1, ActorP2}

// GamificationState is the full chore-points-reward state. Points never go
// negative; both history lists are ordered newest-first.
type GamificationState struct {
	Points          map[Actor]int       `json:"points"`
	LastResetDate   string              `json:"last_reset_date"`
	AchievedRewards []AchievedReward    `json:"achieved_rewards"`
	ChoreHistory    []ChoreHistoryEntry `json:"chore_history"`
}
