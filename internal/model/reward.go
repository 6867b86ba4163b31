package model

import "time"

// Reward is a privilege unlockable once a partner's balance reaches Threshold.
type Reward struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Threshold int    `json:"threshold"`
}

// AchievedReward records a claimed reward. The title and winner name are
// copied at claim time; dismissing an achievement never touches points.
type AchievedReward struct {
	ID          string    `json:"id"`
	RewardTitle string    `json:"reward_title"`
	WinnerName  string    `json:"winner_name"`
	Timestamp   time.Time `json:"timestamp"`
}
