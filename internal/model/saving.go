package model

// SavingGoal tracks progress toward a savings target.
// Current always stays within [0, Target]; adjustments are clamped.
type SavingGoal struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Target   float64 `json:"target"`
	Current  float64 `json:"current"`
	Deadline *string `json:"deadline,omitempty"`
}
