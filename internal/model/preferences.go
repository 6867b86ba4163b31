package model

// Preferences holds household configuration that the engines read but do not
// own: partner names, display options, category and list vocabularies.
type Preferences struct {
	P1Name          string            `json:"p1_name"`
	P2Name          string            `json:"p2_name"`
	Theme           string            `json:"theme"`
	P1Income        float64           `json:"p1_income"`
	P2Income        float64           `json:"p2_income"`
	TargetBudget    float64           `json:"target_budget"`
	Currency        string            `json:"currency"`
	EventCategories []string          `json:"event_categories"`
	CategoryColors  map[string]string `json:"category_colors"`
	EnableDebts     bool              `json:"enable_debts"`
	ShowDebtWarning bool              `json:"show_debt_warning"`
}

// Name returns the display name for an actor slot.
func (p Preferences) Name(a Actor) string {
	if a == ActorP2 {
		return p.P2Name
	}
	return p.P1Name
}
