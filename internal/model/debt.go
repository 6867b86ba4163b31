package model

// Debt is a directional informal debt between the partners.
// Debts are never netted or auto-cancelled.
type Debt struct {
	ID     string  `json:"id"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}
