package model

// Expense is a shared expense split between the two partners.
// The two amounts are independent shares; nothing ties them to a total.
type Expense struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	AmountP1 float64 `json:"amount_p1"`
	AmountP2 float64 `json:"amount_p2"`
	Settled  bool    `json:"settled"`
	Category string  `json:"category"`
}
