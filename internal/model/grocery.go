package model

// GroceryItem is a line on one of the named grocery lists.
type GroceryItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Unit      string  `json:"unit"`
	Bought    bool    `json:"bought"`
	ListName  string  `json:"list_name"`
}

// LineTotal returns unit price times quantity.
func (g GroceryItem) LineTotal() float64 {
	return g.UnitPrice * float64(g.Quantity)
}
