package domain

// PackResult is the outcome of one pack purchase.
type PackResult struct {
	Items     []Item    `json:"items"`
	Requested int       `json:"requested"`
	RareCount int       `json:"rare_count"` // rare or shiny items in this pack
	CoinsPaid int       `json:"coins_paid"`
	Stats     UserStats `json:"stats"`
}

// AmazingPull reports whether the pack deserves the rare-pull banner.
func (r PackResult) AmazingPull() bool {
	return r.RareCount > 0
}

// SellResult is the outcome of a sell or sell-all-duplicates action.
// Selling an unknown id is not an error: Sold is false and nothing changes.
type SellResult struct {
	Sold   bool      `json:"sold"`
	Copies int       `json:"copies"`
	Value  int       `json:"value"`
	Stats  UserStats `json:"stats"`
}

// TypeBadge is one entry of the type colour table.
type TypeBadge struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Owned bool   `json:"owned"` // at least one owned item carries the type
}
