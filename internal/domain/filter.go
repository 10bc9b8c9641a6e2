package domain

// InventoryFilter narrows the inventory view. Zero values mean "no filter".
type InventoryFilter struct {
	Name   string `validate:"omitempty,max=64"`
	Type   string `validate:"omitempty,max=32"`
	Rarity Rarity `validate:"omitempty,oneof=common uncommon rare epic legendary"`
	Shiny  *bool
}

// IsEmpty reports whether the filter matches everything.
func (f InventoryFilter) IsEmpty() bool {
	return f.Name == "" && f.Type == "" && f.Rarity == "" && f.Shiny == nil
}

// InventoryView is a filtered slice of the ledger plus the unfiltered total (N / M).
type InventoryView struct {
	Items []Item `json:"items"`
	Shown int    `json:"shown"`
	Total int    `json:"total"`
}
