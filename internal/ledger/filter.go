package ledger

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/PackSim_Go/internal/domain"
)

// nameKey folds a display name into its duplicate-grouping key.
func nameKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// View returns the entries matching f together with the unfiltered total.
// Entries merged within the flash window carry JustDuplicated.
func (l *Ledger) View(f domain.InventoryFilter) domain.InventoryView {
	fold := cases.Fold()
	query := fold.String(strings.TrimSpace(f.Name))
	typ := strings.TrimSpace(f.Type)

	items := make([]domain.Item, 0, len(l.items))
	for _, it := range l.items {
		if query != "" && !strings.Contains(fold.String(it.Name), query) {
			continue
		}
		if typ != "" && !it.HasType(typ) {
			continue
		}
		if f.Rarity != "" && it.Rarity != f.Rarity {
			continue
		}
		if f.Shiny != nil && it.Shiny != *f.Shiny {
			continue
		}
		it.JustDuplicated = l.IsJustDuplicated(it.ID)
		items = append(items, it)
	}

	return domain.InventoryView{
		Items: items,
		Shown: len(items),
		Total: len(l.items),
	}
}

// Types returns the distinct type tags present in the ledger, in first-seen order.
func (l *Ledger) Types() []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range l.items {
		for _, t := range it.Types {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}
