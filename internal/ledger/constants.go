package ledger

// Policy selects how a reveal is reconciled against owned items.
type Policy string

const (
	// PolicyMerge folds a reveal into the entry with the same catalog id.
	PolicyMerge Policy = "merge"
	// PolicyAppend always appends a new entry under a freshly synthesized id.
	PolicyAppend Policy = "append"
)
