package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.sold")
const (
	// EventTypePackOpened is published after a pack purchase has been revealed and recorded
	EventTypePackOpened = "pack.opened"

	// EventTypeItemRevealed is published once per item added to the ledger
	EventTypeItemRevealed = "item.revealed"

	// EventTypeItemDuplicated is published when a reveal merged into an existing entry
	EventTypeItemDuplicated = "item.duplicated"

	// EventTypeItemSold is published when a ledger entry (or surplus copies) is sold
	EventTypeItemSold = "item.sold"

	// EventTypeRevealFailed is published when a unit of a pack could not be fetched
	EventTypeRevealFailed = "reveal.failed"
)

// PackOpenedPayload is the event payload for pack.opened events
type PackOpenedPayload struct {
	Requested  int   `json:"requested"`
	Revealed   int   `json:"revealed"`
	RareCount  int   `json:"rare_count"`
	CoinsSpent int   `json:"coins_spent"`
	CoinsLeft  int   `json:"coins_left"`
	Timestamp  int64 `json:"timestamp"`
}

// ItemRevealedPayload is the event payload for item.revealed and item.duplicated events
type ItemRevealedPayload struct {
	Item       Item  `json:"item"`
	Duplicated bool  `json:"duplicated"`
	Timestamp  int64 `json:"timestamp"`
}

// ItemSoldPayload is the event payload for item.sold events
type ItemSoldPayload struct {
	ItemID     string `json:"item_id"`
	ItemName   string `json:"item_name"`
	Quantity   int    `json:"quantity"`
	TotalValue int    `json:"total_value"`
	WasRare    bool   `json:"was_rare"`
	Timestamp  int64  `json:"timestamp"`
}

// RevealFailedPayload is the event payload for reveal.failed events
type RevealFailedPayload struct {
	CreatureID int    `json:"creature_id"`
	Reason     string `json:"reason"`
	Timestamp  int64  `json:"timestamp"`
}
