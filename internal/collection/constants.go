package collection

// ==================== Error Messages ====================

const (
	ErrMsgEncodeStateFailed = "failed to encode collection state"
	ErrMsgRevealFailed      = "failed to reveal pack"
	ErrMsgLookupFailed      = "failed to look up creature"
)

// ==================== Log Messages ====================

const (
	LogMsgStateLoaded        = "Collection loaded"
	LogMsgStateAbsent        = "No saved collection, starting empty"
	LogMsgStateCorrupt       = "Saved collection is unreadable, starting empty"
	LogMsgStatsRecomputed    = "No saved stats, recomputed from collection"
	LogMsgPackOpened         = "Pack opened"
	LogMsgPurchaseRejected   = "Pack purchase rejected"
	LogMsgPersistFailed      = "Failed to persist collection, rolled back"
	LogMsgRestoreStoreFailed = "Failed to restore previous state in store"
	LogMsgItemSold           = "Item sold"
	LogMsgSellUnknownItem    = "Sell ignored, no such item"
	LogMsgDuplicatesSold     = "Duplicates sold"
	LogMsgEventPublishFailed = "Failed to publish collection event"
	LogMsgCollectionReset    = "Collection reset"
)

// ==================== Log Fields ====================

const (
	LogFieldItemID    = "item_id"
	LogFieldItemName  = "item_name"
	LogFieldVariant   = "variant"
	LogFieldItems     = "items"
	LogFieldRevealed  = "revealed"
	LogFieldRareCount = "rare_count"
	LogFieldCoins     = "coins"
	LogFieldValue     = "value"
	LogFieldKey       = "key"
	LogFieldError     = "error"
)
