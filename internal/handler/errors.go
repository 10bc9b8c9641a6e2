package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidRequestFormat  = "Invalid request format"

	// Query parameter error messages
	ErrMsgMissingPathParam = "Missing %s path parameter"
	ErrMsgInvalidQuery     = "Invalid query parameter %s"

	// Collection operation error messages
	ErrMsgOpenPackFailed      = "Failed to open pack"
	ErrMsgGetInventoryFailed  = "Failed to get inventory"
	ErrMsgSellItemFailed      = "Failed to sell item"
	ErrMsgSellDuplicateFailed = "Failed to sell duplicates"
	ErrMsgGetCreatureFailed   = "Failed to get creature"
)

// Success messages for API responses
const (
	MsgItemSold          = "Item sold"
	MsgItemNotOwned      = "Item not in collection"
	MsgDuplicatesSold    = "Duplicates sold"
	MsgNoDuplicates      = "No duplicates to sell"
	MsgAmazingPull       = "Amazing pull!"
	MsgPackOpened        = "Pack opened"
	MsgPartialPackOpened = "Pack opened with missing cards"
)

// Log messages
const (
	LogMsgRequestDecodeFailed = "Failed to decode request"
	LogMsgRequestDecoded      = "Request decoded"
	LogMsgInvalidRequest      = "Invalid request"
	LogMsgServiceError        = "Service error"
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteFailed         = "Failed to write response buffer"
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgPackOpened          = "Pack opened"
	LogMsgItemSold            = "Item sold"
	LogMsgDuplicatesSold      = "Duplicates sold"
)

// Query parameter names
const (
	QueryParamName   = "name"
	QueryParamType   = "type"
	QueryParamRarity = "rarity"
	QueryParamShiny  = "shiny"
	PathParamName    = "name"
)
