package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Pack errors
	ErrMsgInvalidPackSize = "invalid pack size"
	ErrMsgEmptyCatalog    = "catalog is empty"

	// Creature source errors
	ErrMsgCreatureNotFound   = "creature not found"
	ErrMsgSourceUnavailable  = "creature source unavailable"
	ErrMsgMalformedCreature  = "malformed creature response"
	ErrMsgUnsupportedVariant = "unsupported variant"
	ErrMsgUnsupportedPolicy  = "unsupported rarity policy"
	ErrMsgUnsupportedBackend = "unsupported store backend"
	ErrMsgUnsupportedCodec   = "unsupported store codec"

	// Storage errors
	ErrMsgKeyNotFound = "key not found"
	ErrMsgStoreWrite  = "failed to persist collection"

	// Input errors
	ErrMsgInvalidInput  = "invalid input"
	ErrMsgInvalidRarity = "invalid rarity"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	ErrInvalidPackSize = errors.New(ErrMsgInvalidPackSize)
	ErrEmptyCatalog    = errors.New(ErrMsgEmptyCatalog)

	ErrCreatureNotFound  = errors.New(ErrMsgCreatureNotFound)
	ErrSourceUnavailable = errors.New(ErrMsgSourceUnavailable)
	ErrMalformedCreature = errors.New(ErrMsgMalformedCreature)

	ErrUnsupportedVariant = errors.New(ErrMsgUnsupportedVariant)
	ErrUnsupportedPolicy  = errors.New(ErrMsgUnsupportedPolicy)
	ErrUnsupportedBackend = errors.New(ErrMsgUnsupportedBackend)
	ErrUnsupportedCodec   = errors.New(ErrMsgUnsupportedCodec)

	ErrKeyNotFound = errors.New(ErrMsgKeyNotFound)
	ErrStoreWrite  = errors.New(ErrMsgStoreWrite)

	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)
	ErrInvalidRarity = errors.New(ErrMsgInvalidRarity)
)
