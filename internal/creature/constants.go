package creature

import "time"

// PokeAPI defaults
const (
	DefaultBaseURL   = "https://pokeapi.co/api/v2"
	DefaultMaxID     = 300
	DefaultTimeout   = 5 * time.Second
	DefaultCacheSize = 512
	DefaultCacheTTL  = 30 * time.Minute

	pokemonPathFormat = "%s/pokemon/%s"
	officialArtwork   = "official-artwork"
)

// CacheSchemaVersion is the current version of the cache schema.
// Increment this when domain.Creature changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// Error context messages for wrapped errors
const (
	ErrContextBuildRequest   = "failed to build creature request"
	ErrContextRequestFailed  = "creature request failed"
	ErrContextUnexpectedCode = "unexpected status code"
	ErrContextDecodeBody     = "failed to decode creature body"
	ErrContextFetchCatalog   = "failed to fetch catalog"
	ErrContextLoadCatalog    = "failed to load catalog"
	ErrContextInvalidCatalog = "invalid catalog"
)

// Log message constants
const (
	LogMsgCreatureCacheHit = "Creature cache hit"
	LogMsgCreatureFetched  = "Creature fetched"
	LogMsgCatalogFetching  = "Fetching remote catalog"
	LogMsgCatalogLoaded    = "Catalog loaded"
	LogMsgCatalogNotOnDisk = "Catalog file not found, using built-in catalog"
)

// Log field keys for structured logging
const (
	LogFieldCreatureID = "creature_id"
	LogFieldName       = "name"
	LogFieldSource     = "source"
	LogFieldEntries    = "entries"
	LogFieldStatus     = "status"
)
