package logger

// Level names accepted by Config.Level
const (
	LevelDebug   = "debug"
	LevelInfo    = "info"
	LevelWarn    = "warn"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Format names accepted by Config.Format
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Attribute keys added to every record or scoped through a context
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyVariant     = "variant"
	AttrKeyRequestID   = "request_id"
)
