package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFilePrefix and LogFileExtension identify session logs when pruning
	LogFilePrefix    = "session_"
	LogFileExtension = ".log"
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingPackSim     = "Starting PackSim"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	LogMsgEnvWarning          = "Environment warning"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized = "Event system initialized"
	LogMsgFailedOpenDeadLetter   = "failed to open dead-letter file"
)

const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
)

// =============================================================================
// Store and Collection
// =============================================================================

const (
	LogMsgStoreReady          = "Collection store ready"
	LogMsgCollectionReady     = "Collection ready"
	LogMsgUsingCatalog        = "Using local creature catalog"
	LogMsgUsingPokeAPI        = "Using PokeAPI creature source"
	ErrMsgFailedOpenStore     = "failed to open collection store"
	ErrMsgFailedCreateCodec   = "failed to create store codec"
	ErrMsgFailedLoadCatalog   = "failed to load creature catalog"
	ErrMsgFailedNewGenerator  = "failed to create reveal generator"
	ErrMsgFailedNewCollection = "failed to create collection"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgDeadLetterCloseFailed      = "Dead-letter file close failed"
	LogMsgStoreCloseFailed           = "Store close failed"
)
