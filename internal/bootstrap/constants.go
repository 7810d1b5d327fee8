package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept before a new session file is created
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingItemDrop    = "Starting ItemDrop"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventAudit                 = "Domain event"
)

// =============================================================================
// Auth
// =============================================================================

const (
	// DenylistCacheSize bounds the in-process denylist when Redis is not configured
	DenylistCacheSize = 10000

	LogMsgDenylistRedis  = "Token denylist backed by Redis"
	LogMsgDenylistMemory = "Token denylist kept in memory; revocations are lost on restart"
	ErrMsgDenylistInit   = "failed to initialize token denylist: %w"
)

// =============================================================================
// Catalog Seed
// =============================================================================

const (
	LogMsgSeedingCatalog    = "Seeding item catalog..."
	LogMsgCatalogSeeded     = "Item catalog seeded"
	LogMsgCatalogSeedSkip   = "No catalog seed file configured, skipping"
	ErrMsgFailedSeedCatalog = "failed to seed item catalog: %w"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgDenylistCloseFailed  = "Token denylist close failed"
	LogMsgClosingDatabase      = "Closing database pool"
)
