package bootstrap

import "time"

// =============================================================================
// Lifecycle
// =============================================================================

const (
	// ShutdownTimeout bounds the whole graceful shutdown sequence
	ShutdownTimeout = 15 * time.Second

	// MigrationTimeout bounds schema migration at startup
	MigrationTimeout = 30 * time.Second
)

// Environments that enable source locations in log records
var devEnvironments = []string{"dev", "development", "local"}

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting UrbanPark"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
)

// Log messages for component wiring
const (
	LogMsgDatabaseConnected = "Database connected"
	LogMsgMigrationsApplied = "Migrations applied"
	LogMsgRelayEnabled      = "Cross-instance relay enabled"
	LogMsgRelayDisabled     = "Cross-instance relay disabled, REDIS_ADDR not set"
)

// Error messages for component wiring
const (
	ErrMsgConnectDatabase = "failed to connect to database"
	ErrMsgMigrate         = "failed to apply migrations"
	ErrMsgConnectRedis    = "failed to connect to redis"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingObservers     = "Closing observer streams..."
	LogMsgStoppingWorkers      = "Stopping publish workers..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgRedisCloseFailed     = "Redis client close failed"
)
