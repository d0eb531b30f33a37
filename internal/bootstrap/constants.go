package bootstrap

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingCraftPanel  = "Starting CraftPanel"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// Log and error messages for store initialization
const (
	LogMsgStoreInitialized = "Store initialized"
	LogMsgSeedLoaded       = "Seed data loaded"

	ErrMsgFailedLoadSeed   = "failed to load seed file"
	ErrMsgFailedConnectDB  = "failed to connect to database"
	ErrMsgFailedMigrate    = "failed to apply migrations"
	ErrMsgFailedApplySeed  = "failed to apply seed data"
	ErrMsgUnknownBackend   = "unknown store backend"
	ErrMsgFailedLoadPanels = "failed to load panels"
)

// Log and error messages for event handler registration
const (
	LogMsgEventSystemInitialized = "Event system initialized"
	ErrMsgFailedRegisterMetrics  = "failed to register metrics collector"
	ErrMsgFailedSubscribeAudit   = "failed to subscribe audit logger"
)

// Log messages for background jobs
const (
	LogMsgBackgroundJobsStarted = "Background jobs started"
	WorkerQueueSize             = 16
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSessionsClosed       = "Open sessions closed"
)
