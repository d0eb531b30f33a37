package config

// Store backends
const (
	StoreBackendMemory   = "memory"
	StoreBackendPostgres = "postgres"
)

// Database pool lifetimes
const (
	DBMaxConnIdleMinutes = 5
	DBMaxConnLifeMinutes = 30
)

const (
	ErrMsgPostgresNeedsDB = "postgres backend requires DB_HOST and DB_NAME"
)
