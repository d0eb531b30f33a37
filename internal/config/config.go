package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"craft-panel" validate:"required"`
	Version     string `env:"VERSION" envDefault:"dev"`

	APIKey         string   `env:"API_KEY"`
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	StoreBackend string `env:"STORE_BACKEND" envDefault:"memory" validate:"oneof=memory postgres"`
	DBUser       string `env:"DB_USER" envDefault:"postgres"`
	DBPassword   string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost       string `env:"DB_HOST" envDefault:"localhost"`
	DBPort       string `env:"DB_PORT" envDefault:"5432"`
	DBName       string `env:"DB_NAME" envDefault:"craftpanel"`
	DBMaxConns   int    `env:"DB_MAX_CONNS" envDefault:"10" validate:"min=1"`

	PanelsDir    string `env:"PANELS_DIR" envDefault:"configs/panels" validate:"required"`
	SeedFile     string `env:"SEED_FILE"`
	QuantityPath string `env:"QUANTITY_PATH" envDefault:"system.quantity" validate:"required"`

	UnlockCacheSize int           `env:"UNLOCK_CACHE_SIZE" envDefault:"1024" validate:"min=1"`
	UnlockCacheTTL  time.Duration `env:"UNLOCK_CACHE_TTL" envDefault:"5m"`
	RandomSeed      int64         `env:"RANDOM_SEED" envDefault:"0"`

	WorkerCount          int           `env:"WORKER_COUNT" envDefault:"2" validate:"min=1,max=64"`
	AuditRetentionDays   int           `env:"AUDIT_RETENTION_DAYS" envDefault:"30" validate:"min=1"`
	AuditCleanupInterval time.Duration `env:"AUDIT_CLEANUP_INTERVAL" envDefault:"1h"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.StoreBackend == StoreBackendPostgres && (c.DBHost == "" || c.DBName == "") {
		return fmt.Errorf("invalid configuration: %s", ErrMsgPostgresNeedsDB)
	}
	return nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
