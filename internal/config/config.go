package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	Version     string `env:"VERSION" envDefault:"dev"`

	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME" envDefault:"wagerengine"`
	DBMaxConns int    `env:"DB_MAX_CONNS" envDefault:"20"`

	APIKey           string `env:"API_KEY"`        // API key for admin and audit routes
	SessionSecret    string `env:"SESSION_SECRET"` // HMAC key of player session tokens
	SigningSecret    string `env:"SIGNING_SECRET"` // input key for result signatures
	SignatureVersion string `env:"SIGNATURE_VERSION" envDefault:"v1"`

	// TrustedProxies may set X-Forwarded-For for rate limiting
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	WagerConfigPath string        `env:"WAGER_CONFIG_PATH" envDefault:"configs/wager.yaml"`
	TxTimeout       time.Duration `env:"TX_TIMEOUT" envDefault:"5s"`
	VenueCacheSize  int           `env:"VENUE_CACHE_SIZE" envDefault:"256"`
	VenueCacheTTL   time.Duration `env:"VENUE_CACHE_TTL" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Daily counters older than CounterRetention are pruned every HousekeepingInterval
	CounterRetention     time.Duration `env:"COUNTER_RETENTION" envDefault:"720h"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`

	// AutoMigrate applies pending migrations at startup
	AutoMigrate bool `env:"AUTO_MIGRATE" envDefault:"false"`

	// DevMode lifts daily play quotas for local testing
	DevMode bool `env:"DEV_MODE" envDefault:"false"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the process environment without touching .env files
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadForTools reads .env and the environment without enforcing service
// secrets. Maintenance commands only need the database settings.
func LoadForTools() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}
	return cfg, nil
}

// Validate checks the settings the service cannot start without
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf(ErrFmtInvalidPort, c.Port)
	}
	if c.APIKey == "" {
		return errors.New(ErrMsgAPIKeyRequired)
	}
	if len(c.SessionSecret) < MinSecretLength {
		return fmt.Errorf(ErrFmtSecretTooShort, "SESSION_SECRET", MinSecretLength)
	}
	if len(c.SigningSecret) < MinSecretLength {
		return fmt.Errorf(ErrFmtSecretTooShort, "SIGNING_SECRET", MinSecretLength)
	}
	if c.TxTimeout <= 0 || c.ShutdownTimeout <= 0 || c.HousekeepingInterval <= 0 {
		return errors.New(ErrMsgInvalidTimeoutSetting)
	}
	if c.CounterRetention < 0 {
		return errors.New(ErrMsgNegativeRetention)
	}
	if c.DevMode && c.Environment == EnvironmentProduction {
		return errors.New(ErrMsgDevModeInProduction)
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
