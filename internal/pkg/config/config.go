package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	EnvDevelopment = "development"

	StorageMemory = "memory"
	StorageMongo  = "mongo"

	devSessionSecret = "dev-only-session-secret"
)

type Config struct {
	Port            string        `env:"PORT,             default=8080"`
	Env             string        `env:"ENV,              default=development"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	StorageDriver   string        `env:"STORAGE_DRIVER,   default=memory"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Session SessionConfig
	Booking BookingConfig
	Contact ContactConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	Secret        string        `env:"SESSION_SECRET"`
	TTL           time.Duration `env:"SESSION_TTL,     default=24h"`
	CookieName    string        `env:"SESSION_COOKIE,  default=tourism_session"`
	SecureCookies bool          `env:"SECURE_COOKIES,  default=false"`
	CSRFEnabled   bool          `env:"CSRF_ENABLED,    default=true"`
	BcryptCost    int           `env:"BCRYPT_COST,     default=10"`
}

type BookingConfig struct {
	RequireLogin bool `env:"BOOKING_REQUIRE_LOGIN, default=false"`
}

type ContactConfig struct {
	Workers int `env:"CONTACT_WORKERS, default=4"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=tourism"`
}

// RedisConfig leaves Addr empty by default; without it the site falls back
// to in-process revocation and log delivery of contact messages.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through lookuper and validates it.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Session.Secret == "" && cfg.IsDevelopment() {
		cfg.Session.Secret = devSessionSecret
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsDevelopment reports whether the site runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// UseRedis reports whether a Redis server is configured.
func (c *Config) UseRedis() bool {
	return c.Redis.Addr != ""
}

// Validate checks cross-field constraints envconfig cannot express.
func (c *Config) Validate() error {
	var errs []error
	if c.Session.Secret == "" {
		errs = append(errs, errors.New("SESSION_SECRET is required outside development"))
	}
	if c.Session.TTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	switch c.StorageDriver {
	case StorageMemory, StorageMongo:
	default:
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageMemory, StorageMongo, c.StorageDriver))
	}
	if c.Contact.Workers <= 0 {
		errs = append(errs, errors.New("CONTACT_WORKERS must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
