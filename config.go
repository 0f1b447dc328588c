package claimflow

import (
	"fmt"
	"time"
)

// StoreBackend selects the ClaimStore implementation
type StoreBackend string

const (
	StoreBackendMemory   StoreBackend = "memory"
	StoreBackendDynamoDB StoreBackend = "dynamodb"
	StoreBackendSQLite   StoreBackend = "sqlite"
	StoreBackendRedis    StoreBackend = "redis"
)

// IdentityFormat selects the IdentityValidator implementation
type IdentityFormat string

const (
	IdentityFormatPlain  IdentityFormat = "plain"
	IdentityFormatBase58 IdentityFormat = "base58"
)

// Config holds service-level configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server" yaml:"server"`
	Store     StoreConfig     `mapstructure:"store" yaml:"store"`
	Identity  IdentityConfig  `mapstructure:"identity" yaml:"identity"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" yaml:"rate_limit"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
}

// ServerConfig holds HTTP dispatcher settings
type ServerConfig struct {
	Address         string        `mapstructure:"address" yaml:"address"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	MetricsEnabled  bool          `mapstructure:"metrics_enabled" yaml:"metrics_enabled"`
}

// StoreConfig holds claim store settings
type StoreConfig struct {
	Backend StoreBackend `mapstructure:"backend" yaml:"backend"`

	// DynamoDB
	TableName string `mapstructure:"table_name" yaml:"table_name"`
	Region    string `mapstructure:"region" yaml:"region"`
	Endpoint  string `mapstructure:"endpoint" yaml:"endpoint"`

	// SQLite
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`

	// Redis
	RedisAddr   string `mapstructure:"redis_addr" yaml:"redis_addr"`
	RedisDB     int    `mapstructure:"redis_db" yaml:"redis_db"`
	RedisPrefix string `mapstructure:"redis_prefix" yaml:"redis_prefix"`
}

// IdentityConfig holds identity validation settings
type IdentityConfig struct {
	Format      IdentityFormat `mapstructure:"format" yaml:"format"`
	Prefix      string         `mapstructure:"prefix" yaml:"prefix"`
	PayloadSize int            `mapstructure:"payload_size" yaml:"payload_size"`
	CacheTTL    time.Duration  `mapstructure:"cache_ttl" yaml:"cache_ttl"`
}

// RateLimitConfig holds the per-sender limiter settings. RPS <= 0 disables it.
type RateLimitConfig struct {
	RPS     float64       `mapstructure:"rps" yaml:"rps"`
	Burst   int           `mapstructure:"burst" yaml:"burst"`
	IdleTTL time.Duration `mapstructure:"idle_ttl" yaml:"idle_ttl"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Pretty bool   `mapstructure:"pretty" yaml:"pretty"`
}

// DefaultConfig provides sensible defaults
var DefaultConfig = Config{
	Server: ServerConfig{
		Address:         ":3000",
		ShutdownTimeout: 5 * time.Second,
		MetricsEnabled:  true,
	},
	Store: StoreConfig{
		Backend:     StoreBackendMemory,
		TableName:   "claimflow",
		SQLitePath:  "claimflow.db",
		RedisAddr:   "localhost:6379",
		RedisPrefix: "claimflow:",
	},
	Identity: IdentityConfig{
		Format:      IdentityFormatPlain,
		Prefix:      "clm1",
		PayloadSize: 32,
		CacheTTL:    5 * time.Minute,
	},
	RateLimit: RateLimitConfig{
		RPS:     10,
		Burst:   20,
		IdleTTL: 10 * time.Minute,
	},
	Log: LogConfig{
		Level:  "info",
		Pretty: true,
	},
}

// Validate checks that the configuration selects known implementations and
// carries the fields they need
func (c Config) Validate() error {
	switch c.Store.Backend {
	case StoreBackendMemory:
	case StoreBackendDynamoDB:
		if c.Store.TableName == "" {
			return fmt.Errorf("store.table_name is required for the %s backend", c.Store.Backend)
		}
	case StoreBackendSQLite:
		if c.Store.SQLitePath == "" {
			return fmt.Errorf("store.sqlite_path is required for the %s backend", c.Store.Backend)
		}
	case StoreBackendRedis:
		if c.Store.RedisAddr == "" {
			return fmt.Errorf("store.redis_addr is required for the %s backend", c.Store.Backend)
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	switch c.Identity.Format {
	case IdentityFormatPlain:
	case IdentityFormatBase58:
		if c.Identity.PayloadSize <= 0 {
			return fmt.Errorf("identity.payload_size must be positive, got %d", c.Identity.PayloadSize)
		}
	default:
		return fmt.Errorf("unknown identity format %q", c.Identity.Format)
	}

	if c.Server.Address == "" {
		return fmt.Errorf("server.address is required")
	}

	return nil
}
