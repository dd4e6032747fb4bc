// Package config loads process configuration from the environment.
package config

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string   `env:"PORT, default=5000"`
	Env         string   `env:"ENV, default=development"`
	LogLevel    string   `env:"LOG_LEVEL, default=info"`
	JWTSecret   string   `env:"JWT_SECRET, required"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS, default=*"`

	Postgres PostgresConfig
	Redis    RedisConfig
	Mongo    MongoConfig
	Login    LoginConfig
}

// PostgresConfig describes the relational store. URL, when set, wins over
// the individual fields.
type PostgresConfig struct {
	URL      string `env:"DATABASE_URL"`
	Host     string `env:"DB_HOST, default=localhost"`
	Port     string `env:"DB_PORT, default=5432"`
	User     string `env:"DB_USER, default=postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME, default=restaurant"`
	SSLMode  string `env:"DB_SSLMODE, default=disable"`
}

// RedisConfig enables login throttling when Addr is non-empty.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

// MongoConfig enables the audit trail when URI is non-empty.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=restaurant"`
}

type LoginConfig struct {
	MaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS, default=5"`
	Lockout     time.Duration `env:"LOGIN_LOCKOUT, default=15m"`
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Login.MaxAttempts <= 0 {
		return nil, fmt.Errorf("load config: LOGIN_MAX_ATTEMPTS must be positive")
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool { return c.Env == "development" }

func (c *Config) Addr() string { return ":" + c.Port }

// DSN returns the PostgreSQL connection URL.
func (p PostgresConfig) DSN() string {
	if p.URL != "" {
		return p.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     net.JoinHostPort(p.Host, p.Port),
		Path:     "/" + p.Name,
		RawQuery: url.Values{"sslmode": []string{p.SSLMode}}.Encode(),
	}
	if p.Password == "" {
		u.User = url.User(p.User)
	}
	return u.String()
}

func (r RedisConfig) Enabled() bool { return r.Addr != "" }

func (m MongoConfig) Enabled() bool { return m.URI != "" }
