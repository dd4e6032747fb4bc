// Package bootstrap opens the backing stores named by the configuration and
// adapts them to the core ports.
package bootstrap

import (
	"context"
	"database/sql"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/cedarhouse/restaurant-api/internal/core/ports"
	"github.com/cedarhouse/restaurant-api/internal/infrastructure/config"
	"github.com/cedarhouse/restaurant-api/internal/infrastructure/db/mongo"
	"github.com/cedarhouse/restaurant-api/internal/infrastructure/db/postgres"
	"github.com/cedarhouse/restaurant-api/internal/infrastructure/db/redis"
)

// Stores holds open connections. Redis and Mongo are nil when disabled.
type Stores struct {
	DB    *sql.DB
	Redis *goredis.Client
	Mongo *mongodriver.Database

	cfg *config.Config
	log zerolog.Logger
}

// Open connects to PostgreSQL and to every optional store that is configured.
// A configured store that cannot be reached is an error.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Stores, error) {
	s := &Stores{cfg: cfg, log: log}

	db, err := postgres.Connect(ctx, cfg.Postgres.DSN())
	if err != nil {
		return nil, err
	}
	s.DB = db
	log.Info().Str("host", cfg.Postgres.Host).Str("database", cfg.Postgres.Name).Msg("connected to postgres")

	if cfg.Redis.Enabled() {
		rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			s.Close(ctx)
			return nil, err
		}
		s.Redis = rdb
		log.Info().Str("addr", cfg.Redis.Addr).Msg("login throttling enabled")
	} else {
		log.Info().Msg("REDIS_ADDR not set, login throttling disabled")
	}

	if cfg.Mongo.Enabled() {
		mdb, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			s.Close(ctx)
			return nil, err
		}
		s.Mongo = mdb
		if err := mongo.NewAuditRepository(mdb).EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("audit index not created")
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("admin audit trail enabled")
	} else {
		log.Info().Msg("MONGO_URI not set, admin audit trail disabled")
	}

	return s, nil
}

// Throttle returns the Redis login throttle, or nil when Redis is disabled.
func (s *Stores) Throttle() ports.LoginThrottle {
	if s.Redis == nil {
		return nil
	}
	return redis.NewLoginThrottle(s.Redis, s.cfg.Login.MaxAttempts, s.cfg.Login.Lockout)
}

// AuditLog returns the Mongo audit trail, or nil when Mongo is disabled.
func (s *Stores) AuditLog() ports.AuditLog {
	if s.Mongo == nil {
		return nil
	}
	return mongo.NewAuditRepository(s.Mongo)
}

func (s *Stores) Close(ctx context.Context) {
	if s.Mongo != nil {
		if err := s.Mongo.Client().Disconnect(ctx); err != nil {
			s.log.Warn().Err(err).Msg("mongo disconnect")
		}
	}
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			s.log.Warn().Err(err).Msg("redis close")
		}
	}
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			s.log.Warn().Err(err).Msg("postgres close")
		}
	}
}
