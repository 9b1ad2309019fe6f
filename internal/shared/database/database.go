package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventbuka/internal/shared/config"
	applogger "eventbuka/pkg/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB bundles the data stores. Redis is nil when the server runs in
// degraded mode without a cache; callers must nil-check before use.
type DB struct {
	PostgreSQL *gorm.DB
	Redis      *redis.Client
	log        *applogger.Logger
}

// InitDB connects Postgres, runs AutoMigrate plus the hand-written
// constraints, then dials Redis. Postgres is required; a Redis failure
// is not fatal and the server keeps running with caching and rate
// limiting disabled.
func InitDB(cfg *config.Config, log *applogger.Logger) (*DB, error) {
	pg, err := openPostgres(cfg)
	if err != nil {
		return nil, err
	}
	if err := Migrate(pg); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	if err := MigrateConstraints(pg); err != nil {
		return nil, fmt.Errorf("apply schema constraints: %w", err)
	}
	log.Info("PostgreSQL connected and migrated")

	rdb, err := openRedis(cfg)
	if err != nil {
		log.Warn("Redis unavailable, continuing without cache", slog.Any("error", err))
		rdb = nil
	} else {
		log.Info("Redis connected")
	}

	return &DB{PostgreSQL: pg, Redis: rdb, log: log}, nil
}

func openPostgres(cfg *config.Config) (*gorm.DB, error) {
	logMode := gormlogger.Silent
	if cfg.IsDevelopment() {
		logMode = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		Logger:      gormlogger.Default.LogMode(logMode),
		NowFunc:     func() time.Time { return time.Now().UTC() },
		PrepareStmt: true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

func openRedis(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,

		PoolSize:     10,
		MinIdleConns: 5,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return rdb, nil
}

// Close releases both connection pools.
func (db *DB) Close() error {
	var errs []error

	if db.PostgreSQL != nil {
		if sqlDB, err := db.PostgreSQL.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close postgres: %w", err))
			}
		}
	}
	if db.Redis != nil {
		if err := db.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("closing databases: %v", errs)
	}
	if db.log != nil {
		db.log.Info("Database connections closed")
	}
	return nil
}

// HealthCheck pings whatever stores are connected. A nil Redis client
// is degraded mode, not a failure.
func (db *DB) HealthCheck(ctx context.Context) error {
	if db.PostgreSQL != nil {
		sqlDB, err := db.PostgreSQL.DB()
		if err != nil {
			return fmt.Errorf("postgres health check: %w", err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return fmt.Errorf("postgres ping: %w", err)
		}
	}

	if db.Redis != nil {
		if err := db.Redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping: %w", err)
		}
	}

	return nil
}

// GetRedis returns the Redis client, nil in degraded mode.
func (db *DB) GetRedis() *redis.Client {
	return db.Redis
}

func (db *DB) GetPostgreSQL() *gorm.DB {
	return db.PostgreSQL
}
