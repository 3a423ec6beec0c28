package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/YogendraNeeladri/CipherStudio/config"
	"github.com/YogendraNeeladri/CipherStudio/internal/projects/repository"
	"github.com/YogendraNeeladri/CipherStudio/internal/projects/service"
)

// Pinger matches the health handler's store probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreHandle bundles an opened project store with its health probe and
// shutdown hook.
type StoreHandle struct {
	Store  service.ProjectStore
	Pinger Pinger
	Close  func()
}

// OpenStore connects the configured store driver and fails fast when the
// store is unreachable; callers treat that as fatal at startup.
func OpenStore(ctx context.Context, cfg config.StoreConfig) (*StoreHandle, error) {
	switch cfg.Driver {
	case config.DriverRedis:
		return openRedis(ctx, cfg)
	case config.DriverPostgres:
		return openPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func openRedis(ctx context.Context, cfg config.StoreConfig) (*StoreHandle, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &StoreHandle{
		Store:  repository.NewRedisStore(client),
		Pinger: redisPinger{client},
		Close:  func() { client.Close() },
	}, nil
}

func openPostgres(ctx context.Context, cfg config.StoreConfig) (*StoreHandle, error) {
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	store := repository.NewPostgresStore(db)
	if err := store.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &StoreHandle{
		Store:  store,
		Pinger: sqlPinger{db},
		Close:  func() { db.Close() },
	}, nil
}

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

type sqlPinger struct {
	db *sql.DB
}

func (p sqlPinger) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}
