package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/osse101/UrbanPark_Go/internal/auth"
	"github.com/osse101/UrbanPark_Go/internal/concurrency"
	"github.com/osse101/UrbanPark_Go/internal/config"
	"github.com/osse101/UrbanPark_Go/internal/database"
	"github.com/osse101/UrbanPark_Go/internal/database/postgres"
	"github.com/osse101/UrbanPark_Go/internal/inventory"
	"github.com/osse101/UrbanPark_Go/internal/relay"
	"github.com/osse101/UrbanPark_Go/internal/repository"
	"github.com/osse101/UrbanPark_Go/internal/server"
	"github.com/osse101/UrbanPark_Go/internal/snapshot"
	"github.com/osse101/UrbanPark_Go/internal/sse"
	"github.com/osse101/UrbanPark_Go/internal/worker"
)

// Components holds every long-lived part of the running service. Relay and
// RedisClient are nil when no Redis address is configured.
type Components struct {
	DBPool      *pgxpool.Pool
	Hub         *sse.Hub
	Workers     *worker.Pool
	Publisher   *snapshot.Publisher
	Inventory   inventory.Service
	Server      *server.Server
	Relay       *relay.Relay
	RedisClient redis.UniversalClient
}

// Build connects to the store, applies migrations and wires the service.
// The hub and worker pool are started; the server and relay are not.
func Build(ctx context.Context, cfg *config.Config) (*Components, error) {
	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgConnectDatabase, err)
	}
	slog.Info(LogMsgDatabaseConnected, "host", cfg.DBHost, "db", cfg.DBName)

	migrateCtx, cancel := context.WithTimeout(ctx, MigrationTimeout)
	defer cancel()
	if err := database.Migrate(migrateCtx, dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgMigrate, err)
	}
	slog.Info(LogMsgMigrationsApplied)

	c := &Components{DBPool: dbPool}
	c.wire(cfg, postgres.NewLedgerRepository(dbPool))

	if cfg.RedisAddr == "" {
		slog.Info(LogMsgRelayDisabled)
	} else {
		client, err := relay.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			c.Hub.Stop()
			c.Workers.Stop()
			dbPool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgConnectRedis, err)
		}
		c.attachRelay(client, cfg.RedisChannel)
		slog.Info(LogMsgRelayEnabled, "addr", cfg.RedisAddr, "channel", cfg.RedisChannel, "instance_id", c.Relay.InstanceID())
	}

	return c, nil
}

// wire builds the in-process pipeline on top of a ledger:
// inventory mutations -> publisher -> worker pool -> hub -> observers.
func (c *Components) wire(cfg *config.Config, ledger repository.Ledger) {
	c.Hub = sse.NewHub()
	c.Hub.Start()

	c.Workers = worker.NewPool(cfg.PublishWorkers, cfg.PublishQueueSize)
	c.Workers.Start()

	c.Publisher = snapshot.NewPublisher(ledger, c.Hub, c.Workers, snapshot.DefaultReadTimeout)
	c.Inventory = inventory.NewService(ledger, concurrency.NewLockManager(), c.Publisher, cfg.StoreTimeout)

	authenticator := auth.NewJWTAuthenticator(cfg.JWTSecret, auth.DefaultCacheSize, auth.DefaultCacheTTL)

	c.Server = server.NewServer(server.Config{
		Port:           cfg.Port,
		TrustedProxies: cfg.TrustedProxies,
		AllowedOrigins: cfg.AllowedOrigins,
	}, server.Dependencies{
		DBPool:        c.DBPool,
		Inventory:     c.Inventory,
		Authenticator: authenticator,
		Hub:           c.Hub,
		Welcomer:      c.Publisher,
	})
}

// attachRelay connects the publisher to other instances in both directions
func (c *Components) attachRelay(client redis.UniversalClient, channel string) {
	c.RedisClient = client
	c.Relay = relay.New(client, channel, c.Publisher)
	c.Publisher.SetNotifier(c.Relay)
}
