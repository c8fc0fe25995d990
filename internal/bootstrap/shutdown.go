package bootstrap

import (
	"context"
	"log/slog"
)

// GracefulShutdown stops the service in dependency order:
// 1. Observer hub (ends SSE and WebSocket streams so the server can drain)
// 2. HTTP server (stop accepting new requests, finish in-flight ones)
// 3. Publish workers (finish running publications, discard queued ones)
// 4. Redis client and database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
// The relay subscription ends with the context passed to its Run.
func GracefulShutdown(ctx context.Context, c *Components) {
	slog.Info(LogMsgClosingObservers)
	if c.Hub != nil {
		c.Hub.Stop()
	}

	slog.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgStoppingWorkers)
	if c.Workers != nil {
		c.Workers.Stop()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			slog.Error(LogMsgRedisCloseFailed, "error", err)
		}
	}

	if c.DBPool != nil {
		c.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
