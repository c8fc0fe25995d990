package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/UrbanPark_Go/internal/testing/leaktest"
)

var (
	testDBConnString string
)

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()

	if !testing.Short() {
		ctx := context.Background()
		var connStr string
		connStr, terminate = setupContainer(ctx)
		testDBConnString = connStr
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}

	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	// Handle potential panics from testcontainers
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

// migratedPool opens a pool of maxConns against the test container and applies
// the schema, skipping when no database is available
func migratedPool(t *testing.T, maxConns int) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	pool, err := NewPool(testDBConnString, maxConns, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, Migrate(context.Background(), pool))
	return pool
}

func TestNewPool_RejectsBadConnString(t *testing.T) {
	_, err := NewPool("postgres://u:p@localhost:5432/parking?pool_max_conns=lots", 5, time.Minute, time.Hour)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

func TestNewPool_MinConnsNeverExceedMax(t *testing.T) {
	pool := migratedPool(t, 1)

	assert.Equal(t, int32(1), pool.Config().MaxConns)
	assert.Equal(t, int32(1), pool.Config().MinConns)
}

// TestPool_ContendedBookingsReleaseConnections runs more concurrent claims than
// the pool has connections against one migrated spot row and checks every
// connection comes back and the schema bounds hold.
func TestPool_ContendedBookingsReleaseConnections(t *testing.T) {
	pool := migratedPool(t, 4)
	ctx := context.Background()
	checker := leaktest.NewGoroutineChecker(t)

	var spotID string
	err := pool.QueryRow(ctx, `INSERT INTO spots (spot_id, name, latitude, longitude, total_capacity, available_count)
		VALUES (gen_random_uuid(), 'Pool contention', 0, 0, 5, 5)
		RETURNING spot_id::text`).Scan(&spotID)
	require.NoError(t, err)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		claimed int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tag, err := pool.Exec(ctx, `UPDATE spots SET available_count = available_count - 1
				WHERE spot_id = $1 AND available_count > 0`, spotID)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			claimed += int(tag.RowsAffected())
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, claimed, "only the spot's capacity can be claimed")

	var available int
	require.NoError(t, pool.QueryRow(ctx, `SELECT available_count FROM spots WHERE spot_id = $1`, spotID).Scan(&available))
	assert.Zero(t, available)
	assert.Equal(t, int32(0), pool.Stat().AcquiredConns(), "All connections should be released")

	checker.Check(2)
}

// TestMigrate applies the embedded migrations twice and checks the schema constraints
func TestMigrate(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	pool, err := NewPool(testDBConnString, 5, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	ctx := context.Background()

	require.NoError(t, Migrate(ctx, pool))
	require.NoError(t, Migrate(ctx, pool), "Migrate should be idempotent")

	var version int64
	require.NoError(t, pool.QueryRow(ctx, `SELECT MAX(version_id) FROM goose_db_version`).Scan(&version))
	assert.Equal(t, int64(2), version)

	var tables int
	err = pool.QueryRow(ctx, `SELECT COUNT(*) FROM information_schema.tables
		WHERE table_name IN ('spots', 'bookings')`).Scan(&tables)
	require.NoError(t, err)
	assert.Equal(t, 2, tables)

	t.Run("rejects available above total", func(t *testing.T) {
		_, err := pool.Exec(ctx, `INSERT INTO spots (spot_id, name, latitude, longitude, total_capacity, available_count)
			VALUES (gen_random_uuid(), 'bad', 0, 0, 1, 2)`)
		assert.Error(t, err)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := pool.Exec(ctx, `INSERT INTO spots (spot_id, name, latitude, longitude, total_capacity, available_count, status)
			VALUES (gen_random_uuid(), 'bad', 0, 0, 1, 1, 'closed')`)
		assert.Error(t, err)
	})
}
