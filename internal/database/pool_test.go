package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// testDBConnString is empty when no container could be started
var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	terminate := func() {}
	if !testing.Short() {
		testDBConnString, terminate = startPostgres(context.Background())
	}

	code := m.Run()
	terminate()
	os.Exit(code)
}

func startPostgres(ctx context.Context) (connStr string, terminate func()) {
	terminate = func() {}
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("WARNING: postgres container unavailable: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("craftpanel_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", terminate
	}
	terminate = func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		return "", terminate
	}
	return connStr, terminate
}

func requireDatabase(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}
}

func TestNewPool_AppliesLimits(t *testing.T) {
	requireDatabase(t)

	tests := []struct {
		name         string
		maxConns     int
		wantMinConns int32
	}{
		{"Default minimum", 5, DefaultMinConnections},
		{"Minimum capped by maximum", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := NewPool(testDBConnString, tt.maxConns, time.Minute, 5*time.Minute)
			require.NoError(t, err)
			defer pool.Close()

			cfg := pool.Config()
			assert.Equal(t, int32(tt.maxConns), cfg.MaxConns)
			assert.Equal(t, tt.wantMinConns, cfg.MinConns)
			assert.Equal(t, time.Minute, cfg.MaxConnIdleTime)
			assert.Equal(t, 5*time.Minute, cfg.MaxConnLifetime)
		})
	}
}

func TestNewPool_ReleasesConnections(t *testing.T) {
	requireDatabase(t)

	pool, err := NewPool(testDBConnString, 2, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		var one int
		require.NoError(t, pool.QueryRow(ctx, "SELECT 1").Scan(&one), "iteration %d", i)
		assert.Equal(t, 1, one)
	}
	assert.Equal(t, int32(0), pool.Stat().AcquiredConns())
}

func TestMigrate_CreatesSchemaIdempotently(t *testing.T) {
	requireDatabase(t)

	pool, err := NewPool(testDBConnString, 5, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	ctx := context.Background()

	first, err := Migrate(ctx, pool)
	require.NoError(t, err)
	assert.Greater(t, first, int64(0))

	second, err := Migrate(ctx, pool)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	for _, table := range []string{"users", "actors", "items", "roll_tables", "unlocked_recipes", "stored_recipes", "event_log"} {
		var exists bool
		err := pool.QueryRow(ctx, "SELECT to_regclass($1) IS NOT NULL", table).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "table %s", table)
	}
}

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool("://not a connection string", 5, time.Minute, time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}
