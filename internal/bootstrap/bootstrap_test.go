package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftPanel_Go/internal/config"
	"github.com/osse101/CraftPanel_Go/internal/event"
	"github.com/osse101/CraftPanel_Go/internal/eventlog"
	"github.com/osse101/CraftPanel_Go/internal/panel"
	"github.com/osse101/CraftPanel_Go/internal/script"
)

const seedYAML = `
users:
  - id: u1
    name: Alice
    actor_id: a1
actors:
  - id: a1
    name: Smith
    user_id: u1
items:
  - uuid: Item.ember
    name: Ember
    owner_id: a1
    data:
      system:
        quantity: 3
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	seed := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(seed, []byte(seedYAML), 0644))
	return &config.Config{
		StoreBackend:         config.StoreBackendMemory,
		SeedFile:             seed,
		QuantityPath:         "system.quantity",
		PanelsDir:            filepath.Join(dir, "panels"),
		WorkerCount:          1,
		AuditRetentionDays:   30,
		AuditCleanupInterval: time.Hour,
	}
}

func TestInitializeStore_MemoryWithSeed(t *testing.T) {
	ctx := context.Background()
	stores, err := InitializeStore(ctx, testConfig(t))
	require.NoError(t, err)
	assert.Nil(t, stores.Pool)

	item, err := stores.Backend.GetItem(ctx, "Item.ember")
	require.NoError(t, err)
	assert.Equal(t, "Ember", item.Name)
	assert.JSONEq(t, `{"system":{"quantity":3}}`, string(item.Data))
}

func TestInitializeStore_Errors(t *testing.T) {
	cfg := testConfig(t)
	cfg.SeedFile = filepath.Join(t.TempDir(), "missing.json")
	_, err := InitializeStore(context.Background(), cfg)
	assert.ErrorContains(t, err, ErrMsgFailedLoadSeed)

	cfg = testConfig(t)
	cfg.StoreBackend = "sqlite"
	_, err = InitializeStore(context.Background(), cfg)
	assert.ErrorContains(t, err, ErrMsgUnknownBackend)
}

func TestInitializeEventSystem_AuditsCrafts(t *testing.T) {
	ctx := context.Background()
	stores, err := InitializeStore(ctx, testConfig(t))
	require.NoError(t, err)

	bus, audit, err := InitializeEventSystem(stores.Backend)
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, event.NewRecipeUnlockedEvent("u1", "potion", "Fire Potion")))

	events, err := audit.Events(ctx, eventlog.EventFilter{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, string(event.RecipeUnlocked), events[0].EventType)
}

func TestNewScriptProvider_RoutesGoFunctions(t *testing.T) {
	provider, funcs := NewScriptProvider()
	funcs.Register("answer", func(ctx context.Context, args script.Args) (interface{}, error) {
		return 42, nil
	})

	v, err := provider.Evaluate(context.Background(), "go:answer", script.Args{})
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = provider.Evaluate(context.Background(), "return 1 + 1", script.Args{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, v)
}

func TestLoadCatalog_MissingDirIsEmpty(t *testing.T) {
	catalog, err := LoadCatalog(context.Background(), filepath.Join(t.TempDir(), "none"))
	require.NoError(t, err)
	assert.Zero(t, catalog.Len())
}

func TestGracefulShutdown(t *testing.T) {
	cfg := testConfig(t)
	stores, err := InitializeStore(context.Background(), cfg)
	require.NoError(t, err)
	_, audit, err := InitializeEventSystem(stores.Backend)
	require.NoError(t, err)
	pool, sched := StartBackgroundJobs(cfg, audit)

	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{
			Sessions:  panel.NewManager(),
			Scheduler: sched,
			Workers:   pool,
			Store:     stores.Backend,
		})
	})
}

func TestSampleConfigsLoad(t *testing.T) {
	ctx := context.Background()

	catalog, err := LoadCatalog(ctx, filepath.Join("..", "..", "configs", "panels"))
	require.NoError(t, err)
	forge, err := catalog.Get("forge")
	require.NoError(t, err)
	assert.Len(t, forge.Recipes, 2)

	cfg := testConfig(t)
	cfg.SeedFile = filepath.Join("..", "..", "configs", "seed.yaml")
	stores, err := InitializeStore(ctx, cfg)
	require.NoError(t, err)
	table, err := stores.Backend.GetRollTable(ctx, "RollTable.embers")
	require.NoError(t, err)
	assert.Len(t, table.Results, 2)
}
