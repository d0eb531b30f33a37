package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeed(t *testing.T) {
	dir := t.TempDir()

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "seed.json")
		content := `{"users":[{"id":"u1","name":"Alice","privileged":true}],"roll_tables":[{"uuid":"RollTable.t","name":"T","results":[]}]}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		seed, err := LoadSeed(path)
		require.NoError(t, err)
		require.Len(t, seed.Users, 1)
		assert.True(t, seed.Users[0].Privileged)
		assert.Len(t, seed.RollTables, 1)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSeed(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})
}
