package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seedDoc struct {
	Items []struct {
		UUID string          `json:"uuid"`
		Data json.RawMessage `json:"data"`
	} `json:"items"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadDocument(t *testing.T) {
	t.Run("yaml keeps nested item data", func(t *testing.T) {
		path := writeFile(t, "seed.yml", "items:\n  - uuid: Item.ember\n    data:\n      system:\n        quantity: 3\n")

		var doc seedDoc
		require.NoError(t, LoadDocument(path, &doc))
		require.Len(t, doc.Items, 1)
		assert.Equal(t, "Item.ember", doc.Items[0].UUID)
		assert.JSONEq(t, `{"system":{"quantity":3}}`, string(doc.Items[0].Data))
	})

	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "seed.json", `{"items":[{"uuid":"Item.salt"}]}`)

		var doc seedDoc
		require.NoError(t, LoadDocument(path, &doc))
		require.Len(t, doc.Items, 1)
		assert.Equal(t, "Item.salt", doc.Items[0].UUID)
	})

	t.Run("missing file", func(t *testing.T) {
		var doc seedDoc
		err := LoadDocument(filepath.Join(t.TempDir(), "none.yaml"), &doc)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "items: [unclosed")

		var doc seedDoc
		err := LoadDocument(path, &doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "convert")
	})

	t.Run("type mismatch", func(t *testing.T) {
		path := writeFile(t, "bad.json", `{"items":"nope"}`)

		var doc seedDoc
		err := LoadDocument(path, &doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
	})
}

func TestYAMLToJSON(t *testing.T) {
	out, err := YAMLToJSON([]byte("id: forge\nslots:\n  - id: crucible\n    isConsumed: true\n"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"forge","slots":[{"id":"crucible","isConsumed":true}]}`, string(out))
}

func TestIsYAML(t *testing.T) {
	tests := map[string]bool{
		"forge.yaml": true,
		"forge.YML":  true,
		"forge.json": false,
		"forge":      false,
	}
	for path, want := range tests {
		assert.Equal(t, want, IsYAML(path), path)
	}
}
