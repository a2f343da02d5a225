package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prism/internal/format"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected format.Format
	}{
		{path: "data.json", expected: format.FormatJSON},
		{path: "data.yaml", expected: format.FormatYAML},
		{path: "data.yml", expected: format.FormatYAML},
		{path: "data.csv", expected: format.FormatCSV},
		{path: "data.JSON", expected: format.FormatJSON},
		{path: "data.txt", expected: format.FormatPlain},
		{path: "data", expected: format.FormatPlain},
		{path: "/some/dir/report.yaml", expected: format.FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectFormat(tt.path))
		})
	}
}

func TestLoadJSON(t *testing.T) {
	store := New()
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "alice", "age": 30}`), 0644))

	data, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"name": "alice", "age": float64(30)}, data)
}

func TestLoadYAML(t *testing.T) {
	store := New()
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: alice\ntags:\n  - a\n  - b\n"), 0644))

	data, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"name": "alice",
		"tags": []interface{}{"a", "b"},
	}, data)
}

func TestLoadCSV(t *testing.T) {
	store := New()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,age\nalice,30\nbob,25\n"), 0644))

	data, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{
		map[string]interface{}{"name": "alice", "age": "30"},
		map[string]interface{}{"name": "bob", "age": "25"},
	}, data)
}

func TestLoadPlainText(t *testing.T) {
	store := New()
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("just some text"), 0644))

	data, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "just some text", data)
}

func TestLoadMissingFile(t *testing.T) {
	store := New()

	_, err := store.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadMalformedJSON(t *testing.T) {
	store := New()
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := store.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := New()
	data := map[string]interface{}{"name": "alice", "city": "berlin"}

	tests := []struct {
		name string
		file string
	}{
		{name: "json", file: "out.json"},
		{name: "yaml", file: "out.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, store.Save(path, data))

			loaded, err := store.Load(path)
			require.NoError(t, err)
			assert.Equal(t, data, loaded)
		})
	}
}

func TestSaveCSVRoundTrip(t *testing.T) {
	store := New()
	path := filepath.Join(t.TempDir(), "out.csv")
	data := []interface{}{
		map[string]interface{}{"age": "30", "name": "alice"},
		map[string]interface{}{"age": "25", "name": "bob"},
	}

	require.NoError(t, store.Save(path, data))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, data, loaded)
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	store := New()
	path := filepath.Join(t.TempDir(), "nested", "deep", "out.json")

	require.NoError(t, store.Save(path, map[string]interface{}{"k": "v"}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
