package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prism/internal/format"
)

func TestParseHeaders(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
		wantErr  bool
	}{
		{name: "empty means no override", raw: "", expected: nil},
		{name: "single header", raw: "name", expected: []string{"name"}},
		{name: "multiple headers", raw: "name,age,city", expected: []string{"name", "age", "city"}},
		{name: "whitespace trimmed", raw: " name , age ", expected: []string{"name", "age"}},
		{name: "empty segment", raw: "name,,age", wantErr: true},
		{name: "trailing comma", raw: "name,", wantErr: true},
		{name: "only commas", raw: ",,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers, err := parseHeaders(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, format.IsCategory(err, format.CategoryHeadersMustBeList))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, headers)
		})
	}
}

func TestBuildOptions(t *testing.T) {
	opts, err := buildOptions(&formatFlags{
		title:   "Report",
		headers: "name,age",
		compact: true,
	}, true)
	require.NoError(t, err)
	assert.Equal(t, "Report", opts.Title)
	assert.Equal(t, []string{"name", "age"}, opts.Headers)
	assert.True(t, opts.Color)
	assert.True(t, opts.Compact)

	// --no-color wins over the config default.
	opts, err = buildOptions(&formatFlags{noColor: true}, true)
	require.NoError(t, err)
	assert.False(t, opts.Color)
}

func TestFormatCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "alice", "age": 30}]`), 0644))

	var out bytes.Buffer
	cmd := newFormatCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{path, "-o", "table", "--no-color"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "alice")
	assert.Contains(t, out.String(), "30")
	assert.Contains(t, out.String(), "age")
}

func TestFormatCommandCompactJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: alice\n"), 0644))

	var out bytes.Buffer
	cmd := newFormatCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{path, "-o", "json", "--compact"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "{\"name\":\"alice\"}\n", out.String())
}

func TestFormatCommandUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	cmd := newFormatCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path, "-o", "xml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, format.IsCategory(err, format.CategoryUnsupportedFormat))
}

func TestFormatCommandMissingFile(t *testing.T) {
	cmd := newFormatCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.json")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
