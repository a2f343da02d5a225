package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFromSingleMapping(t *testing.T) {
	formatter := New()

	out, err := formatter.Format(map[string]interface{}{"name": "Alice", "age": 30}, "table", Options{})
	require.NoError(t, err)

	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "30")
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "age")
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "VALUE")
}

func TestTableFromSliceOfMappings(t *testing.T) {
	formatter := New()
	data := []interface{}{
		map[string]interface{}{"name": "alice", "age": 30},
		map[string]interface{}{"name": "bob", "age": 25},
	}

	out, err := formatter.Format(data, "table", Options{})
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	// Default column order is sorted keys of the first item.
	assert.True(t, strings.HasPrefix(lines[0], "age"))
	assert.Contains(t, lines[0], "name")
	assert.Contains(t, lines[1], "alice")
	assert.Contains(t, lines[2], "bob")
}

func TestTableColumnAlignment(t *testing.T) {
	formatter := New()
	data := []interface{}{
		map[string]interface{}{"name": "a-much-longer-name", "age": 1},
		map[string]interface{}{"name": "b", "age": 2},
	}

	out, err := formatter.Format(data, "table", Options{Headers: []string{"name", "age"}})
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	// Every row places the second column at the same offset.
	offset := strings.Index(lines[1], "1")
	assert.Equal(t, offset, strings.Index(lines[2], "2"))
}

func TestTableEmptySliceFails(t *testing.T) {
	formatter := New()

	_, err := formatter.Format([]interface{}{}, "table", Options{})
	require.Error(t, err)
	assert.True(t, IsCategory(err, CategoryNoDataProvided))
}

func TestTableNonMappingElementFails(t *testing.T) {
	formatter := New()

	_, err := formatter.Format([]interface{}{
		map[string]interface{}{"a": 1},
		"not a mapping",
	}, "table", Options{})
	require.Error(t, err)
	assert.True(t, IsCategory(err, CategoryTableFormatRequiresDict))
}

func TestTableNonTabularInputFails(t *testing.T) {
	formatter := New()

	_, err := formatter.Format("just a string", "table", Options{})
	require.Error(t, err)
	assert.True(t, IsCategory(err, CategoryTableFormatRequiresDict))
}

func TestTableMissingHeaderFails(t *testing.T) {
	formatter := New()
	data := []interface{}{
		map[string]interface{}{"name": "alice", "age": 30},
		map[string]interface{}{"name": "bob"},
	}

	_, err := formatter.Format(data, "table", Options{})
	require.Error(t, err)
	assert.True(t, IsCategory(err, CategoryMissingHeaderInRow))
	// The failure names the missing header and the row's available keys.
	assert.Contains(t, err.Error(), `"age"`)
	assert.Contains(t, err.Error(), "name")
}

func TestTableExplicitMissingHeaderFails(t *testing.T) {
	formatter := New()
	data := []interface{}{
		map[string]interface{}{"name": "alice"},
	}

	_, err := formatter.Format(data, "table", Options{Headers: []string{"name", "city"}})
	require.Error(t, err)
	assert.True(t, IsCategory(err, CategoryMissingHeaderInRow))
	assert.Contains(t, err.Error(), `"city"`)
}

func TestTableTitle(t *testing.T) {
	formatter := New()

	out, err := formatter.Format(map[string]interface{}{"k": "v"}, "table", Options{Title: "Settings"})
	require.NoError(t, err)

	// Title line, blank separator, then the grid.
	assert.True(t, strings.HasPrefix(out, "Settings\n\n"))
}

func TestStyledTableContainsValues(t *testing.T) {
	formatter := New()
	data := []interface{}{
		map[string]interface{}{"name": "alice", "age": 30},
	}

	out, err := formatter.Format(data, "table", Options{Color: true})
	require.NoError(t, err)
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "30")
}

func TestPlainTableWriterNormalizesShortRows(t *testing.T) {
	w := newPlainTableWriter([]string{"A", "B"})
	w.appendRow([]string{"only"})
	out := w.render()

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "only")
}
