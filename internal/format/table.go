package format

import (
	"strings"
)

// tableSerializer renders mappings as aligned textual grids.
//
// A single mapping becomes a two-column KEY/VALUE table with one row per
// entry. A non-empty sequence of mappings becomes one column per key, with
// the column set defaulting to the first item's keys unless explicit headers
// are supplied. Input shape violations fail with a tagged error instead of
// producing a partial grid.
type tableSerializer struct{}

func (s *tableSerializer) Serialize(data interface{}, opts Options) (string, error) {
	grid, err := buildGrid(data, opts)
	if err != nil {
		return "", err
	}

	var rendered string
	if opts.Color {
		rendered = renderStyledTable(grid)
	} else {
		rendered = renderPlainTable(grid)
	}

	if opts.Title != "" {
		return opts.Title + "\n\n" + rendered, nil
	}
	return rendered, nil
}

// tableGrid is the intermediate row/column form every renderer consumes.
type tableGrid struct {
	headers []string
	rows    [][]string
}

// buildGrid converts the input data into a header row plus string cells.
func buildGrid(data interface{}, opts Options) (*tableGrid, error) {
	if m, ok := asRowMap(data); ok {
		return buildKeyValueGrid(m), nil
	}

	switch d := data.(type) {
	case []interface{}:
		return buildRowGrid(d, opts.Headers)
	case []map[string]interface{}:
		items := make([]interface{}, len(d))
		for i, m := range d {
			items[i] = m
		}
		return buildRowGrid(items, opts.Headers)
	default:
		return nil, newError(CategoryTableFormatRequiresDict,
			"table format requires a mapping or a sequence of mappings, got %T", data)
	}
}

// buildKeyValueGrid renders a single mapping as KEY/VALUE rows sorted by key.
func buildKeyValueGrid(m map[string]interface{}) *tableGrid {
	grid := &tableGrid{headers: []string{"KEY", "VALUE"}}
	for _, key := range sortedKeys(m) {
		grid.rows = append(grid.rows, []string{key, stringifyCell(m[key])})
	}
	return grid
}

// buildRowGrid renders a sequence of mappings as one row per item. Every
// requested header must be present in every row; a missing header fails
// naming the header and the row's available keys rather than blank-filling.
func buildRowGrid(items []interface{}, headers []string) (*tableGrid, error) {
	if len(items) == 0 {
		return nil, newError(CategoryNoDataProvided, "no data provided for table format")
	}

	rows := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		m, ok := asRowMap(item)
		if !ok {
			return nil, newError(CategoryTableFormatRequiresDict,
				"table format requires every item to be a mapping, got %T", item)
		}
		rows = append(rows, m)
	}

	if len(headers) == 0 {
		headers = sortedKeys(rows[0])
	}

	grid := &tableGrid{headers: headers}
	for _, row := range rows {
		cells := make([]string, len(headers))
		for i, h := range headers {
			value, ok := row[h]
			if !ok {
				return nil, newError(CategoryMissingHeaderInRow,
					"header %q not found in row (available: %s)",
					h, strings.Join(sortedKeys(row), ", "))
			}
			cells[i] = stringifyCell(value)
		}
		grid.rows = append(grid.rows, cells)
	}
	return grid, nil
}
