package format

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// plainTableWriter produces kubectl-style columnar output without
// box-drawing characters. This format is optimized for:
//   - Easy copy/paste operations
//   - Piping to grep, awk, cut and other command-line tools
//   - Terminal-agnostic rendering (no Unicode issues)
type plainTableWriter struct {
	headers      []string
	rows         [][]string
	columnWidths []int
	// minPadding is the minimum space between columns
	minPadding int
}

func newPlainTableWriter(headers []string) *plainTableWriter {
	w := &plainTableWriter{
		headers:      headers,
		columnWidths: make([]int, len(headers)),
		minPadding:   3,
	}
	for i, h := range headers {
		w.columnWidths[i] = len(h)
	}
	return w
}

// appendRow adds a row, normalizing it to the header width.
func (w *plainTableWriter) appendRow(row []string) {
	normalized := make([]string, len(w.headers))
	for i := range w.headers {
		if i < len(row) {
			normalized[i] = row[i]
			if len(row[i]) > w.columnWidths[i] {
				w.columnWidths[i] = len(row[i])
			}
		}
	}
	w.rows = append(w.rows, normalized)
}

// render returns the aligned grid as a single string.
func (w *plainTableWriter) render() string {
	if len(w.headers) == 0 {
		return ""
	}

	var sb strings.Builder
	w.writeRow(&sb, w.headers)
	for _, row := range w.rows {
		w.writeRow(&sb, row)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (w *plainTableWriter) writeRow(sb *strings.Builder, row []string) {
	var line strings.Builder
	for i, cell := range row {
		if i == len(row)-1 {
			// Last column: no padding needed
			line.WriteString(cell)
		} else {
			padded := fmt.Sprintf(fmt.Sprintf("%%-%ds", w.columnWidths[i]+w.minPadding), cell)
			line.WriteString(padded)
		}
	}
	sb.WriteString(strings.TrimRight(line.String(), " "))
	sb.WriteString("\n")
}

// renderPlainTable renders a grid through the plain columnar writer.
func renderPlainTable(grid *tableGrid) string {
	w := newPlainTableWriter(grid.headers)
	for _, row := range grid.rows {
		w.appendRow(row)
	}
	return w.render()
}

// renderStyledTable renders a grid through go-pretty with rounded borders and
// highlighted headers. Used when color output is requested.
func renderStyledTable(grid *tableGrid) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)

	header := make(table.Row, len(grid.headers))
	for i, h := range grid.headers {
		header[i] = text.FgHiCyan.Sprint(h)
	}
	t.AppendHeader(header)

	for _, row := range grid.rows {
		cells := make(table.Row, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		t.AppendRow(cells)
	}

	return t.Render()
}
