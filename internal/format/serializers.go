package format

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// jsonSerializer produces JSON output with 2-space indentation. Compact mode
// produces single-line JSON instead.
type jsonSerializer struct{}

func (s *jsonSerializer) Serialize(data interface{}, opts Options) (string, error) {
	var (
		out []byte
		err error
	)
	if opts.Compact {
		out, err = json.Marshal(data)
	} else {
		out, err = json.MarshalIndent(data, "", "  ")
	}
	if err != nil {
		return "", wrapError(CategoryJSONFormattingFailed, err, "json formatting failed")
	}
	return string(out), nil
}

// yamlSerializer produces block-style YAML output.
type yamlSerializer struct{}

func (s *yamlSerializer) Serialize(data interface{}, opts Options) (string, error) {
	out, err := yaml.Marshal(data)
	if err != nil {
		return "", wrapError(CategoryYAMLFormattingFailed, err, "yaml formatting failed")
	}
	return string(out), nil
}

// csvSerializer produces comma-delimited output with a header row.
//
// A slice of mappings becomes one header row plus one data row per mapping.
// A single mapping becomes a one-row CSV with its keys as the header. Any
// other shape falls back to the JSON branch, matching the formatter's
// documented contract.
type csvSerializer struct{}

func (s *csvSerializer) Serialize(data interface{}, opts Options) (string, error) {
	if rows, ok := asRowMaps(data); ok && len(rows) > 0 {
		headers := opts.Headers
		if len(headers) == 0 {
			headers = sortedKeys(rows[0])
		}
		return s.write(headers, rows)
	}

	if m, ok := asRowMap(data); ok {
		headers := opts.Headers
		if len(headers) == 0 {
			headers = sortedKeys(m)
		}
		return s.write(headers, []map[string]interface{}{m})
	}

	// Not tabular data, fall back to JSON.
	return (&jsonSerializer{}).Serialize(data, opts)
}

// write renders the header row and one row per mapping. Keys absent from a
// row produce empty cells; CSV output is lossy by nature and does not get the
// table renderer's strict missing-header treatment.
func (s *csvSerializer) write(headers []string, rows []map[string]interface{}) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(headers); err != nil {
		return "", wrapError(CategoryCSVFormattingFailed, err, "csv formatting failed")
	}
	for _, row := range rows {
		record := make([]string, len(headers))
		for i, h := range headers {
			if value, ok := row[h]; ok {
				record[i] = stringifyCell(value)
			}
		}
		if err := w.Write(record); err != nil {
			return "", wrapError(CategoryCSVFormattingFailed, err, "csv formatting failed")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", wrapError(CategoryCSVFormattingFailed, err, "csv formatting failed")
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

// plainSerializer converts any value to its string representation. It never
// fails.
type plainSerializer struct{}

func (s *plainSerializer) Serialize(data interface{}, opts Options) (string, error) {
	return fmt.Sprintf("%v", data), nil
}

// stringifyCell converts a cell value to its display string. Numbers,
// booleans and nil all go through the default verb; there is no locale-aware
// number formatting.
func stringifyCell(value interface{}) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%v", value)
}

// sortedKeys returns the keys of a mapping in sorted order. Go maps carry no
// insertion order, so sorted keys are the canonical default column order.
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// asRowMap converts supported single-mapping shapes to map[string]interface{}.
func asRowMap(data interface{}) (map[string]interface{}, bool) {
	switch m := data.(type) {
	case map[string]interface{}:
		return m, true
	case map[string]string:
		converted := make(map[string]interface{}, len(m))
		for k, v := range m {
			converted[k] = v
		}
		return converted, true
	default:
		return nil, false
	}
}

// asRowMaps converts supported sequence-of-mappings shapes to a slice of
// map[string]interface{}. The second return is false when data is not a
// sequence or when any element is not a mapping.
func asRowMaps(data interface{}) ([]map[string]interface{}, bool) {
	switch d := data.(type) {
	case []map[string]interface{}:
		return d, true
	case []interface{}:
		rows := make([]map[string]interface{}, 0, len(d))
		for _, item := range d {
			m, ok := asRowMap(item)
			if !ok {
				return nil, false
			}
			rows = append(rows, m)
		}
		return rows, true
	default:
		return nil, false
	}
}
