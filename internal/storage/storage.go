// Package storage provides extension-driven load and save of structured data
// files. The file extension selects the codec: .json and .yaml/.yml decode to
// generic maps and slices, .csv decodes to a sequence of row maps keyed by the
// header row, and everything else is treated as raw text.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"prism/internal/format"
	"prism/pkg/logging"
)

// DetectFormat maps a file path's extension to the format token used to
// encode or decode it. Unknown extensions map to plain text.
func DetectFormat(path string) format.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return format.FormatJSON
	case ".yaml", ".yml":
		return format.FormatYAML
	case ".csv":
		return format.FormatCSV
	default:
		return format.FormatPlain
	}
}

// Store loads and saves structured data files. Save routes through the
// format package so file content matches what the formatter would print.
type Store struct {
	mu        sync.Mutex
	formatter *format.Formatter
}

// New creates a Store backed by a fresh Formatter.
func New() *Store {
	return &Store{formatter: format.New()}
}

// Load reads and decodes the file at path according to its extension.
// JSON and YAML produce generic maps and slices; CSV produces a slice of
// row maps keyed by the header row; other files produce their raw text.
func (s *Store) Load(path string) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file %s not found", path)
		}
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	switch DetectFormat(path) {
	case format.FormatJSON:
		var data interface{}
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("failed to parse JSON file %s: %w", path, err)
		}
		logging.Debug("Storage", "Loaded JSON data from %s", path)
		return data, nil
	case format.FormatYAML:
		var data interface{}
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("failed to parse YAML file %s: %w", path, err)
		}
		logging.Debug("Storage", "Loaded YAML data from %s", path)
		return normalizeYAML(data), nil
	case format.FormatCSV:
		data, err := decodeCSV(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV file %s: %w", path, err)
		}
		logging.Debug("Storage", "Loaded CSV data from %s", path)
		return data, nil
	default:
		return string(raw), nil
	}
}

// Save encodes data according to the path's extension and writes it, creating
// parent directories as needed.
func (s *Store) Save(path string, data interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.formatter.Export(data, path, string(DetectFormat(path)), format.Options{}); err != nil {
		return err
	}
	logging.Debug("Storage", "Saved data to %s", path)
	return nil
}

// decodeCSV converts CSV content into a slice of row maps keyed by the header
// row. An empty file decodes to an empty slice.
func decodeCSV(raw []byte) ([]interface{}, error) {
	records, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []interface{}{}, nil
	}

	headers := records[0]
	rows := make([]interface{}, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]interface{}, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// normalizeYAML converts yaml.v3's map[string]interface{} trees recursively
// so downstream formatting sees the same shapes as JSON decoding.
func normalizeYAML(data interface{}) interface{} {
	switch d := data.(type) {
	case map[string]interface{}:
		for k, v := range d {
			d[k] = normalizeYAML(v)
		}
		return d
	case map[interface{}]interface{}:
		converted := make(map[string]interface{}, len(d))
		for k, v := range d {
			converted[fmt.Sprintf("%v", k)] = normalizeYAML(v)
		}
		return converted
	case []interface{}:
		for i, v := range d {
			d[i] = normalizeYAML(v)
		}
		return d
	default:
		return data
	}
}
