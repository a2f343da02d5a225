// Package format turns structured data into a string in one of the supported
// output formats (json, yaml, csv, table, plain) and optionally writes the
// result to a file.
//
// The package is organized around three pieces:
//   - Registry holds the closed set of format tokens and their serializers
//   - the table renderer converts mappings into aligned textual grids
//   - Formatter is the single entry point that validates the requested
//     format, dispatches to the matching serializer, and handles file export
//
// Every public operation returns an error value tagged with a Category;
// nothing in this package panics across the API boundary.
package format

import (
	"fmt"
	"sort"
	"strings"
)

// Format represents a supported output format token. The set is closed and
// case-sensitive: "JSON" is not a valid token.
type Format string

const (
	FormatJSON  Format = "json"  // Indented JSON output
	FormatYAML  Format = "yaml"  // Block-style YAML output
	FormatCSV   Format = "csv"   // Comma-separated values with a header row
	FormatTable Format = "table" // Aligned textual grid
	FormatPlain Format = "plain" // Raw string conversion, never fails
)

// Options configures a single formatting operation.
type Options struct {
	// Title is prepended to table output as a title line.
	Title string
	// Headers overrides the default column selection for table output.
	Headers []string
	// Color enables styled table rendering instead of the plain grid.
	Color bool
	// Compact produces single-line JSON instead of indented output.
	Compact bool
}

// serializer converts data into a string in one specific format.
type serializer interface {
	Serialize(data interface{}, opts Options) (string, error)
}

// Registry holds the closed set of supported format tokens and their
// serializers. It is populated once at construction and never mutated,
// so it is safe for concurrent use.
type Registry struct {
	serializers map[Format]serializer
}

// NewRegistry creates a registry with all supported serializers registered.
func NewRegistry() *Registry {
	return &Registry{
		serializers: map[Format]serializer{
			FormatJSON:  &jsonSerializer{},
			FormatYAML:  &yamlSerializer{},
			FormatCSV:   &csvSerializer{},
			FormatTable: &tableSerializer{},
			FormatPlain: &plainSerializer{},
		},
	}
}

// Supported returns the supported format tokens in stable order.
func (r *Registry) Supported() []Format {
	formats := make([]Format, 0, len(r.serializers))
	for f := range r.serializers {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// Validate checks a format token against the supported set and returns the
// canonical Format. Unknown tokens fail with an UnsupportedFormat error whose
// message enumerates the supported set.
func (r *Registry) Validate(name string) (Format, error) {
	f := Format(name)
	if _, ok := r.serializers[f]; !ok {
		return "", newError(CategoryUnsupportedFormat,
			"unsupported format %q (supported: %s)", name, r.supportedList())
	}
	return f, nil
}

// Dispatch validates the token, invokes the matching serializer, and returns
// its output. Serializer failures propagate with only the operation name
// prefixed; the underlying category and message stay intact.
func (r *Registry) Dispatch(name string, data interface{}, opts Options) (string, error) {
	f, err := r.Validate(name)
	if err != nil {
		return "", err
	}
	out, err := r.serializers[f].Serialize(data, opts)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", f, err)
	}
	return out, nil
}

// supportedList renders the supported set for error messages.
func (r *Registry) supportedList() string {
	names := make([]string, 0, len(r.serializers))
	for _, f := range r.Supported() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
