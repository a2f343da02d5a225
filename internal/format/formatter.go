package format

import (
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"prism/pkg/logging"
)

// Formatter is the single entry point for turning structured data into a
// string in a requested format, and for writing formatted output to files.
// It is stateless apart from its registry and safe for concurrent use.
type Formatter struct {
	registry *Registry
}

// New creates a Formatter with all supported serializers registered.
func New() *Formatter {
	return &Formatter{registry: NewRegistry()}
}

// Registry exposes the format registry for token validation.
func (f *Formatter) Registry() *Registry {
	return f.registry
}

// Format converts data to a string in the requested format. Unknown format
// tokens fail with an UnsupportedFormat error; serializer failures carry the
// serializer's own category and message.
func (f *Formatter) Format(data interface{}, name string, opts Options) (string, error) {
	return f.registry.Dispatch(name, data, opts)
}

// Export formats data and writes the result to path as UTF-8 text, creating
// parent directories as needed. Filesystem failures are reported as
// ExportFailed with the OS error attached; formatting failures propagate
// unchanged.
func (f *Formatter) Export(data interface{}, path string, name string, opts Options) error {
	out, err := f.Format(data, name, opts)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return wrapError(CategoryExportFailed, err, "failed to create directory %s", dir)
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return wrapError(CategoryExportFailed, err, "failed to write file %s", path)
	}

	logging.Info("Formatter", "Exported %s output to %s", name, path)
	return nil
}

// ExportAll writes data to dir once per requested format, named
// "<base>.<format>" with the format token as the extension. The exports are
// independent file writes and run concurrently; the first failure cancels
// the rest and is returned.
func (f *Formatter) ExportAll(data interface{}, dir string, base string, names ...string) error {
	// Validate everything up front so a bad token fails before any file is written.
	for _, name := range names {
		if _, err := f.registry.Validate(name); err != nil {
			return err
		}
	}

	var g errgroup.Group
	for _, name := range names {
		name := name
		g.Go(func() error {
			path := filepath.Join(dir, base+"."+name)
			return f.Export(data, path, name, Options{})
		})
	}
	return g.Wait()
}
