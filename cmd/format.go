package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"prism/internal/format"
	"prism/internal/storage"
)

// formatFlags holds the flag values for the format command.
type formatFlags struct {
	// output is the requested format token
	output string
	// title is prepended to table output
	title string
	// headers is a comma-separated column override for table/csv output
	headers string
	// noColor forces the plain table writer
	noColor bool
	// compact produces single-line JSON
	compact bool
}

// newFormatCmd creates the Cobra command that loads a data file and prints it
// in the requested output format.
func newFormatCmd() *cobra.Command {
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:   "format <file>",
		Short: "Render a data file in the requested output format",
		Long: `Load a structured data file (JSON, YAML or CSV, detected by extension)
and print it as json, yaml, csv, an aligned table, or plain text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			opts, err := buildOptions(flags, cfg.Output.Color)
			if err != nil {
				return err
			}

			data, err := storage.New().Load(args[0])
			if err != nil {
				return err
			}

			name := flags.output
			if name == "" {
				name = cfg.Output.Format
			}

			out, err := format.New().Format(data, name, opts)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output format (json, yaml, csv, table, plain)")
	cmd.Flags().StringVar(&flags.title, "title", "", "Title line for table output")
	cmd.Flags().StringVar(&flags.headers, "headers", "", "Comma-separated column headers for table/csv output")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable styled table output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "Single-line JSON output")

	return cmd
}

// buildOptions converts flag values into formatting options.
func buildOptions(flags *formatFlags, color bool) (format.Options, error) {
	headers, err := parseHeaders(flags.headers)
	if err != nil {
		return format.Options{}, err
	}
	return format.Options{
		Title:   flags.title,
		Headers: headers,
		Color:   color && !flags.noColor,
		Compact: flags.compact,
	}, nil
}

// parseHeaders splits a comma-separated header list. This is the untyped
// boundary where a malformed header list is still representable, so it is
// where the HeadersMustBeList failure originates.
func parseHeaders(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	headers := make([]string, 0, len(parts))
	for _, part := range parts {
		h := strings.TrimSpace(part)
		if h == "" {
			return nil, &format.Error{
				Category: format.CategoryHeadersMustBeList,
				Message:  fmt.Sprintf("headers must be a comma-separated list of names, got %q", raw),
			}
		}
		headers = append(headers, h)
	}
	return headers, nil
}
