package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"prism/internal/format"
	"prism/internal/storage"
)

// newExportCmd creates the Cobra command that converts a data file into one
// or more output files.
func newExportCmd() *cobra.Command {
	var (
		output  string
		formats string
	)

	cmd := &cobra.Command{
		Use:   "export <file> <destination>",
		Short: "Write a data file to disk in other formats",
		Long: `Load a structured data file and write it to the destination path in the
requested format. Parent directories are created as needed.

With --formats, the destination is treated as a directory and one file per
format is written, named after the input file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, dest := args[0], args[1]

			data, err := storage.New().Load(source)
			if err != nil {
				return err
			}
			formatter := format.New()

			if formats != "" {
				names := strings.Split(formats, ",")
				for i, name := range names {
					names[i] = strings.TrimSpace(name)
				}
				base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
				if err := formatter.ExportAll(data, dest, base, names...); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s in %d formats\n", source, dest, len(names))
				return nil
			}

			name := output
			if name == "" {
				name = string(storage.DetectFormat(dest))
			}
			if err := formatter.Export(data, dest, name, format.Options{}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", source, dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format (defaults to the destination's extension)")
	cmd.Flags().StringVar(&formats, "formats", "", "Comma-separated formats to export, one file each")

	return cmd
}
