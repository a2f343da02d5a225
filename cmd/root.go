package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"prism/internal/config"
	"prism/pkg/logging"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
)

var (
	// logLevel is the minimum log level for this invocation.
	logLevel string
	// configPath overrides the default configuration file location.
	configPath string
)

// rootCmd represents the base command for the prism application.
var rootCmd = &cobra.Command{
	Use:   "prism",
	Short: "Format structured data for the terminal",
	Long: `prism reads structured data files (JSON, YAML, CSV) and renders them
as JSON, YAML, CSV, aligned tables, or plain text, on screen or to files.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(logging.ParseLevel(logLevel), os.Stderr)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Minimum log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file path")

	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// loadConfig loads the configuration from the --config flag location or the
// default path. Load failures fall back to defaults with a warning; a broken
// config file should not make formatting commands unusable.
func loadConfig() config.Config {
	path := configPath
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return config.Default()
		}
		path = defaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		logging.Warn("CLI", "Failed to load configuration: %v", err)
		return config.Default()
	}
	return cfg
}

// SetVersion sets the version for the root command. This is typically called
// from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "prism version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitCodeError)
	}
	os.Exit(ExitCodeSuccess)
}
