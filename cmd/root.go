package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/HaiFongPan/panes-cli/internal/config"
	"github.com/HaiFongPan/panes-cli/internal/logging"
	"github.com/HaiFongPan/panes-cli/internal/telemetry"
	"github.com/HaiFongPan/panes-cli/internal/tui"
)

var (
	cfgFile      string
	verbose      bool
	quiet        bool
	globalConfig *config.Config
	logCloser    io.Closer
	tracing      *telemetry.Provider
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "panes-cli",
	Short: "Resizable split panes in the terminal",
	Long: `PANES-CLI lays out panels side by side (or stacked) in the terminal and lets you
resize them with the mouse or keyboard. Panels honour their min/max sizes, may
collapse, and the layout is saved per auto-save id.

Example usage:
  panes-cli                      # Interactive split view
  panes-cli layout show          # Print the saved layout
  panes-cli layout reset         # Forget the saved layout
  panes-cli simulate resize:left:25 collapse:right`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd.Context())
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return shutdown(cmd.Context())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ~/.panes-cli/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "enable quiet mode")
}

// initConfig reads in config file and ENV variables if set.
func initConfig(ctx context.Context) error {
	var err error
	globalConfig, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	setupLogging()

	tracing, err = telemetry.Setup(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Failed to set up tracing")
	}
	return nil
}

// setupLogging configures the global logger based on config and flags
func setupLogging() {
	logCfg := globalConfig.Log
	logCloser = logging.Setup(logging.Options{
		Level:      logCfg.Level,
		Format:     logCfg.Format,
		File:       logCfg.File,
		MaxSizeMB:  logCfg.MaxSizeMB,
		MaxBackups: logCfg.MaxBackups,
		MaxAgeDays: logCfg.MaxAgeDays,
		Compress:   logCfg.Compress,
		Verbose:    verbose,
		Quiet:      quiet,
	})
}

func shutdown(ctx context.Context) error {
	if err := tracing.Shutdown(ctx); err != nil {
		logrus.WithError(err).Warn("Failed to flush traces")
	}
	if logCloser != nil {
		return logCloser.Close()
	}
	return nil
}

// GetConfig returns the global configuration
func GetConfig() *config.Config {
	return globalConfig
}

// runInteractive runs the split view with the configured panels
func runInteractive(ctx context.Context) error {
	cfg := globalConfig

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}

	model, err := tui.NewPaneModel(cfg, store)
	if err != nil {
		return err
	}
	defer model.Close()

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	_, err = program.Run()
	return err
}
