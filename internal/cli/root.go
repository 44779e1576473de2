// Package cli provides the command-line interface for DealFlow
package cli

import (
	"fmt"
	"os"

	"github.com/blackroad/dealflow/internal/app"
	"github.com/blackroad/dealflow/internal/common"
	"github.com/blackroad/dealflow/internal/config"
	"github.com/spf13/cobra"
)

// CLI carries the initialized application into command handlers.
type CLI struct {
	app *app.App
}

// NewRootCmd creates the root command with all subcommands attached. The
// application (config, logger, store) is initialized once before any
// subcommand runs and torn down after it returns.
func NewRootCmd() *cobra.Command {
	var configPath string
	var verbose bool
	c := &CLI{}

	rootCmd := &cobra.Command{
		Use:   "dealflow",
		Short: "Investment deal flow and due diligence tracker",
		Long: `DealFlow tracks venture-investment deals through a pipeline of stages,
records due-diligence findings per deal, computes a composite deal score,
and produces aggregate and per-deal reports.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// version and help never touch the store
			switch cmd.Name() {
			case "version", "help", "completion":
				return nil
			}

			cfg, err := config.LoadFromFile(configPath)
			if err != nil {
				return err
			}
			var logger *common.Logger
			if verbose {
				logger = common.NewLoggerWithOutput("debug", os.Stderr)
			} else {
				logger = common.NewLoggerFromConfig(common.LoggingConfig{
					Level:    cfg.Logging.Level,
					Outputs:  cfg.Logging.Outputs,
					FilePath: cfg.Logging.FilePath,
				})
			}

			application, err := app.New(cfg, logger)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			c.app = application
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.app != nil {
				return c.app.Close()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(
		newAddCmd(c),
		newListCmd(c),
		newPipelineCmd(c),
		newSectorCmd(c),
		newScoreCmd(c),
		newPassCmd(c),
		newDetailsCmd(c),
		newSummaryCmd(c),
		newAdvanceCmd(c),
		newReportCmd(c),
		newInteractionCmd(c),
		newVersionCmd(),
	)

	return rootCmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dealflow version %s\n", config.GetVersion())
		},
	}
}

// Run executes the root command, printing any error to stderr and
// exiting non-zero on failure.
func Run() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
