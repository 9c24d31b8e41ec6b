// Package commands implements the sqlkit CLI commands.
package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/sqlkit/cli/internal/config"
	"github.com/satishbabariya/sqlkit/cli/internal/ui"
	"github.com/satishbabariya/sqlkit/cli/internal/version"
	"github.com/satishbabariya/sqlkit/internal/debug"
)

// options is the state shared by all commands of one invocation.
type options struct {
	configFile string
	cfg        *config.Config
}

// NewRootCommand builds the sqlkit command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "sqlkit",
		Short: "Compile filters and foreign keys to SQL",
		Long: `sqlkit compiles table definitions with foreign keys and filter
expressions into SQL for PostgreSQL, MySQL, SQLite, SQL Server or plain ANSI.`,
		Version:       version.Current(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile, cmd.Flags())
			if err != nil {
				return err
			}
			debug.Init(cfg.Debug)
			if cfg.File != "" {
				debug.Debug("config loaded", "file", cfg.File, "dialect", cfg.Dialect)
			}
			opts.cfg = cfg
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default: .sqlkit.yaml in ., $HOME or $HOME/.config/sqlkit)")
	flags.String("dialect", "", "SQL dialect: ansi, postgres, mysql, sqlite or mssql")
	flags.Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newCompileCommand(opts))
	rootCmd.AddCommand(newValidateCommand(opts))
	rootCmd.AddCommand(newFormatCommand(opts))
	rootCmd.AddCommand(newDialectsCommand())
	rootCmd.AddCommand(newInitCommand(opts))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the CLI until it finishes or is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		debug.Error("command failed", "error", err)
		ui.Error(os.Stderr, "%v", err)
		return err
	}
	return nil
}
