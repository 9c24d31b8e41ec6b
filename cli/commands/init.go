package commands

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/sqlkit/cli/internal/config"
	"github.com/satishbabariya/sqlkit/cli/internal/document"
	"github.com/satishbabariya/sqlkit/cli/internal/ui"
	"github.com/satishbabariya/sqlkit/query/sqlgen"
)

func newInitCommand(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create .sqlkit.yaml and a starter document",
		Long: `Create .sqlkit.yaml in the current directory and, when missing, a
starter document with two tables, a foreign key and two filters.

Without --dialect the dialect is asked for interactively when stdin is a
terminal, otherwise the configured or detected dialect is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *opts.cfg
			out := cmd.OutOrStdout()

			exists, err := afero.Exists(config.AppFs, config.FileName)
			if err != nil {
				return err
			}
			if exists && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
			}

			if !cmd.Flags().Changed("dialect") && isatty.IsTerminal(os.Stdin.Fd()) {
				dialect, err := askDialect(cfg.Dialect)
				if err != nil {
					return err
				}
				cfg.Dialect = dialect
			}
			if _, err := sqlgen.NewDialect(cfg.Dialect); err != nil {
				return err
			}

			if err := config.Save(&cfg, config.FileName); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			ui.Success(out, "Created %s (dialect %s)", config.FileName, cfg.Dialect)

			docExists, err := afero.Exists(config.AppFs, cfg.Document)
			if err != nil {
				return err
			}
			if docExists {
				ui.Warning(out, "Document already exists: %s", cfg.Document)
				return nil
			}
			if err := afero.WriteFile(config.AppFs, cfg.Document, []byte(document.Example), 0644); err != nil {
				return fmt.Errorf("failed to write document: %w", err)
			}
			ui.Success(out, "Created %s", cfg.Document)
			ui.Info(out, "Next: sqlkit compile")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

func askDialect(current string) (string, error) {
	var names []string
	for _, d := range sqlgen.Dialects() {
		names = append(names, d.Name())
	}
	if d, err := sqlgen.NewDialect(current); err == nil {
		current = d.Name()
	} else {
		current = names[0]
	}

	var choice string
	prompt := &survey.Select{
		Message: "Which SQL dialect do you target?",
		Options: names,
		Default: current,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", err
	}
	return choice, nil
}
