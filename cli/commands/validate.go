package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/sqlkit/cli/internal/ui"
	"github.com/satishbabariya/sqlkit/query/sqlgen"
)

func newValidateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [document]",
		Short: "Validate a sqlkit document",
		Long: `Validate a sqlkit document without printing SQL.

This command will:
- Decode the YAML and reject unknown keys
- Check the requires constraint against this version
- Resolve tables, foreign keys and filters
- Compile every filter for the configured dialect`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := sqlgen.NewDialect(opts.cfg.Dialect)
			if err != nil {
				return err
			}

			path := documentPath(opts.cfg, args)
			_, s, err := loadSchema(path)
			if err != nil {
				return err
			}

			fks := 0
			for _, t := range s.Tables {
				fks += len(t.ForeignKeys())
			}
			for _, nf := range s.Filters {
				if _, err := nf.Filter.Build(d); err != nil {
					return fmt.Errorf("filter %s: %w", nf.Name, err)
				}
			}

			out := cmd.OutOrStdout()
			ui.Title(out, "sqlkit validate", d.Name())
			ui.Success(out, "%s is valid", path)
			ui.Info(out, "%d table(s), %d foreign key(s), %d filter(s)", len(s.Tables), fks, len(s.Filters))
			return nil
		},
	}
}
