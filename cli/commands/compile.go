package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/sqlkit/cli/internal/report"
	"github.com/satishbabariya/sqlkit/cli/internal/ui"
	"github.com/satishbabariya/sqlkit/cli/internal/watch"
	"github.com/satishbabariya/sqlkit/query/sqlgen"
)

func newCompileCommand(opts *options) *cobra.Command {
	var watchFile bool

	cmd := &cobra.Command{
		Use:   "compile [document]",
		Short: "Print CREATE TABLE statements and WHERE clauses for a document",
		Long: `Compile a sqlkit document for the configured dialect.

Tables are emitted in foreign key dependency order, followed by every named
filter rendered as a WHERE clause.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			d, err := sqlgen.NewDialect(cfg.Dialect)
			if err != nil {
				return err
			}
			if cfg.Format != "text" && cfg.Format != "markdown" {
				return fmt.Errorf("unknown format %q (want text or markdown)", cfg.Format)
			}

			path := documentPath(cfg, args)
			out := cmd.OutOrStdout()
			run := func() error {
				return compile(out, path, d, cfg.Format)
			}

			if !watchFile {
				return run()
			}

			w, err := watch.NewWatcher(path, run)
			if err != nil {
				return err
			}
			ui.Info(cmd.ErrOrStderr(), "watching %s", path)
			return w.Run(cmd.Context(), func(err error) {
				ui.Error(cmd.ErrOrStderr(), "%v", err)
			})
		},
	}

	cmd.Flags().String("format", "", "output format: text or markdown")
	cmd.Flags().BoolVarP(&watchFile, "watch", "w", false, "recompile whenever the document changes")
	return cmd
}

func compile(w io.Writer, path string, d sqlgen.Dialect, format string) error {
	_, s, err := loadSchema(path)
	if err != nil {
		return err
	}
	r, err := report.Compile(s, d)
	if err != nil {
		return err
	}

	if format == "markdown" {
		return ui.Markdown(w, r.Markdown())
	}
	return r.WriteText(w)
}
