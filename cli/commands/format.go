package commands

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/sqlkit/cli/internal/config"
	"github.com/satishbabariya/sqlkit/cli/internal/document"
	"github.com/satishbabariya/sqlkit/cli/internal/ui"
)

var errNotFormatted = errors.New("document is not formatted")

func newFormatCommand(opts *options) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:     "format [document]",
		Aliases: []string{"fmt"},
		Short:   "Rewrite a document in canonical form",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := documentPath(opts.cfg, args)

			content, err := afero.ReadFile(config.AppFs, path)
			if err != nil {
				return fmt.Errorf("failed to read document: %w", err)
			}
			doc, err := document.Decode(bytes.NewReader(content))
			if err != nil {
				return err
			}
			// Refuse to format documents that do not resolve.
			if _, err := doc.Schema(); err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := document.Encode(&buf, doc); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if bytes.Equal(buf.Bytes(), content) {
				ui.Success(out, "%s is already formatted", path)
				return nil
			}
			if check {
				return fmt.Errorf("%w: %s", errNotFormatted, path)
			}

			info, err := config.AppFs.Stat(path)
			mode := os.FileMode(0644)
			if err == nil {
				mode = info.Mode().Perm()
			}
			if err := afero.WriteFile(config.AppFs, path, buf.Bytes(), mode); err != nil {
				return fmt.Errorf("failed to write formatted document: %w", err)
			}
			ui.Success(out, "Formatted %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "fail instead of rewriting when the document is not formatted")
	return cmd
}
