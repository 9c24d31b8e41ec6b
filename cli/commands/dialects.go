package commands

import (
	"github.com/spf13/cobra"

	"github.com/satishbabariya/sqlkit/cli/internal/ui"
	"github.com/satishbabariya/sqlkit/query/filter"
	"github.com/satishbabariya/sqlkit/query/sqlgen"
	"github.com/satishbabariya/sqlkit/schema"
)

func newDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported SQL dialects",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0)
			for _, d := range sqlgen.Dialects() {
				regexp := d.Operator(filter.OpRegexp)
				if regexp == "" {
					regexp = "-"
				}
				rows = append(rows, []string{
					ui.Highlight(d.Name()),
					d.Identifier("order"),
					d.Literal("it's"),
					d.Literal(true),
					regexp,
					d.ColumnType(schema.TypeText),
				})
			}
			return ui.Table(cmd.OutOrStdout(),
				[]string{"Dialect", "Identifier", "String", "Boolean", "Regexp", "Text type"}, rows)
		},
	}
}
