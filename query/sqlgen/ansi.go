package sqlgen

import (
	"github.com/satishbabariya/sqlkit/query/filter"
	"github.com/satishbabariya/sqlkit/schema"
)

// ANSI is a plain dialect: identifiers are left unquoted and literals use
// standard SQL spelling. Standard SQL has no REGEXP operator.
type ANSI struct{}

func (ANSI) Name() string { return "ansi" }
func (ANSI) Operator(op filter.Operator) string { return withoutRegexp(op) }
func (ANSI) Literal(v any) string { return formatLiteral(v, quoteString, boolWord) }
func (ANSI) Identifier(name string) string { return name }
func (d ANSI) Column(c *schema.Column) string { return columnRef(d, c) }

func (ANSI) ColumnType(t schema.DataType) string {
	switch t {
	case schema.TypeInt:
		return "INTEGER"
	case schema.TypeBigInt:
		return "BIGINT"
	case schema.TypeFloat:
		return "REAL"
	case schema.TypeDouble:
		return "DOUBLE PRECISION"
	case schema.TypeBool:
		return "BOOLEAN"
	case schema.TypeTimestamp:
		return "TIMESTAMP"
	default:
		return "VARCHAR(255)"
	}
}
