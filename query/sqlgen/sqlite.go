package sqlgen

import (
	"math"

	"github.com/satishbabariya/sqlkit/query/filter"
	"github.com/satishbabariya/sqlkit/schema"
)

// SQLite renders SQLite 3.
type SQLite struct{}

func (SQLite) Name() string { return "sqlite" }
func (SQLite) Operator(op filter.Operator) string { return op.String() }
func (SQLite) Literal(v any) string { return formatLiteral(v, quoteString, boolWord) }
func (SQLite) Identifier(name string) string { return quoteWith(name, `"`, `"`) }
func (d SQLite) Column(c *schema.Column) string { return columnRef(d, c) }

// NonFinite spells the infinities as overflowing reals. SQLite stores NaN
// as NULL, so NaN has no literal.
func (SQLite) NonFinite(f float64) (string, bool) {
	switch {
	case math.IsInf(f, 1):
		return "9e999", true
	case math.IsInf(f, -1):
		return "-9e999", true
	default:
		return "", false
	}
}

// FunctionName maps NOW to datetime, which defaults to the current time.
func (SQLite) FunctionName(name filter.FuncName) string {
	if name == filter.FuncNow {
		return "datetime"
	}
	return string(name)
}

func (SQLite) ColumnType(t schema.DataType) string {
	switch t {
	case schema.TypeInt, schema.TypeBigInt:
		return "INTEGER"
	case schema.TypeFloat, schema.TypeDouble:
		return "REAL"
	case schema.TypeBool:
		return "BOOLEAN"
	case schema.TypeTimestamp:
		return "TIMESTAMP"
	default:
		return "TEXT"
	}
}
