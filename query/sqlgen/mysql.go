package sqlgen

import (
	"strings"

	"github.com/satishbabariya/sqlkit/query/filter"
	"github.com/satishbabariya/sqlkit/schema"
)

// MySQL renders MySQL and MariaDB.
type MySQL struct{}

var mysqlStringEscaper = strings.NewReplacer(`\`, `\\`, `'`, `''`)

func (MySQL) Name() string { return "mysql" }
func (MySQL) Operator(op filter.Operator) string { return op.String() }

func (MySQL) Literal(v any) string {
	return formatLiteral(v, func(s string) string {
		return "'" + mysqlStringEscaper.Replace(s) + "'"
	}, boolWord)
}

func (MySQL) Identifier(name string) string { return quoteWith(name, "`", "`") }
func (d MySQL) Column(c *schema.Column) string { return columnRef(d, c) }

func (MySQL) ColumnType(t schema.DataType) string {
	switch t {
	case schema.TypeInt:
		return "INT"
	case schema.TypeBigInt:
		return "BIGINT"
	case schema.TypeFloat:
		return "FLOAT"
	case schema.TypeDouble:
		return "DOUBLE"
	case schema.TypeBool:
		return "BOOLEAN"
	case schema.TypeTimestamp:
		return "DATETIME"
	default:
		return "TEXT"
	}
}
