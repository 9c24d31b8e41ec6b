package sqlgen

import (
	"github.com/satishbabariya/sqlkit/query/filter"
	"github.com/satishbabariya/sqlkit/schema"
)

// SQLServer renders T-SQL. Booleans become BIT literals. T-SQL has no
// regular expression operator.
type SQLServer struct{}

func (SQLServer) Name() string { return "sqlserver" }
func (SQLServer) Operator(op filter.Operator) string { return withoutRegexp(op) }
func (SQLServer) Literal(v any) string { return formatLiteral(v, quoteString, boolBit) }
func (SQLServer) Identifier(name string) string { return quoteWith(name, "[", "]") }
func (d SQLServer) Column(c *schema.Column) string { return columnRef(d, c) }

func (SQLServer) FunctionName(name filter.FuncName) string {
	switch name {
	case filter.FuncLength:
		return "LEN"
	case filter.FuncSubstr:
		return "SUBSTRING"
	case filter.FuncNow:
		return "GETDATE"
	default:
		return string(name)
	}
}

func (SQLServer) ColumnType(t schema.DataType) string {
	switch t {
	case schema.TypeInt:
		return "INT"
	case schema.TypeBigInt:
		return "BIGINT"
	case schema.TypeFloat:
		return "REAL"
	case schema.TypeDouble:
		return "FLOAT"
	case schema.TypeBool:
		return "BIT"
	case schema.TypeTimestamp:
		return "DATETIME2"
	default:
		return "NVARCHAR(MAX)"
	}
}
