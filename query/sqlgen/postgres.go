package sqlgen

import (
	"math"
	"strings"

	"github.com/lib/pq"

	"github.com/satishbabariya/sqlkit/query/filter"
	"github.com/satishbabariya/sqlkit/schema"
)

// Postgres renders PostgreSQL. Quoting is delegated to lib/pq.
type Postgres struct{}

func (Postgres) Name() string { return "postgresql" }

func (Postgres) Operator(op filter.Operator) string {
	switch op {
	case filter.OpRegexp:
		return "~"
	case filter.OpNotRegexp:
		return "!~"
	default:
		return op.String()
	}
}

func (Postgres) Literal(v any) string {
	return formatLiteral(v, quoteLiteralPostgres, boolWord)
}

// NonFinite spells NaN and the infinities as quoted special values, which
// Postgres casts to the compared float column.
func (Postgres) NonFinite(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "'NaN'", true
	case math.IsInf(f, 1):
		return "'Infinity'", true
	default:
		return "'-Infinity'", true
	}
}

// pq prefixes escape-string literals with a space; drop it so the
// compiler's own separators stay single.
func quoteLiteralPostgres(s string) string {
	return strings.TrimLeft(pq.QuoteLiteral(s), " ")
}

func (Postgres) Identifier(name string) string { return pq.QuoteIdentifier(name) }

func (d Postgres) Column(c *schema.Column) string { return columnRef(d, c) }

func (Postgres) ColumnType(t schema.DataType) string {
	switch t {
	case schema.TypeInt:
		return "integer"
	case schema.TypeBigInt:
		return "bigint"
	case schema.TypeFloat:
		return "real"
	case schema.TypeDouble:
		return "double precision"
	case schema.TypeBool:
		return "boolean"
	case schema.TypeTimestamp:
		return "timestamp"
	default:
		return "text"
	}
}
