// Package sqlgen provides the SQL dialects used to render filters and DDL.
package sqlgen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/satishbabariya/sqlkit/query/filter"
	"github.com/satishbabariya/sqlkit/schema"
)

// Dialect renders operators, literals, identifiers, column references and
// column types for one database engine.
type Dialect interface {
	filter.Dialect
	Name() string
	ColumnType(t schema.DataType) string
}

var providers = map[string]func() Dialect{
	"ansi":       func() Dialect { return ANSI{} },
	"postgresql": func() Dialect { return Postgres{} },
	"postgres":   func() Dialect { return Postgres{} },
	"mysql":      func() Dialect { return MySQL{} },
	"sqlite":     func() Dialect { return SQLite{} },
	"sqlite3":    func() Dialect { return SQLite{} },
	"sqlserver":  func() Dialect { return SQLServer{} },
	"mssql":      func() Dialect { return SQLServer{} },
}

// NewDialect returns the dialect for a provider name such as "postgresql"
// or "mysql".
func NewDialect(provider string) (Dialect, error) {
	if mk, ok := providers[strings.ToLower(provider)]; ok {
		return mk(), nil
	}
	return nil, fmt.Errorf("unsupported provider: %s", provider)
}

// Dialects returns one instance of every supported dialect, sorted by name.
func Dialects() []Dialect {
	seen := make(map[string]Dialect)
	for _, mk := range providers {
		d := mk()
		seen[d.Name()] = d
	}
	out := make([]Dialect, 0, len(seen))
	for _, d := range seen {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Where prefixes a compiled filter with WHERE.
func Where(f filter.Filter, d Dialect) (string, error) {
	sql, err := f.Build(d)
	if err != nil {
		return "", fmt.Errorf("failed to build where clause: %w", err)
	}
	return "WHERE " + sql, nil
}

// quoteString wraps s in single quotes, doubling embedded quotes.
func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func boolWord(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func boolBit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// withoutRegexp renders op for engines without a regular expression
// operator.
func withoutRegexp(op filter.Operator) string {
	if op == filter.OpRegexp || op == filter.OpNotRegexp {
		return ""
	}
	return op.String()
}

// formatLiteral renders the scalar kinds filter values carry.
func formatLiteral(v any, str func(string) string, boolean func(bool) string) string {
	switch x := v.(type) {
	case string:
		return str(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return boolean(x)
	default:
		return str(fmt.Sprint(x))
	}
}

// columnRef renders alias.column for aliased tables and column otherwise.
func columnRef(q schema.Quoter, c *schema.Column) string {
	if alias := c.Table().Alias(); alias != "" {
		return q.Identifier(alias) + "." + q.Identifier(c.Name())
	}
	return q.Identifier(c.Name())
}

// quoteWith wraps name in open/close, doubling any embedded close rune.
func quoteWith(name, open, close string) string {
	return open + strings.ReplaceAll(name, close, close+close) + close
}
