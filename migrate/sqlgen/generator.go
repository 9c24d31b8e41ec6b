// Package sqlgen generates table DDL, embedding foreign key fragments
// after the column definitions.
package sqlgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/satishbabariya/sqlkit/schema"
)

// ErrNoColumns is returned for a table without column definitions.
var ErrNoColumns = errors.New("table has no columns")

// Dialect is what table DDL needs from a SQL dialect.
type Dialect interface {
	schema.Quoter
	ColumnType(t schema.DataType) string
}

// CreateTable renders a CREATE TABLE statement for t. Foreign keys are
// appended in the order they were added to the table.
func CreateTable(t *schema.Table, d Dialect) (string, error) {
	columns := t.Columns()
	if len(columns) == 0 {
		return "", fmt.Errorf("create table %s: %w", t.Name(), ErrNoColumns)
	}

	defs := make([]string, len(columns))
	for i, c := range columns {
		def := d.Identifier(c.Name()) + " " + d.ColumnType(c.Type())
		if c.IsNotNull() {
			def += " NOT NULL"
		}
		defs[i] = def
	}

	var sb strings.Builder
	sb.WriteString("CREATE TABLE ")
	sb.WriteString(d.Identifier(t.Name()))
	sb.WriteString(" (")
	sb.WriteString(strings.Join(defs, ", "))

	if pk := t.PrimaryKey(); len(pk) > 0 {
		names := make([]string, len(pk))
		for i, c := range pk {
			names[i] = d.Identifier(c.Name())
		}
		sb.WriteString(", PRIMARY KEY (")
		sb.WriteString(strings.Join(names, ", "))
		sb.WriteString(")")
	}

	for _, fk := range t.ForeignKeys() {
		sb.WriteString(fk.Build(d))
	}
	sb.WriteString(")")

	return sb.String(), nil
}

// CreateTables renders CREATE TABLE statements for all tables, ordered so
// that referenced tables are created first.
func CreateTables(tables []*schema.Table, d Dialect) ([]string, error) {
	ordered, err := OrderTables(tables)
	if err != nil {
		return nil, err
	}

	stmts := make([]string, 0, len(ordered))
	for _, t := range ordered {
		stmt, err := CreateTable(t, d)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}
