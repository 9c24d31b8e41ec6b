// Package schema describes tables, columns and the referential-integrity
// constraints declared between them.
package schema

import "fmt"

// DataType is the logical type of a column.
type DataType int

const (
	TypeInt DataType = iota
	TypeBigInt
	TypeFloat
	TypeDouble
	TypeText
	TypeBool
	TypeTimestamp
)

var dataTypeNames = map[DataType]string{
	TypeInt:       "int",
	TypeBigInt:    "bigint",
	TypeFloat:     "float",
	TypeDouble:    "double",
	TypeText:      "text",
	TypeBool:      "bool",
	TypeTimestamp: "timestamp",
}

func (t DataType) String() string {
	if name, ok := dataTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DataType(%d)", int(t))
}

// ParseDataType maps a type name as written in documents ("int", "text", ...)
// to a DataType.
func ParseDataType(name string) (DataType, error) {
	for t, n := range dataTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown column type %q", name)
}

// Column is a named, typed column owned by exactly one Table.
type Column struct {
	name       string
	typ        DataType
	table      *Table
	notNull    bool
	primaryKey bool
}

// Name returns the unqualified column name.
func (c *Column) Name() string { return c.name }

// Type returns the column's data type.
func (c *Column) Type() DataType { return c.typ }

// Table returns the owning table.
func (c *Column) Table() *Table { return c.table }

// IsNotNull reports whether the column was declared NOT NULL.
func (c *Column) IsNotNull() bool { return c.notNull }

// IsPrimaryKey reports whether the column is part of the primary key.
func (c *Column) IsPrimaryKey() bool { return c.primaryKey }

// QualifiedName returns "<table>.<column>" using the table's real name.
func (c *Column) QualifiedName() string {
	return c.table.name + "." + c.name
}

// NotNull marks the column NOT NULL. Intended for table definition only.
func (c *Column) NotNull() *Column {
	c.notNull = true
	return c
}

// PrimaryKey marks the column as part of the primary key. Primary key
// columns are implicitly NOT NULL.
func (c *Column) PrimaryKey() *Column {
	c.primaryKey = true
	c.notNull = true
	return c
}

// Table is a named set of columns plus the foreign keys declared on it.
type Table struct {
	name        string
	alias       string
	columns     []*Column
	byName      map[string]*Column
	foreignKeys *ForeignKeySet
}

// NewTable creates an empty table definition.
func NewTable(name string) *Table {
	return &Table{
		name:        name,
		byName:      make(map[string]*Column),
		foreignKeys: NewForeignKeySet(),
	}
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Alias returns the alias set with As, or "".
func (t *Table) Alias() string { return t.alias }

// AddColumn appends a column to the table. Adding a name twice returns the
// existing column unchanged.
func (t *Table) AddColumn(name string, typ DataType) *Column {
	if c, ok := t.byName[name]; ok {
		return c
	}
	c := &Column{name: name, typ: typ, table: t}
	t.columns = append(t.columns, c)
	t.byName[name] = c
	return c
}

// Column looks a column up by name.
func (t *Table) Column(name string) (*Column, bool) {
	c, ok := t.byName[name]
	return c, ok
}

// Columns returns the columns in declaration order.
func (t *Table) Columns() []*Column {
	out := make([]*Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// PrimaryKey returns the primary key columns in declaration order.
func (t *Table) PrimaryKey() []*Column {
	var pk []*Column
	for _, c := range t.columns {
		if c.primaryKey {
			pk = append(pk, c)
		}
	}
	return pk
}

// As returns a copy of the table carrying an alias. Columns of the copy
// belong to the copy, so references through it render as alias.column.
func (t *Table) As(alias string) *Table {
	aliased := NewTable(t.name)
	aliased.alias = alias
	for _, c := range t.columns {
		nc := aliased.AddColumn(c.name, c.typ)
		nc.notNull = c.notNull
		nc.primaryKey = c.primaryKey
	}
	aliased.foreignKeys = t.foreignKeys
	return aliased
}

// AddForeignKey validates and registers a foreign key whose key columns
// belong to this table. It reports false when an equal key is already
// registered.
func (t *Table) AddForeignKey(keys, refs []*Column, actions ...ConstraintAction) (bool, error) {
	fk, err := NewForeignKey(keys, refs, t.name, actions...)
	if err != nil {
		return false, fmt.Errorf("table %s: %w", t.name, err)
	}
	return t.foreignKeys.Add(fk), nil
}

// ForeignKeys returns the registered foreign keys in insertion order.
func (t *Table) ForeignKeys() []*ForeignKey {
	return t.foreignKeys.List()
}
