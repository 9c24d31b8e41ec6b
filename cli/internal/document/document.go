// Package document reads the YAML documents compiled by the CLI: table
// definitions with foreign keys, plus named filters written in the filter
// DSL.
package document

import (
	"errors"
	"fmt"
	"io"
	"strings"

	goversion "github.com/hashicorp/go-version"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/satishbabariya/sqlkit/internal/debug"
	"github.com/satishbabariya/sqlkit/internal/dsl"
	"github.com/satishbabariya/sqlkit/query/filter"
	"github.com/satishbabariya/sqlkit/schema"
)

// ErrIncompatible is returned when a document requires another CLI version.
var ErrIncompatible = errors.New("document requires a different sqlkit version")

// Document is the decoded YAML file.
type Document struct {
	Requires string      `yaml:"requires,omitempty"`
	Tables   []TableDef  `yaml:"tables"`
	Filters  []FilterDef `yaml:"filters,omitempty"`
}

type TableDef struct {
	Name        string          `yaml:"name"`
	Columns     []ColumnDef     `yaml:"columns"`
	ForeignKeys []ForeignKeyDef `yaml:"foreign_keys,omitempty"`
}

type ColumnDef struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	NotNull    bool   `yaml:"not_null,omitempty"`
	PrimaryKey bool   `yaml:"primary_key,omitempty"`
}

type ForeignKeyDef struct {
	Columns    []string  `yaml:"columns"`
	References Reference `yaml:"references"`
	OnUpdate   string    `yaml:"on_update,omitempty"`
	OnDelete   string    `yaml:"on_delete,omitempty"`
}

type Reference struct {
	Table   string   `yaml:"table"`
	Columns []string `yaml:"columns"`
}

type FilterDef struct {
	Name  string `yaml:"name"`
	Where string `yaml:"where"`
}

// Schema is a document resolved into tables and compiled-ready filters.
type Schema struct {
	Tables  []*schema.Table
	Filters []NamedFilter
}

type NamedFilter struct {
	Name   string
	Filter filter.Filter
}

// Load reads and decodes the document at path.
func Load(fs afero.Fs, path string) (*Document, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode reads a document, rejecting unknown keys.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return &doc, nil
}

// Check verifies that current satisfies the document's requires constraint.
func (d *Document) Check(current string) error {
	if d.Requires == "" {
		return nil
	}
	constraints, err := goversion.NewConstraint(d.Requires)
	if err != nil {
		return fmt.Errorf("invalid requires constraint %q: %w", d.Requires, err)
	}
	v, err := goversion.NewVersion(current)
	if err != nil {
		return fmt.Errorf("invalid version format: %w", err)
	}
	if !constraints.Check(v) {
		return fmt.Errorf("%w: %s, running %s", ErrIncompatible, d.Requires, current)
	}
	return nil
}

// Schema builds the tables, then their foreign keys, then parses filters
// against the finished tables. Foreign keys may reference tables declared
// later in the document.
func (d *Document) Schema() (*Schema, error) {
	s := &Schema{}
	byName := make(map[string]*schema.Table, len(d.Tables))

	for _, td := range d.Tables {
		if _, dup := byName[td.Name]; dup {
			return nil, fmt.Errorf("table %s declared twice", td.Name)
		}
		t := schema.NewTable(td.Name)
		for _, cd := range td.Columns {
			typ, err := schema.ParseDataType(cd.Type)
			if err != nil {
				return nil, fmt.Errorf("table %s column %s: %w", td.Name, cd.Name, err)
			}
			c := t.AddColumn(cd.Name, typ)
			if cd.NotNull {
				c.NotNull()
			}
			if cd.PrimaryKey {
				c.PrimaryKey()
			}
		}
		byName[td.Name] = t
		s.Tables = append(s.Tables, t)
	}

	for _, td := range d.Tables {
		t := byName[td.Name]
		for _, fd := range td.ForeignKeys {
			if err := addForeignKey(t, fd, byName); err != nil {
				return nil, err
			}
		}
	}

	cat := dsl.NewTables(s.Tables...)
	for _, fd := range d.Filters {
		f, err := dsl.Parse(fd.Where, cat)
		if err != nil {
			return nil, fmt.Errorf("filter %s: %w", fd.Name, err)
		}
		s.Filters = append(s.Filters, NamedFilter{Name: fd.Name, Filter: f})
	}

	return s, nil
}

func addForeignKey(t *schema.Table, fd ForeignKeyDef, tables map[string]*schema.Table) error {
	keys, err := lookupColumns(t, fd.Columns)
	if err != nil {
		return err
	}
	ref, ok := tables[fd.References.Table]
	if !ok {
		return fmt.Errorf("table %s: foreign key references unknown table %s", t.Name(), fd.References.Table)
	}
	refs, err := lookupColumns(ref, fd.References.Columns)
	if err != nil {
		return err
	}

	var actions []schema.ConstraintAction
	if fd.OnUpdate != "" {
		b, err := parseBehavior(fd.OnUpdate)
		if err != nil {
			return fmt.Errorf("table %s: %w", t.Name(), err)
		}
		actions = append(actions, schema.OnUpdate(b))
	}
	if fd.OnDelete != "" {
		b, err := parseBehavior(fd.OnDelete)
		if err != nil {
			return fmt.Errorf("table %s: %w", t.Name(), err)
		}
		actions = append(actions, schema.OnDelete(b))
	}

	added, err := t.AddForeignKey(keys, refs, actions...)
	if err != nil {
		return err
	}
	if !added {
		debug.Warn("duplicate foreign key ignored", "table", t.Name(),
			"columns", strings.Join(fd.Columns, ","), "references", fd.References.Table)
	}
	return nil
}

func lookupColumns(t *schema.Table, names []string) ([]*schema.Column, error) {
	columns := make([]*schema.Column, len(names))
	for i, name := range names {
		c, ok := t.Column(name)
		if !ok {
			return nil, fmt.Errorf("table %s has no column %s", t.Name(), name)
		}
		columns[i] = c
	}
	return columns, nil
}

// parseBehavior accepts behaviors in any case, e.g. "cascade" or "set null".
func parseBehavior(s string) (schema.Behavior, error) {
	return schema.ParseBehavior(strings.ToUpper(strings.TrimSpace(s)))
}

// Encode writes doc in canonical form: two-space indentation, keys in
// declaration order, empty optional sections omitted.
func Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return enc.Close()
}
