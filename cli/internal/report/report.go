// Package report compiles a resolved document for one dialect and renders
// the result as plain SQL text or as markdown.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/satishbabariya/sqlkit/cli/internal/document"
	"github.com/satishbabariya/sqlkit/internal/debug"
	ddl "github.com/satishbabariya/sqlkit/migrate/sqlgen"
	"github.com/satishbabariya/sqlkit/query/sqlgen"
)

// Report holds every statement and WHERE clause compiled from a document.
type Report struct {
	Dialect    string
	Statements []string
	Filters    []Filter
}

type Filter struct {
	Name  string
	Where string
}

// Compile renders CREATE TABLE statements in dependency order followed by
// the document's filters.
func Compile(s *document.Schema, d sqlgen.Dialect) (*Report, error) {
	stmts, err := ddl.CreateTables(s.Tables, d)
	if err != nil {
		return nil, err
	}

	r := &Report{Dialect: d.Name(), Statements: stmts}
	for _, nf := range s.Filters {
		where, err := sqlgen.Where(nf.Filter, d)
		if err != nil {
			return nil, fmt.Errorf("filter %s: %w", nf.Name, err)
		}
		r.Filters = append(r.Filters, Filter{Name: nf.Name, Where: where})
	}
	debug.Info("document compiled", "dialect", r.Dialect,
		"statements", len(r.Statements), "filters", len(r.Filters))
	return r, nil
}

// WriteText writes the report as a SQL script.
func (r *Report) WriteText(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "-- dialect: %s\n", r.Dialect)
	for _, stmt := range r.Statements {
		sb.WriteString(stmt)
		sb.WriteString(";\n")
	}
	for _, f := range r.Filters {
		fmt.Fprintf(&sb, "\n-- %s\n%s\n", f.Name, f.Where)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Markdown returns the report as a markdown document.
func (r *Report) Markdown() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Compiled for %s\n", r.Dialect)

	if len(r.Statements) > 0 {
		sb.WriteString("\n## Tables\n\n```sql\n")
		for _, stmt := range r.Statements {
			sb.WriteString(stmt)
			sb.WriteString(";\n")
		}
		sb.WriteString("```\n")
	}

	if len(r.Filters) > 0 {
		sb.WriteString("\n## Filters\n")
		for _, f := range r.Filters {
			fmt.Fprintf(&sb, "\n### %s\n\n```sql\n%s\n```\n", f.Name, f.Where)
		}
	}
	return sb.String()
}
