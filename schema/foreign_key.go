package schema

import (
	"hash/fnv"
	"math/bits"
	"sort"
	"strings"

	"github.com/satishbabariya/sqlkit/internal/debug"
)

// Quoter quotes identifiers for a target SQL dialect.
type Quoter interface {
	Identifier(name string) string
}

// ForeignKey is a validated, immutable FOREIGN KEY ... REFERENCES descriptor.
// Its identity is the pair of qualified column-name sets; column order and
// actions do not take part in Equal or Hash.
type ForeignKey struct {
	keyColumns []*Column
	refColumns []*Column
	keyNames   []string
	refNames   []string
	actions    []ConstraintAction

	keySet []string
	refSet []string
}

// NewForeignKey validates a foreign key declared on owningTable. Rules are
// checked in order and the first failure is returned as *ConstructionError.
func NewForeignKey(keys, refs []*Column, owningTable string, actions ...ConstraintAction) (*ForeignKey, error) {
	if len(keys) == 0 || len(refs) == 0 || len(keys) != len(refs) {
		return nil, &ConstructionError{Err: ErrInvalidForeignKey}
	}
	if !sameTable(keys, owningTable) {
		return nil, &ConstructionError{Err: ErrForeignTableColumns}
	}
	if !sameTable(refs, refs[0].table.name) {
		return nil, &ConstructionError{Err: ErrMultipleRefTables}
	}

	fk := &ForeignKey{
		keyColumns: append([]*Column(nil), keys...),
		refColumns: append([]*Column(nil), refs...),
		keyNames:   qualifiedNames(keys),
		refNames:   qualifiedNames(refs),
		actions:    append([]ConstraintAction(nil), actions...),
	}
	fk.keySet = uniqueSorted(fk.keyNames)
	fk.refSet = uniqueSorted(fk.refNames)
	return fk, nil
}

func sameTable(columns []*Column, table string) bool {
	for _, c := range columns {
		if c.table.name != table {
			return false
		}
	}
	return true
}

func qualifiedNames(columns []*Column) []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.QualifiedName()
	}
	return names
}

func uniqueSorted(names []string) []string {
	set := append([]string(nil), names...)
	sort.Strings(set)
	out := set[:0]
	for i, n := range set {
		if i == 0 || n != set[i-1] {
			out = append(out, n)
		}
	}
	return out
}

// KeyNames returns the qualified key column names in declaration order.
func (fk *ForeignKey) KeyNames() []string { return append([]string(nil), fk.keyNames...) }

// RefNames returns the qualified referenced column names in declaration order.
func (fk *ForeignKey) RefNames() []string { return append([]string(nil), fk.refNames...) }

// RefTable returns the name of the referenced table.
func (fk *ForeignKey) RefTable() string { return fk.refColumns[0].table.name }

// Actions returns the ON UPDATE / ON DELETE actions in declaration order.
func (fk *ForeignKey) Actions() []ConstraintAction {
	return append([]ConstraintAction(nil), fk.actions...)
}

// Equal reports whether both keys relate the same column sets.
func (fk *ForeignKey) Equal(other *ForeignKey) bool {
	if fk == nil || other == nil {
		return fk == other
	}
	return equalStrings(fk.keySet, other.keySet) && equalStrings(fk.refSet, other.refSet)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var hashSeed = hashString("foreignKey")

func hashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

func foldNames(names []string) uint64 {
	acc := hashSeed
	for _, n := range names {
		acc ^= hashSeed ^ hashString(n)
	}
	return acc
}

// Hash is consistent with Equal: equal keys hash equal regardless of
// column order, duplicated columns or actions.
func (fk *ForeignKey) Hash() uint64 {
	return foldNames(fk.keySet) ^ bits.RotateLeft64(foldNames(fk.refSet), 32)
}

// Build renders the constraint as a fragment appended after the column
// definitions of a CREATE TABLE statement:
//
//	, FOREIGN KEY (a, b) REFERENCES t(x, y) ON DELETE CASCADE
func (fk *ForeignKey) Build(q Quoter) string {
	var sb strings.Builder
	sb.WriteString(", FOREIGN KEY (")
	sb.WriteString(quoteNames(fk.keyColumns, q))
	sb.WriteString(") REFERENCES ")
	sb.WriteString(q.Identifier(fk.RefTable()))
	sb.WriteString("(")
	sb.WriteString(quoteNames(fk.refColumns, q))
	sb.WriteString(")")
	for _, a := range fk.actions {
		sb.WriteString(" ")
		sb.WriteString(a.String())
	}

	debug.Debug("foreign key compiled", "ref_table", fk.RefTable(), "columns", len(fk.keyColumns), "actions", len(fk.actions))
	return sb.String()
}

func quoteNames(columns []*Column, q Quoter) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = q.Identifier(c.name)
	}
	return strings.Join(quoted, ", ")
}
