// Package dsl parses a small text syntax into filter trees:
//
//	users.age >= 18 and (users.name like 'a%' or users.id in [1, 2, 3])
//
// Columns are always qualified with their table and are resolved against a
// Catalog. OR binds looser than AND; both associate to the left.
package dsl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/satishbabariya/sqlkit/query/filter"
	"github.com/satishbabariya/sqlkit/schema"
)

var (
	ErrUnknownTable    = errors.New("unknown table")
	ErrUnknownColumn   = errors.New("unknown column")
	ErrMixedArray      = errors.New("array elements must share one type")
	ErrEmptyArray      = errors.New("empty array has no element type")
	ErrUnknownFunction = errors.New("unknown function")
)

// Catalog resolves table names.
type Catalog interface {
	Table(name string) (*schema.Table, bool)
}

// Tables is a Catalog backed by a map keyed by table name.
type Tables map[string]*schema.Table

// NewTables indexes tables by name.
func NewTables(tables ...*schema.Table) Tables {
	m := make(Tables, len(tables))
	for _, t := range tables {
		m[t.Name()] = t
	}
	return m
}

// Table implements Catalog.
func (m Tables) Table(name string) (*schema.Table, bool) {
	t, ok := m[name]
	return t, ok
}

// Parse turns input into a filter.Filter.
func Parse(input string, cat Catalog) (filter.Filter, error) {
	ast, err := parser.ParseString("", input)
	if err != nil {
		return filter.Filter{}, fmt.Errorf("parse filter: %w", err)
	}
	b := &builder{cat: cat}
	f, err := b.expression(ast)
	if err != nil {
		return filter.Filter{}, fmt.Errorf("parse filter: %w", err)
	}
	return f, nil
}

type builder struct {
	cat Catalog
}

func (b *builder) expression(e *expression) (filter.Filter, error) {
	acc, err := b.conjunction(e.Or[0])
	if err != nil {
		return filter.Filter{}, err
	}
	for _, c := range e.Or[1:] {
		next, err := b.conjunction(c)
		if err != nil {
			return filter.Filter{}, err
		}
		acc = filter.Or(acc, next)
	}
	return acc, nil
}

func (b *builder) conjunction(c *conjunction) (filter.Filter, error) {
	acc, err := b.term(c.And[0])
	if err != nil {
		return filter.Filter{}, err
	}
	for _, t := range c.And[1:] {
		next, err := b.term(t)
		if err != nil {
			return filter.Filter{}, err
		}
		acc = filter.And(acc, next)
	}
	return acc, nil
}

func (b *builder) term(t *term) (filter.Filter, error) {
	if t.Group != nil {
		return b.expression(t.Group)
	}
	return b.comparison(t.Comparison)
}

func (b *builder) comparison(c *comparison) (filter.Filter, error) {
	left, err := b.operand(c.Left)
	if err != nil {
		return filter.Filter{}, err
	}
	right, err := b.operand(c.Right)
	if err != nil {
		return filter.Filter{}, err
	}
	return filter.New(left, c.Op.resolve(), right), nil
}

var symbolOperators = map[string]filter.Operator{
	"=":  filter.OpEqual,
	"<>": filter.OpNotEqual,
	"!=": filter.OpNotEqual,
	"<":  filter.OpLess,
	"<=": filter.OpLessOrEqual,
	">":  filter.OpGreater,
	">=": filter.OpGreaterOrEqual,
}

var wordOperators = map[string][2]filter.Operator{
	"LIKE":    {filter.OpLike, filter.OpNotLike},
	"IN":      {filter.OpIn, filter.OpNotIn},
	"BETWEEN": {filter.OpBetween, filter.OpNotBetween},
	"REGEXP":  {filter.OpRegexp, filter.OpNotRegexp},
}

func (o *operator) resolve() filter.Operator {
	switch {
	case o.Symbol != "":
		return symbolOperators[o.Symbol]
	case o.Is != "":
		if o.IsNot {
			return filter.OpIsNot
		}
		return filter.OpIs
	}
	pair := wordOperators[strings.ToUpper(o.Word)]
	if o.Not {
		return pair[1]
	}
	return pair[0]
}

func (b *builder) operand(o *operand) (filter.Value, error) {
	switch {
	case o.Array != nil:
		return arrayValue(o.Array.Elems)
	case o.Call != nil:
		return b.call(o.Call)
	case o.Column != nil:
		return b.column(o.Column)
	default:
		return literalValue(o.Literal)
	}
}

func (b *builder) column(p *columnPath) (filter.Value, error) {
	t, ok := b.cat.Table(p.Table)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, p.Table)
	}
	c, ok := t.Column(p.Column)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownColumn, p.Table, p.Column)
	}
	return filter.Col(c), nil
}

var functions = map[string]struct {
	name  filter.FuncName
	arity int
}{
	"upper":  {filter.FuncUpper, 1},
	"lower":  {filter.FuncLower, 1},
	"length": {filter.FuncLength, 1},
	"abs":    {filter.FuncAbs, 1},
	"round":  {filter.FuncRound, 2},
	"substr": {filter.FuncSubstr, 3},
	"now":    {filter.FuncNow, 0},
}

func (b *builder) call(c *funcCall) (filter.Value, error) {
	fn, ok := functions[strings.ToLower(c.Name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, c.Name)
	}
	if len(c.Args) != fn.arity {
		return nil, fmt.Errorf("%s takes %d argument(s), got %d", c.Name, fn.arity, len(c.Args))
	}
	args := make([]filter.Value, len(c.Args))
	for i, a := range c.Args {
		v, err := b.operand(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return filter.Compute(filter.Call(fn.name, args...)), nil
}

func unquote(s string) string {
	return strings.ReplaceAll(s[1:len(s)-1], "''", "'")
}

func isDouble(n string) bool {
	return strings.ContainsAny(n, ".eE")
}

func literalValue(l *literal) (filter.Value, error) {
	switch {
	case l.String != nil:
		return filter.StringValue(unquote(*l.String)), nil
	case l.Bool != nil:
		return filter.BoolValue(strings.EqualFold(*l.Bool, "true")), nil
	case isDouble(*l.Number):
		f, err := strconv.ParseFloat(*l.Number, 64)
		if err != nil {
			return nil, err
		}
		return filter.DoubleValue(f), nil
	default:
		n, err := strconv.Atoi(*l.Number)
		if err != nil {
			return nil, err
		}
		return filter.IntValue(n), nil
	}
}

// arrayValue builds a homogeneous array. Integers mixed with doubles are
// widened to doubles; any other mix is rejected.
func arrayValue(elems []*literal) (filter.Value, error) {
	if len(elems) == 0 {
		return nil, ErrEmptyArray
	}

	var (
		strs    filter.StringArray
		bools   filter.BoolArray
		ints    filter.IntArray
		doubles filter.DoubleArray
		allInts = true
	)
	for _, e := range elems {
		v, err := literalValue(e)
		if err != nil {
			return nil, err
		}
		switch x := v.(type) {
		case filter.StringValue:
			strs = append(strs, string(x))
		case filter.BoolValue:
			bools = append(bools, bool(x))
		case filter.IntValue:
			ints = append(ints, int(x))
			doubles = append(doubles, float64(x))
		case filter.DoubleValue:
			allInts = false
			doubles = append(doubles, float64(x))
		}
	}

	switch len(elems) {
	case len(strs):
		return strs, nil
	case len(bools):
		return bools, nil
	case len(doubles):
		if allInts {
			return ints, nil
		}
		return doubles, nil
	}
	return nil, ErrMixedArray
}
