// Package filter builds boolean predicate trees and compiles them into SQL
// text for WHERE, ON and HAVING clauses.
//
// A Filter is an immutable (left, operator, right) triple. Trees are built
// with And and Or and rendered with Build against a Dialect:
//
//	f := filter.And(
//		filter.New(filter.Col(x), filter.OpGreater, filter.IntValue(5)),
//		filter.New(filter.Col(y), filter.OpIn, filter.IntArray{1, 2, 3}),
//	)
//	sql, err := f.Build(sqlgen.ANSI{}) // (x > 5) AND (y IN (1, 2, 3))
package filter

import (
	"strings"

	"github.com/satishbabariya/sqlkit/internal/debug"
	"github.com/satishbabariya/sqlkit/schema"
)

// Dialect supplies the engine-specific parts of rendering.
type Dialect interface {
	// Operator renders an operator token, or "" when the engine has no
	// such operator.
	Operator(op Operator) string
	// Literal renders a scalar: string, int, float32, float64 or bool.
	// Floats are always finite.
	Literal(v any) string
	// Identifier quotes a table or column name.
	Identifier(name string) string
	// Column renders a column reference.
	Column(c *schema.Column) string
}

// NonFiniteFormatter is implemented by dialects that can spell NaN or an
// infinity. ok is false for values the engine cannot represent.
type NonFiniteFormatter interface {
	NonFinite(f float64) (s string, ok bool)
}

// Filter is a single predicate node. The zero value fails to build.
type Filter struct {
	left  Value
	op    Operator
	right Value
}

// New returns the predicate "left op right".
func New(left Value, op Operator, right Value) Filter {
	return Filter{left: left, op: op, right: right}
}

// And returns "(a) AND (b)".
func And(a, b Filter) Filter { return New(Nest(a), OpAnd, Nest(b)) }

// Or returns "(a) OR (b)".
func Or(a, b Filter) Filter { return New(Nest(a), OpOr, Nest(b)) }

// And is shorthand for And(f, other).
func (f Filter) And(other Filter) Filter { return And(f, other) }

// Or is shorthand for Or(f, other).
func (f Filter) Or(other Filter) Filter { return Or(f, other) }

// Left returns the left operand.
func (f Filter) Left() Value { return f.left }

// Operator returns the operator.
func (f Filter) Operator() Operator { return f.op }

// Right returns the right operand.
func (f Filter) Right() Value { return f.right }

// Build renders the filter. It fails with *SyntaxError when a multi-value
// operator is given a non-array right operand, when an operand is missing
// or when the dialect lacks the operator. NaN and infinities fail with
// ErrUnsupportedLiteral unless the dialect spells them. Errors from nested
// filters and computed expressions propagate.
func (f Filter) Build(d Dialect) (string, error) {
	sql, err := f.build(d)
	if err != nil {
		debug.Debug("filter compilation failed", "operator", f.op.String(), "error", err)
		return "", err
	}
	debug.Debug("filter compiled", "operator", f.op.String(), "length", len(sql))
	return sql, nil
}

func (f Filter) build(d Dialect) (string, error) {
	op := d.Operator(f.op)
	if op == "" {
		return "", unsupportedOperator(f.op)
	}
	if f.left == nil || f.right == nil {
		return "", missingOperand(op)
	}
	left, err := f.left.build(d)
	if err != nil {
		return "", err
	}

	var right string
	switch {
	case f.op.isRange():
		arr, ok := f.right.(array)
		if !ok {
			return "", wrongOperand(op)
		}
		elems, err := arr.packed(d)
		if err != nil {
			return "", err
		}
		// Elements past the second are ignored.
		if len(elems) < 2 {
			return "", &SyntaxError{Operator: op, Reason: "two operands required on right hand side"}
		}
		right = elems[0] + " AND " + elems[1]
	case f.op.MultiValue():
		arr, ok := f.right.(array)
		if !ok {
			return "", wrongOperand(op)
		}
		elems, err := arr.packed(d)
		if err != nil {
			return "", err
		}
		right = "(" + strings.Join(elems, ", ") + ")"
	default:
		right, err = f.right.build(d)
		if err != nil {
			return "", err
		}
	}

	return left + " " + op + " " + right, nil
}
