package filter

import (
	"fmt"
	"math"

	"github.com/satishbabariya/sqlkit/schema"
)

// Value is one operand of a Filter. The set of implementations is closed:
// a nested filter, a scalar literal, a homogeneous array, a column
// reference or a computed expression.
type Value interface {
	build(d Dialect) (string, error)
}

// array is implemented by the array variants; only multi-value operators
// consume their elements.
type array interface {
	Value
	packed(d Dialect) ([]string, error)
}

// Nested wraps a Filter so it can be used as an operand. It renders in
// parentheses.
type Nested struct {
	f *Filter
}

// Nest boxes f as an operand.
func Nest(f Filter) Nested { return Nested{f: &f} }

// Filter returns the wrapped filter, or the zero Filter for a zero Nested.
func (n Nested) Filter() Filter {
	if n.f == nil {
		return Filter{}
	}
	return *n.f
}

func (n Nested) build(d Dialect) (string, error) {
	if n.f == nil {
		return "", missingOperand("nested")
	}
	inner, err := n.f.build(d)
	if err != nil {
		return "", err
	}
	return "(" + inner + ")", nil
}

// Scalar literals.
type (
	StringValue string
	IntValue    int
	FloatValue  float32
	DoubleValue float64
	BoolValue   bool
)

func (v StringValue) build(d Dialect) (string, error) { return literal(d, string(v)) }
func (v IntValue) build(d Dialect) (string, error) { return literal(d, int(v)) }
func (v FloatValue) build(d Dialect) (string, error) { return literal(d, float32(v)) }
func (v DoubleValue) build(d Dialect) (string, error) { return literal(d, float64(v)) }
func (v BoolValue) build(d Dialect) (string, error) { return literal(d, bool(v)) }

// literal hands finite scalars to the dialect. NaN and infinities go
// through NonFiniteFormatter and fail when the dialect has no spelling.
func literal(d Dialect, v any) (string, error) {
	var f float64
	switch x := v.(type) {
	case float32:
		f = float64(x)
	case float64:
		f = x
	default:
		return d.Literal(v), nil
	}
	if !math.IsNaN(f) && !math.IsInf(f, 0) {
		return d.Literal(v), nil
	}
	if nf, ok := d.(NonFiniteFormatter); ok {
		if s, ok := nf.NonFinite(f); ok {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %v", ErrUnsupportedLiteral, f)
}

// Homogeneous arrays. Outside IN/BETWEEN they render as the empty string.
type (
	StringArray []string
	IntArray    []int
	FloatArray  []float32
	DoubleArray []float64
	BoolArray   []bool
)

func (StringArray) build(Dialect) (string, error) { return "", nil }
func (IntArray) build(Dialect) (string, error) { return "", nil }
func (FloatArray) build(Dialect) (string, error) { return "", nil }
func (DoubleArray) build(Dialect) (string, error) { return "", nil }
func (BoolArray) build(Dialect) (string, error) { return "", nil }

func (a StringArray) packed(d Dialect) ([]string, error) { return packAll(a, d) }
func (a IntArray) packed(d Dialect) ([]string, error) { return packAll(a, d) }
func (a FloatArray) packed(d Dialect) ([]string, error) { return packAll(a, d) }
func (a DoubleArray) packed(d Dialect) ([]string, error) { return packAll(a, d) }
func (a BoolArray) packed(d Dialect) ([]string, error) { return packAll(a, d) }

func packAll[T string | int | float32 | float64 | bool](elems []T, d Dialect) ([]string, error) {
	out := make([]string, len(elems))
	for i, e := range elems {
		s, err := literal(d, e)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// ColumnRef refers to a table column.
type ColumnRef struct {
	col *schema.Column
}

// Col references c as an operand.
func Col(c *schema.Column) ColumnRef { return ColumnRef{col: c} }

// Column returns the referenced column.
func (r ColumnRef) Column() *schema.Column { return r.col }

func (r ColumnRef) build(d Dialect) (string, error) {
	if r.col == nil {
		return "", missingOperand("column")
	}
	return d.Column(r.col), nil
}

// Expression is a computed sub-expression that renders itself, such as a
// scalar function call. A Filter is also an Expression.
type Expression interface {
	Build(d Dialect) (string, error)
}

// Computed references an Expression as an operand.
type Computed struct {
	expr Expression
}

// Compute wraps e as an operand.
func Compute(e Expression) Computed { return Computed{expr: e} }

// Expression returns the wrapped expression.
func (c Computed) Expression() Expression { return c.expr }

func (c Computed) build(d Dialect) (string, error) {
	if c.expr == nil {
		return "", missingOperand("computed")
	}
	return c.expr.Build(d)
}
