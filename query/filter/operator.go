package filter

import "fmt"

// Operator is the comparator or logical connective joining two Values.
type Operator int

const (
	OpEqual Operator = iota
	OpNotEqual
	OpLess
	OpLessOrEqual
	OpGreater
	OpGreaterOrEqual
	OpLike
	OpNotLike
	OpIn
	OpNotIn
	OpBetween
	OpNotBetween
	OpIs
	OpIsNot
	OpRegexp
	OpNotRegexp
	OpAnd
	OpOr
)

var operatorTokens = [...]string{
	OpEqual:          "=",
	OpNotEqual:       "<>",
	OpLess:           "<",
	OpLessOrEqual:    "<=",
	OpGreater:        ">",
	OpGreaterOrEqual: ">=",
	OpLike:           "LIKE",
	OpNotLike:        "NOT LIKE",
	OpIn:             "IN",
	OpNotIn:          "NOT IN",
	OpBetween:        "BETWEEN",
	OpNotBetween:     "NOT BETWEEN",
	OpIs:             "IS",
	OpIsNot:          "IS NOT",
	OpRegexp:         "REGEXP",
	OpNotRegexp:      "NOT REGEXP",
	OpAnd:            "AND",
	OpOr:             "OR",
}

// String returns the ANSI spelling of the operator. Dialects may render
// some operators differently.
func (op Operator) String() string {
	if op >= 0 && int(op) < len(operatorTokens) {
		return operatorTokens[op]
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// MultiValue reports whether the operator takes an array right operand
// (IN, NOT IN, BETWEEN, NOT BETWEEN).
func (op Operator) MultiValue() bool {
	switch op {
	case OpIn, OpNotIn, OpBetween, OpNotBetween:
		return true
	}
	return false
}

func (op Operator) isRange() bool {
	return op == OpBetween || op == OpNotBetween
}

// Logical reports whether the operator is AND or OR.
func (op Operator) Logical() bool {
	return op == OpAnd || op == OpOr
}
