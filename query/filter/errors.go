package filter

import "errors"

var (
	// ErrSyntax matches every *SyntaxError via errors.Is.
	ErrSyntax = errors.New("syntax error")
	// ErrUnsupportedLiteral is returned for NaN or an infinity when the
	// dialect has no literal for it.
	ErrUnsupportedLiteral = errors.New("literal not representable in dialect")
)

// SyntaxError is returned when a filter cannot be rendered, e.g. IN with a
// scalar right operand. Operator holds the operator as the dialect rendered it.
type SyntaxError struct {
	Operator string
	Reason   string
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Reason + " in " + e.Operator + " expression"
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

func wrongOperand(op string) *SyntaxError {
	return &SyntaxError{Operator: op, Reason: "wrong operand type for right hand side"}
}

func missingOperand(kind string) *SyntaxError {
	return &SyntaxError{Operator: kind, Reason: "missing operand"}
}

func unsupportedOperator(op Operator) *SyntaxError {
	return &SyntaxError{Operator: op.String(), Reason: "operator not supported by dialect"}
}
