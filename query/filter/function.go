package filter

import "strings"

// FuncName is the ANSI name of a scalar SQL function.
type FuncName string

const (
	FuncUpper  FuncName = "UPPER"
	FuncLower  FuncName = "LOWER"
	FuncLength FuncName = "LENGTH"
	FuncAbs    FuncName = "ABS"
	FuncRound  FuncName = "ROUND"
	FuncSubstr FuncName = "SUBSTR"
	FuncNow    FuncName = "NOW"
)

// FunctionNamer is implemented by dialects that spell some functions
// differently, e.g. LEN instead of LENGTH.
type FunctionNamer interface {
	FunctionName(name FuncName) string
}

// Function is a scalar function call over Values.
type Function struct {
	name FuncName
	args []Value
}

// Call builds a function call. Prefer the typed helpers below.
func Call(name FuncName, args ...Value) *Function {
	return &Function{name: name, args: append([]Value(nil), args...)}
}

// Name returns the ANSI function name.
func (fn *Function) Name() FuncName { return fn.name }

// Build renders NAME(arg, ...).
func (fn *Function) Build(d Dialect) (string, error) {
	name := string(fn.name)
	if namer, ok := d.(FunctionNamer); ok {
		name = namer.FunctionName(fn.name)
	}
	args := make([]string, len(fn.args))
	for i, a := range fn.args {
		s, err := a.build(d)
		if err != nil {
			return "", err
		}
		args[i] = s
	}
	return name + "(" + strings.Join(args, ", ") + ")", nil
}

func Upper(v Value) Computed { return Compute(Call(FuncUpper, v)) }
func Lower(v Value) Computed { return Compute(Call(FuncLower, v)) }
func Length(v Value) Computed { return Compute(Call(FuncLength, v)) }
func Abs(v Value) Computed { return Compute(Call(FuncAbs, v)) }

// Round rounds v to the given number of decimal places.
func Round(v Value, decimals int) Computed {
	return Compute(Call(FuncRound, v, IntValue(decimals)))
}

// Substr extracts length characters of v starting at the 1-based start.
func Substr(v Value, start, length int) Computed {
	return Compute(Call(FuncSubstr, v, IntValue(start), IntValue(length)))
}

// Now is the current timestamp.
func Now() Computed { return Compute(Call(FuncNow)) }
