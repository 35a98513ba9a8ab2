package rpnbrain

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// ErrConfiguration error is returned when a Brain or an Operations table cannot be built from the
// supplied configuration.
type ErrConfiguration struct {
	Message string
}

// Error returns the error string representation for ErrConfiguration errors.
func (e ErrConfiguration) Error() string {
	return "configuration error: " + e.Message
}

func newErrConfiguration(format string, a ...interface{}) ErrConfiguration {
	return ErrConfiguration{fmt.Sprintf(format, a...)}
}

// Operations is a read-only table of known operations, keyed by symbol. The zero value is an
// empty table that knows no symbols.
type Operations struct {
	bySymbol map[string]Token
}

// NewOperations returns an Operations table containing the given operation tokens. It returns an
// ErrConfiguration when a token is an operand, has an empty symbol, has no function, uses a symbol
// that would be read as a number, or repeats a symbol.
//
//	ops, err := rpnbrain.NewOperations(
//		rpnbrain.BinaryOp("^", func(a, b float64) float64 { return math.Pow(b, a) }),
//		rpnbrain.UnaryOp("±", func(a float64) float64 { return -a }),
//	)
func NewOperations(tokens ...Token) (Operations, error) {
	m := make(map[string]Token, len(tokens))
	for _, tok := range tokens {
		switch tok.kind {
		case KindUnary:
			if tok.unary == nil {
				return Operations{}, newErrConfiguration("operation %q has no function", tok.symbol)
			}
		case KindBinary:
			if tok.binary == nil {
				return Operations{}, newErrConfiguration("operation %q has no function", tok.symbol)
			}
		default:
			return Operations{}, newErrConfiguration("cannot register operand %s as operation", tok)
		}
		if tok.symbol == "" {
			return Operations{}, newErrConfiguration("operation symbol cannot be empty")
		}
		if _, err := strconv.ParseFloat(tok.symbol, 64); err == nil {
			return Operations{}, newErrConfiguration("operation symbol %q looks like a number", tok.symbol)
		}
		if _, ok := m[tok.symbol]; ok {
			return Operations{}, newErrConfiguration("duplicate operation symbol %q", tok.symbol)
		}
		m[tok.symbol] = tok
	}
	return Operations{bySymbol: m}, nil
}

func multiply(a, b float64) float64 { return a * b }
func divide(a, b float64) float64 { return b / a }
func add(a, b float64) float64 { return a + b }
func subtract(a, b float64) float64 { return b - a }

// DefaultOperations returns the stock operation table using the conventional calculator symbols:
// × ÷ + − √. Division and subtraction take their left-hand side from deeper in the stack, so
// 8,2,÷ is 4 and 5,2,− is 3.
func DefaultOperations() Operations {
	return mustOperations(
		BinaryOp("×", multiply),
		BinaryOp("÷", divide),
		BinaryOp("+", add),
		BinaryOp("−", subtract),
		UnaryOp("√", math.Sqrt),
	)
}

// ASCIIOperations returns the stock operation table with ASCII symbols: * / + - sqrt. The
// operations are identical to those of DefaultOperations.
func ASCIIOperations() Operations {
	return mustOperations(
		BinaryOp("*", multiply),
		BinaryOp("/", divide),
		BinaryOp("+", add),
		BinaryOp("-", subtract),
		UnaryOp("sqrt", math.Sqrt),
	)
}

func mustOperations(tokens ...Token) Operations {
	ops, err := NewOperations(tokens...)
	if err != nil {
		panic(err)
	}
	return ops
}

// Lookup returns the operation token registered for symbol.
func (o Operations) Lookup(symbol string) (Token, bool) {
	tok, ok := o.bySymbol[symbol]
	return tok, ok
}

// Len returns the number of known operations.
func (o Operations) Len() int { return len(o.bySymbol) }

// Symbols returns the known symbols in sorted order.
func (o Operations) Symbols() []string {
	symbols := make([]string, 0, len(o.bySymbol))
	for symbol := range o.bySymbol {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}
