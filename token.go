package rpnbrain

import "strconv"

// Kind identifies which of the three token variants a Token holds.
type Kind int

const (
	KindOperand Kind = iota // literal number
	KindUnary               // single-argument operation
	KindBinary              // two-argument operation
)

// String returns the name of the token kind.
func (k Kind) String() string {
	switch k {
	case KindOperand:
		return "operand"
	case KindUnary:
		return "unary"
	case KindBinary:
		return "binary"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is a single entry on a Brain's stack: either an operand, a unary operation, or a binary
// operation. A Token is an immutable value; copying it copies the operand or the function
// reference, never shared mutable state.
//
// The symbol of an operation is only used for display. Evaluation dispatches on the function the
// token was created with.
type Token struct {
	kind   Kind
	value  float64
	symbol string
	unary  func(float64) float64
	binary func(float64, float64) float64
}

// Operand returns a Token holding the literal number v.
func Operand(v float64) Token {
	return Token{kind: KindOperand, value: v}
}

// UnaryOp returns a Token naming a single-argument operation.
//
//	neg := rpnbrain.UnaryOp("±", func(a float64) float64 { return -a })
func UnaryOp(symbol string, fn func(float64) float64) Token {
	return Token{kind: KindUnary, symbol: symbol, unary: fn}
}

// BinaryOp returns a Token naming a two-argument operation. When evaluated, fn is called as
// fn(a, b), where a is the value of the subtree immediately below the operator on the stack, and b
// is the value of the subtree below that one. Hence the stack 5,2,op invokes fn(2, 5).
func BinaryOp(symbol string, fn func(a, b float64) float64) Token {
	return Token{kind: KindBinary, symbol: symbol, binary: fn}
}

// Kind returns the variant of the token.
func (t Token) Kind() Kind { return t.kind }

// Value returns the number held by an operand token, and zero for operations.
func (t Token) Value() float64 { return t.value }

// Symbol returns the display symbol of an operation token, and the empty string for operands.
func (t Token) Symbol() string { return t.symbol }

// String returns the description of the token: the decimal form of an operand, or the symbol of
// an operation.
func (t Token) String() string {
	if t.kind == KindOperand {
		return strconv.FormatFloat(t.value, 'g', -1, 64)
	}
	return t.symbol
}
