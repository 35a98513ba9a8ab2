package rpnbrain

import (
	"math"
	"testing"
)

func TestTokenDescription(t *testing.T) {
	list := map[string]Token{
		"42":     Operand(42),
		"-0.5":   Operand(-0.5),
		"1e+21":  Operand(1e21),
		"NaN":    Operand(math.NaN()),
		"+Inf":   Operand(math.Inf(1)),
		"-Inf":   Operand(math.Inf(-1)),
		"√":      UnaryOp("√", math.Sqrt),
		"×":      BinaryOp("×", multiply),
		"hypot":  BinaryOp("hypot", math.Hypot),
		"negate": UnaryOp("negate", func(a float64) float64 { return -a }),
	}
	for expected, tok := range list {
		if actual := tok.String(); actual != expected {
			t.Errorf("Actual: %#v; Expected: %#v", actual, expected)
		}
	}
}

func TestTokenAccessors(t *testing.T) {
	op := Operand(3)
	if op.Kind() != KindOperand || op.Value() != 3 || op.Symbol() != "" {
		t.Errorf("Actual: %v %v %q; Expected: %v %v %q", op.Kind(), op.Value(), op.Symbol(), KindOperand, 3.0, "")
	}
	un := UnaryOp("√", math.Sqrt)
	if un.Kind() != KindUnary || un.Value() != 0 || un.Symbol() != "√" {
		t.Errorf("Actual: %v %v %q; Expected: %v %v %q", un.Kind(), un.Value(), un.Symbol(), KindUnary, 0.0, "√")
	}
	bin := BinaryOp("+", add)
	if bin.Kind() != KindBinary || bin.Symbol() != "+" {
		t.Errorf("Actual: %v %q; Expected: %v %q", bin.Kind(), bin.Symbol(), KindBinary, "+")
	}
}

func TestKindString(t *testing.T) {
	list := map[Kind]string{
		KindOperand: "operand",
		KindUnary:   "unary",
		KindBinary:  "binary",
		Kind(7):     "Kind(7)",
	}
	for kind, expected := range list {
		if actual := kind.String(); actual != expected {
			t.Errorf("Actual: %#v; Expected: %#v", actual, expected)
		}
	}
}

func TestTokenCopyIsIndependent(t *testing.T) {
	a := Operand(1)
	b := a
	b.value = 2
	if a.Value() != 1 {
		t.Errorf("Actual: %v; Expected: %v", a.Value(), 1.0)
	}
}
