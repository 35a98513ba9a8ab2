package rpnbrain

import (
	"log"
	"strings"
	"sync"
)

// Configurator represents a function that modifies a Brain while it is being built by New.
type Configurator func(*Brain) error

// WithOperations replaces the stock operation table of a Brain.
//
//	func example() {
//		ops, err := rpnbrain.NewOperations(
//			rpnbrain.UnaryOp("±", func(a float64) float64 { return -a }),
//		)
//		if err != nil {
//			panic(err)
//		}
//		brain, err := rpnbrain.New(rpnbrain.WithOperations(ops))
//		if err != nil {
//			panic(err)
//		}
//		brain.PushOperand(3)
//		value, ok := brain.PerformOperation("±") // -3, true
//	}
func WithOperations(ops Operations) Configurator {
	return func(b *Brain) error {
		if ops.Len() == 0 {
			return newErrConfiguration("operation table is empty")
		}
		b.ops = ops
		return nil
	}
}

// WithASCIISymbols makes a Brain use ASCIIOperations instead of DefaultOperations.
func WithASCIISymbols() Configurator {
	return func(b *Brain) error {
		b.ops = ASCIIOperations()
		return nil
	}
}

// WithLogger makes a Brain log a trace line after every evaluation:
//
//	[5, 2, −] = 3 with [] left over
func WithLogger(logger *log.Logger) Configurator {
	return func(b *Brain) error {
		if logger == nil {
			return newErrConfiguration("logger cannot be nil")
		}
		b.logger = logger
		return nil
	}
}

// Brain maintains a stack of operands and operations, and recomputes the value of the whole stack
// after every push. A Brain is safe for concurrent use; each push and the evaluation that follows
// it happen under the same lock.
type Brain struct {
	mu     sync.Mutex
	stack  []Token
	ops    Operations
	logger *log.Logger // nil when tracing is off
}

// New returns a Brain with an empty stack and the stock operation table, as modified by the
// optional configurators.
//
//	brain, err := rpnbrain.New()
//	if err != nil {
//	    panic(err)
//	}
//	brain.PushOperand(5)
//	brain.PushOperand(2)
//	value, ok := brain.PerformOperation("−") // 3, true
func New(setters ...Configurator) (*Brain, error) {
	b := &Brain{ops: DefaultOperations()}
	for _, setter := range setters {
		if err := setter(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// PushOperand appends value to the stack and returns the re-evaluated result. The boolean is false
// when the stack cannot be reduced to a value.
func (b *Brain) PushOperand(value float64) (float64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stack = append(b.stack, Operand(value))
	return b.evaluateLocked()
}

// PerformOperation appends the operation registered for symbol to the stack and returns the
// re-evaluated result. An unknown symbol leaves the stack unchanged, and the result of the
// unchanged stack is returned.
func (b *Brain) PerformOperation(symbol string) (float64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if tok, ok := b.ops.Lookup(symbol); ok {
		b.stack = append(b.stack, tok)
	}
	return b.evaluateLocked()
}

// Evaluate recomputes the value of the entire stack. The boolean is false when the stack is empty
// or an operation lacks operands. Evaluation never modifies the stack.
func (b *Brain) Evaluate() (float64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.evaluateLocked()
}

func (b *Brain) evaluateLocked() (float64, bool) {
	result, ok, remaining := evaluate(b.stack)
	if b.logger != nil {
		b.logger.Print(traceLine(b.stack, result, ok, remaining))
	}
	return result, ok
}

// Known returns true iff symbol names an operation of this Brain.
func (b *Brain) Known(symbol string) bool {
	_, ok := b.ops.Lookup(symbol)
	return ok
}

// Operations returns the operation table of this Brain.
func (b *Brain) Operations() Operations { return b.ops }

// Len returns the number of tokens on the stack.
func (b *Brain) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.stack)
}

// Descriptions returns the description of every token on the stack, in insertion order.
func (b *Brain) Descriptions() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return descriptions(b.stack)
}

// Clear empties the stack.
func (b *Brain) Clear() {
	b.mu.Lock()
	b.stack = nil
	b.mu.Unlock()
}

// String returns the stack, its value, and the tokens left over after evaluation.
//
//	func example() {
//		brain, _ := rpnbrain.New()
//		brain.PushOperand(1)
//		brain.PushOperand(2)
//		s := brain.String() // "[1, 2] = 2 with [1] left over"
//	}
func (b *Brain) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	result, ok, remaining := evaluate(b.stack)
	return traceLine(b.stack, result, ok, remaining)
}

func descriptions(tokens []Token) []string {
	strs := make([]string, len(tokens))
	for idx, tok := range tokens {
		strs[idx] = tok.String()
	}
	return strs
}

func traceLine(stack []Token, result float64, ok bool, remaining []Token) string {
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(strings.Join(descriptions(stack), ", "))
	sb.WriteString("] = ")
	if ok {
		sb.WriteString(Operand(result).String())
	} else {
		sb.WriteString("nil")
	}
	sb.WriteString(" with [")
	sb.WriteString(strings.Join(descriptions(remaining), ", "))
	sb.WriteString("] left over")
	return sb.String()
}
