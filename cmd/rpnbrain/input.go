package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/karrick/rpnbrain"
	"github.com/pkg/errors"
	"golang.org/x/text/width"
)

// entry is one parsed word of user input: either an operand or an operation symbol.
type entry struct {
	operand   float64
	symbol    string
	isOperand bool
}

// constants are words read as operands in addition to anything strconv.ParseFloat accepts.
var constants = map[string]float64{
	"INF":    math.Inf(1),
	"NEGINF": math.Inf(-1),
	"UNKN":   math.NaN(),
}

// parseEntry reads word as a number when it looks like one, and as an operation symbol otherwise.
// Fullwidth forms are folded first, so "１６" is 16 and "＋" is "+". Numbers beyond the float64
// range are read as ±Inf.
func parseEntry(word string) entry {
	word = width.Fold.String(strings.TrimSpace(word))
	if v, ok := constants[word]; ok {
		return entry{operand: v, isOperand: true}
	}
	if v, err := strconv.ParseFloat(word, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return entry{operand: v, isOperand: true}
	}
	return entry{symbol: word}
}

// apply pushes e onto b and returns the re-evaluated result.
func (e entry) apply(b *rpnbrain.Brain) (float64, bool) {
	if e.isOperand {
		return b.PushOperand(e.operand)
	}
	return b.PerformOperation(e.symbol)
}

// feed applies every whitespace separated word of line to b. It returns the result after the last
// word, or the current result of b when line holds no words.
func feed(b *rpnbrain.Brain, line string) (float64, bool) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return b.Evaluate()
	}
	var value float64
	var ok bool
	for _, word := range words {
		value, ok = parseEntry(word).apply(b)
	}
	return value, ok
}
