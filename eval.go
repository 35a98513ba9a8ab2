package rpnbrain

// evaluate reduces tokens from the end, consuming one complete subtree. It returns the value of
// that subtree and the tokens below it. When the subtree is incomplete, ok is false and remaining
// is tokens, unchanged; partial progress of deeper frames is discarded.
//
// The tokens slice is never written to, so callers may pass the stack itself. Recursion depth is
// at most len(tokens), since every frame consumes a token.
func evaluate(tokens []Token) (result float64, ok bool, remaining []Token) {
	if len(tokens) == 0 {
		return 0, false, tokens
	}
	tok := tokens[len(tokens)-1]
	rest := tokens[:len(tokens)-1 : len(tokens)-1] // pop, capped at its length

	switch tok.kind {
	case KindOperand:
		return tok.value, true, rest
	case KindUnary:
		if a, ok, rest := evaluate(rest); ok {
			return tok.unary(a), true, rest
		}
	case KindBinary:
		if a, ok, rest := evaluate(rest); ok {
			if b, ok, rest := evaluate(rest); ok {
				return tok.binary(a, b), true, rest
			}
		}
	}
	return 0, false, tokens
}
