package binopt

import "strings"

func isOperator(tok string) bool {
	switch tok {
	case Add, Sub, Mul, Div:
		return true
	}
	return false
}

// isNumeric reports whether tok is a non-negative integer literal. The
// grammar has no negative literals and no decimals.
func isNumeric(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Parse splits input on whitespace and builds an expression tree from
// the resulting tokens.
func Parse(input string) (*Node, error) {
	return Build(strings.Fields(input))
}

// Build constructs an expression tree from a token sequence in prefix
// notation. The sequence must contain exactly one well-formed
// expression: every operator token must be followed by two well-formed
// operands, and no tokens may remain once the expression is complete.
// tokens is not modified.
func Build(tokens []string) (*Node, error) {
	root, pos, err := build(tokens, 0)
	if err != nil {
		return nil, err
	}
	if pos != len(tokens) {
		return nil, Errorf(pos, "unexpected trailing token %q", tokens[pos])
	}
	return root, nil
}

// build consumes one expression starting at pos and returns it along
// with the position of the first unconsumed token. The left operand of
// an operator is consumed in full before the right begins.
func build(tokens []string, pos int) (*Node, int, error) {
	if pos >= len(tokens) {
		return nil, pos, Errorf(pos, "unexpected end of expression, expected operand")
	}
	tok := tokens[pos]
	pos++
	if isNumeric(tok) {
		return &Node{Kind: Number, Value: tok}, pos, nil
	}
	if !isOperator(tok) {
		return nil, pos - 1, Errorf(pos-1, "unexpected token %q", tok)
	}
	left, pos, err := build(tokens, pos)
	if err != nil {
		return nil, pos, err
	}
	right, pos, err := build(tokens, pos)
	if err != nil {
		return nil, pos, err
	}
	return &Node{Kind: Operator, Value: tok, Left: left, Right: right}, pos, nil
}
