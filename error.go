package binopt

import "fmt"

// Error represents an error while building an expression tree.
//
// The error will contain the offset of the offending token if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Offset of the token the error occurred at.
	Offset() int
}

// MalformedExpressionError is returned by Build and Parse when the token
// sequence does not form exactly one well-formed prefix expression.
type MalformedExpressionError struct {
	Msg string
	Pos int // index into the token sequence
}

func (m *MalformedExpressionError) Error() string {
	return fmt.Sprintf("token %d: %s", m.Pos, m.Msg)
}

func (m *MalformedExpressionError) Message() string { return m.Msg }
func (m *MalformedExpressionError) Offset() int     { return m.Pos }

// Errorf creates a new MalformedExpressionError at the given token offset.
func Errorf(pos int, format string, args ...interface{}) error {
	return &MalformedExpressionError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// InvariantError reports a structurally invalid tree: a Number node with
// children, or an Operator node missing one. Unreachable for trees
// produced by Build; it exists so tests can assert the invariants hold
// after simplification.
type InvariantError struct {
	Node *Node
	Msg  string
}

func (i *InvariantError) Error() string {
	return fmt.Sprintf("invalid tree at %q: %s", i.Node.Value, i.Msg)
}
