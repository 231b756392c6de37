package binopt

import "fmt"

// Operator symbols recognised by Build.
const (
	Add = "+"
	Sub = "-"
	Mul = "*"
	Div = "/"
)

// Kind discriminates the two node shapes in an expression tree.
type Kind int

const (
	// Number is a non-negative integer literal leaf.
	Number Kind = iota
	// Operator is a binary operator with exactly two children.
	Operator
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case Operator:
		return "Operator"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Node is one vertex of a binary-operator expression tree.
//
// A Number node holds its literal text in Value and has no children. An
// Operator node holds its operator symbol in Value and owns exactly two
// children. Trees are strict ownership trees: no shared sub-nodes, no
// cycles.
type Node struct {
	Kind  Kind
	Value string
	Left  *Node
	Right *Node
}

// check verifies the structural invariants of the subtree rooted at n.
// Trees produced by Build always pass.
func (n *Node) check() error {
	switch n.Kind {
	case Number:
		if n.Left != nil || n.Right != nil {
			return &InvariantError{Node: n, Msg: "number node has children"}
		}
		if !isNumeric(n.Value) {
			return &InvariantError{Node: n, Msg: "number node value is not a non-negative integer literal"}
		}
	case Operator:
		if n.Left == nil || n.Right == nil {
			return &InvariantError{Node: n, Msg: "operator node is missing a child"}
		}
		if err := n.Left.check(); err != nil {
			return err
		}
		return n.Right.check()
	}
	return nil
}
