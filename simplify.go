package binopt

import "strconv"

// A SimplifyOption enables an optional rewrite rule in Simplify.
type SimplifyOption func(s *simplifier)

// ZeroProduct is a SimplifyOption that rewrites multiplications with a
// zero operand to the literal zero (x * 0 = 0, 0 * x = 0). The zero
// check runs before the multiplicative identity at each node, so
// "* 0 1" reduces to "0".
func ZeroProduct() SimplifyOption {
	return func(s *simplifier) { s.zeroProduct = true }
}

// ConstantFolding is a SimplifyOption that folds operator nodes whose
// operands are both integer literals, e.g. "+ 1 2" becomes "3". Folding
// runs after the identity rules at each node. A division by zero or
// with a remainder, a subtraction with a negative result, and an
// operand or result outside the int range are left unfolded: the
// grammar has no notation for any of those outcomes.
func ConstantFolding() SimplifyOption {
	return func(s *simplifier) { s.constantFold = true }
}

type simplifier struct {
	zeroProduct  bool
	constantFold bool
}

// Simplify rewrites the tree in place, applying algebraic peephole
// rules in post-order: both children are fully simplified before any
// rule fires at their parent, so reductions cascade in a single call.
//
// Without options exactly two rules apply: the additive identity
// (x + 0 = x, 0 + x = x) and the multiplicative identity (x * 1 = x,
// 1 * x = x). ZeroProduct and ConstantFolding enable the remaining
// rules. Simplify never fails on a tree produced by Build.
func (n *Node) Simplify(options ...SimplifyOption) {
	s := &simplifier{}
	for _, option := range options {
		option(s)
	}
	s.simplify(n)
}

func (s *simplifier) simplify(n *Node) {
	if n.Kind != Operator {
		return
	}
	s.simplify(n.Left)
	s.simplify(n.Right)
	// Each rule re-checks the node's operator: an earlier rule may have
	// collapsed the node onto one of its children.
	if s.zeroProduct {
		n.collapseZeroProduct()
	}
	n.collapseIdentity(Add, 0)
	n.collapseIdentity(Mul, 1)
	if s.constantFold {
		n.foldConstants()
	}
}

// collapseIdentity replaces n with the surviving child when the other
// child is the identity literal for the given operator. The left
// operand is checked first; if both match, the left rule fires and the
// node collapses onto the right child.
func (n *Node) collapseIdentity(op string, identity int) {
	if n.Kind != Operator || n.Value != op {
		return
	}
	if n.Left.isLiteral(identity) {
		n.replace(n.Right)
	} else if n.Right.isLiteral(identity) {
		n.replace(n.Left)
	}
}

func (n *Node) collapseZeroProduct() {
	if n.Kind != Operator || n.Value != Mul {
		return
	}
	if n.Left.isLiteral(0) || n.Right.isLiteral(0) {
		n.becomeNumber(0)
	}
}

func (n *Node) foldConstants() {
	if n.Kind != Operator || n.Left.Kind != Number || n.Right.Kind != Number {
		return
	}
	l, err := strconv.Atoi(n.Left.Value)
	if err != nil {
		return
	}
	r, err := strconv.Atoi(n.Right.Value)
	if err != nil {
		return
	}
	var v int
	switch n.Value {
	case Add:
		v = l + r
		if v < l {
			return
		}
	case Mul:
		v = l * r
		if l != 0 && v/l != r {
			return
		}
	case Sub:
		if l < r {
			return
		}
		v = l - r
	case Div:
		if r == 0 || l%r != 0 {
			return
		}
		v = l / r
	default:
		return
	}
	n.becomeNumber(v)
}

// isLiteral reports whether n is a Number leaf with the given value.
// Literals are compared numerically, so "00" matches 0.
func (n *Node) isLiteral(v int) bool {
	if n.Kind != Number {
		return false
	}
	i, err := strconv.Atoi(n.Value)
	return err == nil && i == v
}

// replace overwrites n with child. The caller guarantees child is one
// of n's own children, so the tree stays a strict ownership tree and no
// reference to the discarded node survives.
func (n *Node) replace(child *Node) {
	n.Kind = child.Kind
	n.Value = child.Value
	n.Left = child.Left
	n.Right = child.Right
}

func (n *Node) becomeNumber(v int) {
	n.Kind = Number
	n.Value = strconv.Itoa(v)
	n.Left = nil
	n.Right = nil
}
