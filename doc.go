// Package binopt builds binary-operator expression trees from prefix
// (Polish) notation and applies peephole algebraic simplifications to
// them.
//
// An expression is a whitespace-separated token sequence where every
// operator token is followed by exactly two operands, each either a
// non-negative integer literal or a nested operator expression:
//
//	root, err := binopt.Parse("+ 0 * 1 4")
//	if err != nil { ... }
//	root.Simplify()
//	fmt.Println(root) // "4"
//
// Simplify rewrites the tree in place bottom-up. By default it applies
// only the additive and multiplicative identities; multiplication by
// zero and constant folding are available behind options:
//
//	root.Simplify(binopt.ZeroProduct(), binopt.ConstantFolding())
package binopt
