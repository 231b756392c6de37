package main

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/binopt/binopt"
)

var cli struct {
	AST        bool     `help:"Dump the simplified tree structure instead of its prefix form."`
	Zero       bool     `help:"Rewrite multiplications by zero to zero."`
	Fold       bool     `help:"Fold operations on constant operands."`
	Expression []string `arg:"" help:"Prefix-notation expression tokens."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`Simplify a binary-operator expression written in prefix notation.`),
	)
	root, err := binopt.Parse(strings.Join(cli.Expression, " "))
	kctx.FatalIfErrorf(err)
	var options []binopt.SimplifyOption
	if cli.Zero {
		options = append(options, binopt.ZeroProduct())
	}
	if cli.Fold {
		options = append(options, binopt.ConstantFolding())
	}
	root.Simplify(options...)
	if cli.AST {
		repr.Println(root, repr.Indent("  "))
	} else {
		fmt.Println(root)
	}
}
