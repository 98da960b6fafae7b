package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ltungv/dry/internal/ast"
	"github.com/ltungv/dry/internal/astjson"
	"github.com/ltungv/dry/internal/report"
)

var treeCmd = &cobra.Command{
	Use:   "tree <expression>",
	Short: "Print the syntax tree of an expression",
	Long: `Parses the expression and prints one node per line, children indented
below their parent.

Example:
  dry tree 'a > b and c'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	expr := parse(strings.Join(args, " "), 1, report.NewSimpleReporter(cmd.ErrOrStderr()))
	if expr == nil {
		return errSyntax
	}
	codec, err := astjson.NewCodec()
	if err != nil {
		return err
	}
	defer codec.Close()

	printTree(cmd.OutOrStdout(), expr, codec)
	return nil
}

func printTree(out io.Writer, root ast.Node, codec *astjson.Codec) {
	ast.Walk(root, func(n ast.Node, depth int) bool {
		kind, ok := codec.Kind(n)
		if !ok {
			kind = fmt.Sprintf("%T", n)
		}
		tok := n.Token()
		fmt.Fprintf(out, "%s%s %q %s\n", strings.Repeat("  ", depth), kind, tok.Lexeme(), tok.Pos())
		return true
	})
}
