package astjson

import (
	"errors"
	"fmt"

	"github.com/ltungv/dry/internal/ast"
	"github.com/ltungv/dry/internal/parser"
)

// ErrNoRoundTrip is returned by Verify when the source text of a tree parses
// to a different tree.
var ErrNoRoundTrip = errors.New("tree does not survive a round trip")

// Verify renders tree with table, parses the result with the same table and
// checks that the parsed tree equals tree. It returns the rendered source.
func Verify(tree ast.Expr, table *ast.Table) (string, error) {
	src := ast.SourceCode(tree, table)
	parsed, err := parser.ParseExpr(src, table)
	if err != nil {
		return src, fmt.Errorf("%w: %q does not parse: %v", ErrNoRoundTrip, src, err)
	}
	if !ast.Equal(tree, parsed) {
		return src, fmt.Errorf("%w: %q", ErrNoRoundTrip, src)
	}
	return src, nil
}
