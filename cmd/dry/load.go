package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ltungv/dry/internal/ast"
	"github.com/ltungv/dry/internal/astjson"
)

var (
	loadVerify bool
	loadTree   bool
)

var loadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Read a tree written by 'dry dump' and print its source",
	Long: `Decodes a plain or zstd compressed tree document and prints the
expression it holds. By default the printed source is parsed again and
compared with the decoded tree.

Examples:
  dry load expr.ast
  dry load --tree expr.ast`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().BoolVar(&loadVerify, "verify", true, "check that the source parses back to the same tree")
	loadCmd.Flags().BoolVar(&loadTree, "tree", false, "print the tree instead of the source")
}

func runLoad(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	codec, err := astjson.NewCodec()
	if err != nil {
		return err
	}
	defer codec.Close()

	expr, err := codec.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	logger.Debug("decoded tree",
		"path", args[0],
		"compressed", astjson.IsCompressed(data),
		"nodes", ast.Count(expr),
		"depth", expr.Depth(),
	)

	var src string
	if loadVerify {
		if src, err = astjson.Verify(expr, table); err != nil {
			return err
		}
	} else {
		src = ast.SourceCode(expr, table)
	}
	if loadTree {
		printTree(cmd.OutOrStdout(), expr, codec)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), src)
	return nil
}
