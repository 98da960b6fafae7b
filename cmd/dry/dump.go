package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ltungv/dry/internal/ast"
	"github.com/ltungv/dry/internal/astjson"
	"github.com/ltungv/dry/internal/report"
)

var (
	dumpZstd   bool
	dumpOutput string
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Write the syntax tree of an expression as JSON",
	Long: `Parses the expression in the file and writes its tree as a JSON
document, optionally zstd compressed. The document can be read back with
'dry load'.

Examples:
  dry dump expr.dry
  dry dump --zstd -o expr.ast expr.dry`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().BoolVar(&dumpZstd, "zstd", false, "compress the document")
	dumpCmd.Flags().StringVarP(&dumpOutput, "output", "o", "", "output file (default: stdout)")
}

func runDump(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	expr := parse(string(content), 1, report.NewSimpleReporter(cmd.ErrOrStderr()))
	if expr == nil {
		return errSyntax
	}

	codec, err := astjson.NewCodec()
	if err != nil {
		return err
	}
	defer codec.Close()

	var data []byte
	if dumpZstd {
		data, err = codec.MarshalCompressed(expr)
	} else {
		data, err = codec.Marshal(expr)
	}
	if err != nil {
		return err
	}
	logger.Debug("encoded tree", "nodes", ast.Count(expr), "bytes", len(data), "zstd", dumpZstd)

	if dumpOutput == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(dumpOutput, data, 0o644)
}
