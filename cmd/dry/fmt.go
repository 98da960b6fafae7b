package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ltungv/dry/internal/ast"
	"github.com/ltungv/dry/internal/report"
)

var fmtCheck bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Print expressions in canonical form",
	Long: `Reads one expression per line and prints each in canonical form.
Blank lines are kept. Without a file, expressions are read interactively.

Examples:
  dry fmt exprs.dry
  dry fmt --check exprs.dry
  dry fmt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "only list lines that are not in canonical form")
}

func runFmt(cmd *cobra.Command, args []string) error {
	reporter := report.NewSimpleReporter(cmd.ErrOrStderr())
	if len(args) == 0 {
		return runPrompt(cmd.InOrStdin(), cmd.OutOrStdout(), reporter)
	}
	return runFile(args[0], cmd.OutOrStdout(), reporter)
}

// Format expressions as they are typed.
func runPrompt(in io.Reader, out io.Writer, reporter report.Reporter) error {
	s := bufio.NewScanner(in)
	s.Split(bufio.ScanLines)
	for {
		fmt.Fprint(out, "> ")
		if !s.Scan() {
			break
		}
		if !isBlank(s.Text()) {
			if expr := parse(s.Text(), 1, reporter); expr != nil {
				fmt.Fprintln(out, ast.SourceCode(expr, table))
			}
		}
		reporter.Reset()
	}
	fmt.Fprintln(out)
	return s.Err()
}

// Format every line of the given file.
func runFile(fpath string, out io.Writer, reporter report.Reporter) error {
	content, err := os.ReadFile(fpath)
	if err != nil {
		return err
	}

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	logger.Debug("formatting file", "path", fpath, "lines", len(lines))

	hadError := false
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if isBlank(line) {
			if !fmtCheck {
				fmt.Fprintln(out)
			}
			continue
		}
		expr := parse(line, i+1, reporter)
		if reporter.HadError() {
			hadError = true
			reporter.Reset()
			continue
		}
		canonical := ast.SourceCode(expr, table)
		if !fmtCheck {
			fmt.Fprintln(out, canonical)
		} else if canonical != line {
			fmt.Fprintf(out, "%s:%d: %s\n", fpath, i+1, canonical)
		}
	}
	if hadError {
		return errSyntax
	}
	return nil
}
