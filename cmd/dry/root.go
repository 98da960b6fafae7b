package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ltungv/dry/internal/ast"
	"github.com/ltungv/dry/internal/config"
	"github.com/ltungv/dry/internal/parser"
	"github.com/ltungv/dry/internal/report"
	"github.com/ltungv/dry/internal/scanner"
)

// errSyntax is returned by commands after the reporter printed scan or parse
// errors.
var errSyntax = errors.New("syntax error")

var (
	cfgFile string
	verbose bool

	logger *slog.Logger
	table  *ast.Table
)

var rootCmd = &cobra.Command{
	Use:   "dry",
	Short: "Format and inspect dry expressions",
	Long: `dry parses expressions and writes them back in canonical form, with
exactly the parentheses the operator table requires.

The operator table can be changed with a TOML or YAML file:
  dry --config grammar.toml fmt exprs.dry`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the command line.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "operator table file (.toml, .yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")
}

func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if cfgFile == "" {
		table = ast.DefaultTable()
		logger.Debug("using default operator table")
		return nil
	}
	cfg, err := config.Load(cfgFile, logger)
	if err != nil {
		return err
	}
	if table, err = cfg.Table(); err != nil {
		return fmt.Errorf("%s: %w", cfgFile, err)
	}
	return nil
}

// parse scans and parses one expression whose first line is the given line
// of the input. Errors go to reporter.
func parse(src string, line int, reporter report.Reporter) ast.Expr {
	tokens := scanner.NewAtLine([]rune(src), line, reporter).Scan()
	if reporter.HadError() {
		return nil
	}
	return parser.New(tokens, table, reporter).Parse()
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
