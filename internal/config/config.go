// Package config loads the operator table of a grammar from TOML or YAML.
//
// A configuration only lists the operators whose binding differs from the
// default table:
//
//	grammar = "dry-strict"
//
//	[[operator]]
//	symbol = "**"
//	precedence = 11
//	assoc = "left"
//
//	[[operator]]
//	symbol = "-"
//	unary = true
//	precedence = 13
//
// The table is built once, when the configuration is loaded, and is passed
// to the parser and the renderer from there.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ltungv/dry/internal/ast"
	"github.com/ltungv/dry/internal/token"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota
	// FormatYAML represents YAML format
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// DetectFormat determines the configuration format from file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Config describes a grammar's operator bindings.
type Config struct {
	Grammar   string     `toml:"grammar" yaml:"grammar"`
	Operators []Operator `toml:"operator" yaml:"operators"`
}

// Operator overrides the binding of one operator. A zero precedence and an
// empty assoc keep the default values.
type Operator struct {
	Symbol     string `toml:"symbol" yaml:"symbol"`
	Unary      bool   `toml:"unary" yaml:"unary"`
	Precedence int    `toml:"precedence" yaml:"precedence"`
	Assoc      string `toml:"assoc" yaml:"assoc"`
}

// Load reads and parses the configuration file at path.
func Load(path string, logger *slog.Logger) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	format := DetectFormat(path)
	cfg, err := Parse(content, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("loaded grammar config",
		slog.String("path", path),
		slog.String("format", format.String()),
		slog.String("grammar", cfg.Grammar),
		slog.Int("overrides", len(cfg.Operators)),
	)
	return cfg, nil
}

// Parse decodes content in the given format. Unknown keys are rejected so a
// misspelled field does not silently keep the default binding.
func Parse(content []byte, format Format) (*Config, error) {
	cfg := new(Config)
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(content), cfg)
		if err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("TOML parse error: unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	return cfg, nil
}

// Table applies the overrides to the default operators and builds the table.
func (c *Config) Table() (*ast.Table, error) {
	binary := ast.DefaultBinaryOperators()
	unary := ast.DefaultUnaryOperators()

	for _, o := range c.Operators {
		typ, ok := token.LookupOperator(o.Symbol)
		if !ok {
			return nil, fmt.Errorf("%w: '%s'", ast.ErrUnknownOperator, o.Symbol)
		}
		if o.Unary {
			if err := overrideUnary(unary, typ, o); err != nil {
				return nil, err
			}
			continue
		}
		if err := overrideBinary(binary, typ, o); err != nil {
			return nil, err
		}
	}
	return ast.NewTable(binary, unary)
}

func overrideBinary(ops []ast.Operator, typ token.Type, o Operator) error {
	for i := range ops {
		if ops[i].Type != typ {
			continue
		}
		if o.Precedence != 0 {
			ops[i].Precedence = ast.Precedence(o.Precedence)
		}
		if o.Assoc != "" {
			assoc, err := ast.ParseAssoc(o.Assoc)
			if err != nil {
				return fmt.Errorf("operator '%s': %w", o.Symbol, err)
			}
			ops[i].Assoc = assoc
		}
		return nil
	}
	return fmt.Errorf("%w: '%s' is not a binary operator", ast.ErrUnknownOperator, o.Symbol)
}

func overrideUnary(ops []ast.UnaryOperator, typ token.Type, o Operator) error {
	if o.Assoc != "" {
		return fmt.Errorf("operator '%s': prefix operators have no associativity", o.Symbol)
	}
	for i := range ops {
		if ops[i].Type != typ {
			continue
		}
		if o.Precedence != 0 {
			ops[i].Precedence = ast.Precedence(o.Precedence)
		}
		return nil
	}
	return fmt.Errorf("%w: '%s' is not a unary operator", ast.ErrUnknownOperator, o.Symbol)
}
