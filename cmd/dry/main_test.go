package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltungv/dry/internal/astjson"
)

// execute runs the command line with the given stdin and returns what was
// written to stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cfgFile, verbose = "", false
	fmtCheck = false
	dumpZstd, dumpOutput = false, ""
	loadVerify, loadTree = true, false

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFmtFile(t *testing.T) {
	assert := assert.New(t)
	path := writeFile(t, "exprs.dry", "((a > b)) and (c < d)\n\n(a and b) > c\n1 + (2 * 3)\n")

	stdout, stderr, err := execute(t, "", "fmt", path)
	require.NoError(t, err)
	assert.Equal("a > b and c < d\n\n(a and b) > c\n1 + 2 * 3\n", stdout)
	assert.Empty(stderr)
}

func TestFmtCheck(t *testing.T) {
	assert := assert.New(t)
	path := writeFile(t, "exprs.dry", "a > b\n(a * b) + c\n")

	stdout, _, err := execute(t, "", "fmt", "--check", path)
	require.NoError(t, err)
	assert.Equal(path+":2: a * b + c\n", stdout)
}

func TestFmtCheckCRLF(t *testing.T) {
	assert := assert.New(t)
	path := writeFile(t, "exprs.dry", "a > b\r\n\r\n(a * b) + c\r\n")

	stdout, _, err := execute(t, "", "fmt", "--check", path)
	require.NoError(t, err)
	assert.Equal(path+":3: a * b + c\n", stdout)

	stdout, _, err = execute(t, "", "fmt", path)
	require.NoError(t, err)
	assert.Equal("a > b\n\na * b + c\n", stdout)
}

func TestFmtFileSyntaxError(t *testing.T) {
	assert := assert.New(t)
	path := writeFile(t, "exprs.dry", "a > b\na < b < c\n(a\n")

	stdout, stderr, err := execute(t, "", "fmt", path)
	assert.ErrorIs(err, errSyntax)
	assert.Equal(65, exitStatus(err))
	assert.Equal("a > b\n", stdout)
	assert.Contains(stderr, "[line 2] Error at '<': Operator '<' is non-associative, use parentheses.")
	assert.Contains(stderr, "[line 3] Error at end: Expect ')' after expression.")
}

func TestFmtPrompt(t *testing.T) {
	assert := assert.New(t)
	stdout, stderr, err := execute(t, "(a + b) + c\n\na +\nf((x))\n", "fmt")
	require.NoError(t, err)
	assert.Equal("> a + b + c\n> > > f(x)\n> \n", stdout)
	assert.Contains(stderr, "Expect expression.")
}

func TestFmtWithConfig(t *testing.T) {
	assert := assert.New(t)
	cfg := writeFile(t, "grammar.yaml", "operators:\n  - symbol: \"+\"\n    assoc: right\n  - symbol: \"-\"\n    assoc: right\n")
	path := writeFile(t, "exprs.dry", "(a + b) + c\na + (b + c)\n")

	stdout, _, err := execute(t, "", "--config", cfg, "fmt", path)
	require.NoError(t, err)
	assert.Equal("(a + b) + c\na + b + c\n", stdout)
}

func TestBadConfig(t *testing.T) {
	cfg := writeFile(t, "grammar.toml", "[[operator]]\nsymbol = \"=>\"\n")
	_, _, err := execute(t, "", "--config", cfg, "tree", "a")
	assert.Error(t, err)
	assert.Equal(t, 1, exitStatus(err))
}

func TestTree(t *testing.T) {
	stdout, _, err := execute(t, "", "tree", "a > b", "and", "f(c)")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		`logical "and" 1:7`,
		`  comparison ">" 1:3`,
		`    ident "a" 1:1`,
		`    ident "b" 1:5`,
		`  call "(" 1:12`,
		`    ident "f" 1:11`,
		`    ident "c" 1:13`,
		``,
	}, "\n"), stdout)
}

func TestDumpAndLoad(t *testing.T) {
	for _, compress := range []bool{false, true} {
		assert := assert.New(t)
		src := writeFile(t, "expr.dry", "-(a ** b) ** c > (d or e)\n")
		out := filepath.Join(t.TempDir(), "expr.ast")

		args := []string{"dump", "-o", out, src}
		if compress {
			args = append(args, "--zstd")
		}
		_, _, err := execute(t, "", args...)
		require.NoError(t, err)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(compress, astjson.IsCompressed(data))

		stdout, _, err := execute(t, "", "load", out)
		require.NoError(t, err)
		assert.Equal("-(a ** b) ** c > (d or e)\n", stdout)
	}
}

func TestDumpStdout(t *testing.T) {
	src := writeFile(t, "expr.dry", "x")
	stdout, _, err := execute(t, "", "dump", src)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"nodes":[
		{"kind":"ident","type":"identifier","lexeme":"x","line":1,"column":1,"children":[]}
	]}`, stdout)
}

func TestLoadTree(t *testing.T) {
	path := writeFile(t, "expr.ast", `{"version":1,"nodes":[
		{"kind":"unary","type":"!","lexeme":"!","line":1,"column":1,"children":[1]},
		{"kind":"literal","type":"true","lexeme":"true","line":1,"column":2,"children":[]}
	]}`)
	stdout, _, err := execute(t, "", "load", "--tree", path)
	require.NoError(t, err)
	assert.Equal(t, "unary \"!\" 1:1\n  literal \"true\" 1:2\n", stdout)
}

func TestLoadErrors(t *testing.T) {
	_, _, err := execute(t, "", "load", writeFile(t, "bad.ast", `{"version":1,"nodes":[]}`))
	assert.ErrorIs(t, err, astjson.ErrInvalidDocument)

	_, _, err = execute(t, "", "load", filepath.Join(t.TempDir(), "missing.ast"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
