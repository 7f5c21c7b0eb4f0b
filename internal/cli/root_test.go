package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexdfa/internal/rules"
)

// execute runs the command tree with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "lexdfa", cmd.Use)

	for _, name := range []string{"match", "dot", "stats"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "command %s should exist", name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	rulesFlag := cmd.PersistentFlags().Lookup("rules")
	require.NotNil(t, rulesFlag)
	assert.Equal(t, "r", rulesFlag.Shorthand)

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "false", verboseFlag.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("no-minimize"))
}

func TestMatch_Golden(t *testing.T) {
	out, _, err := execute(t, "", "match", "-r", "testdata/tokens.lex",
		"if", "ife", "==", "!=", "!", `"Hello World\n"`, "", "if;")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "match", []byte(out))
}

func TestMatch_Stdin(t *testing.T) {
	out, _, err := execute(t, "if\nx1\n", "match", "-r", "testdata/tokens.lex")
	require.NoError(t, err)
	assert.Equal(t, "\"if\"\tIf\n\"x1\"\tIdentifier\n", out)
}

func TestMatch_Escapes(t *testing.T) {
	out, _, err := execute(t, "", "match", "-r", "testdata/tokens.lex", "--escapes", `\t\n `, `\x00`)
	require.NoError(t, err)
	assert.Equal(t, "\"\\t\\n \"\tWhitespace\n\"\\x00\"\tNull\n", out)

	_, _, err = execute(t, "", "match", "-r", "testdata/tokens.lex", "-e", `\q`)
	assert.Error(t, err)
}

func TestMatch_RequiresRules(t *testing.T) {
	_, _, err := execute(t, "", "match", "if")
	assert.ErrorContains(t, err, "--rules is required")

	_, _, err = execute(t, "", "match", "-r", "testdata/tokens.txt", "if")
	assert.ErrorIs(t, err, rules.ErrUnknownFormat)
}

func TestDot_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.dot")
	out, _, err := execute(t, "", "dot", "-r", "testdata/tokens.lex", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "digraph automaton {\n"))
	assert.Contains(t, string(data), `\nIdentifier"`)
}

func TestDot_Stdout(t *testing.T) {
	out, _, err := execute(t, "", "dot", "-r", "testdata/tokens.lex")
	require.NoError(t, err)
	assert.Contains(t, out, "_start -> q0;")
}

func TestStats(t *testing.T) {
	out, _, err := execute(t, "", "stats", "-r", "testdata/tokens.lex")
	require.NoError(t, err)
	assert.Contains(t, out, "rules           7\n")
	assert.Contains(t, out, "minimal states")
	assert.Contains(t, out, "alphabet        255\n")

	out, _, err = execute(t, "", "stats", "--no-minimize", "-r", "testdata/tokens.lex")
	require.NoError(t, err)
	assert.NotContains(t, out, "minimal states")
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, errOut, err := execute(t, "", "stats", "-v", "-r", "testdata/tokens.lex")
	require.NoError(t, err)
	assert.Contains(t, errOut, `msg="rules loaded"`)
	assert.Contains(t, errOut, "msg=minimized")

	_, errOut, err = execute(t, "", "stats", "-r", "testdata/tokens.lex")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}
