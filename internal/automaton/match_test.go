package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimized(t testing.TB, rules []rule) *Automaton[int] {
	t.Helper()
	a := determinized(t, rules)
	require.NoError(t, a.Minimize())
	return a
}

func TestMatch_TokenKinds(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", tNull},
		{"if", tIf},
		{"ife", tIdent},
		{"i", tIdent},
		{"x1", tIdent},
		{"     ", tSpace},
		{"\t\n ", tSpace},
		{`"Hello World\n"`, tString},
		{"==", tEqual},
		{"=", tAssign},
	}
	for _, stage := range []string{"dfa", "minimal"} {
		a := determinized(t, tokenRules)
		if stage == "minimal" {
			require.NoError(t, a.Minimize())
		}
		for _, tt := range tests {
			assert.Equal(t, tt.want, a.MatchString(tt.input), "%s: %q", stage, tt.input)
			assert.Equal(t, tt.want, a.Match([]byte(tt.input)), "%s: %q", stage, tt.input)
		}
	}
}

func TestMatch_StopsAtMissingEdge(t *testing.T) {
	a := minimized(t, tokenRules)

	// '=' is in the alphabet but there is no edge for it after "if".
	assert.Equal(t, tIf, a.MatchString("if=="))
	assert.Equal(t, tAssign, a.MatchString("=x"))
	assert.Equal(t, tIdent, a.MatchString("abc def"))
}

func TestMatch_UnknownByteFails(t *testing.T) {
	a := minimized(t, []rule{{tIf, "if"}, {tIdent, "[A-Za-z][A-Za-z0-9]*"}})

	assert.Equal(t, tNull, a.MatchString("if;"))
	assert.Equal(t, tNull, a.MatchString(";"))
	assert.Equal(t, tNull, a.MatchString("if\x00"))
}

func TestMatch_NonAcceptingPrefixYieldsNull(t *testing.T) {
	a := minimized(t, []rule{{tEqual, "=="}, {tIdent, "abcd"}})

	assert.Equal(t, tNull, a.MatchString("="))
	assert.Equal(t, tNull, a.MatchString("abc"))
	assert.Equal(t, tIdent, a.MatchString("abcd"))
}

func TestMatch_NegatedClassExcludesQuote(t *testing.T) {
	a := minimized(t, []rule{{tString, `[^"]*`}})

	assert.NotContains(t, a.Alphabet(), byte(0))
	assert.False(t, a.InAlphabet('"'))
	assert.Equal(t, tString, a.MatchString(`Hello World\n`))
	assert.Equal(t, tNull, a.MatchString(`say "hi"`))
	assert.Equal(t, tNull, a.MatchString(`"`))
}

func TestMatch_Repetition(t *testing.T) {
	a := minimized(t, []rule{{tSpace, "( |\t|\n)+"}})

	assert.Equal(t, tSpace, a.MatchString("     "))
	assert.Equal(t, tSpace, a.MatchString("\t\n "))
	assert.Equal(t, tNull, a.MatchString(""))
}

func TestMatch_StringLiteralEscapesAreNotDecoded(t *testing.T) {
	a := minimized(t, []rule{{tString, `"[^"]*"`}})

	// Backslash and 'n' are two ordinary bytes inside the class.
	input := "\"Hello World\\n\""
	require.Len(t, input, 15)
	assert.Equal(t, tString, a.MatchString(input))
	assert.Equal(t, tString, a.MatchString("\"Hello World\n\""))
}

func TestMatch_EmptyPatternUnderNull(t *testing.T) {
	a := minimized(t, []rule{{tNull, ""}})

	assert.Equal(t, tNull, a.MatchString(""))
	assert.Equal(t, 1, a.NumStates())
	assert.Empty(t, a.Alphabet())
}

func TestMatch_SingleTransitionDoesNotAllocate(t *testing.T) {
	a := minimized(t, tokenRules)
	input := []byte("ifelse")

	allocs := testing.AllocsPerRun(100, func() {
		_ = a.Match(input)
	})
	assert.Zero(t, allocs)
}
