package automaton

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func FuzzCompile(f *testing.F) {
	for _, seed := range []string{"", "a", "ab|c", "(a|b)*abb", "[^\"]*", "x+y?", `\(`, "((a)", "[z-a]"} {
		f.Add(seed, "abb")
	}
	f.Fuzz(func(t *testing.T, pattern, input string) {
		a, err := Compile(pattern, 1, 0, Priority(0), WithStateLimit(1000))
		if err != nil {
			return
		}
		err = a.Determinize()
		if errors.Is(err, ErrStateLimitExceeded) {
			return
		}
		require.NoError(t, err)
		want := a.MatchString(input)
		require.NoError(t, a.Minimize())
		require.Equal(t, want, a.MatchString(input), "pattern %q input %q", pattern, input)
		require.Equal(t, State(0), a.Start())
	})
}
