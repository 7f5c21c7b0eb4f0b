package automaton

import (
	"bytes"
	"errors"
	"strconv"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindLabel(p int) string { return "T" + strconv.Itoa(p) }

func TestWriteDOT_Golden(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"ab", "ab"},
		{"range", "[a-c]x"},
		{"quote", `"[^"]*"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Compile(tt.pattern, 1, 0, Priority(0))
			require.NoError(t, err)
			require.NoError(t, a.Determinize())
			require.NoError(t, a.Minimize())

			var buf bytes.Buffer
			require.NoError(t, a.WriteDOT(&buf, kindLabel))

			g := goldie.New(t,
				goldie.WithFixtureDir("testdata/golden"),
				goldie.WithNameSuffix(".golden"),
			)
			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestWriteDOT_NFAShowsEpsilon(t *testing.T) {
	a := fresh().Concat('a').Close()

	var buf bytes.Buffer
	require.NoError(t, a.WriteDOT(&buf, nil))
	assert.Contains(t, buf.String(), `q1 -> q0 [label="ε"];`)
	assert.Contains(t, buf.String(), `q2 [shape=doublecircle, label="2"];`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteDOT_PropagatesWriteError(t *testing.T) {
	err := fresh().Concat('a').WriteDOT(failingWriter{}, nil)
	assert.EqualError(t, err, "disk full")
}

func TestSymbolRanges(t *testing.T) {
	assert.Equal(t, "a", symbolRanges([]byte("a")))
	assert.Equal(t, "a b", symbolRanges([]byte("ab")))
	assert.Equal(t, "a-c x", symbolRanges([]byte("abcx")))
	assert.Equal(t, `\t \n \x20`, symbolRanges([]byte("\t\n ")))
}
