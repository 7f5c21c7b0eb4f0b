package automaton

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"
)

// WriteDOT writes a Graphviz rendering of the automaton to w. Accept
// states are double circles; a state whose payload is not null shows
// label(payload) under its number. Parallel edges between the same pair of
// states are merged into one edge listing their symbols as ranges.
func (a *Automaton[T]) WriteDOT(w io.Writer, label func(T) string) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "digraph automaton {")
	fmt.Fprintln(&buf, "    rankdir=LR;")
	fmt.Fprintln(&buf, "    _start [shape=point];")
	for s := range a.payload {
		shape := "circle"
		if a.IsAccepting(State(s)) {
			shape = "doublecircle"
		}
		text := fmt.Sprint(s)
		if p := a.payload[s]; p != a.null && label != nil {
			text += `\n` + dotEscape(label(p))
		}
		fmt.Fprintf(&buf, "    q%d [shape=%s, label=\"%s\"];\n", s, shape, text)
	}
	fmt.Fprintf(&buf, "    _start -> q%d;\n", a.start)

	for s := range a.trans {
		bySucc := make(map[State][]byte)
		var order []State
		for _, c := range a.Symbols(State(s)) {
			l := a.trans[s][c]
			for _, to := range l.All() {
				if _, ok := bySucc[to]; !ok {
					order = append(order, to)
				}
				bySucc[to] = append(bySucc[to], c)
			}
		}
		slices.Sort(order)
		for _, to := range order {
			fmt.Fprintf(&buf, "    q%d -> q%d [label=\"%s\"];\n", s, to, dotEscape(symbolRanges(bySucc[to])))
		}
	}
	fmt.Fprintln(&buf, "}")
	_, err := buf.WriteTo(w)
	return err
}

// symbolRanges renders ascending symbols, collapsing runs of three or more
// consecutive bytes into lo-hi.
func symbolRanges(syms []byte) string {
	var parts []string
	for i := 0; i < len(syms); {
		j := i
		for j+1 < len(syms) && syms[j+1] == syms[j]+1 {
			j++
		}
		switch {
		case j-i >= 2:
			parts = append(parts, symbolName(syms[i])+"-"+symbolName(syms[j]))
		case j > i:
			parts = append(parts, symbolName(syms[i]), symbolName(syms[j]))
		default:
			parts = append(parts, symbolName(syms[i]))
		}
		i = j + 1
	}
	return strings.Join(parts, " ")
}

func symbolName(c byte) string {
	switch {
	case c == Epsilon:
		return "ε"
	case c == '\t':
		return `\t`
	case c == '\n':
		return `\n`
	case c <= ' ' || c >= 0x7f:
		return fmt.Sprintf(`\x%02x`, c)
	}
	return string(rune(c))
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
