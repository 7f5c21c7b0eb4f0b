package automaton

// Step follows the first edge labelled c out of s.
func (a *Automaton[T]) Step(s State, c byte) (State, bool) {
	l := a.trans[s][c]
	return l.First()
}

// Match scans input from the start state and returns the payload of the
// state it stops in. A byte outside the alphabet aborts the scan with the
// null payload. A byte with no outgoing edge ends the scan early and the
// current state's payload is returned; the rest of the input is ignored.
//
// This is one greedy pass with no backtracking: the result is the payload
// of the longest consumable prefix, accepting or not. Match expects a
// deterministic automaton.
func (a *Automaton[T]) Match(input []byte) T {
	cur := a.start
	for _, c := range input {
		if !a.known[c] {
			return a.null
		}
		next, ok := a.Step(cur, c)
		if !ok {
			break
		}
		cur = next
	}
	return a.payload[cur]
}

// MatchString is Match for a string input.
func (a *Automaton[T]) MatchString(input string) T {
	cur := a.start
	for i := 0; i < len(input); i++ {
		c := input[i]
		if !a.known[c] {
			return a.null
		}
		next, ok := a.Step(cur, c)
		if !ok {
			break
		}
		cur = next
	}
	return a.payload[cur]
}
