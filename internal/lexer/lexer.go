// Package lexer compiles an ordered list of token rules into one minimal
// DFA and classifies single tokens with it.
package lexer

import (
	"errors"
	"fmt"
	"io"

	"lexdfa/internal/automaton"
	"lexdfa/internal/intern"
)

var (
	ErrNoRules   = errors.New("no rules")
	ErrEmptyKind = errors.New("rule has an empty kind")

	// ErrEmptyPattern rejects "" under any kind but the null kind: the
	// empty pattern accepts nothing, so such a rule could never match.
	ErrEmptyPattern = errors.New("empty pattern under a non-null kind")
)

// Rule binds a token kind to the pattern that recognizes it. When patterns
// overlap, the kind declared first wins.
type Rule struct {
	Kind    string `yaml:"kind"`
	Pattern string `yaml:"pattern"`
}

// Kind identifies a token kind of a Lexer.
type Kind = intern.Handle

// RuleError reports the rule that failed to compile.
type RuleError struct {
	Index   int
	Kind    string
	Pattern string
	Err     error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %d (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *RuleError) Unwrap() error { return e.Err }

// Stats describes the automaton at each build stage.
type Stats struct {
	Rules       int
	Kinds       int
	NFAStates   int
	DFAStates   int
	MinStates   int // zero when minimization is off
	Transitions int
	Alphabet    int
}

// Lexer is an immutable single-token classifier. It is safe for
// concurrent use.
type Lexer struct {
	kinds intern.Table[string]
	null  Kind
	dfa   *automaton.Automaton[Kind]
	stats Stats
}

// New builds a Lexer from rules. Kind names are interned in declaration
// order after the null kind.
func New(rules []Rule, opts ...Option) (*Lexer, error) {
	if len(rules) == 0 {
		return nil, ErrNoRules
	}
	o := defaults()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger

	l := &Lexer{}
	l.null = l.kinds.Intern(o.nullKind)
	merge := automaton.PriorityBy(l.null, Kind.Less)

	root := automaton.New(l.null, merge, automaton.WithStateLimit(o.stateLimit))
	for i, r := range rules {
		if r.Kind == "" {
			return nil, &RuleError{Index: i, Pattern: r.Pattern, Err: ErrEmptyKind}
		}
		kind := l.kinds.Intern(r.Kind)
		if r.Pattern == "" && kind != l.null {
			return nil, &RuleError{Index: i, Kind: r.Kind, Err: ErrEmptyPattern}
		}
		f, err := automaton.Compile(r.Pattern, kind, l.null, merge)
		if err != nil {
			return nil, &RuleError{Index: i, Kind: r.Kind, Pattern: r.Pattern, Err: err}
		}
		root.Alter(f)
		log.Debug("rule compiled", "kind", r.Kind, "pattern", r.Pattern, "states", f.NumStates())
	}
	l.stats = Stats{
		Rules:     len(rules),
		Kinds:     l.kinds.Len(),
		NFAStates: root.NumStates(),
	}

	if err := root.Determinize(); err != nil {
		return nil, fmt.Errorf("determinize: %w", err)
	}
	l.stats.DFAStates = root.NumStates()
	log.Debug("determinized", "nfa_states", l.stats.NFAStates, "dfa_states", l.stats.DFAStates)

	if o.minimize {
		if err := root.Minimize(); err != nil {
			return nil, fmt.Errorf("minimize: %w", err)
		}
		l.stats.MinStates = root.NumStates()
		log.Debug("minimized", "dfa_states", l.stats.DFAStates, "min_states", l.stats.MinStates)
	}
	l.stats.Transitions = root.NumTransitions()
	l.stats.Alphabet = len(root.Alphabet())
	l.dfa = root
	return l, nil
}

// Match returns the kind of the state reached by a greedy scan of input,
// or the null kind.
func (l *Lexer) Match(input []byte) Kind { return l.dfa.Match(input) }

// MatchString is Match for a string input.
func (l *Lexer) MatchString(input string) Kind { return l.dfa.MatchString(input) }

// Null returns the no-match kind.
func (l *Lexer) Null() Kind { return l.null }

// Kind returns the kind with the given name.
func (l *Lexer) Kind(name string) (Kind, bool) { return l.kinds.Lookup(name) }

// KindName returns the name of k, or "" if k does not belong to l.
func (l *Lexer) KindName(k Kind) string {
	name, err := l.kinds.Value(k)
	if err != nil {
		return ""
	}
	return name
}

// Kinds returns every kind name, the null kind first, then in declaration
// order.
func (l *Lexer) Kinds() []string { return l.kinds.Values() }

// Stats reports the automaton sizes recorded while building.
func (l *Lexer) Stats() Stats { return l.stats }

// WriteDOT writes the final automaton in Graphviz form, labelling accept
// states with their kind names.
func (l *Lexer) WriteDOT(w io.Writer) error { return l.dfa.WriteDOT(w, l.KindName) }
