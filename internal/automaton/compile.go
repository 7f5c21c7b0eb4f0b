package automaton

import (
	"fmt"

	"lexdfa/internal/regex"
)

// Compile parses pattern and returns its fragment with every accept state
// tagged with tag.
func Compile[T comparable](pattern string, tag T, null T, merge MergeFunc[T], opts ...Option) (*Automaton[T], error) {
	n, err := regex.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return Build(n, null, merge, opts...).Tag(tag), nil
}

// Build runs the Thompson construction over a parsed pattern.
func Build[T comparable](n *regex.Node, null T, merge MergeFunc[T], opts ...Option) *Automaton[T] {
	b := &builder[T]{null: null, merge: merge, opts: opts}
	return b.build(n)
}

type builder[T comparable] struct {
	null  T
	merge MergeFunc[T]
	opts  []Option
}

func (b *builder[T]) fresh() *Automaton[T] { return New(b.null, b.merge, b.opts...) }

func (b *builder[T]) build(n *regex.Node) *Automaton[T] {
	switch n.Op {
	case regex.OpEmpty:
		return b.fresh()
	case regex.OpLiteral:
		return b.fresh().Concat(n.Byte)
	case regex.OpClass:
		return b.fresh().ConcatClass(&n.Class)
	case regex.OpConcat:
		a := b.fresh()
		for _, s := range n.Sub {
			a.ConcatFragment(b.build(s))
		}
		return a
	case regex.OpAlternate:
		// Branches hang off a fresh start. A branch's own start may be the
		// target of a repetition loop and must not see its siblings.
		a := b.fresh()
		for _, s := range n.Sub {
			a.Alter(b.build(s))
		}
		return a
	case regex.OpStar:
		return b.build(n.Sub[0]).Close()
	case regex.OpPlus:
		return b.build(n.Sub[0]).ConcatClose()
	case regex.OpQuest:
		return b.build(n.Sub[0]).Optional()
	}
	panic(fmt.Sprintf("automaton: unknown regex op %d", n.Op))
}
