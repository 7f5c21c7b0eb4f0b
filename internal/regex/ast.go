package regex

import (
	"fmt"
	"strings"
)

// Op identifies the kind of a Node.
type Op int

const (
	OpEmpty     Op = iota // matches nothing on its own; only the empty pattern
	OpLiteral             // one byte
	OpClass               // character class
	OpConcat              // Sub[0] Sub[1] ...
	OpAlternate           // Sub[0] | Sub[1] | ...
	OpStar                // Sub[0]*
	OpPlus                // Sub[0]+
	OpQuest               // Sub[0]?
)

// Node is one vertex of the syntax tree produced by Parse.
type Node struct {
	Op    Op
	Byte  byte  // OpLiteral
	Class Class // OpClass
	Sub   []*Node
}

func literal(b byte) *Node { return &Node{Op: OpLiteral, Byte: b} }

// String renders the tree in a compact prefix form, e.g. cat(a,star(b)).
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	switch n.Op {
	case OpEmpty:
		b.WriteString("empty")
	case OpLiteral:
		b.WriteString(printable(n.Byte))
	case OpClass:
		b.WriteString(n.Class.String())
	default:
		b.WriteString(n.Op.name())
		b.WriteByte('(')
		for i, s := range n.Sub {
			if i > 0 {
				b.WriteByte(',')
			}
			s.write(b)
		}
		b.WriteByte(')')
	}
}

func (op Op) name() string {
	switch op {
	case OpConcat:
		return "cat"
	case OpAlternate:
		return "alt"
	case OpStar:
		return "star"
	case OpPlus:
		return "plus"
	case OpQuest:
		return "quest"
	}
	return fmt.Sprintf("op%d", int(op))
}

// Class is a set of bytes, optionally negated. Byte 0 is never a member,
// with or without negation.
type Class struct {
	Negated bool
	set     [4]uint64
}

// Add puts b into the listed members.
func (c *Class) Add(b byte) { c.set[b>>6] |= 1 << (b & 63) }

// Listed reports whether b was written inside the brackets.
func (c *Class) Listed(b byte) bool { return c.set[b>>6]&(1<<(b&63)) != 0 }

// Matches reports whether the class selects b.
func (c *Class) Matches(b byte) bool {
	if b == 0 {
		return false
	}
	return c.Listed(b) != c.Negated
}

// Bytes returns the selected bytes in ascending order.
func (c *Class) Bytes() []byte {
	var out []byte
	for i := 1; i < 256; i++ {
		if c.Matches(byte(i)) {
			out = append(out, byte(i))
		}
	}
	return out
}

func (c Class) String() string {
	var b strings.Builder
	b.WriteByte('[')
	if c.Negated {
		b.WriteByte('^')
	}
	for i := 1; i < 256; i++ {
		if c.Listed(byte(i)) {
			b.WriteString(printable(byte(i)))
		}
	}
	b.WriteByte(']')
	return b.String()
}

func printable(c byte) string {
	switch {
	case c == '\t':
		return `\t`
	case c == '\n':
		return `\n`
	case c < 0x20 || c >= 0x7f:
		return fmt.Sprintf(`\x%02x`, c)
	case strings.IndexByte(`()*+?|\[]^-`, c) >= 0:
		return `\` + string(c)
	}
	return string(c)
}
