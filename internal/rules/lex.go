package rules

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	plexer "github.com/alecthomas/participle/v2/lexer"

	"lexdfa/internal/lexer"
)

type lexFile struct {
	Entries []*lexEntry `parser:"@@*"`
}

type lexEntry struct {
	Directive *lexDirective `parser:"  @@"`
	Rule      *lexRule      `parser:"| @@"`
}

type lexDirective struct {
	Pos   plexer.Position
	Name  string `parser:"@Directive"`
	Value string `parser:"@(Ident | Int | String | Raw)"`
}

type lexRule struct {
	Kind    string `parser:"@Ident '='"`
	Pattern string `parser:"@(String | Raw)"`
}

var lexTokens = plexer.MustSimple([]plexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Directive", Pattern: `@[a-z]+`},
	{Name: "Raw", Pattern: "`[^`]*`"},
	{Name: "String", Pattern: `"(\\.|[^"\\\n])*"`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `=`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var lexParser = participle.MustBuild[lexFile](
	participle.Lexer(lexTokens),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
	participle.Map(func(t plexer.Token) (plexer.Token, error) {
		t.Value = strings.Trim(t.Value, "`")
		return t, nil
	}, "Raw"),
)

// ParseLex reads a .lex rule file. filename is used in error positions.
func ParseLex(filename string, r io.Reader) (*Set, error) {
	file, err := lexParser.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}

	set := &Set{}
	for _, e := range file.Entries {
		switch {
		case e.Rule != nil:
			set.Rules = append(set.Rules, lexer.Rule{Kind: e.Rule.Kind, Pattern: e.Rule.Pattern})
		case e.Directive != nil:
			if err := set.apply(e.Directive); err != nil {
				return nil, fmt.Errorf("%s: %w", e.Directive.Pos, err)
			}
		}
	}
	if err := set.validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	return set, nil
}

func (s *Set) apply(d *lexDirective) error {
	switch d.Name {
	case "@null":
		s.Null = d.Value
	case "@minimize":
		on, err := strconv.ParseBool(d.Value)
		if err != nil {
			return fmt.Errorf("@minimize: %w", err)
		}
		s.Minimize = &on
	case "@limit":
		n, err := strconv.Atoi(d.Value)
		if err != nil {
			return fmt.Errorf("@limit: %w", err)
		}
		s.StateLimit = n
	default:
		return fmt.Errorf("%w %s", ErrUnknownDirective, d.Name)
	}
	return nil
}
