// Package rules loads token rule sets from disk.
//
// Two formats are understood. A .lex file lists one rule per line as
// Kind = "pattern" (Go string syntax) or Kind = `pattern` (taken verbatim),
// with @null, @minimize and @limit directives and # comments. A .yaml or
// .yml file holds the same data as a mapping with a rules list.
package rules

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lexdfa/internal/lexer"
)

var (
	ErrUnknownDirective = errors.New("unknown directive")
	ErrUnknownFormat    = errors.New("unknown rule file format")
)

// Set is a rule list plus the build settings stored alongside it. Zero
// settings leave the lexer defaults in place.
type Set struct {
	Null       string       `yaml:"null_kind"`
	Minimize   *bool        `yaml:"minimize"`
	StateLimit int          `yaml:"state_limit"`
	Rules      []lexer.Rule `yaml:"rules"`
}

// Options translates the stored settings into lexer options.
func (s *Set) Options() []lexer.Option {
	var opts []lexer.Option
	if s.Null != "" {
		opts = append(opts, lexer.WithNullKind(s.Null))
	}
	if s.Minimize != nil {
		opts = append(opts, lexer.WithMinimize(*s.Minimize))
	}
	if s.StateLimit > 0 {
		opts = append(opts, lexer.WithStateLimit(s.StateLimit))
	}
	return opts
}

// Build compiles the set. opts are applied after the stored settings and
// override them.
func (s *Set) Build(opts ...lexer.Option) (*lexer.Lexer, error) {
	return lexer.New(s.Rules, append(s.Options(), opts...)...)
}

func (s *Set) validate() error {
	if len(s.Rules) == 0 {
		return lexer.ErrNoRules
	}
	for i, r := range s.Rules {
		if r.Kind == "" {
			return fmt.Errorf("rule %d: %w", i, lexer.ErrEmptyKind)
		}
	}
	if s.StateLimit < 0 {
		return fmt.Errorf("state limit %d is negative", s.StateLimit)
	}
	return nil
}

// Load reads a rule set, choosing the format by file extension.
func Load(path string) (*Set, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var parse func(*os.File) (*Set, error)
	switch ext {
	case ".lex":
		parse = func(f *os.File) (*Set, error) { return ParseLex(path, f) }
	case ".yaml", ".yml":
		parse = func(f *os.File) (*Set, error) { return ParseYAML(f) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file: %w", err)
	}
	defer f.Close()
	return parse(f)
}
