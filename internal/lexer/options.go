package lexer

import (
	"io"
	"log/slog"
)

// DefaultNullKind names the kind returned when nothing matches.
const DefaultNullKind = "Null"

// Option configures New.
type Option func(*options)

type options struct {
	nullKind   string
	minimize   bool
	stateLimit int
	logger     *slog.Logger
}

func defaults() options {
	return options{
		nullKind: DefaultNullKind,
		minimize: true,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithNullKind sets the name of the no-match kind.
func WithNullKind(name string) Option {
	return func(o *options) { o.nullKind = name }
}

// WithMinimize turns DFA minimization on or off. It is on by default.
func WithMinimize(on bool) Option {
	return func(o *options) { o.minimize = on }
}

// WithStateLimit bounds the number of DFA states; zero means unbounded.
func WithStateLimit(n int) Option {
	return func(o *options) { o.stateLimit = n }
}

// WithLogger routes build diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
