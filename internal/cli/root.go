// Package cli implements the lexdfa command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"lexdfa/internal/lexer"
	"lexdfa/internal/rules"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Rules      string
	Verbose    bool
	NoMinimize bool
}

// NewRootCommand creates the root command for the lexdfa CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "lexdfa",
		Short: "Compile token rules into a minimal DFA",
		Long: `lexdfa compiles an ordered list of token rules into one deterministic
automaton and classifies single tokens with it.

Rules come from a .lex or .yaml file. When patterns overlap, the rule
declared first wins.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.Rules, "rules", "r", "", "rule file (.lex, .yaml or .yml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log build steps to stderr")
	cmd.PersistentFlags().BoolVar(&opts.NoMinimize, "no-minimize", false, "skip DFA minimization")

	cmd.AddCommand(NewMatchCommand(opts))
	cmd.AddCommand(NewDotCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))

	return cmd
}

func newLogger(opts *RootOptions, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// buildLexer loads the rule file named by --rules and compiles it.
func buildLexer(opts *RootOptions, cmd *cobra.Command) (*lexer.Lexer, error) {
	if opts.Rules == "" {
		return nil, fmt.Errorf("--rules is required")
	}
	logger := newLogger(opts, cmd.ErrOrStderr())

	set, err := rules.Load(opts.Rules)
	if err != nil {
		return nil, err
	}
	logger.Info("rules loaded", "path", opts.Rules, "rules", len(set.Rules))

	extra := []lexer.Option{lexer.WithLogger(logger)}
	if opts.NoMinimize {
		extra = append(extra, lexer.WithMinimize(false))
	}
	return set.Build(extra...)
}
