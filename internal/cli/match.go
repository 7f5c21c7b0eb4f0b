package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"lexdfa/internal/lexer"
)

// MatchOptions holds flags for the match command.
type MatchOptions struct {
	Escapes bool
}

// NewMatchCommand creates the match command.
func NewMatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MatchOptions{}

	cmd := &cobra.Command{
		Use:   "match [input...]",
		Short: "Classify each input as one token",
		Long: `Classify each input as a single token and print its kind.

Inputs are taken from the arguments, or one per line from stdin when no
arguments are given. Each output line holds the quoted input and a kind.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := buildLexer(rootOpts, cmd)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				for _, arg := range args {
					if err := matchOne(cmd.OutOrStdout(), l, arg, opts.Escapes); err != nil {
						return err
					}
				}
				return nil
			}
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if err := matchOne(cmd.OutOrStdout(), l, scanner.Text(), opts.Escapes); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}

	cmd.Flags().BoolVarP(&opts.Escapes, "escapes", "e", false, `decode Go escape sequences such as \t and \n in inputs`)

	return cmd
}

func matchOne(w io.Writer, l *lexer.Lexer, input string, escapes bool) error {
	if escapes {
		decoded, err := unescape(input)
		if err != nil {
			return fmt.Errorf("input %q: %w", input, err)
		}
		input = decoded
	}
	_, err := fmt.Fprintf(w, "%s\t%s\n", strconv.Quote(input), l.KindName(l.MatchString(input)))
	return err
}

// unescape decodes s as the body of a double-quoted Go string.
func unescape(s string) (string, error) {
	var out []byte
	for len(s) > 0 {
		r, multibyte, tail, err := strconv.UnquoteChar(s, '"')
		if err != nil {
			return "", err
		}
		if multibyte {
			out = append(out, string(r)...)
		} else {
			out = append(out, byte(r))
		}
		s = tail
	}
	return string(out), nil
}
