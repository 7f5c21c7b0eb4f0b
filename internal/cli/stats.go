package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Report automaton sizes at each build stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := buildLexer(rootOpts, cmd)
			if err != nil {
				return err
			}
			s := l.Stats()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "rules\t%d\n", s.Rules)
			fmt.Fprintf(tw, "kinds\t%d\n", s.Kinds)
			fmt.Fprintf(tw, "nfa states\t%d\n", s.NFAStates)
			fmt.Fprintf(tw, "dfa states\t%d\n", s.DFAStates)
			if s.MinStates > 0 {
				fmt.Fprintf(tw, "minimal states\t%d\n", s.MinStates)
			}
			fmt.Fprintf(tw, "transitions\t%d\n", s.Transitions)
			fmt.Fprintf(tw, "alphabet\t%d\n", s.Alphabet)
			return tw.Flush()
		},
	}
}
