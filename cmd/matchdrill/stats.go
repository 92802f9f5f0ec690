package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/remaimber-it/matchdrill/internal/grader"
)

func newStatsCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <bank>",
		Short: "Show the statistics of a stored bank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			stats, _, err := a.exams.BankStats(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			band := grader.BandFor(stats.Percent)
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, titleStyle.Render(stats.Bank))
			fmt.Fprintf(w, "  questions  %d\n", stats.TotalQuestions)
			fmt.Fprintf(w, "  solved     %d\n", stats.Solved)
			fmt.Fprintf(w, "  correct    %d\n", stats.Correct)
			fmt.Fprintf(w, "  wrong      %d\n", stats.Wrong)
			fmt.Fprintf(w, "  favorites  %d\n", stats.Favorites)
			fmt.Fprintf(w, "  success    %s %s\n",
				bandStyle(band).Render(fmt.Sprintf("%d%%", stats.Percent)),
				dimStyle.Render(band.Label))
			return nil
		},
	}
}
