package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/remaimber-it/matchdrill/internal/ledger"
)

func newWrongCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "wrong <bank>",
		Short: "List the questions a repeat-wrong session would draw",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			bank, err := a.exams.LoadBank(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			sub, err := a.ledger.RepeatWrong(bank)
			if errors.Is(err, ledger.ErrNothingToRepeat) {
				fmt.Fprintln(w, okStyle.Render("nothing to repeat"))
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "%5s  %7s  %5s  %s\n", "#", "correct", "wrong", "title")
			for _, q := range sub.Questions {
				r, _ := a.ledger.Peek(bank.Name, q.Index)
				fmt.Fprintf(w, "%5d  %7d  %5s  %s\n",
					q.Index+1, r.Correct, errStyle.Render(fmt.Sprintf("%5d", r.Wrong)), q.Title)
			}
			fmt.Fprintf(w, "\n%d of %d questions\n", sub.Len(), bank.Len())
			return nil
		},
	}
}
