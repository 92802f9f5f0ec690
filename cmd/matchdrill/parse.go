package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/remaimber-it/matchdrill/internal/domain/questionbank"
)

type parsedQuestion struct {
	Index int      `json:"index"`
	Title string   `json:"title"`
	Left  []string `json:"left"`
	Right []string `json:"right"`
	Key   string   `json:"key"`
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Print the questions of a bank file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			bank, err := questionbank.New(filepath.Base(args[0]), string(data))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			out := make([]parsedQuestion, bank.Len())
			for i, q := range bank.Questions {
				out[i] = parsedQuestion{
					Index: q.Index,
					Title: q.Title,
					Left:  q.Left,
					Right: q.Right,
					Key:   q.Key,
				}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}
