package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/remaimber-it/matchdrill/internal/service"
)

func newImportCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Store bank files under their base names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files := make([]service.ImportFile, 0, len(args))
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				files = append(files, service.ImportFile{Name: filepath.Base(path), Content: string(data)})
			}

			a, err := open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			failed := 0
			w := cmd.OutOrStdout()
			for _, r := range a.exams.ImportBanks(cmd.Context(), files) {
				if r.Err != nil {
					failed++
					fmt.Fprintf(w, "%s %s  %s\n", errStyle.Render("✗"), r.Name, dimStyle.Render(r.Err.Error()))
					continue
				}
				fmt.Fprintf(w, "%s %s  %s\n", okStyle.Render("✓"), r.Name, dimStyle.Render(fmt.Sprintf("%d questions", r.Questions)))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(files))
			}
			return nil
		},
	}
}
