package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/boggle/internal/board"
	"github.com/robalobadob/boggle/internal/solver"
)

func newSolveCmd() *cobra.Command {
	var wordsOnly bool
	cmd := &cobra.Command{
		Use:     "solve BOARD",
		Short:   "List every dictionary word on a board",
		Example: "  boggle solve CATS/AREA/TONE/SEAT",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := board.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse board: %w", err)
			}
			ix := loadIndex()
			out := cmd.OutOrStdout()
			if wordsOnly {
				for _, w := range solver.FindAll(b, ix) {
					fmt.Fprintln(out, w)
				}
				return nil
			}
			fmt.Fprintln(out, renderBoard(b))
			fmt.Fprint(out, renderWords(solver.FindAllWithPaths(b, ix)))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&wordsOnly, "words", "w", false, "print only the words, one per line")
	return cmd
}
