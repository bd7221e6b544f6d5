package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/boggle/internal/board"
	"github.com/robalobadob/boggle/internal/game"
)

func newCheckCmd() *cobra.Command {
	var found []string
	cmd := &cobra.Command{
		Use:     "check BOARD PATH",
		Short:   "Judge a traced path",
		Example: `  boggle check CATS/AREA/TONE/SEAT "0,0 0,1 0,2" --found sea`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := board.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse board: %w", err)
			}
			p, err := parsePath(args[1])
			if err != nil {
				return err
			}
			v := game.Check(b, loadIndex(), p, parseFound(found))

			out := cmd.OutOrStdout()
			switch {
			case v.Accepted():
				fmt.Fprintf(out, "%s %s\n", v.Status, v.Word)
			case v.Word != "":
				fmt.Fprintf(out, "%s %s: %s\n", v.Status, v.Word, v.Reason)
			default:
				fmt.Fprintf(out, "%s: %s\n", v.Status, v.Reason)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&found, "found", "f", nil, "words already found (comma separated or repeated)")
	return cmd
}
