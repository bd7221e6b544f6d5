package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/boggle/internal/board"
)

const thresholdFlagName = "threshold"

func newHintCmd() *cobra.Command {
	var found []string
	cmd := &cobra.Command{
		Use:     "hint BOARD",
		Short:   "Suggest a common word not yet found",
		Example: "  boggle hint CATS/AREA/TONE/SEAT --found cat,sea",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold, err := hintThreshold()
			if err != nil {
				return err
			}
			b, err := board.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse board: %w", err)
			}
			oracle, closeOracle, err := openOracle(cmd.Context())
			if err != nil {
				return err
			}
			defer closeOracle()

			e := newHintEngine(loadIndex(), oracle)
			h, ok := e.Suggest(cmd.Context(), b, parseFound(found), threshold)
			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(out, "no hint available")
				return nil
			}
			fmt.Fprintf(out, "%s  path: %s  frequency: %.3g  threshold: %g\n",
				h.Word, formatPath(h.Path), h.Frequency, h.Threshold)
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&found, "found", "f", nil, "words already found (comma separated or repeated)")
	cmd.Flags().Float64(thresholdFlagName, defaultThreshold, "starting score threshold")
	bindFlagToConfig(cmd.Flags().Lookup(thresholdFlagName), hintThresholdKey)
	return cmd
}
