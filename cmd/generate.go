package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robalobadob/boggle/internal/daily"
	"github.com/robalobadob/boggle/internal/generator"
)

func newGenerateCmd() *cobra.Command {
	var (
		size       int
		difficulty string
		seed       int64
		today      bool
		date       string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a board for a difficulty",
		Long: `Generate rolls boards until the word count falls inside the band for the
requested size and difficulty. After 50 attempts the last board is kept and a
warning is logged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := generator.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}
			switch {
			case date != "":
				t, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("bad --date %q: want YYYY-MM-DD", date)
				}
				seed = daily.Seed(t, viper.GetString(dailySaltKey))
			case today:
				seed = daily.Seed(time.Now(), viper.GetString(dailySaltKey))
			case !cmd.Flags().Changed("seed"):
				seed = time.Now().UnixNano() ^ rand.Int63()
			}

			ix := loadIndex()
			gen, err := newGenerator(ix)
			if err != nil {
				return err
			}
			res, err := gen.Generate(cmd.Context(), seed, size, d)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderBoard(res.Board))
			fmt.Fprintf(out, "board: %s\n", res.Board.String())
			fmt.Fprintf(out, "words: %d  difficulty: %s  matched: %t  attempts: %d  seed: %d\n",
				res.WordCount, res.Difficulty, res.Matched, res.Attempts, res.Seed)
			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 4, "board size (4 and 5 use dice)")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", string(generator.Medium), "Easy, Medium or Hard")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for a reproducible board")
	cmd.Flags().BoolVar(&today, "daily", false, "use today's shared daily seed")
	cmd.Flags().StringVar(&date, "date", "", "use the daily seed of this date (YYYY-MM-DD)")
	cmd.MarkFlagsMutuallyExclusive("seed", "daily", "date")

	return cmd
}
