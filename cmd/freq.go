package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	dbFlagName   = "db"
	langFlagName = "lang"
)

var errNoFreqDB = errors.New("no frequency database: set --db, freq.db or BOGGLE_FREQ_DB")

func newFreqCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freq",
		Short: "Manage the word frequency database",
	}
	cmd.PersistentFlags().String(dbFlagName, "", "SQLite database path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(dbFlagName), freqDBKey)
	cmd.PersistentFlags().String(langFlagName, defaultFreqLang, "language code")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(langFlagName), freqLangKey)

	cmd.AddCommand(newFreqImportCmd(), newFreqCountCmd())
	return cmd
}

func newFreqImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: `Import "word<TAB>frequency" lines`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn := viper.GetString(freqDBKey)
			if dsn == "" {
				return errNoFreqDB
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			st, err := openFreqStore(cmd.Context(), dsn)
			if err != nil {
				return err
			}
			defer st.Close()

			n, err := st.Import(cmd.Context(), viper.GetString(freqLangKey), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d words\n", n)
			return nil
		},
	}
}

func newFreqCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Count stored words for a language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dsn := viper.GetString(freqDBKey)
			if dsn == "" {
				return errNoFreqDB
			}
			st, err := openFreqStore(cmd.Context(), dsn)
			if err != nil {
				return err
			}
			defer st.Close()

			n, err := st.Count(cmd.Context(), viper.GetString(freqLangKey))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}
