package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/robalobadob/boggle/internal/dict"
	"github.com/robalobadob/boggle/internal/freqstore"
	"github.com/robalobadob/boggle/internal/generator"
	"github.com/robalobadob/boggle/internal/hint"
)

// loadIndex loads the configured dictionary, or the built-in list when unset.
func loadIndex() *dict.Index {
	ix := dict.Load(viper.GetString(dictionaryKey))
	log.Debug().Str("source", ix.Source()).Int("words", ix.Len()).Bool("degraded", ix.Degraded()).Msg("dictionary loaded")
	return ix
}

// loadBands reads bands.file, or returns nil for the embedded defaults.
func loadBands() (generator.Bands, error) {
	path := viper.GetString(bandsKey)
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bands file: %w", err)
	}
	defer f.Close()
	return generator.LoadBands(f)
}

func newGenerator(ix *dict.Index) (*generator.Generator, error) {
	bands, err := loadBands()
	if err != nil {
		return nil, err
	}
	return generator.New(ix, bands), nil
}

// openOracle returns the SQLite oracle when freq.db is set and the embedded
// table otherwise. The returned func releases it.
func openOracle(ctx context.Context) (hint.Oracle, func(), error) {
	dsn := viper.GetString(freqDBKey)
	if dsn == "" {
		return hint.DefaultTable(), func() {}, nil
	}
	st, err := openFreqStore(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	return st, func() { _ = st.Close() }, nil
}

func openFreqStore(ctx context.Context, dsn string) (*freqstore.Store, error) {
	st, err := freqstore.Open(dsn)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, err
	}
	return st, nil
}

func newHintEngine(ix *dict.Index, oracle hint.Oracle) *hint.Engine {
	return hint.New(ix, oracle, hint.Config{
		Lang:          viper.GetString(freqLangKey),
		BeamWidth:     viper.GetInt(hintBeamWidthKey),
		MaxWordLength: viper.GetInt(hintMaxLengthKey),
	})
}

// hintThreshold reads hint.threshold and rejects values outside 0..hint.MaxThreshold.
func hintThreshold() (float64, error) {
	t := viper.GetFloat64(hintThresholdKey)
	if !hint.ValidThreshold(t) {
		return 0, fmt.Errorf("hint threshold %v out of range 0..%g", t, hint.MaxThreshold)
	}
	return t, nil
}
