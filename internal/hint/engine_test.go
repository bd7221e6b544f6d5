package hint

import (
	"context"
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/boggle/internal/board"
	"github.com/robalobadob/boggle/internal/dict"
)

var sampleBoard = [][]string{
	{"C", "A", "T", "S"},
	{"A", "R", "E", "A"},
	{"T", "O", "N", "E"},
	{"S", "E", "A", "T"},
}

var sampleWords = []string{"CAT", "CATS", "ARE", "TON", "SEA", "SEAT", "EAT"}

// tableOracle answers from a fixed map and falls back to def.
func tableOracle(freqs map[string]float64, def float64) Oracle {
	return OracleFunc(func(word, _ string) float64 {
		if f, ok := freqs[word]; ok {
			return f
		}
		return def
	})
}

func newEngine(words []string, o Oracle) *Engine {
	return New(dict.Build(words), o, Config{})
}

func assertTraces(t *testing.T, b *board.Board, r Result) {
	t.Helper()
	require.NoError(t, b.CheckPath(r.Path))
	assert.Equal(t, r.Word, b.Word(r.Path))
}

func TestSuggestPrefersFrequentWord(t *testing.T) {
	b := board.MustNew(sampleBoard)
	e := newEngine(sampleWords, tableOracle(map[string]float64{"sea": 1e-3}, 1e-7))

	r, ok := e.Suggest(context.Background(), b, nil, DefaultThreshold)

	require.True(t, ok)
	assert.Equal(t, "SEA", r.Word)
	assert.Equal(t, DefaultThreshold, r.Threshold)
	assert.InDelta(t, 5.0, r.Score, 1e-9)
	assertTraces(t, b, r)
}

func TestSuggestSkipsFoundWordsAndRelaxesThreshold(t *testing.T) {
	b := board.MustNew(sampleBoard)
	e := newEngine(sampleWords, tableOracle(map[string]float64{"sea": 1e-3}, 1e-7))
	found := map[string]struct{}{"SEA": {}}

	r, ok := e.Suggest(context.Background(), b, found, DefaultThreshold)

	require.True(t, ok)
	assert.NotEqual(t, "SEA", r.Word)
	assert.Contains(t, sampleWords, r.Word)
	assert.Equal(t, 1.0, r.Threshold, "other words score log10(1e-7*1e8) = 1")
	assertTraces(t, b, r)
}

func TestSuggestFallsToZeroThreshold(t *testing.T) {
	b := board.MustNew([][]string{{"QU", "I"}, {"T", "E"}})
	e := newEngine([]string{"QUIT"}, tableOracle(nil, 0))

	r, ok := e.Suggest(context.Background(), b, map[string]struct{}{}, DefaultThreshold)

	require.True(t, ok)
	assert.Equal(t, "QUIT", r.Word)
	assert.Equal(t, 0.0, r.Threshold)
	assert.Len(t, r.Path, 3)
	assertTraces(t, b, r)
}

func TestSuggestNoneFound(t *testing.T) {
	e := newEngine(sampleWords, tableOracle(nil, 1e-3))

	r, ok := e.Suggest(context.Background(), board.MustNew([][]string{{"Z", "Z"}, {"Z", "Z"}}), nil, DefaultThreshold)
	assert.False(t, ok)
	assert.Equal(t, Result{}, r)

	all := make(map[string]struct{})
	for _, w := range sampleWords {
		all[w] = struct{}{}
	}
	r, ok = e.Suggest(context.Background(), board.MustNew(sampleBoard), all, DefaultThreshold)
	assert.False(t, ok, "every word already found")
	assert.Equal(t, Result{}, r)
}

func TestSuggestCancelled(t *testing.T) {
	e := newEngine(sampleWords, tableOracle(nil, 1e-3))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok := e.Suggest(ctx, board.MustNew(sampleBoard), nil, DefaultThreshold)
	assert.False(t, ok)
}

func TestSuggestMemoizesOracle(t *testing.T) {
	var mu sync.Mutex
	calls := make(map[string]int)
	o := OracleFunc(func(word, lang string) float64 {
		mu.Lock()
		defer mu.Unlock()
		calls[word]++
		assert.Equal(t, "en", lang)
		assert.Equal(t, strings.ToLower(word), word)
		return 0
	})
	e := newEngine(sampleWords, o)

	_, ok := e.Suggest(context.Background(), board.MustNew(sampleBoard), nil, 2)
	require.True(t, ok)
	for w, n := range calls {
		assert.Equalf(t, 1, n, "oracle asked about %q more than once", w)
	}
}

func TestSchedule(t *testing.T) {
	e := newEngine(sampleWords, tableOracle(nil, 0))

	cases := []struct {
		start float64
		want  []float64
	}{
		{4, []float64{4, 3, 2, 1, 0}},
		{2.5, []float64{2.5, 1.5, 0.5, 0}},
		{0, []float64{0}},
		{-3, []float64{0}},
		{1e17, []float64{8, 7, 6, 5, 4, 3, 2, 1, 0}},
		{math.Inf(1), []float64{8, 7, 6, 5, 4, 3, 2, 1, 0}},
		{math.Inf(-1), []float64{0}},
		{math.NaN(), []float64{0}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, e.schedule(tc.start)); diff != "" {
			t.Errorf("schedule(%v) mismatch (-want +got):\n%s", tc.start, diff)
		}
	}
}

func TestScheduleBoundedForTinySteps(t *testing.T) {
	e := New(dict.Build(sampleWords), tableOracle(nil, 0), Config{ThresholdStep: 1e-300})
	assert.Equal(t, minThresholdStep, e.Config().ThresholdStep)

	got := e.schedule(math.MaxFloat64)
	assert.LessOrEqual(t, len(got), int(MaxThreshold/minThresholdStep)+1)
	assert.Equal(t, MaxThreshold, got[0])
	assert.Equal(t, 0.0, got[len(got)-1])
}

func TestValidThreshold(t *testing.T) {
	for _, v := range []float64{0, 2.5, DefaultThreshold, MaxThreshold} {
		assert.Truef(t, ValidThreshold(v), "%v", v)
	}
	for _, v := range []float64{-1, 8.01, 1e300, math.Inf(1), math.NaN()} {
		assert.Falsef(t, ValidThreshold(v), "%v", v)
	}
}

func TestSuggestHugeThresholdTerminates(t *testing.T) {
	b := board.MustNew(sampleBoard)
	e := newEngine(sampleWords, tableOracle(map[string]float64{"sea": 1e-3}, 1e-7))

	r, ok := e.Suggest(context.Background(), b, nil, 1e17)
	require.True(t, ok)
	assert.Equal(t, "SEA", r.Word)
	assert.Equal(t, 5.0, r.Threshold, "rounds run 8, 7, 6, 5")
}

// countingOracle records how often each word is asked for and runs hook
// before answering.
type countingOracle struct {
	mu    sync.Mutex
	calls map[string]int
	hook  func()
}

func (o *countingOracle) Frequency(word, _ string) float64 {
	o.mu.Lock()
	o.calls[word]++
	o.mu.Unlock()
	if o.hook != nil {
		o.hook()
	}
	return 0
}

func TestSearchStopsBetweenExpansions(t *testing.T) {
	b := board.MustNew(sampleBoard)
	ix := dict.Build([]string{"CATS"})

	// Already stopped: the start cell is scored from the letter table and
	// no expansion reaches the oracle.
	var stopped atomic.Bool
	stopped.Store(true)
	o := &countingOracle{calls: map[string]int{}}
	e := New(ix, o, Config{})
	_, ok := e.search(context.Background(), b, 0, nil, 0, &memo{oracle: o, lang: "en"}, &stopped)
	assert.False(t, ok)
	assert.Empty(t, o.calls)

	// Stopped during the first expansion: that expansion finishes, the
	// next one never starts, so CAT is never scored.
	var stop atomic.Bool
	o = &countingOracle{calls: map[string]int{}, hook: func() { stop.Store(true) }}
	e = New(ix, o, Config{})
	_, ok = e.search(context.Background(), b, 0, nil, MaxThreshold, &memo{oracle: o, lang: "en"}, &stop)
	assert.False(t, ok)
	assert.Equal(t, map[string]int{"ca": 1}, o.calls)

	// Without a stop the same search reaches CATS.
	var idle atomic.Bool
	o = &countingOracle{calls: map[string]int{}}
	e = New(ix, o, Config{})
	r, ok := e.search(context.Background(), b, 0, nil, 0, &memo{oracle: o, lang: "en"}, &idle)
	require.True(t, ok)
	assert.Equal(t, "CATS", r.Word)
	assert.Contains(t, o.calls, "cat")
}

func TestRateSingleCharacterUsesLetterTable(t *testing.T) {
	o := &countingOracle{calls: map[string]int{}}
	e := New(dict.Build(nil), o, Config{})
	m := &memo{oracle: o, lang: "en"}

	for word, want := range map[string]float64{"S": 5.0, "É": 0, "Ж": 0} {
		c := candidate{word: word}
		e.rate(&c, m)
		assert.Equalf(t, want, c.score, "score of %q", word)
	}
	assert.Empty(t, o.calls, "single characters never reach the oracle")
}

func TestBestPicksHighestFrequency(t *testing.T) {
	_, ok := best(nil)
	assert.False(t, ok)

	r, ok := best([]Result{
		{Word: "EAT", Frequency: 1e-4},
		{Word: "SEA", Frequency: 7e-5},
		{Word: "ARE", Frequency: 4e-3},
		{Word: "CAT", Frequency: 4e-3},
	})
	require.True(t, ok)
	assert.Equal(t, "ARE", r.Word, "ties keep the first arrival")
}

func TestNewAppliesDefaults(t *testing.T) {
	e := New(dict.Build(nil), tableOracle(nil, 0), Config{BeamWidth: 5})
	cfg := e.Config()
	assert.Equal(t, 5, cfg.BeamWidth)
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, 8, cfg.MaxWordLength)
	assert.Equal(t, 1.0, cfg.ThresholdStep)
}

func TestScores(t *testing.T) {
	assert.InDelta(t, 4.0, FrequencyScore(1e-4), 1e-9)
	assert.InDelta(t, 0.0, FrequencyScore(1e-8), 1e-9)
	assert.Equal(t, 0.0, FrequencyScore(1e-10), "floored at zero")
	assert.Equal(t, 0.0, FrequencyScore(0))
	assert.Equal(t, 0.0, FrequencyScore(-1))

	assert.Equal(t, 5.0, LetterScore('S'))
	assert.Equal(t, 0.0, LetterScore('?'))
}

func TestTables(t *testing.T) {
	def := DefaultTable()
	assert.Greater(t, def.Frequency("THE", "en"), 0.01)
	assert.Zero(t, def.Frequency("the", "fr"))
	assert.Zero(t, def.Frequency("zzyzx", "en"))

	tbl, err := LoadTable(strings.NewReader("# comment\nCat\t2.5e-5\n\ndog 1e-4\n"), "en")
	require.NoError(t, err)
	assert.Equal(t, 2.5e-5, tbl.Frequency("cat", ""))
	assert.Equal(t, 1e-4, tbl.Frequency("DOG", "en"))

	_, err = LoadTable(strings.NewReader("cat\n"), "en")
	assert.Error(t, err)
	_, err = LoadTable(strings.NewReader("cat -1\n"), "en")
	assert.Error(t, err)
}
