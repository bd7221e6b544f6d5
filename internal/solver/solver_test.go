package solver

import (
	"math/rand"
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

// CATC needs a cell twice: the only C is at (0,0).
var sampleWords = []string{"CAT", "CATS", "ARE", "TON", "SEA", "SEAT", "EAT", "CATC", "ZEBRA"}

func TestFindAllSampleBoard(t *testing.T) {
	b := board.MustNew(sampleBoard)
	ix := dict.Build(sampleWords)

	got := FindAll(b, ix)

	want := []string{"ARE", "CAT", "CATS", "EAT", "SEA", "SEAT", "TON"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("FindAll mismatch (-want +got):\n%s", diff)
	}
	assert.NotContains(t, got, "CATC", "word requiring a repeated cell")
	assert.NotContains(t, got, "ZEBRA")
}

func TestFindAllIdempotent(t *testing.T) {
	b := board.MustNew(sampleBoard)
	ix := dict.Build(sampleWords)

	assert.Equal(t, FindAll(b, ix), FindAll(b, ix))
	assert.Equal(t, 7, Count(b, ix))
}

func TestFindCatPath(t *testing.T) {
	b := board.MustNew(sampleBoard)

	p, ok := Find(b, "cat")
	require.True(t, ok)
	assert.Equal(t, board.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, p)

	_, ok = Find(b, "CATC")
	assert.False(t, ok)
	_, ok = Find(b, "AT")
	assert.False(t, ok, "too short to be a board word")
}

func TestFindAllWithPaths(t *testing.T) {
	b := board.MustNew(sampleBoard)
	ix := dict.Build(sampleWords)

	found := FindAllWithPaths(b, ix)
	require.Len(t, found, 7)
	for _, f := range found {
		require.NoError(t, b.CheckPath(f.Path), f.Word)
		assert.Equal(t, f.Word, b.Word(f.Path))
	}
	assert.Equal(t, "ARE", found[0].Word)
}

func TestQuTileContributesTwoCharacters(t *testing.T) {
	b := board.MustNew([][]string{
		{"Q", "I"},
		{"T", "E"},
	})
	ix := dict.Build([]string{"QUIT", "QUITE", "QIT", "TIE"})

	assert.Equal(t, []string{"QUIT", "QUITE", "TIE"}, FindAll(b, ix))
}

func TestSingleCellBoard(t *testing.T) {
	b := board.MustNew([][]string{{"A"}})
	assert.Empty(t, FindAll(b, dict.Build([]string{"AAA"})))
}

// TestFindAllMatchesBruteForce checks both directions of the enumeration
// contract on random boards: every result is traceable, and every traceable
// dictionary word is in the result.
func TestFindAllMatchesBruteForce(t *testing.T) {
	words := []string{
		"ATE", "EAT", "TEA", "TEN", "NET", "ANT", "TAN", "SAT", "SET", "SEA",
		"RAT", "TAR", "ART", "STAR", "RATE", "TEAR", "NEAT", "SENT", "RENT",
		"TREAT", "STATE", "ASSET", "TENET", "EATEN", "ARENA",
	}
	ix := dict.Build(words)
	rng := rand.New(rand.NewSource(7))
	letters := []string{"A", "E", "T", "S", "R", "N"}

	for trial := 0; trial < 25; trial++ {
		n := 2 + trial%4
		rows := make([][]string, n)
		for r := range rows {
			rows[r] = make([]string, n)
			for c := range rows[r] {
				rows[r][c] = letters[rng.Intn(len(letters))]
			}
		}
		b := board.MustNew(rows)
		got := FindAll(b, ix)

		var want []string
		for _, w := range words {
			if p, ok := Find(b, w); ok {
				require.NoError(t, b.CheckPath(p))
				want = append(want, w)
			}
		}
		assert.ElementsMatch(t, want, got, "board %s", b)
	}
}
