package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/boggle/internal/board"
	"github.com/robalobadob/boggle/internal/dict"
)

func TestCheck(t *testing.T) {
	b := board.MustNew([][]string{
		{"C", "A", "T", "S"},
		{"A", "R", "E", "A"},
		{"T", "O", "N", "E"},
		{"S", "E", "A", "T"},
	})
	ix := dict.Build([]string{"CAT", "CATS", "SEA", "TON"})
	found := map[string]struct{}{"SEA": {}}

	p := func(cs ...int) board.Path {
		out := make(board.Path, 0, len(cs)/2)
		for i := 0; i+1 < len(cs); i += 2 {
			out = append(out, board.Coord{Row: cs[i], Col: cs[i+1]})
		}
		return out
	}

	cases := []struct {
		name string
		path board.Path
		want Status
		word string
	}{
		{"accepted", p(0, 0, 0, 1, 0, 2), StatusAccepted, "CAT"},
		{"accepted longer", p(0, 0, 0, 1, 0, 2, 0, 3), StatusAccepted, "CATS"},
		{"empty", nil, StatusInvalidPath, ""},
		{"out of bounds", p(0, 0, 0, 4), StatusInvalidPath, ""},
		{"not adjacent", p(0, 0, 0, 2, 0, 3), StatusInvalidPath, ""},
		{"reused cell", p(0, 0, 0, 1, 0, 0), StatusInvalidPath, ""},
		{"too short", p(0, 0, 0, 1), StatusTooShort, "CA"},
		{"already found", p(0, 3, 1, 2, 1, 3), StatusAlreadyFound, "SEA"},
		{"not a word", p(0, 0, 1, 1, 2, 2), StatusNotAWord, "CRN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := Check(b, ix, tc.path, found)
			assert.Equal(t, tc.want, v.Status)
			assert.Equal(t, tc.word, v.Word)
			assert.Equal(t, tc.want == StatusAccepted, v.Accepted())
			if v.Accepted() {
				assert.Empty(t, v.Reason)
			} else {
				assert.NotEmpty(t, v.Reason)
			}
		})
	}
}

func TestCheckShortDuplicateReportsLength(t *testing.T) {
	b := board.MustNew([][]string{{"A", "T"}, {"O", "N"}})
	ix := dict.Build([]string{"TON"})
	found := map[string]struct{}{"AT": {}}

	v := Check(b, ix, board.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, found)
	assert.Equal(t, StatusTooShort, v.Status)
}

func TestCheckQuCountsTwoLetters(t *testing.T) {
	b := board.MustNew([][]string{{"QU", "I"}, {"T", "E"}})
	ix := dict.Build([]string{"QUIT"})

	v := Check(b, ix, board.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}, nil)
	assert.Equal(t, StatusAccepted, v.Status)
	assert.Equal(t, "QUIT", v.Word)

	v = Check(b, ix, board.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, nil)
	assert.Equal(t, StatusNotAWord, v.Status, "QUI has three characters")
}
