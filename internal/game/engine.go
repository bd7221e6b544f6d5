// internal/game/engine.go
//
// Judges a traced path against a board and dictionary.
// Responsibilities:
//   - Validate the path (bounds, adjacency, no reuse) via board.CheckPath.
//   - Spell the word and apply the minimum length rule.
//   - Reject words already in the player's found set.
//   - Look the word up in the dictionary.
//
// Notes:
//   - Checks run in that order; the first failing one decides the verdict.
//   - A rejected submission is a normal outcome, never an error.

package game

import (
	"github.com/robalobadob/boggle/internal/board"
	"github.com/robalobadob/boggle/internal/dict"
)

// Check judges path on b. found holds uppercase words already claimed and may be nil.
func Check(b *board.Board, ix *dict.Index, path board.Path, found map[string]struct{}) Verdict {
	if err := b.CheckPath(path); err != nil {
		return Verdict{Status: StatusInvalidPath, Reason: err.Error()}
	}
	word := b.Word(path)
	if len([]rune(word)) < dict.MinWordLength {
		return Verdict{Status: StatusTooShort, Word: word, Reason: "words need at least 3 letters"}
	}
	if _, dup := found[word]; dup {
		return Verdict{Status: StatusAlreadyFound, Word: word, Reason: "already found"}
	}
	if !ix.IsWord(word) {
		return Verdict{Status: StatusNotAWord, Word: word, Reason: "not in dictionary"}
	}
	return Verdict{Status: StatusAccepted, Word: word}
}
