// internal/game/types.go
//
// Verdict types for player word submissions.
// Defines:
//   - Status: outcome of checking a traced path (accepted or a rejection reason).
//   - Verdict: status plus the word the path spells and a human-readable reason.

package game

// Status is the outcome of a submission.
//   - "accepted":      path is valid and spells a new dictionary word.
//   - "invalid_path":  path is empty, leaves the board, skips or repeats a cell.
//   - "too_short":     word has fewer than three characters.
//   - "already_found": word is in the player's found set.
//   - "not_a_word":    word is not in the dictionary.
type Status string

const (
	StatusAccepted     Status = "accepted"
	StatusInvalidPath  Status = "invalid_path"
	StatusTooShort     Status = "too_short"
	StatusAlreadyFound Status = "already_found"
	StatusNotAWord     Status = "not_a_word"
)

// Verdict reports how a submission was judged.
type Verdict struct {
	Status Status `json:"status"`
	Word   string `json:"word,omitempty"`   // uppercase word spelled by the path, if the path was valid
	Reason string `json:"reason,omitempty"` // empty when accepted
}

// Accepted reports whether the word may be added to the found set.
func (v Verdict) Accepted() bool { return v.Status == StatusAccepted }
