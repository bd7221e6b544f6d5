package hint

import "math"

// startLetterScores rates how promising a single starting tile is. Hand-tuned
// from how often English words begin with each letter.
var startLetterScores = map[rune]float64{
	'S': 5.0, 'C': 4.6, 'P': 4.4, 'T': 4.2, 'B': 4.0, 'A': 4.0,
	'M': 3.9, 'D': 3.8, 'R': 3.6, 'F': 3.5, 'H': 3.4, 'G': 3.2,
	'L': 3.2, 'E': 3.0, 'W': 3.0, 'I': 2.8, 'O': 2.6, 'N': 2.5,
	'U': 2.0, 'V': 1.8, 'K': 1.5, 'J': 1.2, 'Y': 1.0, 'Q': 0.8,
	'Z': 0.6, 'X': 0.3,
}

// frequencyScale lifts raw frequencies (typically 1e-8..1e-1) into a small
// positive score range before taking the logarithm.
const frequencyScale = 1e8

// LetterScore returns the start score of a one-character prefix, 0 for
// characters outside the table.
func LetterScore(c rune) float64 {
	return startLetterScores[c]
}

// FrequencyScore maps a raw frequency to log10(freq*1e8), floored at 0.
func FrequencyScore(freq float64) float64 {
	if freq <= 0 {
		return 0
	}
	return math.Max(0, math.Log10(freq*frequencyScale))
}
