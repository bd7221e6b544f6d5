// internal/generator/bands.go
//
// Difficulty labels and the word-count bands that define them.
// The default bands live in assets/bands.yaml; operators may supply their own
// file with the same shape.

package generator

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/boggle/assets"
)

// Difficulty labels a target word-count band.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// ParseDifficulty accepts any casing of Easy, Medium or Hard.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// Band is a findable-word count range. Min is inclusive, Max exclusive;
// Max 0 means no upper bound.
type Band struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Contains reports whether count falls inside the band.
func (b Band) Contains(count int) bool {
	if count < b.Min {
		return false
	}
	return b.Max <= 0 || count < b.Max
}

// Bands maps board size, then difficulty, to a band.
type Bands map[int]map[Difficulty]Band

// Matches reports whether count satisfies the band for (size, d). Sizes and
// difficulties without an entry always match.
func (bs Bands) Matches(size int, d Difficulty, count int) bool {
	bySize, ok := bs[size]
	if !ok {
		return true
	}
	band, ok := bySize[d]
	if !ok {
		return true
	}
	return band.Contains(count)
}

// LoadBands parses a YAML band document.
func LoadBands(r io.Reader) (Bands, error) {
	var raw map[int]map[string]Band
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("generator: decode bands: %w", err)
	}
	bs := make(Bands, len(raw))
	for size, bySize := range raw {
		bs[size] = make(map[Difficulty]Band, len(bySize))
		for label, band := range bySize {
			d, err := ParseDifficulty(label)
			if err != nil {
				return nil, fmt.Errorf("generator: bands for size %d: %w", size, err)
			}
			if band.Max > 0 && band.Max <= band.Min {
				return nil, fmt.Errorf("generator: band %d/%s is empty: [%d,%d)", size, d, band.Min, band.Max)
			}
			bs[size][d] = band
		}
	}
	return bs, nil
}

// DefaultBands returns the embedded band table.
func DefaultBands() Bands {
	raw, err := assets.Bands()
	if err != nil {
		panic(fmt.Sprintf("generator: embedded bands: %v", err))
	}
	bs, err := LoadBands(bytes.NewReader(raw))
	if err != nil {
		panic(err)
	}
	return bs
}
