// assets/embed.go
//
// Static data compiled into the binary.
//   - basic_words.txt: fallback dictionary used when no word list is configured.
//   - frequencies.tsv: small English word frequency corpus for the hint oracle.
//   - bands.yaml:      default difficulty bands for the board generator.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed basic_words.txt frequencies.tsv bands.yaml
var FS embed.FS

// readLines returns the trimmed, non-empty, non-comment lines of an embedded file.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// BasicWords returns the built-in fallback word list (uppercase).
func BasicWords() ([]string, error) {
	return readLines("basic_words.txt")
}

// FrequencyLines returns the raw "word<TAB>frequency" lines of the embedded corpus.
func FrequencyLines() ([]string, error) {
	return readLines("frequencies.tsv")
}

// Bands returns the default difficulty band document.
func Bands() ([]byte, error) {
	return FS.ReadFile("bands.yaml")
}
