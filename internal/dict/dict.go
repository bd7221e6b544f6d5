// internal/dict/dict.go
//
// Dictionary index for the Boggle engine.
//
// Responsibilities:
//   - Load a newline-delimited word list, or fall back to the embedded basic list.
//   - Store words in a prefix tree keyed by uppercase characters.
//   - Answer exact-word and prefix-exists queries in O(len(s)).
//
// Initialization behavior (Default):
//   1. If BOGGLE_DICTIONARY_FILE is set, load that file.
//   2. If it is unset, missing or unreadable, fall back to assets/basic_words.txt.
//
// Constraints:
//   • Only words of 3+ characters are stored.
//   • Words are normalized to uppercase; other characters are kept verbatim.
//   • An Index is immutable once built and safe for concurrent readers.

package dict

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/boggle/assets"
)

// MinWordLength is the shortest word a board may score.
const MinWordLength = 3

// SourceBuiltin names the embedded fallback list in Index.Source.
const SourceBuiltin = "builtin"

// Index is a prefix tree of dictionary words.
type Index struct {
	root     *Node
	count    int
	source   string // file path or SourceBuiltin
	degraded bool   // true when the requested list could not be used
}

var (
	defaultOnce  sync.Once
	defaultIndex *Index
)

// Default returns the process-wide index, loaded once from BOGGLE_DICTIONARY_FILE.
func Default() *Index {
	defaultOnce.Do(func() {
		defaultIndex = Load(os.Getenv("BOGGLE_DICTIONARY_FILE"))
	})
	return defaultIndex
}

// Build creates an index from an in-memory word list.
func Build(words []string) *Index {
	ix := &Index{root: newNode()}
	for _, w := range words {
		ix.insert(w)
	}
	return ix
}

// LoadReader builds an index from one word per line.
func LoadReader(r io.Reader) (*Index, error) {
	ix := &Index{root: newNode()}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ix.insert(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dict: read word list: %w", err)
	}
	return ix, nil
}

// Load reads the word list at path. A missing or unreadable file is not an
// error: the embedded basic list is used instead and the index is marked degraded.
func Load(path string) *Index {
	if path == "" {
		log.Warn().Msg("no dictionary configured, using basic word list")
		return builtin(true)
	}
	f, err := os.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("dictionary not found, using basic word list")
		return builtin(true)
	}
	defer f.Close()

	ix, err := LoadReader(f)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("error loading dictionary, using basic word list")
		return builtin(true)
	}
	ix.source = path
	log.Info().Int("words", ix.count).Str("path", path).Msg("dictionary loaded")
	return ix
}

// builtin returns an index over the embedded fallback list.
func builtin(degraded bool) *Index {
	words, err := assets.BasicWords()
	if err != nil {
		// The list is compiled in; failing to read it is a build defect.
		panic(fmt.Sprintf("dict: embedded word list: %v", err))
	}
	ix := Build(words)
	ix.source = SourceBuiltin
	ix.degraded = degraded
	return ix
}

// insert normalizes w and adds it if it is long enough.
func (ix *Index) insert(w string) {
	w = strings.ToUpper(strings.TrimSpace(w))
	if utf8.RuneCountInString(w) < MinWordLength {
		return
	}
	n := ix.root
	for i := 0; i < len(w); i++ {
		n = n.child(w[i])
	}
	if !n.word {
		n.word = true
		ix.count++
	}
}

// IsWord reports whether s is a stored word.
func (ix *Index) IsWord(s string) bool {
	n := ix.root.Walk(strings.ToUpper(s))
	return n != nil && n.word
}

// IsPrefix reports whether s is a prefix of at least one stored word
// (a stored word counts as its own prefix).
func (ix *Index) IsPrefix(s string) bool {
	return ix.root.Walk(strings.ToUpper(s)) != nil
}

// Root returns the tree root for incremental walks. Callers must pass uppercase input.
func (ix *Index) Root() *Node { return ix.root }

// Len returns the number of distinct stored words.
func (ix *Index) Len() int { return ix.count }

// Source is the path the index was loaded from, or SourceBuiltin.
func (ix *Index) Source() string {
	if ix.source == "" {
		return "memory"
	}
	return ix.source
}

// Degraded reports whether the index fell back to the basic list.
func (ix *Index) Degraded() bool { return ix.degraded }
