package hint

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/robalobadob/boggle/assets"
)

// Oracle estimates how often a word occurs in running text of a language.
// It returns 0 when the word is unknown.
type Oracle interface {
	Frequency(word, lang string) float64
}

// OracleFunc adapts a plain function to Oracle.
type OracleFunc func(word, lang string) float64

// Frequency calls f.
func (f OracleFunc) Frequency(word, lang string) float64 { return f(word, lang) }

// Table is a static in-memory oracle for a single language.
type Table struct {
	Lang  string
	Freqs map[string]float64 // lowercase word -> frequency
}

// Frequency returns the stored frequency, or 0 for other languages and unknown words.
func (t *Table) Frequency(word, lang string) float64 {
	if lang != "" && t.Lang != "" && lang != t.Lang {
		return 0
	}
	return t.Freqs[strings.ToLower(word)]
}

// LoadTable reads "word<TAB>frequency" lines. Blank lines and lines starting
// with '#' are skipped.
func LoadTable(r io.Reader, lang string) (*Table, error) {
	t := &Table{Lang: lang, Freqs: make(map[string]float64)}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if err := t.addLine(sc.Text()); err != nil {
			return nil, fmt.Errorf("hint: frequency table line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("hint: read frequency table: %w", err)
	}
	return t, nil
}

func (t *Table) addLine(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "#") {
		return nil
	}
	word, freq, err := ParseFrequencyLine(s)
	if err != nil {
		return err
	}
	t.Freqs[word] = freq
	return nil
}

// ParseFrequencyLine splits a "word<TAB>frequency" line into a lowercase
// word and a non-negative frequency.
func ParseFrequencyLine(s string) (string, float64, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return "", 0, fmt.Errorf("want 2 fields, got %d", len(fields))
	}
	f, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return "", 0, err
	}
	if f < 0 {
		return "", 0, fmt.Errorf("negative frequency %v", f)
	}
	return strings.ToLower(fields[0]), f, nil
}

var (
	defaultTableOnce sync.Once
	defaultTable     *Table
)

// DefaultTable returns the embedded English frequency corpus.
func DefaultTable() *Table {
	defaultTableOnce.Do(func() {
		lines, err := assets.FrequencyLines()
		if err != nil {
			panic(fmt.Sprintf("hint: embedded frequencies: %v", err))
		}
		defaultTable = &Table{Lang: "en", Freqs: make(map[string]float64, len(lines))}
		for _, l := range lines {
			if err := defaultTable.addLine(l); err != nil {
				panic(fmt.Sprintf("hint: embedded frequencies: %v", err))
			}
		}
	})
	return defaultTable
}

// memo caches oracle answers for the duration of one Suggest call. Each word
// reaches the oracle at most once, even when tasks ask for it concurrently.
type memo struct {
	oracle Oracle
	lang   string
	cache  sync.Map // string -> *memoEntry
}

type memoEntry struct {
	once sync.Once
	freq float64
}

func (m *memo) frequency(word string) float64 {
	v, _ := m.cache.LoadOrStore(word, &memoEntry{})
	e := v.(*memoEntry)
	e.once.Do(func() {
		e.freq = math.Max(0, m.oracle.Frequency(word, m.lang))
	})
	return e.freq
}
