// internal/freqstore/store.go
//
// SQLite-backed word frequency oracle.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Applying embedded migrations from sql/*.sql, recorded in _migrations.
//   - Bulk importing "word<TAB>frequency" lists for a language.
//   - Answering hint.Oracle lookups with a read-through cache.
//
// Note: lookups never fail from the caller's point of view; query errors are
// logged and reported as frequency 0 (unknown word).

package freqstore

import (
	"bufio"
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/boggle/internal/hint"
)

//go:embed sql/*.sql
var migrations embed.FS

// Store implements hint.Oracle over a SQLite table.
type Store struct {
	db *sql.DB

	mu    sync.RWMutex
	cache map[string]float64 // lang + "\x00" + word
}

var _ hint.Oracle = (*Store)(nil)

// Open opens (and creates if missing) the database at dsn.
// The parent directory is created for file paths like ./data/freq.db.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("freqstore: empty dsn")
	}
	if dsn != ":memory:" {
		dir := filepath.Dir(dsn)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("freqstore: mkdir %s: %w", dir, err)
			}
		}
	}
	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("freqstore: open: %w", err)
	}
	// A single connection keeps ":memory:" databases coherent.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("freqstore: ping: %w", err)
	}
	return &Store{db: db, cache: make(map[string]float64)}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// Migrate applies every embedded migration not yet recorded in _migrations,
// each inside its own transaction, in lexical order.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("freqstore: create _migrations: %w", err)
	}
	files, err := fs.Glob(migrations, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("freqstore: list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := s.db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("freqstore: query _migrations: %w", err)
		}

		body, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("freqstore: read %s: %w", f, err)
		}
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("freqstore: apply %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("freqstore: record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("freqstore: commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Import upserts "word<TAB>frequency" lines for lang in one transaction and
// returns the number of rows written. Blank lines and '#' comments are skipped.
// Any malformed line aborts the whole import.
func (s *Store) Import(ctx context.Context, lang string, r io.Reader) (int, error) {
	if lang == "" {
		return 0, errors.New("freqstore: empty language")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO word_frequency (lang, word, frequency) VALUES (?, ?, ?)
        ON CONFLICT(lang, word) DO UPDATE SET frequency = excluded.frequency`)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("freqstore: prepare: %w", err)
	}
	defer stmt.Close()

	n, line := 0, 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		word, freq, err := hint.ParseFrequencyLine(text)
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("freqstore: line %d: %w", line, err)
		}
		if _, err := stmt.ExecContext(ctx, lang, word, freq); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("freqstore: insert %q: %w", word, err)
		}
		n++
	}
	if err := sc.Err(); err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("freqstore: read: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("freqstore: commit: %w", err)
	}

	s.mu.Lock()
	s.cache = make(map[string]float64)
	s.mu.Unlock()
	log.Info().Str("lang", lang).Int("rows", n).Msg("frequencies imported")
	return n, nil
}

// Frequency returns the stored frequency of word in lang, or 0 if unknown.
func (s *Store) Frequency(word, lang string) float64 {
	word = strings.ToLower(word)
	key := lang + "\x00" + word

	s.mu.RLock()
	f, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return f
	}

	err := s.db.QueryRow(`SELECT frequency FROM word_frequency WHERE lang=? AND word=?`, lang, word).Scan(&f)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		f = 0
	case err != nil:
		log.Error().Err(err).Str("word", word).Str("lang", lang).Msg("frequency lookup failed")
		return 0
	}

	s.mu.Lock()
	s.cache[key] = f
	s.mu.Unlock()
	return f
}

// Count returns the number of words stored for lang.
func (s *Store) Count(ctx context.Context, lang string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM word_frequency WHERE lang=?`, lang).Scan(&n); err != nil {
		return 0, fmt.Errorf("freqstore: count: %w", err)
	}
	return n, nil
}
