package freqstore

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "freq.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, s.Migrate(context.Background()))

	var n int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestImportAndLookup(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	n, err := s.Import(ctx, "en", strings.NewReader("# header\nthe\t0.05\nSea\t1e-4\n\ncat 2e-5\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, 1e-4, s.Frequency("SEA", "en"))
	assert.Equal(t, 2e-5, s.Frequency("cat", "en"))
	assert.Zero(t, s.Frequency("zzyzx", "en"))
	assert.Zero(t, s.Frequency("the", "fr"))

	count, err := s.Count(ctx, "en")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestImportUpsertsAndResetsCache(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	_, err := s.Import(ctx, "en", strings.NewReader("sea\t1e-4\n"))
	require.NoError(t, err)
	assert.Equal(t, 1e-4, s.Frequency("sea", "en"))

	_, err = s.Import(ctx, "en", strings.NewReader("sea\t3e-4\n"))
	require.NoError(t, err)
	assert.Equal(t, 3e-4, s.Frequency("sea", "en"))

	count, err := s.Count(ctx, "en")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestImportRollsBackOnBadLine(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	_, err := s.Import(ctx, "en", strings.NewReader("sea\t1e-4\nbroken\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	count, err := s.Count(ctx, "en")
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = s.Import(ctx, "", strings.NewReader("sea\t1e-4\n"))
	assert.Error(t, err)
}

func TestOpenRejectsEmptyDSN(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}
