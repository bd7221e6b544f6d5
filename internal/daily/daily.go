// internal/daily/daily.go
//
// Deterministic "board of the day" seeding.
// Every player asking for the same date and salt gets the same generator seed,
// and therefore the same board.

package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed derives a generator seed from keyed BLAKE2b-256(salt, YYYY-MM-DD).
func Seed(date time.Time, salt string) int64 {
	key := []byte(salt)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum256(key)
		key = sum[:]
	}
	h, err := blake2b.New256(key)
	if err != nil {
		// Only reachable with an oversized key, which is hashed down above.
		panic(err)
	}
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes, sign bit cleared so seeds print as positive numbers
	return int64(binary.BigEndian.Uint64(sum[:8]) &^ (1 << 63))
}
