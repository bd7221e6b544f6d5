package generator

import (
	"math/rand"

	"github.com/robalobadob/boggle/internal/board"
)

// ClassicDice are the 16 dice of the 4×4 game.
var ClassicDice = []string{
	"AAEEGN", "ELRTTY", "AOOTTW", "ABBJOO",
	"EHRTVW", "CIMOTU", "DISTTY", "EIOSST",
	"DELRVY", "ACHOPS", "HIMNQU", "EEINSU",
	"EEGHNW", "AFFKPS", "HLNNRZ", "DEILRX",
}

// BigDice are the 25 dice of the 5×5 game.
var BigDice = []string{
	"AAAFRS", "AAEEEE", "AAFIRS", "ADENNN", "AEEEEM",
	"AEEGMU", "AEGMNN", "AFIRSY", "BJKQXZ", "CCNSTW",
	"CEIILT", "CEILPT", "CEIPST", "DDLNOR", "DHHLOR",
	"DHHNOT", "DHLNOR", "EIIITT", "EMOTTT", "ENSSSU",
	"FIPRSY", "GORRVW", "HIPRRY", "NOOTUW", "OOOTTU",
}

// catalogs maps board size to its dice set.
var catalogs = map[int][]string{
	4: ClassicDice,
	5: BigDice,
}

// letterWeights approximates English letter frequency for sizes without dice.
var letterWeights = []struct {
	tile   board.Tile
	weight int
}{
	{"E", 12}, {"T", 9}, {"A", 8}, {"O", 8}, {"I", 7}, {"N", 7},
	{"S", 6}, {"H", 6}, {"R", 6}, {"L", 4}, {"D", 4}, {"C", 3},
	{"U", 3}, {"M", 3}, {"W", 2}, {"F", 2}, {"G", 2}, {"Y", 2},
	{"P", 2}, {"B", 1}, {"V", 1}, {"K", 1}, {"J", 1}, {"X", 1},
	{board.QU, 1}, {"Z", 1},
}

// letterPool expands letterWeights into a uniform draw pool.
var letterPool = func() []string {
	var pool []string
	for _, lw := range letterWeights {
		for i := 0; i < lw.weight; i++ {
			pool = append(pool, string(lw.tile))
		}
	}
	return pool
}()

// rollDice shuffles the dice into the grid in row-major order and picks one
// face per die. A "Q" face becomes the QU tile.
func rollDice(rng *rand.Rand, dice []string, size int) *board.Board {
	order := rng.Perm(len(dice))
	rows := make([][]string, size)
	k := 0
	for r := range rows {
		rows[r] = make([]string, size)
		for c := range rows[r] {
			die := dice[order[k]]
			face := string(die[rng.Intn(len(die))])
			if face == "Q" {
				face = string(board.QU)
			}
			rows[r][c] = face
			k++
		}
	}
	return board.MustNew(rows)
}

// drawWeighted fills each cell independently from letterPool.
func drawWeighted(rng *rand.Rand, size int) *board.Board {
	rows := make([][]string, size)
	for r := range rows {
		rows[r] = make([]string, size)
		for c := range rows[r] {
			rows[r][c] = letterPool[rng.Intn(len(letterPool))]
		}
	}
	return board.MustNew(rows)
}

// roll produces one candidate board of the given size.
func roll(rng *rand.Rand, size int) *board.Board {
	if dice, ok := catalogs[size]; ok && len(dice) == size*size {
		return rollDice(rng, dice, size)
	}
	return drawWeighted(rng, size)
}
