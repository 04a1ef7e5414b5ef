// Package bundle sorts the generator's puzzle pool by difficulty and
// assembles escalating-difficulty bundles of five levels at a time.
package bundle

import (
	"fmt"
	"sort"

	"github.com/grav-game/grav/internal/board"
	"github.com/grav-game/grav/internal/solver"
)

// Size is the fixed number of levels per bundle.
const Size = 5

// Entry is one puzzle in the generator's pool: a level, its solve result,
// and its computed difficulty.
type Entry struct {
	Level      board.Level
	Solve      solver.Result
	Difficulty float32
}

// Tier bounds a bundle's difficulty range, inclusive on both ends.
type Tier struct {
	MinDifficulty float32
	MaxDifficulty float32
}

// DefaultTier is the "medium" tier used when no tier is configured.
func DefaultTier() Tier {
	return Tier{MinDifficulty: 0.25, MaxDifficulty: 0.60}
}

// SortPool orders entries ascending by difficulty, in place.
func SortPool(pool []Entry) {
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Difficulty < pool[j].Difficulty
	})
}

// Bundle is exactly five levels plus their parallel difficulty and move
// metadata, assembled from a difficulty-sorted pool slice.
type Bundle struct {
	Levels           [Size]board.Level
	DifficultyScores [Size]float32
	OptimalMoves     [Size]int
}

// Assemble picks five entries from sortedPool at evenly spaced positions
// within the sub-range matching tier, producing an escalating-difficulty
// bundle. sortedPool must already be difficulty-ascending. It returns
// ok=false when fewer than five entries in sortedPool fall within the
// tier's bounds.
func Assemble(sortedPool []Entry, tier Tier) (b Bundle, ok bool) {
	tierStart, tierEnd := -1, -1
	for i, e := range sortedPool {
		if e.Difficulty >= tier.MinDifficulty && tierStart < 0 {
			tierStart = i
		}
		if e.Difficulty <= tier.MaxDifficulty {
			tierEnd = i
		}
	}

	if tierStart < 0 || tierEnd < 0 || tierEnd-tierStart+1 < Size {
		return Bundle{}, false
	}

	rangeLen := tierEnd - tierStart + 1
	for slot := 0; slot < Size; slot++ {
		idx := tierStart + (slot*(rangeLen-1))/(Size-1)
		entry := sortedPool[idx]
		b.Levels[slot] = entry.Level
		b.DifficultyScores[slot] = entry.Difficulty
		b.OptimalMoves[slot] = entry.Solve.OptimalMoves
	}

	return b, true
}

// Encode serializes the bundle as 5 concatenated 108-byte level records.
func (b *Bundle) Encode() [Size * board.FileSize]byte {
	var buf [Size * board.FileSize]byte
	for i := range b.Levels {
		record := b.Levels[i].Encode()
		copy(buf[i*board.FileSize:], record[:])
	}
	return buf
}

// Metadata renders the bundle's human-readable sidecar: a comment header
// followed by one "level_<i>: difficulty=... optimal_moves=..." line per
// level.
func (b *Bundle) Metadata() string {
	out := "# Bundle metadata\n"
	for i := 0; i < Size; i++ {
		out += fmt.Sprintf("level_%d: difficulty=%.4f optimal_moves=%d\n", i, b.DifficultyScores[i], b.OptimalMoves[i])
	}
	return out
}
