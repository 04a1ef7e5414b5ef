// Package difficulty scores a solved level into a [0,1] difficulty value
// used to sort the generator pool and select bundle tiers.
package difficulty

import (
	"github.com/grav-game/grav/internal/board"
	"github.com/grav-game/grav/internal/solver"
)

// Weights controls the relative contribution of each scoring dimension.
// They need not sum to 1; the composite is clamped into [0,1] after the
// odd-parity bonus is added.
type Weights struct {
	Moves   float32
	Gems    float32
	Colors  float32
	Density float32
}

// DefaultWeights returns the default scoring weights.
func DefaultWeights() Weights {
	return Weights{Moves: 0.45, Gems: 0.20, Colors: 0.15, Density: 0.20}
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func normalize(v, lo, hi float32) float32 {
	return clamp01((v - lo) / (hi - lo))
}

// Score computes a composite difficulty value from a solved level: a
// weighted blend of move count, gem count, color variety, and wall
// density, plus a +0.05 bonus per gem color that appears an odd number of
// times, clamped to [0,1].
func Score(level *board.Level, result *solver.Result, w Weights, maxSolveMoves int) float32 {
	moveScore := normalize(float32(result.OptimalMoves), 1, float32(maxSolveMoves))
	gemScore := normalize(float32(level.NumGems), 2, 16)

	var seen [board.NumColors]bool
	var counts [board.NumColors]int
	for i := 0; i < level.NumGems; i++ {
		c := int(level.GemColors[i])
		if c < board.NumColors {
			seen[c] = true
			counts[c]++
		}
	}
	numColors := 0
	for _, s := range seen {
		if s {
			numColors++
		}
	}
	colorScore := normalize(float32(numColors), 1, 3)

	interior := (level.Width - 2) * (level.Height - 2)
	wallCount := 0
	for y := 1; y < level.Height-1; y++ {
		for x := 1; x < level.Width-1; x++ {
			if level.IsSolid(board.P(x, y)) {
				wallCount++
			}
		}
	}
	var density float32
	if interior > 0 {
		density = float32(wallCount) / float32(interior)
	}
	densityScore := normalize(density, 0.1, 0.5)

	score := w.Moves*moveScore + w.Gems*gemScore + w.Colors*colorScore + w.Density*densityScore

	for _, count := range counts {
		if count > 0 && count%2 != 0 {
			score += 0.05
		}
	}

	return clamp01(score)
}
