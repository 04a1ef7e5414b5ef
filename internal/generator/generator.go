// Package generator builds random levels from a range of structural
// parameters, rejecting layouts that are too cramped or that would
// auto-eliminate gems before the first move.
package generator

import (
	"github.com/grav-game/grav/internal/board"
	"github.com/grav-game/grav/internal/rng"
)

// Range is an inclusive integer bound.
type Range struct {
	Min int
	Max int
}

// Params carries the inclusive ranges the generator samples from.
type Params struct {
	Width       Range
	Height      Range
	Gems        Range
	Crates      Range
	Colors      Range
	WallDensity Range // percentage, 0..100
}

// DefaultParams returns the generator's built-in defaults, used when a
// configuration file leaves a range unset.
func DefaultParams() Params {
	return Params{
		Width:       Range{6, 10},
		Height:      Range{6, 10},
		Gems:        Range{4, 12},
		Crates:      Range{0, 4},
		Colors:      Range{2, 3},
		WallDensity: Range{15, 35},
	}
}

// Generate samples a random level from params. It returns ok=false when the
// sampled layout cannot host its elements or would auto-eliminate gems at
// the starting position; neither case is an error, the caller is expected
// to simply retry with a fresh sample.
func Generate(params Params, r *rng.Source) (level board.Level, ok bool) {
	width := r.IntRange(params.Width.Min, params.Width.Max)
	height := r.IntRange(params.Height.Min, params.Height.Max)
	numColors := r.IntRange(params.Colors.Min, params.Colors.Max)
	numGems := r.IntRange(params.Gems.Min, params.Gems.Max)
	numCrates := r.IntRange(params.Crates.Min, params.Crates.Max)

	if numColors < 1 {
		numColors = 1
	}
	if numGems > board.ElementsMax {
		numGems = board.ElementsMax
	}
	if numCrates > board.ElementsMax {
		numCrates = board.ElementsMax
	}

	level = board.NewLevel(width, height)
	level.StartGravity = board.Direction(r.IntExclusive(4))
	level.SetBorderSolid()

	interiorCells := (width - 2) * (height - 2)
	density := r.IntRange(params.WallDensity.Min, params.WallDensity.Max)
	numWalls := interiorCells * density / 100

	for w := 0; w < numWalls; w++ {
		x := r.IntRange(1, width-2)
		y := r.IntRange(1, height-2)
		level.SetSolid(board.P(x, y), true)
	}

	open := make([]board.Pos, 0, board.MapMaxCells)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			p := board.P(x, y)
			if !level.IsSolid(p) {
				open = append(open, p)
			}
		}
	}

	totalElements := numGems + numCrates
	if len(open) < totalElements {
		return board.Level{}, false
	}

	// Fisher-Yates shuffle.
	for i := len(open) - 1; i > 0; i-- {
		j := r.IntExclusive(i + 1)
		open[i], open[j] = open[j], open[i]
	}

	level.NumGems = numGems
	for i := 0; i < numGems; i++ {
		level.GemStarts[i] = open[i]
		level.GemColors[i] = board.Color(i % numColors)
	}

	for i := 0; i < numGems; i++ {
		for j := i + 1; j < numGems; j++ {
			if level.GemColors[i] != level.GemColors[j] {
				continue
			}
			if level.GemStarts[i].Manhattan(level.GemStarts[j]) == 1 {
				return board.Level{}, false
			}
		}
	}

	level.NumCrates = numCrates
	for i := 0; i < numCrates; i++ {
		level.CrateStarts[i] = open[numGems+i]
	}

	return level, true
}
