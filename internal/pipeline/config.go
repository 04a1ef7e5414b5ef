package pipeline

import (
	"fmt"

	"github.com/grav-game/grav/internal/bundle"
	"github.com/grav-game/grav/internal/difficulty"
	"github.com/grav-game/grav/internal/generator"
	"github.com/grav-game/grav/internal/puzzleconfig"
)

func genParamsFromConfig(cfg *puzzleconfig.Config) generator.Params {
	p := generator.DefaultParams()

	readRange := func(key string, into *generator.Range) {
		if lo, hi, ok := cfg.ReadRange(key); ok {
			into.Min, into.Max = lo, hi
		}
	}

	readRange("grid_width", &p.Width)
	readRange("grid_height", &p.Height)
	readRange("num_gems", &p.Gems)
	readRange("num_crates", &p.Crates)
	readRange("num_colors", &p.Colors)
	readRange("wall_density", &p.WallDensity)

	return p
}

func weightsFromConfig(cfg *puzzleconfig.Config) difficulty.Weights {
	w := difficulty.DefaultWeights()

	readWeight := func(key string, into *float32) {
		if v, ok := cfg.ReadInt(key); ok {
			*into = float32(v) / 100.0
		}
	}

	readWeight("weight_moves", &w.Moves)
	readWeight("weight_gems", &w.Gems)
	readWeight("weight_colors", &w.Colors)
	readWeight("weight_density", &w.Density)

	return w
}

func tierFromConfig(cfg *puzzleconfig.Config, tierName string) bundle.Tier {
	t := bundle.DefaultTier()

	key := fmt.Sprintf("bundle_tier_%s", tierName)
	if lo, hi, ok := cfg.ReadRange(key); ok {
		t.MinDifficulty = float32(lo) / 100.0
		t.MaxDifficulty = float32(hi) / 100.0
	}

	return t
}
