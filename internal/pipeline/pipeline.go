// Package pipeline drives the end-to-end puzzlegen run: load configuration,
// generate and score a pool of puzzles, then assemble and write bundles.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/grav-game/grav/internal/bundle"
	"github.com/grav-game/grav/internal/difficulty"
	"github.com/grav-game/grav/internal/generator"
	"github.com/grav-game/grav/internal/puzzleconfig"
	"github.com/grav-game/grav/internal/rng"
	"github.com/grav-game/grav/internal/solver"
)

// Options are the driver's resolved inputs, mostly mirroring the CLI flags.
// A zero value for NumPuzzles, Seed, OutputDir, or TierName means "not set
// on the command line"; Run falls back to the config file and then to
// built-in defaults for each.
type Options struct {
	ConfigPath string
	NumPuzzles int
	Seed       int64
	OutputDir  string
	TierName   string
	Verbose    bool
}

// Result summarizes a completed run.
type Result struct {
	PoolSize    int
	Attempts    int
	BundlesMade int
	BundlePaths []string
}

// ErrInsufficientPool is returned when fewer than bundle.Size solvable
// puzzles were produced within the attempt budget.
var ErrInsufficientPool = fmt.Errorf("fewer than %d solvable puzzles produced", bundle.Size)

// Run executes one full generate-score-assemble-write cycle.
func Run(opts Options, logger *log.Logger) (Result, error) {
	cfg, err := puzzleconfig.Load(opts.ConfigPath)
	if err != nil {
		return Result{}, err
	}

	numPuzzles := opts.NumPuzzles
	if numPuzzles == 0 {
		numPuzzles = 100
		if v, ok := cfg.ReadInt("num_puzzles"); ok {
			numPuzzles = v
		}
	}

	seed := opts.Seed
	if seed == 0 {
		if v, ok := cfg.ReadInt("seed"); ok && v != 0 {
			seed = int64(v)
		} else {
			seed = time.Now().UnixNano()
		}
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = "bundles"
		if v, ok := cfg.ReadString("output_dir"); ok {
			outputDir = v
		}
	}

	tierName := opts.TierName
	if tierName == "" {
		tierName = "medium"
		if v, ok := cfg.ReadString("bundle_tier"); ok {
			tierName = v
		}
	}

	maxAttempts := 1000
	if v, ok := cfg.ReadInt("max_attempts"); ok {
		maxAttempts = v
	}
	maxSolveMoves := solver.DefaultDepth
	if v, ok := cfg.ReadInt("max_solve_moves"); ok {
		maxSolveMoves = v
	}
	maxVisitedStates := solver.DefaultMaxStates
	if v, ok := cfg.ReadInt("max_visited_states"); ok {
		maxVisitedStates = v
	}

	genParams := genParamsFromConfig(&cfg)
	weights := weightsFromConfig(&cfg)
	tier := tierFromConfig(&cfg, tierName)

	logger.Infof("puzzlegen: seed=%d puzzles=%d tier=%s output=%s", seed, numPuzzles, tierName, outputDir)

	source := rng.New(seed)

	pool := make([]bundle.Entry, 0, numPuzzles)
	attempts := 0
	for len(pool) < numPuzzles && attempts < maxAttempts {
		attempts++

		level, ok := generator.Generate(genParams, source)
		if !ok {
			continue
		}

		result := solver.Solve(&level, maxSolveMoves, maxVisitedStates)
		if !result.Solvable {
			continue
		}

		score := difficulty.Score(&level, &result, weights, maxSolveMoves)
		pool = append(pool, bundle.Entry{Level: level, Solve: result, Difficulty: score})

		if opts.Verbose {
			logger.Infof("  [%d/%d] solvable in %d moves, difficulty=%.4f (explored %d states)",
				len(pool), numPuzzles, result.OptimalMoves, score, result.StatesExplored)
		}
	}

	logger.Infof("Generated %d/%d solvable puzzles in %d attempts", len(pool), numPuzzles, attempts)

	res := Result{PoolSize: len(pool), Attempts: attempts}

	if len(pool) < bundle.Size {
		logger.Errorf("ERROR: Not enough puzzles for a bundle (need at least %d, got %d)", bundle.Size, len(pool))
		return res, ErrInsufficientPool
	}

	bundle.SortPool(pool)

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return res, fmt.Errorf("pipeline: creating output directory %s: %w", outputDir, err)
	}

	bundlesMade := 0
	poolOffset := 0
	for {
		b, ok := bundle.Assemble(pool[poolOffset:], tier)
		if !ok {
			break
		}

		binPath := filepath.Join(outputDir, fmt.Sprintf("bundle_%s_%03d.bin", tierName, bundlesMade))
		metaPath := filepath.Join(outputDir, fmt.Sprintf("bundle_%s_%03d.txt", tierName, bundlesMade))

		if err := writeBundle(&b, binPath, metaPath); err != nil {
			logger.Warn("failed to write bundle", "path", binPath, "error", err)
		} else {
			logger.Infof("Wrote bundle: %s (difficulties: %.2f -> %.2f)",
				binPath, b.DifficultyScores[0], b.DifficultyScores[bundle.Size-1])
			bundlesMade++
			res.BundlePaths = append(res.BundlePaths, binPath)
		}

		poolOffset += bundle.Size
		if poolOffset+bundle.Size > len(pool) {
			break
		}
	}

	logger.Infof("Summary: %d bundles written to %s/", bundlesMade, outputDir)
	res.BundlesMade = bundlesMade

	return res, nil
}

func writeBundle(b *bundle.Bundle, binPath, metaPath string) error {
	binData := b.Encode()
	if err := os.WriteFile(binPath, binData[:], 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", binPath, err)
	}
	if err := os.WriteFile(metaPath, []byte(b.Metadata()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", metaPath, err)
	}
	return nil
}
