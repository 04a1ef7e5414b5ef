// puzzlegen generates bundles of gravity-cascade puzzles: it samples random
// levels, keeps the ones a bounded solver can solve, scores their
// difficulty, and writes escalating-difficulty bundles of five to disk.
//
// Usage:
//
//	puzzlegen [-c cfg] [-n count] [-t tier] [-s seed] [-o dir] [-v]
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grav-game/grav/internal/pipeline"
)

var (
	flagConfig  string
	flagCount   int
	flagTier    string
	flagSeed    int64
	flagOutput  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puzzlegen",
	Short: "Generate solvable gravity-cascade puzzle bundles",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Config file path (default: embedded defaults)")
	rootCmd.Flags().IntVarP(&flagCount, "count", "n", 0, "Number of puzzles to generate (0 = use config)")
	rootCmd.Flags().StringVarP(&flagTier, "tier", "t", "", "Bundle tier: easy|medium|hard|expert")
	rootCmd.Flags().Int64VarP(&flagSeed, "seed", "s", 0, "RNG seed (0 = config or time-based)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output directory (default: config or \"bundles\")")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print a line per generated puzzle")
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stdout, log.Options{
		ReportTimestamp: false,
	})

	opts := pipeline.Options{
		ConfigPath: flagConfig,
		NumPuzzles: flagCount,
		Seed:       flagSeed,
		OutputDir:  flagOutput,
		TierName:   flagTier,
		Verbose:    flagVerbose,
	}

	if _, err := pipeline.Run(opts, logger); err != nil {
		if err == pipeline.ErrInsufficientPool {
			os.Exit(1)
		}
		return err
	}

	return nil
}
