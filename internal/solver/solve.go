package solver

import (
	"github.com/grav-game/grav/internal/board"
	"github.com/grav-game/grav/internal/sim"
)

const (
	// MaxMoves bounds the length of any stored solution path.
	MaxMoves = 64

	// DefaultDepth is the default BFS depth cap.
	DefaultDepth = 15

	// DefaultMaxStates is the default visited-set size cap.
	DefaultMaxStates = 2_000_000
)

// Result is the outcome of a solve attempt.
type Result struct {
	Solvable       bool
	OptimalMoves   int
	StatesExplored int
	Solution       [MaxMoves]board.Direction
}

var allDirections = [4]board.Direction{board.Up, board.Right, board.Down, board.Left}

type node struct {
	state sim.State
	depth int
	moves [MaxMoves]board.Direction
}

// Solve runs a single-threaded breadth-first search over gravity-cascade
// states from the level's initial position, expanding up to maxDepth moves
// and bounding visited-set growth by maxStates. It returns the first
// solved state reached, which BFS guarantees is optimal in move count.
func Solve(level *board.Level, maxDepth, maxStates int) Result {
	var result Result

	start := sim.New(level)
	if start.IsSolved() {
		result.Solvable = true
		result.OptimalMoves = 0
		result.StatesExplored = 1
		return result
	}

	visited := make(map[uint64]struct{})
	frontier := make([]node, 0, 64)

	root := node{state: start, depth: 0}
	visited[CanonicalHash(&root.state)] = struct{}{}
	frontier = append(frontier, root)

	for len(frontier) > 0 {
		if len(visited) >= maxStates {
			break
		}

		cur := frontier[0]
		frontier = frontier[1:]
		result.StatesExplored++

		if cur.depth >= maxDepth {
			continue
		}

		for _, dir := range allDirections {
			if dir == cur.state.CurrentGravity {
				continue
			}

			next := sim.Apply(cur.state, level, dir)
			hash := CanonicalHash(&next)
			if _, seen := visited[hash]; seen {
				continue
			}
			visited[hash] = struct{}{}

			child := node{state: next, depth: cur.depth + 1}
			child.moves = cur.moves
			child.moves[cur.depth] = dir

			if next.IsSolved() {
				result.Solvable = true
				result.OptimalMoves = child.depth
				result.StatesExplored++
				result.Solution = child.moves
				return result
			}

			frontier = append(frontier, child)
		}
	}

	return result
}
