package sim

import "github.com/grav-game/grav/internal/board"

// Apply performs one player move: tilt the board to dir, then repeatedly
// eliminate connected same-color gem groups and re-settle under the same
// gravity until a full sweep produces no eliminations.
func Apply(state State, level *board.Level, dir board.Direction) State {
	state.CurrentGravity = dir
	state.sweep(level, dir)
	for state.checkCombos() {
		state.sweep(level, state.CurrentGravity)
	}
	return state
}
