package difficulty

import (
	"testing"

	"github.com/grav-game/grav/internal/board"
	"github.com/grav-game/grav/internal/solver"
)

func TestScoreIsClampedToUnitRange(t *testing.T) {
	l := board.NewLevel(6, 6)
	l.SetBorderSolid()
	l.NumGems = 12
	for i := 0; i < l.NumGems; i++ {
		l.GemColors[i] = board.Color(i % board.NumColors)
	}

	result := solver.Result{OptimalMoves: 64, StatesExplored: 1000}
	w := Weights{Moves: 1, Gems: 1, Colors: 1, Density: 1}

	score := Score(&l, &result, w, 15)
	if score < 0 || score > 1 {
		t.Fatalf("score = %v, out of [0,1]", score)
	}
}

func TestScoreIncreasesWithMoveCount(t *testing.T) {
	l := board.NewLevel(6, 6)
	l.SetBorderSolid()
	l.NumGems = 4

	w := DefaultWeights()

	easy := solver.Result{OptimalMoves: 1}
	hard := solver.Result{OptimalMoves: 10}

	easyScore := Score(&l, &easy, w, 15)
	hardScore := Score(&l, &hard, w, 15)

	if hardScore <= easyScore {
		t.Fatalf("hard score %v should exceed easy score %v", hardScore, easyScore)
	}
}

func TestOddColorCountEarnsBonus(t *testing.T) {
	l := board.NewLevel(6, 6)
	l.SetBorderSolid()
	w := Weights{} // zero the base weights so only the bonus contributes
	result := solver.Result{OptimalMoves: 1}

	l.NumGems = 3
	l.GemColors[0] = board.Red
	l.GemColors[1] = board.Red
	l.GemColors[2] = board.Red
	withBonus := Score(&l, &result, w, 15)

	l.NumGems = 2
	withoutBonus := Score(&l, &result, w, 15)

	if withBonus <= withoutBonus {
		t.Fatalf("odd-count color score %v should exceed even-count score %v", withBonus, withoutBonus)
	}
}
