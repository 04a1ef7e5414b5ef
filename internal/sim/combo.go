package sim

import "github.com/grav-game/grav/internal/board"

var neighborDirs = [4]board.Direction{board.Up, board.Right, board.Down, board.Left}

// checkCombos finds every maximal 4-connected group of same-color active
// gems and clears groups of size 2 or more from GemsActive. It reports
// whether any gem was eliminated.
func (s *State) checkCombos() bool {
	var visited [board.ElementsMax]bool
	var queue [board.ElementsMax]int
	var component [board.ElementsMax]int
	anyMatched := false

	for i := 0; i < s.NumGems; i++ {
		if !s.GemActive(i) || visited[i] {
			continue
		}

		compSize := 0
		qHead, qTail := 0, 0
		queue[qTail] = i
		qTail++
		visited[i] = true
		component[compSize] = i
		compSize++

		for qHead < qTail {
			cur := queue[qHead]
			qHead++
			pos := s.Gems[cur]

			for _, d := range neighborDirs {
				neighbor := pos.Step(d)
				for j := 0; j < s.NumGems; j++ {
					if !s.GemActive(j) || visited[j] {
						continue
					}
					if s.Gems[j].Equal(neighbor) && s.GemColors[j] == s.GemColors[cur] {
						visited[j] = true
						queue[qTail] = j
						qTail++
						component[compSize] = j
						compSize++
					}
				}
			}
		}

		if compSize >= 2 {
			anyMatched = true
			for k := 0; k < compSize; k++ {
				s.GemsActive &^= 1 << uint(component[k])
			}
		}
	}

	return anyMatched
}
