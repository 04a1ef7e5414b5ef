package sim

import "github.com/grav-game/grav/internal/board"

// element identifies one movable piece during a sweep.
type element struct {
	isGem bool
	index int
}

func (s *State) pos(e element) board.Pos {
	if e.isGem {
		return s.Gems[e.index]
	}
	return s.Crates[e.index]
}

func (s *State) setPos(e element, p board.Pos) {
	if e.isGem {
		s.Gems[e.index] = p
	} else {
		s.Crates[e.index] = p
	}
}

// sweep performs one gravity pass in direction dir: every active element
// slides as far as it can before hitting a solid cell or another element,
// processed furthest-along-gravity first so earlier movers become obstacles
// for later ones.
func (s *State) sweep(level *board.Level, dir board.Direction) {
	dx, dy := dir.Delta()
	oppDx, oppDy := dir.Opposite().Delta()

	var order [board.ElementsMax * 2]element
	total := 0
	for i := 0; i < s.NumCrates; i++ {
		order[total] = element{isGem: false, index: i}
		total++
	}
	for i := 0; i < s.NumGems; i++ {
		if !s.GemActive(i) {
			continue
		}
		order[total] = element{isGem: true, index: i}
		total++
	}
	elems := order[:total]

	// Stable insertion sort, descending by dot product with the gravity
	// vector: furthest-along movers settle first.
	for i := 1; i < total; i++ {
		key := elems[i]
		keyDot := s.pos(key).Dot(dx, dy)
		j := i - 1
		for j >= 0 && s.pos(elems[j]).Dot(dx, dy) < keyDot {
			elems[j+1] = elems[j]
			j--
		}
		elems[j+1] = key
	}

	for _, e := range elems {
		cur := s.pos(e)
		next := board.P(cur.X+dx, cur.Y+dy)
		for !level.IsSolid(next) && !s.elementAt(next) {
			next = board.P(next.X+dx, next.Y+dy)
		}
		end := board.P(next.X+oppDx, next.Y+oppDy)
		s.setPos(e, end)
	}
}
