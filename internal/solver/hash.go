// Package solver implements the breadth-first search over gravity-cascade
// states: a canonical state hash for the visited set, and the bounded BFS
// itself.
package solver

import (
	"sort"

	"github.com/grav-game/grav/internal/board"
	"github.com/grav-game/grav/internal/sim"
)

const (
	fnvOffset64 uint64 = 0xcbf29ce484222325
	fnvPrime64  uint64 = 0x100000001b3
)

type hasher struct {
	h uint64
}

func newHasher() hasher {
	return hasher{h: fnvOffset64}
}

func (h *hasher) writeByte(b byte) {
	h.h ^= uint64(b)
	h.h *= fnvPrime64
}

func (h *hasher) writeInt32(v int32) {
	h.writeByte(byte(v))
	h.writeByte(byte(v >> 8))
	h.writeByte(byte(v >> 16))
	h.writeByte(byte(v >> 24))
}

// CanonicalHash computes the FNV-1a hash of a state's operationally
// relevant content: sorted crate positions, sorted active-gem
// positions-and-colors, the active mask, and current gravity. Two states
// that differ only in element array ordering hash identically.
func CanonicalHash(s *sim.State) uint64 {
	h := newHasher()

	crates := make([]board.Pos, s.NumCrates)
	copy(crates, s.Crates[:s.NumCrates])
	sort.Slice(crates, func(i, j int) bool {
		return crates[i].RowMajor16() < crates[j].RowMajor16()
	})
	for _, p := range crates {
		h.writeInt32(int32(p.X))
		h.writeInt32(int32(p.Y))
	}

	type activeGem struct {
		pos   board.Pos
		color board.Color
	}
	gems := make([]activeGem, 0, s.NumGems)
	for i := 0; i < s.NumGems; i++ {
		if s.GemActive(i) {
			gems = append(gems, activeGem{pos: s.Gems[i], color: s.GemColors[i]})
		}
	}
	sort.Slice(gems, func(i, j int) bool {
		return gems[i].pos.RowMajor16() < gems[j].pos.RowMajor16()
	})
	for _, g := range gems {
		h.writeInt32(int32(g.pos.X))
		h.writeInt32(int32(g.pos.Y))
		h.writeByte(byte(g.color))
	}

	h.writeInt32(int32(s.GemsActive))
	h.writeByte(byte(s.CurrentGravity))

	return h.h
}
