package board

import (
	"encoding/binary"
	"fmt"
)

const (
	offDims        = 0
	offGravity     = 1
	offNumCrates   = 2
	offNumGems     = 3
	offGemColors   = 4
	offCrateStarts = 12
	offGemStarts   = 44
	offSolid       = 76
)

// packPos encodes a position as (x<<4)|y, matching the file format's
// one-byte-per-start packing. Both coordinates must fit in 4 bits.
func packPos(p Pos) byte {
	return byte((p.X&0x0F)<<4 | (p.Y & 0x0F))
}

// unpackPos decodes a byte written by packPos.
func unpackPos(b byte) Pos {
	return P(int(b>>4), int(b&0x0F))
}

// Encode serializes the level into the 108-byte binary record: dimensions
// and counts in the header bytes, packed gem colors, then the crate/gem
// start arrays and the solid-cell bitset, each at its fixed offset above.
func (l *Level) Encode() [FileSize]byte {
	var buf [FileSize]byte

	buf[offDims] = byte((l.Width&0x0F)<<4 | (l.Height & 0x0F))
	buf[offGravity] = byte(l.StartGravity)
	buf[offNumCrates] = byte(l.NumCrates)
	buf[offNumGems] = byte(l.NumGems)

	var colors uint64
	for i := 0; i < l.NumGems; i++ {
		colors |= uint64(l.GemColors[i]&0x3) << (uint(i) * 2)
	}
	binary.LittleEndian.PutUint64(buf[offGemColors:offGemColors+8], colors)

	for i := 0; i < l.NumCrates; i++ {
		buf[offCrateStarts+i] = packPos(l.CrateStarts[i])
	}
	for i := 0; i < l.NumGems; i++ {
		buf[offGemStarts+i] = packPos(l.GemStarts[i])
	}

	copy(buf[offSolid:offSolid+len(l.solid)], l.solid[:])

	return buf
}

// Decode parses a 108-byte binary record into a Level. It rejects input of
// the wrong length and any decoded field that fails its own validity check,
// including an out-of-range direction byte.
func Decode(data []byte) (Level, error) {
	if len(data) != FileSize {
		return Level{}, fmt.Errorf("board: level record must be %d bytes, got %d", FileSize, len(data))
	}

	width := int(data[offDims]>>4) & 0x0F
	height := int(data[offDims]) & 0x0F

	var l Level
	l.Width = width
	l.Height = height

	gravity := Direction(data[offGravity])
	if !gravity.Valid() {
		return Level{}, fmt.Errorf("board: invalid start_gravity byte %d", data[offGravity])
	}
	l.StartGravity = gravity

	l.NumCrates = int(data[offNumCrates])
	l.NumGems = int(data[offNumGems])
	if l.NumCrates > ElementsMax || l.NumGems > ElementsMax {
		return Level{}, fmt.Errorf("board: element count exceeds capacity (crates=%d gems=%d max=%d)", l.NumCrates, l.NumGems, ElementsMax)
	}

	colors := binary.LittleEndian.Uint64(data[offGemColors : offGemColors+8])
	for i := 0; i < l.NumGems; i++ {
		c := Color((colors >> (uint(i) * 2)) & 0x3)
		if !c.Valid() {
			return Level{}, fmt.Errorf("board: gem %d has invalid color %d", i, c)
		}
		l.GemColors[i] = c
	}

	for i := 0; i < l.NumCrates; i++ {
		l.CrateStarts[i] = unpackPos(data[offCrateStarts+i])
	}
	for i := 0; i < l.NumGems; i++ {
		l.GemStarts[i] = unpackPos(data[offGemStarts+i])
	}

	copy(l.solid[:], data[offSolid:offSolid+len(l.solid)])

	if err := l.Validate(); err != nil {
		return Level{}, err
	}
	return l, nil
}
