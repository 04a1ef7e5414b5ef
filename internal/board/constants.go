package board

// Fixed capacities baked into the 108-byte level file format. Changing any
// of these breaks the on-disk level-file contract.
const (
	// ElementsMax is the maximum number of crates, and separately the
	// maximum number of gems, a level may contain.
	ElementsMax = 32

	// MapMaxDim is the largest width or height a level may have.
	MapMaxDim = 16

	// MapMaxCells is the cell capacity of the solid bitset (MapMaxDim^2).
	MapMaxCells = MapMaxDim * MapMaxDim

	// FileSize is the exact length of a binary level record.
	FileSize = 108
)
