package piece

import (
	"math/rand/v2"

	"github.com/deitrix/drilltris/cell"
)

// Source is the randomness consumed by piece generation. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// NewSource returns a seeded PCG source.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Cumulative upper bounds of the block type distribution.
const (
	goldBelow     = 0.15
	platinumBelow = 0.25
	jankBelow     = 0.40
)

// BlockFor maps a uniform sample in [0,1) to a block type.
func BlockFor(r float64) cell.Type {
	switch {
	case r < goldBelow:
		return cell.Gold
	case r < platinumBelow:
		return cell.Platinum
	case r < jankBelow:
		return cell.Jank
	}
	return cell.Normal
}

// Rand returns a uniformly chosen piece whose occupied cells are independently annotated with
// block types, left to right and top to bottom.
func Rand(src Source) Piece {
	p := New(Kind(src.IntN(Kinds)))
	n := min(p.Shape.Count(), MaxBlocks)
	for i := 0; i < n; i++ {
		p.Blocks[i] = BlockFor(src.Float64())
	}
	return p
}
