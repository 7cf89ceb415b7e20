package grid

import (
	"github.com/deitrix/drilltris/cell"
	"github.com/deitrix/drilltris/piece"
)

// Grid holds the locked blocks of the board: a block type and a color tag for every cell. Row 0
// is the top of the board.
type Grid struct {
	Rows, Cols int
	Types      [][]cell.Type
	Tints      [][]cell.Tint
}

func New(rows, cols int) *Grid {
	g := &Grid{
		Rows:  rows,
		Cols:  cols,
		Types: make([][]cell.Type, rows),
		Tints: make([][]cell.Tint, rows),
	}
	for y := 0; y < rows; y++ {
		g.Types[y] = make([]cell.Type, cols)
		g.Tints[y] = make([]cell.Tint, cols)
	}
	return g
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := New(g.Rows, g.Cols)
	for y := 0; y < g.Rows; y++ {
		copy(c.Types[y], g.Types[y])
		copy(c.Tints[y], g.Tints[y])
	}
	return c
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Cols && y >= 0 && y < g.Rows
}

// At returns the block type at column x, row y. Cells outside the grid read as Empty.
func (g *Grid) At(x, y int) cell.Type {
	if !g.InBounds(x, y) {
		return cell.Empty
	}
	return g.Types[y][x]
}

// Set stores a block. Writes outside the grid are ignored, and clearing a cell also clears its
// tint.
func (g *Grid) Set(x, y int, t cell.Type, tint cell.Tint) {
	if !g.InBounds(x, y) {
		return
	}
	if t == cell.Empty {
		tint = cell.None
	}
	g.Types[y][x] = t
	g.Tints[y][x] = tint
}

func (g *Grid) Occupied(x, y int) bool {
	return g.At(x, y) != cell.Empty
}

// Fits reports whether shape can be placed with its top-left corner at (x, y). Cells above the
// top of the board never collide, so a piece may hang partially above the grid.
func (g *Grid) Fits(shape piece.Shape, x, y int) bool {
	for sy := 0; sy < shape.Height; sy++ {
		for sx := 0; sx < shape.Width; sx++ {
			if shape.Mask[sy][sx] == 0 {
				continue
			}
			cx, cy := x+sx, y+sy
			if cx < 0 || cx >= g.Cols || cy >= g.Rows {
				return false
			}
			if cy >= 0 && g.Types[cy][cx] != cell.Empty {
				return false
			}
		}
	}
	return true
}

func (g *Grid) validRow(y int) bool {
	return y >= 0 && y < g.Rows
}

// IsRowFull reports whether every cell of row y is occupied.
func (g *Grid) IsRowFull(y int) bool {
	if !g.validRow(y) {
		return false
	}
	for _, t := range g.Types[y] {
		if t == cell.Empty {
			return false
		}
	}
	return true
}

// RowHas reports whether any cell of row y holds block type t.
func (g *Grid) RowHas(y int, t cell.Type) bool {
	if !g.validRow(y) {
		return false
	}
	for _, c := range g.Types[y] {
		if c == t {
			return true
		}
	}
	return false
}

func (g *Grid) RowHasGold(y int) bool {
	return g.RowHas(y, cell.Gold)
}

func (g *Grid) RowHasPlatinum(y int) bool {
	return g.RowHas(y, cell.Platinum)
}

// ClearRow empties every cell of row y.
func (g *Grid) ClearRow(y int) {
	if !g.validRow(y) {
		return
	}
	for x := 0; x < g.Cols; x++ {
		g.Types[y][x] = cell.Empty
		g.Tints[y][x] = cell.None
	}
}

// RemoveRow deletes row y: every row above it moves down by exactly one, keeping its columns
// aligned, and the top row is emptied.
func (g *Grid) RemoveRow(row int) {
	if !g.validRow(row) {
		return
	}
	for y := row; y > 0; y-- {
		copy(g.Types[y], g.Types[y-1])
		copy(g.Tints[y], g.Tints[y-1])
	}
	g.ClearRow(0)
}

// ApplyGravityCascade compacts every column independently: the blocks of a column keep their
// order and settle against the bottom of the board.
func (g *Grid) ApplyGravityCascade() {
	for x := 0; x < g.Cols; x++ {
		dst := g.Rows - 1
		for y := g.Rows - 1; y >= 0; y-- {
			t := g.Types[y][x]
			if t == cell.Empty {
				continue
			}
			tint := g.Tints[y][x]
			g.Types[y][x] = cell.Empty
			g.Tints[y][x] = cell.None
			g.Types[dst][x] = t
			g.Tints[dst][x] = tint
			dst--
		}
	}
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			if g.Types[y][x] != cell.Empty {
				n++
			}
		}
	}
	return n
}
