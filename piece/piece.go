package piece

import (
	"github.com/deitrix/drilltris/cell"
)

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L
)

// Kinds is the number of distinct tetrominoes.
const Kinds = 7

// MaxBlocks is the largest number of occupied cells in any shape, and so the number of block
// type annotations a piece carries.
const MaxBlocks = 4

// MaxSize bounds the width and height of every shape in every orientation.
const MaxSize = 4

// Shape is an occupancy mask. Only the top-left Height×Width corner of Mask is meaningful.
type Shape struct {
	Mask          [MaxSize][MaxSize]uint8
	Width, Height int
}

var (
	shapeI = Shape{
		Mask: [MaxSize][MaxSize]uint8{
			{1, 1, 1, 1},
		},
		Width:  4,
		Height: 1,
	}

	shapeO = Shape{
		Mask: [MaxSize][MaxSize]uint8{
			{1, 1},
			{1, 1},
		},
		Width:  2,
		Height: 2,
	}

	shapeT = Shape{
		Mask: [MaxSize][MaxSize]uint8{
			{0, 1, 0},
			{1, 1, 1},
		},
		Width:  3,
		Height: 2,
	}

	shapeS = Shape{
		Mask: [MaxSize][MaxSize]uint8{
			{0, 1, 1},
			{1, 1, 0},
		},
		Width:  3,
		Height: 2,
	}

	shapeZ = Shape{
		Mask: [MaxSize][MaxSize]uint8{
			{1, 1, 0},
			{0, 1, 1},
		},
		Width:  3,
		Height: 2,
	}

	shapeJ = Shape{
		Mask: [MaxSize][MaxSize]uint8{
			{1, 0, 0},
			{1, 1, 1},
		},
		Width:  3,
		Height: 2,
	}

	shapeL = Shape{
		Mask: [MaxSize][MaxSize]uint8{
			{0, 0, 1},
			{1, 1, 1},
		},
		Width:  3,
		Height: 2,
	}
)

// Filled reports whether the cell at column x, row y of the shape is occupied.
func (s Shape) Filled(x, y int) bool {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return false
	}
	return s.Mask[y][x] != 0
}

// Rotate returns the shape turned 90° clockwise. An H×W shape becomes W×H.
func (s Shape) Rotate() Shape {
	r := Shape{Width: s.Height, Height: s.Width}
	h := s.Height
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			r.Mask[x][h-1-y] = s.Mask[y][x]
		}
	}
	return r
}

// Count returns the number of occupied cells.
func (s Shape) Count() int {
	n := 0
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if s.Mask[y][x] != 0 {
				n++
			}
		}
	}
	return n
}

func (k Kind) Shape() Shape {
	switch k {
	case I:
		return shapeI
	case O:
		return shapeO
	case T:
		return shapeT
	case S:
		return shapeS
	case Z:
		return shapeZ
	case J:
		return shapeJ
	case L:
		return shapeL
	}
	return Shape{}
}

func (k Kind) Tint() cell.Tint {
	switch k {
	case I:
		return cell.Cyan
	case O:
		return cell.Yellow
	case T:
		return cell.Purple
	case S:
		return cell.Green
	case Z:
		return cell.Red
	case J:
		return cell.Blue
	case L:
		return cell.Orange
	}
	return cell.None
}

func (k Kind) String() string {
	switch k {
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	}
	return "?"
}

// Piece is a tetromino together with the block type of each of its occupied cells, in
// row-major order of the canonical shape.
type Piece struct {
	Kind   Kind
	Shape  Shape
	Blocks [MaxBlocks]cell.Type
	X, Y   int
}

// New returns a piece of kind k in its canonical orientation with all blocks Normal.
func New(k Kind) Piece {
	p := Piece{Kind: k, Shape: k.Shape()}
	for i := range p.Blocks {
		p.Blocks[i] = cell.Normal
	}
	return p
}

func (p Piece) Tint() cell.Tint {
	return p.Kind.Tint()
}

// ResetRotation restores the canonical orientation of the piece's kind.
func (p *Piece) ResetRotation() {
	p.Shape = p.Kind.Shape()
}

// Each calls fn for every occupied cell in row-major order, passing the board coordinates of
// the cell and the index of its block annotation. Cells beyond MaxBlocks are not visited.
func (p Piece) Each(fn func(x, y, i int)) {
	i := 0
	for y := 0; y < p.Shape.Height; y++ {
		for x := 0; x < p.Shape.Width; x++ {
			if p.Shape.Mask[y][x] == 0 || i >= MaxBlocks {
				continue
			}
			fn(p.X+x, p.Y+y, i)
			i++
		}
	}
}
