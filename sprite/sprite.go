package sprite

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Size is the edge length in pixels of the source images. Draw calls scale them to the cell
// size of the board.
const Size = 32

var Cell, Ghost *ebiten.Image

// Load builds the block images and parses the fonts. It must be called before the first frame
// is drawn.
func Load() error {
	Cell = newCell(Size)
	Ghost = newGhost(Size)
	return loadFonts()
}

// newCell draws a white bevelled block. Renderers tint it with the block color.
func newCell(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	s := float32(size)
	bevel := s / 6
	vector.DrawFilledRect(img, 0, 0, s, s, color.Gray{0xd0}, false)
	vector.DrawFilledRect(img, 0, 0, s, bevel, color.White, false)
	vector.DrawFilledRect(img, 0, 0, bevel, s, color.Gray{0xe8}, false)
	vector.DrawFilledRect(img, 0, s-bevel, s, bevel, color.Gray{0x90}, false)
	vector.DrawFilledRect(img, s-bevel, 0, bevel, s, color.Gray{0xa8}, false)
	vector.StrokeRect(img, 0, 0, s, s, 1, color.Gray{0x40}, false)
	return img
}

// newGhost draws the outline used for the landing preview.
func newGhost(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	s := float32(size)
	vector.StrokeRect(img, 1, 1, s-2, s-2, 2, color.White, false)
	return img
}
