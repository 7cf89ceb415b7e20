package cell

import "image/color"

// Type is the block classification stored in every grid cell, independent of which piece
// placed it.
type Type uint8

const (
	Empty Type = iota
	Normal
	Gold
	Platinum
	Jank
)

func (t Type) String() string {
	switch t {
	case Empty:
		return "empty"
	case Normal:
		return "normal"
	case Gold:
		return "gold"
	case Platinum:
		return "platinum"
	case Jank:
		return "jank"
	}
	return "unknown"
}

// Tint is the color tag of a cell. It only means something when the cell is not Empty.
type Tint uint8

const (
	None Tint = iota
	Cyan
	Yellow
	Purple
	Green
	Red
	Blue
	Orange
)

var palette = [...]color.NRGBA{
	None:   {0, 0, 0, 0},
	Cyan:   {0x00, 0xf0, 0xf0, 0xff},
	Yellow: {0xf0, 0xf0, 0x00, 0xff},
	Purple: {0xa0, 0x00, 0xf0, 0xff},
	Green:  {0x00, 0xf0, 0x00, 0xff},
	Red:    {0xf0, 0x00, 0x00, 0xff},
	Blue:   {0x00, 0x00, 0xf0, 0xff},
	Orange: {0xf0, 0xa0, 0x00, 0xff},
}

func (t Tint) NRGBA() color.NRGBA {
	if int(t) >= len(palette) {
		return palette[None]
	}
	return palette[t]
}

// Fixed colors for the special block types. Normal blocks use their piece's tint instead.
var (
	GoldColor     = color.NRGBA{0xff, 0xd7, 0x00, 0xff}
	PlatinumColor = color.NRGBA{0xe0, 0xe0, 0xe0, 0xff}
	JankColor     = color.NRGBA{0x64, 0x6e, 0x73, 0xff}
)

// Color resolves the display color of a block of type t placed by a piece with tint.
func Color(t Type, tint Tint) color.NRGBA {
	switch t {
	case Gold:
		return GoldColor
	case Platinum:
		return PlatinumColor
	case Jank:
		return JankColor
	}
	return tint.NRGBA()
}
