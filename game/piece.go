package game

import (
	"github.com/deitrix/drilltris/piece"
)

// spawnX returns the column that centers a shape of the given width on the board.
func (g *Game) spawnX(width int) int {
	return g.Config.Cols/2 - width/2
}

// Spawn promotes the next piece to the current one, generates a new next piece, and ends the
// run if the new piece has no room on the board.
func (g *Game) Spawn() {
	g.Current = g.Next
	g.Current.X = g.spawnX(g.Current.Shape.Width)
	g.Current.Y = 0
	g.CanHold = true
	g.TicksSinceFall = 0

	g.Next = piece.Rand(g.rand)

	if !g.CanMove(g.Current.X, g.Current.Y, g.Current.Shape) {
		g.end(false)
	}
}

// CanMove reports whether shape fits on the board with its top-left corner at (x, y).
func (g *Game) CanMove(x, y int, shape piece.Shape) bool {
	return g.Grid.Fits(shape, x, y)
}

func (g *Game) move(dx, dy int) bool {
	if !g.CanMove(g.Current.X+dx, g.Current.Y+dy, g.Current.Shape) {
		return false
	}
	g.Current.X += dx
	g.Current.Y += dy
	return true
}

func (g *Game) MoveLeft() {
	g.move(-1, 0)
}

func (g *Game) MoveRight() {
	g.move(1, 0)
}

// Rotate turns the current piece clockwise, trying the current column first and then one
// column to the right and one to the left. If none fit the piece is left as it was.
func (g *Game) Rotate() {
	rotated := g.Current.Shape.Rotate()
	for _, dx := range [...]int{0, 1, -1} {
		if g.CanMove(g.Current.X+dx, g.Current.Y, rotated) {
			g.Current.Shape = rotated
			g.Current.X += dx
			return
		}
	}
}

// Lock writes the current piece into the grid. Cells above the top of the board are dropped.
func (g *Game) Lock() {
	p := g.Current
	tint := p.Tint()
	p.Each(func(x, y, i int) {
		if y < 0 {
			return
		}
		g.Grid.Set(x, y, p.Blocks[i], tint)
	})
	g.emit(Event{Type: EventLocked, Row: p.Y})
}

// step moves the current piece down one row, or locks it and spawns the next one if it
// cannot move.
func (g *Game) step() {
	if g.move(0, 1) {
		return
	}
	g.Lock()
	g.Spawn()
}

// SoftDrop is a player-initiated step.
func (g *Game) SoftDrop() {
	g.TicksSinceFall = 0
	g.step()
}

// HardDrop drops the current piece as far as it goes and locks it.
func (g *Game) HardDrop() {
	g.Current.Y = g.GhostY()
	g.Lock()
	g.Spawn()
}

// GhostY returns the lowest row the current piece can fall to.
func (g *Game) GhostY() int {
	y := g.Current.Y
	for g.CanMove(g.Current.X, y+1, g.Current.Shape) {
		y++
	}
	return y
}

// Hold puts the current piece aside. With an empty hold slot the next piece is spawned;
// otherwise the held piece is swapped in, back in its original orientation. Hold can be used
// once per spawned piece.
func (g *Game) Hold() {
	if !g.CanHold {
		return
	}
	held := g.Current
	held.ResetRotation()
	held.X, held.Y = 0, 0

	if g.Held == nil {
		g.Held = &held
		g.Spawn()
	} else {
		g.Current, *g.Held = *g.Held, held
		g.Current.ResetRotation()
		g.Current.X = g.spawnX(g.Current.Shape.Width)
		g.Current.Y = 0
	}
	g.CanHold = false
	g.emit(Event{Type: EventHeld})
}
