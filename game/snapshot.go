package game

import (
	"github.com/deitrix/drilltris/grid"
	"github.com/deitrix/drilltris/piece"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Mode      Mode
	Grid      *grid.Grid
	Current   piece.Piece
	GhostY    int
	Next      piece.Piece
	Held      *piece.Piece
	CanHold   bool
	Score     int
	Money     int
	DrillUses int
	TNTAmmo   int
	Remaining int
	Cleared   bool

	FadeAlpha     float64
	GameOverTextY float64

	// Prices and pack sizes are included so a HUD can show what the shop offers.
	DrillPrice int
	DrillPack  int
	TNTPrice   int
	TNTPack    int
}

// Snapshot returns a deep copy of the state. Mutating it does not affect the game.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Mode:          g.Mode,
		Grid:          g.Grid.Clone(),
		Current:       g.Current,
		Next:          g.Next,
		CanHold:       g.CanHold,
		Score:         g.Score,
		Money:         g.Money,
		DrillUses:     g.DrillUses,
		TNTAmmo:       g.TNTAmmo,
		Remaining:     max(g.Remaining(), 0),
		Cleared:       g.Cleared,
		FadeAlpha:     g.FadeAlpha,
		GameOverTextY: g.GameOverTextY,
		DrillPrice:    g.Config.DrillPrice,
		DrillPack:     g.Config.DrillPack,
		TNTPrice:      g.Config.TNTPrice,
		TNTPack:       g.Config.TNTPack,
	}
	if g.Mode.running() {
		s.GhostY = g.GhostY()
	}
	if g.Held != nil {
		h := *g.Held
		s.Held = &h
	}
	return s
}

// Active reports whether the snapshot has a piece under player control.
func (s Snapshot) Active() bool {
	return s.Mode.running()
}
