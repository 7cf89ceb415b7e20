package game

import (
	"testing"

	"github.com/deitrix/drilltris/cell"
	"github.com/deitrix/drilltris/piece"
)

// script is a piece.Source that replays fixed values. Exhausted kinds read as I and exhausted
// samples as Normal blocks.
type script struct {
	ints   []int
	floats []float64
}

func (s *script) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *script) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func kinds(ks ...piece.Kind) *script {
	s := &script{}
	for _, k := range ks {
		s.ints = append(s.ints, int(k))
	}
	return s
}

// started returns a game in play whose pieces come out in the given order.
func started(t *testing.T, ks ...piece.Kind) *Game {
	t.Helper()
	g := New(DefaultConfig(), kinds(ks...))
	g.Start()
	if g.Mode != ModePlay {
		t.Fatalf("mode after Start = %v, want %v", g.Mode, ModePlay)
	}
	return g
}

func fillRow(g *Game, y int, t cell.Type) {
	for x := 0; x < g.Grid.Cols; x++ {
		g.Grid.Set(x, y, t, cell.Blue)
	}
}
