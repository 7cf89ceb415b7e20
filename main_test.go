package main

import (
	"testing"

	"github.com/deitrix/drilltris/game"
	"github.com/deitrix/drilltris/piece"
)

func newTestApp() *App {
	return NewApp(game.DefaultConfig(), piece.NewSource(1), nil, false)
}

func TestCellAt(t *testing.T) {
	a := newTestApp()
	tests := []struct {
		x, y     int
		row, col int
		ok       bool
	}{
		{boardX, 0, 0, 0, true},
		{boardX + cellSize - 1, cellSize - 1, 0, 0, true},
		{boardX + cellSize, cellSize, 1, 1, true},
		{boardX + 9*cellSize + 5, 19*cellSize + 5, 19, 9, true},
		{boardX - 1, 0, 0, 0, false},
		{boardX + 10*cellSize, 0, 0, 0, false},
		{boardX, 20 * cellSize, 0, 0, false},
		{boardX, -1, 0, 0, false},
	}
	for _, test := range tests {
		row, col, ok := a.cellAt(test.x, test.y)
		if ok != test.ok || row != test.row || col != test.col {
			t.Errorf("cellAt(%d, %d): got: (%d, %d, %t), want: (%d, %d, %t)",
				test.x, test.y, row, col, ok, test.row, test.col, test.ok)
		}
	}
}

func TestPointerAction(t *testing.T) {
	a := newTestApp()
	drill := a.buttons[0]
	tests := []struct {
		name string
		mode game.Mode
		x, y int
		want game.Action
		ok   bool
	}{
		{"title click starts", game.ModeTitle, 0, 0, game.Action{Type: game.ActionStart}, true},
		{"game over click acknowledges", game.ModeGameOver, 0, 0, game.Action{Type: game.ActionAcknowledge}, true},
		{"drill button", game.ModePlay, drill.X + 1, drill.Y + 1, game.Action{Type: game.ActionToggleDrill}, true},
		{"buy tnt button", game.ModeDrill, a.buttons[2].X, a.buttons[2].Y, game.Action{Type: game.ActionPurchaseTNT}, true},
		{"board cell", game.ModeDrill, boardX + 3*cellSize, 18 * cellSize, game.Action{Type: game.ActionActivateCell, Row: 18, Col: 3}, true},
		{"empty panel", game.ModePlay, 4, 4, game.Action{}, false},
	}
	for _, test := range tests {
		got, ok := a.pointerAction(test.mode, test.x, test.y)
		if ok != test.ok || got != test.want {
			t.Errorf("pointerAction(%s): got: %+v %t, want: %+v %t", test.name, got, ok, test.want, test.ok)
		}
	}
}

func TestButtonsInsideRightPanel(t *testing.T) {
	a := newTestApp()
	w, h := a.Layout(0, 0)
	left := boardX + a.cols()*cellSize
	for _, b := range a.buttons {
		if b.X < left || b.X+b.W > w || b.Y < 0 || b.Y+b.H > h {
			t.Errorf("button %q: got: %d,%d %dx%d, want inside panel x>=%d within %dx%d", b.Label, b.X, b.Y, b.W, b.H, left, w, h)
		}
	}
}

func TestDrillGauge(t *testing.T) {
	tests := []struct {
		uses int
		want string
	}{
		{0, "....."},
		{3, "###.."},
		{5, "#####"},
		{8, "#####+3"},
	}
	for _, test := range tests {
		if got := drillGauge(test.uses); got != test.want {
			t.Errorf("drillGauge(%d): got: %q, want: %q", test.uses, got, test.want)
		}
	}
}
