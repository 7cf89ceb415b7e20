package main

import (
	"github.com/deitrix/drilltris/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// button is a clickable control in the right panel.
type button struct {
	X, Y, W, H int
	Label      string
	Action     game.ActionType
}

func (b button) contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

func (a *App) layoutButtons() []button {
	x := boardX + a.cols()*cellSize + cellSize/2
	w := (panelCells - 1) * cellSize
	h := cellSize * 3 / 2
	return []button{
		{X: x, Y: 9 * cellSize, W: w, H: h, Label: "DRILL [D]", Action: game.ActionToggleDrill},
		{X: x, Y: 11 * cellSize, W: w, H: h, Label: "BUY DRILL [B]", Action: game.ActionPurchaseDrill},
		{X: x, Y: 13 * cellSize, W: w, H: h, Label: "BUY TNT [T]", Action: game.ActionPurchaseTNT},
	}
}

// cellAt converts screen coordinates to a board cell.
func (a *App) cellAt(x, y int) (row, col int, ok bool) {
	if x < boardX || y < 0 {
		return 0, 0, false
	}
	col = (x - boardX) / cellSize
	row = y / cellSize
	if col >= a.cols() || row >= a.rows() {
		return 0, 0, false
	}
	return row, col, true
}

// pointerAction translates a click at (x, y) into a command for the given mode.
func (a *App) pointerAction(mode game.Mode, x, y int) (game.Action, bool) {
	switch mode {
	case game.ModeTitle:
		return game.Action{Type: game.ActionStart}, true
	case game.ModeGameOver:
		return game.Action{Type: game.ActionAcknowledge}, true
	}
	for _, b := range a.buttons {
		if b.contains(x, y) {
			return game.Action{Type: b.Action}, true
		}
	}
	if row, col, ok := a.cellAt(x, y); ok {
		return game.Action{Type: game.ActionActivateCell, Row: row, Col: col}, true
	}
	return game.Action{}, false
}

func (a *App) clickAction() (game.Action, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return game.Action{}, false
	}
	x, y := ebiten.CursorPosition()
	return a.pointerAction(a.session.Mode, x, y)
}

// repeating reports whether a held key should fire on this frame: once when pressed, then
// every interval frames after a short delay.
func repeating(key ebiten.Key, interval int) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d > 10 && d%interval == 0)
}

func (a *App) keyActions() []game.Action {
	var acts []game.Action
	add := func(t game.ActionType) {
		acts = append(acts, game.Action{Type: t})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		a.ShowDebug = !a.ShowDebug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		add(game.ActionStart)
		add(game.ActionAcknowledge)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		add(game.ActionToggleDrill)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		add(game.ActionPurchaseDrill)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		add(game.ActionPurchaseTNT)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		add(game.ActionHardDrop)
		return acts
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) || inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) {
		add(game.ActionHold)
		return acts
	}
	if repeating(ebiten.KeyLeft, 2) {
		add(game.ActionMoveLeft)
	}
	if repeating(ebiten.KeyRight, 2) {
		add(game.ActionMoveRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyX) {
		add(game.ActionRotate)
	}
	if repeating(ebiten.KeyDown, 3) {
		add(game.ActionSoftDrop)
	}
	return acts
}
