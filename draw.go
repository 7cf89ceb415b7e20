package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/deitrix/drilltris/cell"
	"github.com/deitrix/drilltris/game"
	"github.com/deitrix/drilltris/piece"
	"github.com/deitrix/drilltris/sprite"
)

var (
	boardBackground = color.NRGBA{0x10, 0x12, 0x1c, 0xff}
	frameColor      = color.NRGBA{0x50, 0x58, 0x70, 0xff}
	dimText         = color.NRGBA{0x90, 0x90, 0xa0, 0xff}
	alertText       = color.NRGBA{0xff, 0x50, 0x50, 0xff}
	buttonIdle      = color.NRGBA{0x30, 0x36, 0x48, 0xff}
	buttonActive    = color.NRGBA{0xc0, 0x80, 0x20, 0xff}
	buttonDisabled  = color.NRGBA{0x20, 0x22, 0x2a, 0xff}
)

func (a *App) drawBoard(screen *ebiten.Image, s game.Snapshot) {
	w, h := float32(a.cols()*cellSize), float32(a.rows()*cellSize)
	vector.DrawFilledRect(screen, boardX, 0, w, h, boardBackground, false)
	vector.StrokeRect(screen, boardX-1, 0, w+2, h, 2, frameColor, false)

	for y := 0; y < s.Grid.Rows; y++ {
		for x := 0; x < s.Grid.Cols; x++ {
			t := s.Grid.Types[y][x]
			if t == cell.Empty {
				continue
			}
			drawCell(screen, sprite.Cell, boardX+x*cellSize, y*cellSize, cellSize, cellSize, cell.Color(t, s.Grid.Tints[y][x]), 255)
		}
	}
}

func (a *App) drawGhost(screen *ebiten.Image, s game.Snapshot) {
	if s.GhostY == s.Current.Y {
		return
	}
	p := s.Current
	p.Y = s.GhostY
	a.renderPiece(screen, sprite.Ghost, p, boardX, 0, 96)
}

// drawToolOverlay highlights the row under the cursor while a tool is armed.
func (a *App) drawToolOverlay(screen *ebiten.Image, s game.Snapshot) {
	if s.Mode != game.ModeDrill && s.Mode != game.ModeTNT {
		return
	}
	label := "DRILL MODE"
	if s.Mode == game.ModeTNT {
		label = fmt.Sprintf("TNT MODE x%d", s.TNTAmmo)
	}
	drawText(screen, sprite.Regular, label, 20, boardX+8, 24, buttonActive)

	row, _, ok := a.cellAt(ebiten.CursorPosition())
	if !ok || !s.Grid.IsRowFull(row) {
		return
	}
	msg, tint := "DRILL!", color.NRGBA{0xff, 0xd7, 0x00, 0x60}
	switch {
	case s.Mode == game.ModeTNT && s.Grid.RowHasGold(row):
		return
	case s.Mode == game.ModeTNT:
		msg, tint = "TNT EXPLODE!", color.NRGBA{0xff, 0x40, 0x20, 0x60}
	case s.Grid.RowHasPlatinum(row):
		msg, tint = "PLATINUM BLAST!", color.NRGBA{0xe0, 0xe0, 0xff, 0x60}
	}
	y := float32(row * cellSize)
	vector.DrawFilledRect(screen, boardX, y, float32(a.cols()*cellSize), cellSize, tint, false)
	drawText(screen, sprite.Regular, msg, 20, boardX+8, row*cellSize+cellSize-8, color.White)
}

func (a *App) drawHeld(screen *ebiten.Image, s game.Snapshot) {
	drawText(screen, sprite.Regular, "HOLD", 24, 24, 32, dimText)
	if s.Held == nil {
		return
	}
	opacity := uint8(255)
	if !s.CanHold {
		opacity = 96
	}
	a.renderPreview(screen, *s.Held, panelCells*cellSize/2, 3*cellSize, opacity)
}

func (a *App) drawNext(screen *ebiten.Image, s game.Snapshot) {
	x := boardX + a.cols()*cellSize
	drawText(screen, sprite.Regular, "NEXT", 24, x+24, 32, dimText)
	if s.Mode == game.ModeTitle {
		return
	}
	a.renderPreview(screen, s.Next, x+panelCells*cellSize/2, 3*cellSize, 255)
}

// renderPreview draws p centred on (cx, cy).
func (a *App) renderPreview(screen *ebiten.Image, p piece.Piece, cx, cy int, opacity uint8) {
	p.X, p.Y = 0, 0
	a.renderPiece(screen, sprite.Cell, p, cx-p.Shape.Width*cellSize/2, cy-p.Shape.Height*cellSize/2, opacity)
}

func (a *App) drawStatus(screen *ebiten.Image, s game.Snapshot) {
	y := a.ScreenHeight - 5*cellSize
	line := func(label, value string, c color.Color) {
		drawText(screen, sprite.Regular, label, 20, 24, y, dimText)
		drawText(screen, sprite.Monospace, value, 20, 96, y, c)
		y += cellSize
	}

	timeColor := color.Color(color.White)
	if s.Remaining <= 10 {
		timeColor = alertText
	}
	line("TIME", fmt.Sprintf("%d:%02d", s.Remaining/60, s.Remaining%60), timeColor)
	line("SCORE", fmt.Sprintf("%d", s.Score), color.White)
	line("MONEY", fmt.Sprintf("$%d", s.Money), cell.GoldColor)
	line("DRILL", drillGauge(s.DrillUses), color.White)
	line("TNT", fmt.Sprintf("%d", s.TNTAmmo), color.White)
}

// drillGauge renders the drill charges as a bar, with the overflow past the bar as a number.
func drillGauge(uses int) string {
	const width = 5
	if uses > width {
		return strings.Repeat("#", width) + fmt.Sprintf("+%d", uses-width)
	}
	return strings.Repeat("#", uses) + strings.Repeat(".", width-uses)
}

func (a *App) drawButtons(screen *ebiten.Image, s game.Snapshot) {
	for _, b := range a.buttons {
		bg := buttonIdle
		label := b.Label
		switch b.Action {
		case game.ActionToggleDrill:
			if s.Mode == game.ModeDrill {
				bg = buttonActive
			} else if s.DrillUses == 0 || !s.Active() {
				bg = buttonDisabled
			}
		case game.ActionPurchaseDrill:
			label = fmt.Sprintf("%s x%d $%d", label, s.DrillPack, s.DrillPrice)
			if s.Money < s.DrillPrice || !s.Active() {
				bg = buttonDisabled
			}
		case game.ActionPurchaseTNT:
			label = fmt.Sprintf("%s x%d $%d", label, s.TNTPack, s.TNTPrice)
			if s.Mode == game.ModeTNT {
				bg = buttonActive
			} else if s.Money < s.TNTPrice || !s.Active() {
				bg = buttonDisabled
			}
		}
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, false)
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, frameColor, false)
		drawText(screen, sprite.Regular, label, 14, b.X+8, b.Y+b.H/2+5, color.White)
	}
}

func (a *App) drawTitle(screen *ebiten.Image, s game.Snapshot) {
	if s.Mode != game.ModeTitle {
		return
	}
	cx := boardX + a.cols()*cellSize/2
	drawCentered(screen, sprite.Regular, "DRILLTRIS", 40, cx, a.ScreenHeight/3, cell.GoldColor)
	drawCentered(screen, sprite.Regular, "Press ENTER to Start", 20, cx, a.ScreenHeight/2, color.White)
	drawCentered(screen, sprite.Regular, fmt.Sprintf("Score %d before time runs out", a.session.Config.ClearScore), 16, cx, a.ScreenHeight/2+2*cellSize, dimText)
}

func (a *App) drawEnd(screen *ebiten.Image, s game.Snapshot) {
	if s.Mode != game.ModeGameOver {
		return
	}
	vector.DrawFilledRect(screen, boardX, 0, float32(a.cols()*cellSize), float32(a.ScreenHeight), color.NRGBA{0, 0, 0, uint8(s.FadeAlpha)}, false)

	msg, c := "GAME OVER", alertText
	if s.Cleared {
		msg, c = "NIGHT CLEAR!", cell.GoldColor
	}
	cx := boardX + a.cols()*cellSize/2
	y := int(s.GameOverTextY * cellSize)
	drawCentered(screen, sprite.Regular, msg, 40, cx, y, c)
	if s.FadeAlpha >= game.FadeMax {
		drawCentered(screen, sprite.Regular, fmt.Sprintf("Score %d", s.Score), 20, cx, y+2*cellSize, color.White)
		drawCentered(screen, sprite.Regular, "Press ENTER to Retry", 20, cx, y+3*cellSize, dimText)
	}
}

func (a *App) drawDebug(screen *ebiten.Image, s game.Snapshot) {
	if !a.ShowDebug {
		return
	}
	drawText(screen, sprite.Monospace, strings.Join([]string{
		fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()),
		fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()),
		fmt.Sprintf("Mode: %v", s.Mode),
		fmt.Sprintf("Frame: %d", a.session.Frame),
		fmt.Sprintf("Drop Interval: %d", a.session.DropInterval),
		fmt.Sprintf("Ticks Since Fall: %d", a.session.TicksSinceFall),
		fmt.Sprintf("Ghost Y: %d", s.GhostY),
	}, "\n"), 12, 8, 8*cellSize, color.White)
}

var fontFaceCache = make(map[*opentype.Font]map[float64]font.Face)

func face(f *opentype.Font, size float64) font.Face {
	if _, ok := fontFaceCache[f]; !ok {
		fontFaceCache[f] = make(map[float64]font.Face)
	}
	if _, ok := fontFaceCache[f][size]; !ok {
		var err error
		fontFaceCache[f][size], err = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			log.Fatalf("failed to create face: %v", err)
		}
	}
	return fontFaceCache[f][size]
}

func drawText(img *ebiten.Image, f *opentype.Font, t string, size float64, x, y int, c color.Color) {
	text.Draw(img, t, face(f, size), x, y, c)
}

// drawCentered draws t with its baseline at y, centred horizontally on cx.
func drawCentered(img *ebiten.Image, f *opentype.Font, t string, size float64, cx, y int, c color.Color) {
	ff := face(f, size)
	w := font.MeasureString(ff, t).Round()
	text.Draw(img, t, ff, cx-w/2, y, c)
}

func (a *App) renderPiece(screen, img *ebiten.Image, p piece.Piece, xoff, yoff int, opacity uint8) {
	p.Each(func(x, y, i int) {
		if y < 0 {
			return
		}
		drawCell(screen, img, x*cellSize+xoff, y*cellSize+yoff, cellSize, cellSize, cell.Color(p.Blocks[i], p.Tint()), opacity)
	})
}

func drawCell(screen *ebiten.Image, img *ebiten.Image, x, y, width, height int, c color.Color, opacity uint8) {
	var op ebiten.DrawImageOptions
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(opacity) / 255)
	op.GeoM.Scale(float64(width)/float64(img.Bounds().Dx()), float64(height)/float64(img.Bounds().Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, &op)
}
