package main

import (
	"errors"
	"flag"
	"log"

	"github.com/deitrix/drilltris/game"
	"github.com/deitrix/drilltris/piece"
	"github.com/deitrix/drilltris/sprite"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// cellSize is the size of each cell in pixels
	cellSize = 32
	// panelCells is the width, in cells, of each of the side panels
	panelCells = 6
	// boardX is the x coordinate of the left edge of the board
	boardX = panelCells * cellSize
)

// errQuit stops the game loop when the player asks to leave.
var errQuit = errors.New("quit")

// App hosts a game session: it feeds input into the session, ticks it once per frame and
// draws its snapshot.
type App struct {
	// session is the game being played
	session *game.Game
	// speaker plays sounds for game events. It may be nil.
	speaker *speaker
	// buttons are the clickable controls in the right panel
	buttons []button
	// ScreenWidth is the width of the screen in pixels
	ScreenWidth int
	// ScreenHeight is the height of the screen in pixels
	ScreenHeight int
	// ShowDebug is a flag that indicates whether debug information should be shown
	ShowDebug bool
}

func NewApp(config game.Config, src piece.Source, spk *speaker, debug bool) *App {
	a := &App{
		session:   game.New(config, src),
		speaker:   spk,
		ShowDebug: debug,
	}
	a.buttons = a.layoutButtons()
	a.session.OnEvent(func(e game.Event) {
		if debug {
			log.Printf("%v: row=%d money=%+d score=%+d chain=%t", e.Type, e.Row, e.Money, e.Score, e.Chain)
		}
		a.speaker.Play(e)
	})
	return a
}

func (a *App) rows() int { return a.session.Config.Rows }
func (a *App) cols() int { return a.session.Config.Cols }

func (a *App) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return errQuit
	}
	for _, act := range a.keyActions() {
		a.session.Apply(act)
	}
	if act, ok := a.clickAction(); ok {
		a.session.Apply(act)
	}
	a.session.Tick()
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	s := a.session.Snapshot()
	a.drawBoard(screen, s)
	if s.Active() {
		a.drawGhost(screen, s)
		a.renderPiece(screen, sprite.Cell, s.Current, boardX, 0, 255)
	}
	a.drawToolOverlay(screen, s)
	a.drawHeld(screen, s)
	a.drawNext(screen, s)
	a.drawStatus(screen, s)
	a.drawButtons(screen, s)
	a.drawTitle(screen, s)
	a.drawEnd(screen, s)
	a.drawDebug(screen, s)
}

func (a *App) Layout(_, _ int) (screenWidth, screenHeight int) {
	a.ScreenWidth = 2*boardX + a.cols()*cellSize
	a.ScreenHeight = a.rows() * cellSize
	return a.ScreenWidth, a.ScreenHeight
}

func main() {
	log.SetFlags(0)
	seed := flag.Uint64("seed", 0, "random seed; 0 seeds from the clock")
	debug := flag.Bool("debug", false, "log game events and show debug information")
	mute := flag.Bool("mute", false, "disable sound")
	scale := flag.Float64("scale", 1.5, "window scale")
	flag.Parse()

	if err := sprite.Load(); err != nil {
		log.Fatalf("failed to load sprites: %v", err)
	}

	var src piece.Source
	if *seed != 0 {
		src = piece.NewSource(*seed)
	}
	app := NewApp(game.DefaultConfig(), src, newSpeaker(*mute), *debug)

	w, h := app.Layout(0, 0)
	ebiten.SetWindowTitle("Drilltris")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.session.Config.TickRate)
	ebiten.SetWindowSize(int(float64(w)**scale), int(float64(h)**scale))
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, errQuit) {
		log.Fatalf("failed to run game: %v", err)
	}
}
