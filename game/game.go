package game

import (
	"time"

	"github.com/deitrix/drilltris/grid"
	"github.com/deitrix/drilltris/piece"
)

// Game is the complete state of a session. It is owned by a single host loop that calls Tick
// once per frame and Apply for every input command; nothing in it is safe for concurrent use.
type Game struct {
	Config Config
	// Mode is the current top-level state.
	Mode Mode
	// Grid holds the locked blocks, not including the falling piece.
	Grid *grid.Grid
	// Current is the piece being controlled by the player.
	Current piece.Piece
	// Next is the piece that will be spawned after Current locks.
	Next piece.Piece
	// Held is the piece put aside with Hold, or nil.
	Held *piece.Piece
	// CanHold prevents the player from holding more than once per spawned piece.
	CanHold bool
	Score   int
	Money   int
	// DrillUses is the number of drill charges left.
	DrillUses int
	// TNTAmmo is the number of TNT sticks left.
	TNTAmmo int
	// Frame counts every tick since the game was created.
	Frame int
	// StartFrame is the frame on which the current run started.
	StartFrame int
	// EndFrame is the frame on which the current run ended.
	EndFrame int
	// DropInterval is the number of ticks between automatic drops.
	DropInterval int
	// TicksSinceFall is the number of ticks since the piece last attempted to fall.
	TicksSinceFall int
	// Cleared is set when the run ended on time with enough score.
	Cleared bool
	// FadeAlpha darkens the board after a run ends, from 0 to FadeMax.
	FadeAlpha float64
	// GameOverTextY is the vertical position of the end-of-run banner, in rows.
	GameOverTextY float64

	rand    piece.Source
	onEvent func(Event)
}

// New creates a game on the title screen. A nil src seeds a source from the clock.
func New(config Config, src piece.Source) *Game {
	if src == nil {
		src = piece.NewSource(uint64(time.Now().UnixNano()))
	}
	g := &Game{
		Config: config,
		rand:   src,
	}
	g.reset()
	return g
}

// OnEvent sets a callback invoked synchronously for every event the game emits.
func (g *Game) OnEvent(fn func(Event)) {
	g.onEvent = fn
}

func (g *Game) emit(e Event) {
	if g.onEvent != nil {
		g.onEvent(e)
	}
}

// reset discards every piece of run state and returns to the title screen.
func (g *Game) reset() {
	g.Mode = ModeTitle
	g.Grid = grid.New(g.Config.Rows, g.Config.Cols)
	g.Current = piece.Piece{}
	g.Next = piece.New(piece.T)
	g.Held = nil
	g.CanHold = true
	g.Score = 0
	g.Money = 0
	g.DrillUses = g.Config.StartDrillUses
	g.TNTAmmo = 0
	g.StartFrame = g.Frame
	g.EndFrame = g.Frame
	g.DropInterval = g.Config.StartDropInterval
	g.TicksSinceFall = 0
	g.Cleared = false
	g.FadeAlpha = 0
	g.GameOverTextY = GameOverTextStartY
}

// Start begins a new run from the title screen.
func (g *Game) Start() {
	if g.Mode != ModeTitle {
		return
	}
	g.reset()
	g.Mode = ModePlay
	g.Next = piece.Rand(g.rand)
	g.Spawn()
}

// Acknowledge leaves the end-of-run screen and returns to the title.
func (g *Game) Acknowledge() {
	if g.Mode != ModeGameOver {
		return
	}
	g.reset()
}

// Tick advances the session by one frame.
func (g *Game) Tick() {
	g.Frame++

	switch {
	case g.Mode.running():
		if g.Remaining() <= 0 {
			g.timeUp()
			return
		}
		g.speedUp()
		if g.Mode != ModePlay {
			return
		}
		g.fall()
	case g.Mode == ModeGameOver:
		g.animateEnd()
	}
}

// Elapsed returns the number of whole seconds the current run has been going.
func (g *Game) Elapsed() int {
	if g.Config.TickRate <= 0 {
		return 0
	}
	frame := g.Frame
	if g.Mode == ModeGameOver || g.Mode == ModeTitle {
		frame = g.EndFrame
	}
	return (frame - g.StartFrame) / g.Config.TickRate
}

// Remaining returns the number of seconds left in the run. It can be negative for one tick
// before the run is resolved.
func (g *Game) Remaining() int {
	return g.Config.TimeLimit - g.Elapsed()
}

func (g *Game) timeUp() {
	g.end(g.Score >= g.Config.ClearScore)
}

// end finishes the run, marking it as cleared when won.
func (g *Game) end(cleared bool) {
	g.Mode = ModeGameOver
	g.EndFrame = g.Frame
	g.Cleared = cleared
	g.FadeAlpha = 0
	g.GameOverTextY = GameOverTextStartY
	if cleared {
		g.emit(Event{Type: EventCleared, Score: g.Score})
	} else {
		g.emit(Event{Type: EventGameOver, Score: g.Score})
	}
}

func (g *Game) speedUp() {
	elapsed := g.Frame - g.StartFrame
	if g.Config.SpeedUpEvery <= 0 || elapsed <= 0 || elapsed%g.Config.SpeedUpEvery != 0 {
		return
	}
	g.DropInterval = max(g.DropInterval-g.Config.SpeedUpStep, g.Config.MinDropInterval)
}

func (g *Game) fall() {
	g.TicksSinceFall++
	if g.TicksSinceFall < g.DropInterval {
		return
	}
	g.TicksSinceFall = 0
	g.step()
}

func (g *Game) animateEnd() {
	g.FadeAlpha = min(g.FadeAlpha+FadeStep, FadeMax)
	target := float64(g.Config.Rows) / 2
	g.GameOverTextY += (target - g.GameOverTextY) * GameOverTextEase
}
