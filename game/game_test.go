package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deitrix/drilltris/cell"
	"github.com/deitrix/drilltris/piece"
)

func TestNewStartsOnTitle(t *testing.T) {
	g := New(DefaultConfig(), nil)
	assert.Equal(t, ModeTitle, g.Mode)
	assert.Equal(t, 5, g.DrillUses)
	assert.Equal(t, 60, g.DropInterval)
	assert.Equal(t, 90, g.Remaining())

	g.Tick()
	assert.Equal(t, ModeTitle, g.Mode, "title does not start by itself")
}

func TestTickDropsPiece(t *testing.T) {
	g := started(t, piece.O)
	for i := 0; i < g.DropInterval-1; i++ {
		g.Tick()
	}
	assert.Equal(t, 0, g.Current.Y)
	g.Tick()
	assert.Equal(t, 1, g.Current.Y)
}

func TestToolModesFreezePiece(t *testing.T) {
	g := started(t, piece.O)
	g.ToggleDrill()
	for i := 0; i < 3*g.DropInterval; i++ {
		g.Tick()
	}
	assert.Equal(t, 0, g.Current.Y)
	assert.Equal(t, 3, g.Elapsed(), "the clock keeps running")
}

func TestTimeUp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeLimit = 2
	cfg.TickRate = 10

	t.Run("game over", func(t *testing.T) {
		g := New(cfg, kinds(piece.O))
		g.Start()
		var events []Event
		g.OnEvent(func(e Event) { events = append(events, e) })

		for i := 0; i < 19; i++ {
			g.Tick()
		}
		require.Equal(t, ModePlay, g.Mode)
		assert.Equal(t, 1, g.Remaining())

		g.Tick()
		assert.Equal(t, ModeGameOver, g.Mode)
		assert.False(t, g.Cleared)
		require.NotEmpty(t, events)
		assert.Equal(t, EventGameOver, events[len(events)-1].Type)
	})

	t.Run("cleared", func(t *testing.T) {
		g := New(cfg, kinds(piece.O))
		g.Start()
		g.Score = cfg.ClearScore

		for i := 0; i < 20; i++ {
			g.Tick()
		}
		assert.Equal(t, ModeGameOver, g.Mode)
		assert.True(t, g.Cleared)
	})

	t.Run("clock stops at the end", func(t *testing.T) {
		g := New(cfg, kinds(piece.O))
		g.Start()
		for i := 0; i < 100; i++ {
			g.Tick()
		}
		assert.Equal(t, 0, g.Remaining())
		assert.Equal(t, 0, g.Snapshot().Remaining)
	})
}

func TestDropIntervalSpeedsUpToFloor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpeedUpEvery = 10
	g := New(cfg, kinds(piece.O))
	g.Start()

	for i := 0; i < 10; i++ {
		g.Tick()
	}
	assert.Equal(t, 55, g.DropInterval)

	for i := 0; i < 190; i++ {
		g.Tick()
	}
	assert.Equal(t, cfg.MinDropInterval, g.DropInterval)
	assert.Equal(t, ModePlay, g.Mode)
}

func TestSpeedUpDuringToolMode(t *testing.T) {
	g := started(t, piece.O)
	for i := 0; i < 590; i++ {
		g.Tick()
	}
	require.Equal(t, 60, g.DropInterval)

	g.ToggleDrill()
	require.Equal(t, ModeDrill, g.Mode)
	for i := 0; i < 20; i++ {
		g.Tick()
	}
	assert.Equal(t, 55, g.DropInterval, "the interval shrinks while a tool is armed")

	g.ToggleDrill()
	g.Mode = ModeTNT
	for i := 0; i < 600; i++ {
		g.Tick()
	}
	assert.Equal(t, 50, g.DropInterval)
}

func TestEndAnimation(t *testing.T) {
	g := started(t, piece.O)
	fillRow(g, 0, cell.Normal)
	g.Spawn()
	require.Equal(t, ModeGameOver, g.Mode)
	assert.Equal(t, GameOverTextStartY, g.GameOverTextY)

	prevY := g.GameOverTextY
	for i := 0; i < 100; i++ {
		g.Tick()
		assert.Greater(t, g.GameOverTextY, prevY)
		assert.LessOrEqual(t, g.GameOverTextY, float64(g.Config.Rows)/2)
		prevY = g.GameOverTextY
	}
	assert.Equal(t, FadeMax, g.FadeAlpha)
}

func TestAcknowledgeResets(t *testing.T) {
	g := started(t, piece.O)
	g.Money = 300
	g.Score = 900
	fillRow(g, 19, cell.Gold)
	g.Hold()
	g.end(false)

	g.Acknowledge()

	assert.Equal(t, ModeTitle, g.Mode)
	assert.Zero(t, g.Grid.Count())
	assert.Zero(t, g.Money)
	assert.Zero(t, g.Score)
	assert.Nil(t, g.Held)
	assert.False(t, g.Cleared)
	assert.Equal(t, 5, g.DrillUses)
}

func TestApply(t *testing.T) {
	g := New(DefaultConfig(), kinds(piece.T, piece.O))

	g.Apply(Action{Type: ActionMoveLeft})
	assert.Equal(t, ModeTitle, g.Mode)

	g.Apply(Action{Type: ActionAcknowledge})
	assert.Equal(t, ModeTitle, g.Mode)

	g.Apply(Action{Type: ActionStart})
	require.Equal(t, ModePlay, g.Mode)
	require.Equal(t, 4, g.Current.X)

	g.Apply(Action{Type: ActionMoveLeft})
	assert.Equal(t, 3, g.Current.X)
	g.Apply(Action{Type: ActionMoveRight})
	g.Apply(Action{Type: ActionMoveRight})
	assert.Equal(t, 5, g.Current.X)

	g.Apply(Action{Type: ActionRotate})
	assert.Equal(t, 2, g.Current.Shape.Width)

	g.Apply(Action{Type: ActionSoftDrop})
	assert.Equal(t, 1, g.Current.Y)

	g.Apply(Action{Type: ActionToggleDrill})
	require.Equal(t, ModeDrill, g.Mode)
	g.Apply(Action{Type: ActionMoveLeft})
	assert.Equal(t, 5, g.Current.X, "movement is ignored in tool modes")
	g.Apply(Action{Type: ActionToggleDrill})

	g.Apply(Action{Type: ActionHold})
	assert.False(t, g.CanHold)
	assert.Equal(t, piece.O, g.Current.Kind)

	g.Apply(Action{Type: ActionHardDrop})
	assert.Equal(t, 4, g.Grid.Count())
	assert.True(t, g.CanHold)

	g.Money = 100
	g.Apply(Action{Type: ActionPurchaseDrill})
	assert.Equal(t, 8, g.DrillUses)

	g.Money = 1000
	g.Apply(Action{Type: ActionPurchaseTNT})
	assert.Equal(t, ModeTNT, g.Mode)

	fillRow(g, 18, cell.Normal)
	g.Apply(Action{Type: ActionActivateCell, Row: 18, Col: 0})
	assert.Equal(t, 2, g.TNTAmmo)
}

func TestSnapshotIsIndependent(t *testing.T) {
	g := started(t, piece.I, piece.O)
	g.Hold()
	s := g.Snapshot()

	s.Grid.Set(0, 0, cell.Gold, cell.Red)
	s.Held.Kind = piece.Z
	s.Current.X = 0

	assert.Equal(t, cell.Empty, g.Grid.At(0, 0))
	assert.Equal(t, piece.I, g.Held.Kind)
	assert.NotEqual(t, 0, g.Current.X)
	assert.Equal(t, 18, s.GhostY)
	assert.True(t, s.Active())
}

func TestEventsOnLock(t *testing.T) {
	g := started(t, piece.O)
	var got []EventType
	g.OnEvent(func(e Event) { got = append(got, e.Type) })

	g.HardDrop()
	g.Hold()

	assert.Equal(t, []EventType{EventLocked, EventHeld}, got)
}
