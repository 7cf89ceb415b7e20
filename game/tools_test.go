package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deitrix/drilltris/cell"
	"github.com/deitrix/drilltris/piece"
)

func TestUseDrillPlatinumChain(t *testing.T) {
	g := started(t, piece.O)
	fillRow(g, 19, cell.Normal)
	g.Grid.Set(2, 19, cell.Platinum, cell.Red)
	g.Grid.Set(6, 18, cell.Gold, cell.Red)
	g.Grid.Set(1, 18, cell.Jank, cell.Red)
	g.Grid.Set(6, 17, cell.Normal, cell.Green)

	var events []Event
	g.OnEvent(func(e Event) { events = append(events, e) })

	g.UseDrill(19)

	assert.Equal(t, 120, g.Money)
	assert.Equal(t, 580, g.Score)
	assert.Equal(t, 4, g.DrillUses)
	assert.Equal(t, 1, g.Grid.Count(), "both rows cleared")
	assert.Equal(t, cell.Normal, g.Grid.At(6, 19), "block above the blast falls to the floor")
	assert.Equal(t, cell.Green, g.Grid.Tints[19][6])

	require.Len(t, events, 1)
	assert.Equal(t, Event{Type: EventDrilled, Row: 19, Money: 120, Score: 580, Chain: true}, events[0])
}

func TestUseDrillGoldDoesNotChain(t *testing.T) {
	g := started(t, piece.O)
	fillRow(g, 19, cell.Normal)
	g.Grid.Set(0, 19, cell.Gold, cell.Red)
	g.Grid.Set(9, 19, cell.Gold, cell.Red)
	g.Grid.Set(4, 18, cell.Gold, cell.Red)

	g.UseDrill(19)

	assert.Equal(t, 20, g.Money)
	assert.Equal(t, 100, g.Score)
	assert.Equal(t, 1, g.Grid.Count())
	assert.Equal(t, cell.Gold, g.Grid.At(4, 19), "gold above survives and settles")
}

func TestUseDrillTopRowPlatinum(t *testing.T) {
	g := started(t, piece.O)
	fillRow(g, 0, cell.Platinum)

	g.UseDrill(0)

	assert.Equal(t, 200, g.Money)
	assert.Equal(t, 800, g.Score)
	assert.Zero(t, g.Grid.Count())
}

func TestUseDrillWithoutCharges(t *testing.T) {
	g := started(t, piece.O)
	g.DrillUses = 0
	fillRow(g, 19, cell.Gold)

	g.UseDrill(19)

	assert.Equal(t, 0, g.DrillUses)
	assert.Equal(t, 0, g.Money)
	assert.True(t, g.Grid.IsRowFull(19))
}

func TestUseDrillNeverNegative(t *testing.T) {
	g := started(t, piece.O)
	money, score := g.Money, g.Score
	for i := 0; i < 10; i++ {
		fillRow(g, 19, cell.Type(1+i%4))
		g.UseDrill(19)
		assert.GreaterOrEqual(t, g.DrillUses, 0)
		assert.GreaterOrEqual(t, g.Money, money)
		assert.GreaterOrEqual(t, g.Score, score)
		money, score = g.Money, g.Score
	}
	assert.Equal(t, 0, g.DrillUses)
}

func TestUseTNTShiftsRowsDown(t *testing.T) {
	g := started(t, piece.O)
	g.TNTAmmo = 2
	g.Mode = ModeTNT
	for y := 0; y <= 5; y++ {
		g.Grid.Set(y, y, cell.Jank, cell.Tint(1+y))
	}
	g.Grid.Set(9, 6, cell.Gold, cell.Red)
	before := g.Grid.Clone()

	g.UseTNT(5)

	for x := 0; x < g.Grid.Cols; x++ {
		assert.Equal(t, cell.Empty, g.Grid.At(x, 0))
	}
	for y := 1; y <= 5; y++ {
		assert.Equal(t, before.Types[y-1], g.Grid.Types[y], "row %d", y)
		assert.Equal(t, before.Tints[y-1], g.Grid.Tints[y], "row %d", y)
	}
	assert.Equal(t, cell.Gold, g.Grid.At(9, 6), "rows below are untouched")
	assert.Equal(t, 1, g.TNTAmmo)
	assert.Equal(t, ModeTNT, g.Mode)
}

func TestUseTNTLastStickReturnsToPlay(t *testing.T) {
	g := started(t, piece.O)
	g.TNTAmmo = 1
	g.Mode = ModeTNT
	fillRow(g, 19, cell.Normal)

	g.UseTNT(19)

	assert.Equal(t, 0, g.TNTAmmo)
	assert.Equal(t, ModePlay, g.Mode)
	assert.False(t, g.Grid.IsRowFull(19))
}

func TestUseTNTWithoutAmmo(t *testing.T) {
	g := started(t, piece.O)
	fillRow(g, 19, cell.Normal)

	g.UseTNT(19)

	assert.True(t, g.Grid.IsRowFull(19))
	assert.Equal(t, 0, g.TNTAmmo)
}

func TestActivateCell(t *testing.T) {
	t.Run("drill needs a full row", func(t *testing.T) {
		g := started(t, piece.O)
		g.ToggleDrill()
		require.Equal(t, ModeDrill, g.Mode)
		g.Grid.Set(0, 19, cell.Gold, cell.Red)

		g.ActivateCell(19, 0)

		assert.Equal(t, 5, g.DrillUses)
		assert.Equal(t, cell.Gold, g.Grid.At(0, 19))
	})

	t.Run("drill on a full row", func(t *testing.T) {
		g := started(t, piece.O)
		g.ToggleDrill()
		fillRow(g, 19, cell.Gold)

		g.ActivateCell(19, 3)

		assert.Equal(t, 4, g.DrillUses)
		assert.Equal(t, 100, g.Money)
		assert.Equal(t, ModeDrill, g.Mode)
	})

	t.Run("last drill charge returns to play", func(t *testing.T) {
		g := started(t, piece.O)
		g.DrillUses = 1
		g.ToggleDrill()
		fillRow(g, 19, cell.Normal)

		g.ActivateCell(19, 0)

		assert.Equal(t, 0, g.DrillUses)
		assert.Equal(t, ModePlay, g.Mode)
	})

	t.Run("tnt refuses gold rows", func(t *testing.T) {
		g := started(t, piece.O)
		g.TNTAmmo = 3
		g.Mode = ModeTNT
		fillRow(g, 19, cell.Normal)
		g.Grid.Set(5, 19, cell.Gold, cell.Red)

		g.ActivateCell(19, 0)

		assert.Equal(t, 3, g.TNTAmmo)
		assert.True(t, g.Grid.IsRowFull(19))
	})

	t.Run("tnt on a full row", func(t *testing.T) {
		g := started(t, piece.O)
		g.TNTAmmo = 3
		g.Mode = ModeTNT
		fillRow(g, 19, cell.Platinum)

		g.ActivateCell(19, 0)

		assert.Equal(t, 2, g.TNTAmmo)
		assert.False(t, g.Grid.IsRowFull(19))
	})

	t.Run("outside the board", func(t *testing.T) {
		g := started(t, piece.O)
		g.ToggleDrill()
		fillRow(g, 19, cell.Normal)

		g.ActivateCell(20, 0)
		g.ActivateCell(19, -1)
		g.ActivateCell(19, 10)

		assert.Equal(t, 5, g.DrillUses)
	})

	t.Run("ignored in play mode", func(t *testing.T) {
		g := started(t, piece.O)
		fillRow(g, 19, cell.Normal)

		g.ActivateCell(19, 0)

		assert.Equal(t, 5, g.DrillUses)
		assert.True(t, g.Grid.IsRowFull(19))
	})
}

func TestToggleDrill(t *testing.T) {
	g := started(t, piece.O)
	g.ToggleDrill()
	assert.Equal(t, ModeDrill, g.Mode)
	g.ToggleDrill()
	assert.Equal(t, ModePlay, g.Mode)

	g.DrillUses = 0
	g.ToggleDrill()
	assert.Equal(t, ModePlay, g.Mode, "no charges, no drill mode")

	g.Mode = ModeTNT
	g.ToggleDrill()
	assert.Equal(t, ModePlay, g.Mode)
}

func TestPurchases(t *testing.T) {
	g := started(t, piece.O)

	g.PurchaseDrill()
	g.PurchaseTNT()
	assert.Equal(t, 5, g.DrillUses)
	assert.Equal(t, 0, g.TNTAmmo)
	assert.Equal(t, ModePlay, g.Mode)

	g.Money = 1150
	g.PurchaseDrill()
	assert.Equal(t, 1050, g.Money)
	assert.Equal(t, 8, g.DrillUses)
	assert.Equal(t, ModePlay, g.Mode)

	g.PurchaseTNT()
	assert.Equal(t, 50, g.Money)
	assert.Equal(t, 3, g.TNTAmmo)
	assert.Equal(t, ModeTNT, g.Mode)

	g.PurchaseTNT()
	assert.Equal(t, 50, g.Money, "insufficient funds are ignored")
	assert.Equal(t, 3, g.TNTAmmo)
}

func TestPurchaseOutsideRun(t *testing.T) {
	g := New(DefaultConfig(), kinds())
	g.Money = 5000

	g.PurchaseDrill()
	g.PurchaseTNT()

	assert.Equal(t, 5000, g.Money)
	assert.Equal(t, ModeTitle, g.Mode)
}
