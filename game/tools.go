package game

import (
	"github.com/deitrix/drilltris/cell"
)

// UseDrill bores through row, paying out for gold and platinum blocks. Destroying platinum
// also blasts the row above, where only gold pays. The grid is compacted afterwards.
func (g *Game) UseDrill(row int) {
	if g.DrillUses <= 0 || row < 0 || row >= g.Grid.Rows {
		return
	}

	var money, score int
	chain := false
	for x := 0; x < g.Grid.Cols; x++ {
		switch g.Grid.Types[row][x] {
		case cell.Gold:
			money += GoldMoney
			score += GoldScore
		case cell.Platinum:
			money += PlatinumMoney
			score += PlatinumScore
			chain = true
		}
	}
	g.Grid.ClearRow(row)

	if chain && row > 0 {
		above := row - 1
		for x := 0; x < g.Grid.Cols; x++ {
			if g.Grid.Types[above][x] == cell.Gold {
				money += ChainGoldMoney
				score += ChainGoldScore
			}
		}
		g.Grid.ClearRow(above)
	}

	g.Money += money
	g.Score += score
	g.DrillUses--
	g.Grid.ApplyGravityCascade()
	g.emit(Event{Type: EventDrilled, Row: row, Money: money, Score: score, Chain: chain})
}

// UseTNT deletes row and drops everything above it by one row. Using the last stick leaves
// TNT mode.
func (g *Game) UseTNT(row int) {
	if g.TNTAmmo <= 0 || row < 0 || row >= g.Grid.Rows {
		return
	}
	g.TNTAmmo--
	g.Grid.RemoveRow(row)
	if g.TNTAmmo <= 0 && g.Mode == ModeTNT {
		g.Mode = ModePlay
	}
	g.emit(Event{Type: EventExploded, Row: row})
}

// PurchaseDrill buys more drill charges. It is ignored without enough money.
func (g *Game) PurchaseDrill() {
	if !g.Mode.running() || g.Money < g.Config.DrillPrice {
		return
	}
	g.Money -= g.Config.DrillPrice
	g.DrillUses += g.Config.DrillPack
	g.emit(Event{Type: EventPurchased})
}

// PurchaseTNT buys a full set of TNT and switches to TNT mode. It is ignored without enough
// money.
func (g *Game) PurchaseTNT() {
	if !g.Mode.running() || g.Money < g.Config.TNTPrice {
		return
	}
	g.Money -= g.Config.TNTPrice
	g.TNTAmmo = g.Config.TNTPack
	g.Mode = ModeTNT
	g.emit(Event{Type: EventPurchased})
}

// ToggleDrill switches between play and drill mode. From TNT mode it returns to play.
func (g *Game) ToggleDrill() {
	switch g.Mode {
	case ModePlay:
		if g.DrillUses > 0 {
			g.Mode = ModeDrill
		}
	case ModeDrill, ModeTNT:
		g.Mode = ModePlay
	}
}

// ActivateCell applies the armed tool to the row under a pointer click. Only full rows can be
// targeted, and TNT cannot touch rows holding gold.
func (g *Game) ActivateCell(row, col int) {
	if !g.Grid.InBounds(col, row) || !g.Grid.IsRowFull(row) {
		return
	}
	switch g.Mode {
	case ModeDrill:
		g.UseDrill(row)
		if g.DrillUses <= 0 {
			g.Mode = ModePlay
		}
	case ModeTNT:
		if g.Grid.RowHasGold(row) {
			return
		}
		g.UseTNT(row)
	}
}
