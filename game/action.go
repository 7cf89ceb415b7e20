package game

// Apply performs a command from an input dispatcher. Commands that make no sense in the
// current mode are ignored.
func (g *Game) Apply(a Action) {
	switch a.Type {
	case ActionStart:
		g.Start()
		return
	case ActionAcknowledge:
		g.Acknowledge()
		return
	case ActionToggleDrill:
		g.ToggleDrill()
		return
	case ActionPurchaseDrill:
		g.PurchaseDrill()
		return
	case ActionPurchaseTNT:
		g.PurchaseTNT()
		return
	case ActionActivateCell:
		g.ActivateCell(a.Row, a.Col)
		return
	}

	if g.Mode != ModePlay {
		return
	}
	switch a.Type {
	case ActionMoveLeft:
		g.MoveLeft()
	case ActionMoveRight:
		g.MoveRight()
	case ActionSoftDrop:
		g.SoftDrop()
	case ActionRotate:
		g.Rotate()
	case ActionHardDrop:
		g.HardDrop()
	case ActionHold:
		g.Hold()
	}
}
