package game

// Mode is the top-level state of a session.
type Mode int

const (
	ModeTitle Mode = iota
	ModePlay
	ModeDrill // pointer clicks on full rows use the drill
	ModeTNT   // pointer clicks on full rows detonate TNT
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeTitle:
		return "title"
	case ModePlay:
		return "play"
	case ModeDrill:
		return "drill"
	case ModeTNT:
		return "tnt"
	case ModeGameOver:
		return "game over"
	}
	return "unknown"
}

// running reports whether the mode belongs to a run in progress.
func (m Mode) running() bool {
	return m == ModePlay || m == ModeDrill || m == ModeTNT
}

// ActionType is a discrete command from an input dispatcher.
type ActionType int

const (
	ActionMoveLeft ActionType = iota
	ActionMoveRight
	ActionSoftDrop
	ActionRotate
	ActionHardDrop
	ActionHold
	ActionStart
	ActionAcknowledge
	ActionToggleDrill
	ActionPurchaseDrill
	ActionPurchaseTNT
	ActionActivateCell
)

// Action is a command applied to the game. Row and Col are only used by ActionActivateCell.
type Action struct {
	Type     ActionType
	Row, Col int
}

// EventType classifies notifications emitted to presentation collaborators.
type EventType int

const (
	EventLocked EventType = iota
	EventHeld
	EventDrilled
	EventExploded
	EventPurchased
	EventGameOver
	EventCleared
)

func (t EventType) String() string {
	switch t {
	case EventLocked:
		return "locked"
	case EventHeld:
		return "held"
	case EventDrilled:
		return "drilled"
	case EventExploded:
		return "exploded"
	case EventPurchased:
		return "purchased"
	case EventGameOver:
		return "game over"
	case EventCleared:
		return "cleared"
	}
	return "unknown"
}

// Event describes something that happened during a tick. Money and Score carry the amounts
// gained by a drill use; Chain is set when a platinum block blasted the row above.
type Event struct {
	Type  EventType
	Row   int
	Money int
	Score int
	Chain bool
}
