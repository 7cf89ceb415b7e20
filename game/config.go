package game

// Config holds the build-time parameters of a session.
type Config struct {
	// Rows and Cols are the board dimensions.
	Rows, Cols int
	// TickRate is the number of ticks per second of game time.
	TickRate int
	// TimeLimit is the length of a run in seconds.
	TimeLimit int
	// ClearScore is the score a run must reach before time runs out to count as cleared.
	ClearScore int
	// StartDrillUses is the number of drill charges a run starts with.
	StartDrillUses int
	// StartDropInterval is the number of ticks between automatic drops at the start of a run.
	StartDropInterval int
	// MinDropInterval is the fastest the drop interval can become.
	MinDropInterval int
	// SpeedUpEvery is the number of ticks between each reduction of the drop interval.
	SpeedUpEvery int
	// SpeedUpStep is how many ticks each reduction removes from the drop interval.
	SpeedUpStep int
	// DrillPrice buys DrillPack more drill charges.
	DrillPrice, DrillPack int
	// TNTPrice buys TNTPack sticks of TNT and arms the TNT tool.
	TNTPrice, TNTPack int
}

// DefaultConfig returns the standard game configuration.
func DefaultConfig() Config {
	return Config{
		Rows:              20,
		Cols:              10,
		TickRate:          60,
		TimeLimit:         90,
		ClearScore:        3000,
		StartDrillUses:    5,
		StartDropInterval: 60,
		MinDropInterval:   10,
		SpeedUpEvery:      600,
		SpeedUpStep:       5,
		DrillPrice:        100,
		DrillPack:         3,
		TNTPrice:          1000,
		TNTPack:           3,
	}
}
