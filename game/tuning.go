package game

// Drill rewards per destroyed block.
const (
	GoldMoney      = 10
	GoldScore      = 50
	PlatinumMoney  = 20
	PlatinumScore  = 80
	ChainGoldMoney = 100 // gold destroyed in the row above a platinum blast
	ChainGoldScore = 500
)

// End-of-run presentation.
const (
	FadeStep           = 5.0
	FadeMax            = 200.0
	GameOverTextStartY = -2.0 // in rows, above the board
	GameOverTextEase   = 0.1
)
