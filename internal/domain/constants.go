package domain

import "time"

// Unit resource caps, identical for every machinery kind.
const (
	MaxFuel      = 100
	MaxIntegrity = 100
)

// Starting wallet and farm size for a fresh game.
const (
	StartingCoins  = 50
	StartingCrypto = 0
	InitialCols    = 2
	InitialRows    = 2
)

// MaxPoolUnits caps the units of one machinery kind across garage and field.
const MaxPoolUnits = 1000

// History caps.
const (
	MaxTradeHistory    = 100
	MaxEarningsHistory = 100
)

// DefaultHarvestDuration applies to crops that declare no collection duration.
const DefaultHarvestDuration = 4 * time.Second

// EarningsDedupWindow suppresses duplicate earnings points with unchanged coins.
const EarningsDedupWindow = 30 * time.Second

// Trade types
const (
	TradeBuy  = "buy"
	TradeSell = "sell"
)
