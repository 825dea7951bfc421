package entity

// Quote is the exchange's current state of one <symbol>USDT pair,
// keyed by the base symbol with the quote asset stripped.
type Quote struct {
	Symbol        string
	LastPrice     float64
	ChangePercent float64
}
