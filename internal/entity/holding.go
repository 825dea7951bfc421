package entity

// Holding is one owned coin position as reported by the backend. A fresh
// snapshot arrives every refresh cycle; the client never mutates it.
type Holding struct {
	Symbol   string  `json:"symbol"`
	Amount   float64 `json:"amount"`
	AvgPrice float64 `json:"avgPrice"`
}
