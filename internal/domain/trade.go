package domain

import "time"

// TradeType distinguishes purchases from sales.
type TradeType string

const (
	TradeTypeBuy  TradeType = "BUY"
	TradeTypeSell TradeType = "SELL"
)

// TradeRecord is an immutable log entry appended on every successful
// execution. Records are never mutated or deleted; external access is
// read-only and paginated.
type TradeRecord struct {
	TradeID      string    `json:"id"`
	Type         TradeType `json:"type"`
	InstrumentID string    `json:"stockId"`
	Name         string    `json:"stockName"`
	Code         string    `json:"stockCode"`
	Quantity     int64     `json:"quantity"`
	Price        float64   `json:"price"`
	TotalAmount  float64   `json:"totalAmount"`
	ExecutedAt   time.Time `json:"timestamp"`
}
