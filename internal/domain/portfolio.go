package domain

import "time"

// PortfolioHolding is a holding joined with its live instrument quote.
type PortfolioHolding struct {
	Instrument
	Quantity     int64     `json:"quantity"`
	AvgPrice     float64   `json:"avgPrice"`
	PurchaseDate time.Time `json:"purchaseDate"`
}

// Portfolio is derived state: aggregates recomputed from the holding set
// and the live catalog on every read, never stored independently.
// Non-domestic positions are valued in KRW at the session's conversion
// rate; the conversion applies to valuation only, never to the balance.
type Portfolio struct {
	TotalValue         float64            `json:"totalValue"`
	TotalCost          float64            `json:"totalCost"`
	TotalReturn        float64            `json:"totalReturn"`
	TotalReturnPercent float64            `json:"totalReturnPercent"`
	Holdings           []PortfolioHolding `json:"holdings"`
}

// TradingLimits is a snapshot of the daily purchase policy.
type TradingLimits struct {
	CanBuyToday       bool `json:"canBuyToday"`
	MaxStockTypes     int  `json:"maxStockTypes"`
	CurrentStockTypes int  `json:"currentStockTypes"`
}
