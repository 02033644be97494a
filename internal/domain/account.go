package domain

import "time"

// Currency identifies one of the two cash currencies held by an account.
type Currency string

const (
	CurrencyKRW Currency = "krw"
	CurrencyUSD Currency = "usd"
)

// Balance holds the account's cash, one scalar per currency. It is mutated
// only by the execution engine as the direct monetary effect of a trade
// and is never allowed to go negative.
type Balance struct {
	KRW float64 `json:"krw"`
	USD float64 `json:"usd"`
}

// Get returns the cash amount for the given currency.
func (b Balance) Get(c Currency) float64 {
	if c == CurrencyKRW {
		return b.KRW
	}
	return b.USD
}

// Add credits (or, with a negative amount, debits) the given currency.
func (b *Balance) Add(c Currency, amount float64) {
	if c == CurrencyKRW {
		b.KRW += amount
		return
	}
	b.USD += amount
}

// Holding is a position in a single instrument. Quantity is always > 0
// while the holding exists; a sell that exhausts the quantity removes the
// holding entirely.
type Holding struct {
	InstrumentID string    `json:"instrumentId"`
	Quantity     int64     `json:"quantity"`
	AvgPrice     float64   `json:"avgPrice"`
	PurchaseDate time.Time `json:"purchaseDate"`
}

// User is a registered account identity.
type User struct {
	UserID    string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
