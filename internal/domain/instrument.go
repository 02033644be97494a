package domain

// Market classifies an instrument into one of the three tradable markets.
type Market string

const (
	MarketDomestic      Market = "domestic"
	MarketInternational Market = "international"
	MarketCrypto        Market = "crypto"
)

// Valid reports whether m is one of the three known markets.
func (m Market) Valid() bool {
	switch m {
	case MarketDomestic, MarketInternational, MarketCrypto:
		return true
	}
	return false
}

// Currency returns the currency that instruments in this market settle in.
// Domestic instruments settle in KRW, everything else in USD.
func (m Market) Currency() Currency {
	if m == MarketDomestic {
		return CurrencyKRW
	}
	return CurrencyUSD
}

// Instrument is a tradable unit in one of the three markets. The catalog
// is fixed at process start; only the quote fields (Price, Change,
// ChangePercent) mutate afterwards, and only via the price feed.
type Instrument struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	Market        Market  `json:"market"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}

// MicroPriced reports whether the instrument trades below one currency
// unit. Micro-priced crypto instruments use a 0.001 price floor and four
// decimal places instead of two.
func (i Instrument) MicroPriced() bool {
	return i.Market == MarketCrypto && i.Price < 1
}

// MarketStocks groups the full catalog by market, matching the shape
// delivered to clients in price snapshots.
type MarketStocks struct {
	Domestic      []Instrument `json:"domestic"`
	International []Instrument `json:"international"`
	Crypto        []Instrument `json:"crypto"`
}

// DefaultCatalog returns the fixed 15-instrument catalog (5 per market)
// with its opening quotes.
func DefaultCatalog() []Instrument {
	return []Instrument{
		{ID: "1", Name: "Samsung Electronics", Code: "005930", Market: MarketDomestic, Price: 71500, Change: 1500, ChangePercent: 2.14},
		{ID: "2", Name: "SK Hynix", Code: "000660", Market: MarketDomestic, Price: 128000, Change: -2000, ChangePercent: -1.54},
		{ID: "3", Name: "NAVER", Code: "035420", Market: MarketDomestic, Price: 185000, Change: 3500, ChangePercent: 1.93},
		{ID: "4", Name: "Kakao", Code: "035720", Market: MarketDomestic, Price: 45200, Change: -800, ChangePercent: -1.74},
		{ID: "5", Name: "LG Energy Solution", Code: "373220", Market: MarketDomestic, Price: 412000, Change: 8000, ChangePercent: 1.98},
		{ID: "6", Name: "Apple Inc.", Code: "AAPL", Market: MarketInternational, Price: 175.43, Change: 3.69, ChangePercent: 2.15},
		{ID: "7", Name: "Microsoft Corp.", Code: "MSFT", Market: MarketInternational, Price: 378.85, Change: 4.68, ChangePercent: 1.25},
		{ID: "8", Name: "Alphabet Inc.", Code: "GOOGL", Market: MarketInternational, Price: 138.21, Change: -1.21, ChangePercent: -0.87},
		{ID: "9", Name: "Tesla Inc.", Code: "TSLA", Market: MarketInternational, Price: 248.50, Change: 10.30, ChangePercent: 4.32},
		{ID: "10", Name: "Amazon.com Inc.", Code: "AMZN", Market: MarketInternational, Price: 151.94, Change: -3.26, ChangePercent: -2.10},
		{ID: "11", Name: "Bitcoin", Code: "BTC", Market: MarketCrypto, Price: 43250.00, Change: 2320.50, ChangePercent: 5.67},
		{ID: "12", Name: "Ethereum", Code: "ETH", Market: MarketCrypto, Price: 2650.75, Change: -63.45, ChangePercent: -2.34},
		{ID: "13", Name: "Binance Coin", Code: "BNB", Market: MarketCrypto, Price: 315.20, Change: 9.80, ChangePercent: 3.21},
		{ID: "14", Name: "Cardano", Code: "ADA", Market: MarketCrypto, Price: 0.485, Change: -0.023, ChangePercent: -4.56},
		{ID: "15", Name: "Solana", Code: "SOL", Market: MarketCrypto, Price: 98.75, Change: 7.22, ChangePercent: 7.89},
	}
}
