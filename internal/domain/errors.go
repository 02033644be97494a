package domain

import "errors"

// Sentinel errors for domain-level error handling.
// The handler layer maps these to HTTP status codes.
var (
	ErrInstrumentNotFound   = errors.New("instrument_not_found")
	ErrNotHeld              = errors.New("not_held")
	ErrInsufficientBalance  = errors.New("insufficient_balance")
	ErrInsufficientHoldings = errors.New("insufficient_holdings")
	ErrDailyLimitUsed       = errors.New("daily_limit_used")
	ErrMaxStockTypes        = errors.New("max_stock_types")
	ErrUserAlreadyExists    = errors.New("user_already_exists")
	ErrInvalidCredentials   = errors.New("invalid_credentials")
	ErrInvalidToken         = errors.New("invalid_token")
)

// ValidationError represents a request validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
