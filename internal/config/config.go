package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration for the paper-trading service.
type Config struct {
	Port     int
	LogLevel string

	TickInterval       time.Duration // broadcast loop period
	ExecutionDelay     time.Duration // artificial trade processing delay
	DailyResetSchedule string        // cron schedule (with seconds) for the limits reset

	USDKRWRate    float64 // fixed valuation rate
	MaxStockTypes int
	OpeningKRW    float64
	OpeningUSD    float64

	HistoryPageSize int
	AllowedOrigins  []string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applies defaults,
// and validates values. It returns an error for any invalid value.
func Load() (*Config, error) {
	port, err := getInt("PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	logLevel := getStr("LOG_LEVEL", "info")
	if !isValidLogLevel(logLevel) {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %q, must be one of: debug, info, warn, error", logLevel)
	}

	tickInterval, err := getDuration("TICK_INTERVAL", 3*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid TICK_INTERVAL: %w", err)
	}
	if tickInterval <= 0 {
		return nil, fmt.Errorf("invalid TICK_INTERVAL: must be > 0")
	}

	executionDelay, err := getDuration("EXECUTION_DELAY", 800*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("invalid EXECUTION_DELAY: %w", err)
	}
	if executionDelay < 0 {
		return nil, fmt.Errorf("invalid EXECUTION_DELAY: must be >= 0")
	}

	usdkrw, err := getFloat("USD_KRW_RATE", 1200)
	if err != nil {
		return nil, fmt.Errorf("invalid USD_KRW_RATE: %w", err)
	}
	if usdkrw <= 0 {
		return nil, fmt.Errorf("invalid USD_KRW_RATE: must be > 0")
	}

	maxStockTypes, err := getInt("MAX_STOCK_TYPES", 5)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_STOCK_TYPES: %w", err)
	}
	if maxStockTypes <= 0 {
		return nil, fmt.Errorf("invalid MAX_STOCK_TYPES: must be > 0")
	}

	openingKRW, err := getFloat("OPENING_KRW", 1_000_000)
	if err != nil {
		return nil, fmt.Errorf("invalid OPENING_KRW: %w", err)
	}
	openingUSD, err := getFloat("OPENING_USD", 750)
	if err != nil {
		return nil, fmt.Errorf("invalid OPENING_USD: %w", err)
	}
	if openingKRW < 0 || openingUSD < 0 {
		return nil, fmt.Errorf("opening balances must be >= 0")
	}

	historyPageSize, err := getInt("HISTORY_PAGE_SIZE", 20)
	if err != nil {
		return nil, fmt.Errorf("invalid HISTORY_PAGE_SIZE: %w", err)
	}
	if historyPageSize <= 0 {
		return nil, fmt.Errorf("invalid HISTORY_PAGE_SIZE: must be > 0")
	}

	readTimeout, err := getDuration("READ_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := getDuration("WRITE_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid WRITE_TIMEOUT: %w", err)
	}
	idleTimeout, err := getDuration("IDLE_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid IDLE_TIMEOUT: %w", err)
	}
	shutdownTimeout, err := getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	return &Config{
		Port:               port,
		LogLevel:           logLevel,
		TickInterval:       tickInterval,
		ExecutionDelay:     executionDelay,
		DailyResetSchedule: getStr("DAILY_RESET_SCHEDULE", "0 0 0 * * *"),
		USDKRWRate:         usdkrw,
		MaxStockTypes:      maxStockTypes,
		OpeningKRW:         openingKRW,
		OpeningUSD:         openingUSD,
		HistoryPageSize:    historyPageSize,
		AllowedOrigins:     getList("ALLOWED_ORIGINS", []string{"*"}),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		IdleTimeout:        idleTimeout,
		ShutdownTimeout:    shutdownTimeout,
	}, nil
}

func getStr(key, defaultVal string) string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v
}

func getInt(key string, defaultVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(v)
}

func getFloat(key string, defaultVal float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	return strconv.ParseFloat(v, 64)
}

func getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	return time.ParseDuration(v)
}

func getList(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	parts := strings.Split(v, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
