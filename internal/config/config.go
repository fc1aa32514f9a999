package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const defaultStartingNumber = 100
const defaultLowBalanceThreshold = "100.00"
const defaultSavingsFloor = "100.00"
const defaultCurrentFloor = "0"
const defaultCurrencyPrefix = "Rs"
const defaultLogLevel = "warn"

type Config struct {
	StartingNumber      int
	LowBalanceThreshold decimal.Decimal
	SavingsFloor        decimal.Decimal
	CurrentFloor        decimal.Decimal
	CurrencyPrefix      string
	LogLevel            string
}

func Load() (Config, error) {
	startingNumber := defaultStartingNumber
	if raw := strings.TrimSpace(os.Getenv("BANK_STARTING_NUMBER")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("BANK_STARTING_NUMBER %q is not an integer: %w", raw, err)
		}
		startingNumber = parsed
	}

	threshold, err := decimalEnv("BANK_LOW_BALANCE_THRESHOLD", defaultLowBalanceThreshold)
	if err != nil {
		return Config{}, err
	}

	savingsFloor, err := decimalEnv("BANK_SAVINGS_FLOOR", defaultSavingsFloor)
	if err != nil {
		return Config{}, err
	}

	currentFloor, err := decimalEnv("BANK_CURRENT_FLOOR", defaultCurrentFloor)
	if err != nil {
		return Config{}, err
	}

	currencyPrefix := strings.TrimSpace(os.Getenv("BANK_CURRENCY_PREFIX"))
	if currencyPrefix == "" {
		currencyPrefix = defaultCurrencyPrefix
	}

	logLevel := strings.TrimSpace(os.Getenv("BANK_LOG_LEVEL"))
	if logLevel == "" {
		logLevel = defaultLogLevel
	}

	return Config{
		StartingNumber:      startingNumber,
		LowBalanceThreshold: threshold,
		SavingsFloor:        savingsFloor,
		CurrentFloor:        currentFloor,
		CurrencyPrefix:      currencyPrefix,
		LogLevel:            logLevel,
	}, nil
}

func decimalEnv(name, fallback string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		raw = fallback
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s %q is not a valid amount: %w", name, raw, err)
	}

	return value, nil
}
