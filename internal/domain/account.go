package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountKind string

const (
	AccountKindSavings AccountKind = "savings"
	AccountKindCurrent AccountKind = "current"
)

// ParseAccountKind validates a textual kind token. Matching is case-sensitive:
// the command surface accepts exactly "savings" or "current".
func ParseAccountKind(token string) (AccountKind, error) {
	switch AccountKind(token) {
	case AccountKindSavings:
		return AccountKindSavings, nil
	case AccountKindCurrent:
		return AccountKindCurrent, nil
	default:
		return "", ErrInvalidAccountKind
	}
}

func (k AccountKind) String() string {
	return string(k)
}

type Account struct {
	Number     int
	HolderName string
	Kind       AccountKind
	Balance    decimal.Decimal
	OpenedAt   time.Time
}
