package domain

import (
	"errors"
	"fmt"
)

var ErrDuplicateAccount = errors.New("account with this holder and kind already exists")
var ErrAccountNotFound = errors.New("account not found")
var ErrInsufficientFunds = errors.New("insufficient balance for withdrawal")
var ErrInvalidAccountKind = errors.New("account kind must be savings or current")
var ErrInvalidDirection = errors.New("transaction code must be 1 (deposit) or 0 (withdrawal)")
var ErrSameAccount = errors.New("transfer source and destination are the same account")

// ErrEmptyLedger reports a lookup or mutation attempted while no accounts are
// open. It wraps ErrAccountNotFound so callers that do not care about the
// distinction can match it as a plain miss.
var ErrEmptyLedger = fmt.Errorf("no accounts are open: %w", ErrAccountNotFound)
