package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// AccountRepository is the ledger's single owner of account state: the active
// account set plus the pool of reclaimed account numbers. Every mutating
// method is all-or-nothing; on failure no collection changes.
type AccountRepository interface {
	Create(ctx context.Context, kind AccountKind, holderName string, initialDeposit decimal.Decimal) (Account, error)
	Delete(ctx context.Context, kind AccountKind, holderName string) (int, error)
	Deposit(ctx context.Context, accountNumber int, amount decimal.Decimal) (Account, error)
	Withdraw(ctx context.Context, accountNumber int, amount decimal.Decimal) (Account, error)
	Transfer(ctx context.Context, fromNumber int, toNumber int, amount decimal.Decimal) (Account, Account, error)
	GetByNumber(ctx context.Context, accountNumber int) (Account, error)
	List(ctx context.Context) ([]Account, error)
	ListBelow(ctx context.Context, threshold decimal.Decimal) ([]Account, int, error)
	Exists(ctx context.Context, holderName string, kind AccountKind) (bool, error)
}
