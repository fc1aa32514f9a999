package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type JournalOperation string

const (
	JournalOpOpen        JournalOperation = "OPEN"
	JournalOpDeposit     JournalOperation = "DEPOSIT"
	JournalOpWithdraw    JournalOperation = "WITHDRAW"
	JournalOpTransferIn  JournalOperation = "TRANSFER_IN"
	JournalOpTransferOut JournalOperation = "TRANSFER_OUT"
)

// JournalEntry records one successful mutation of an account's balance.
// History lives and dies with the account: closing an account purges its
// entries, because the freed number may be reissued to an unrelated holder.
type JournalEntry struct {
	ID            string
	AccountNumber int
	Operation     JournalOperation
	Amount        decimal.Decimal
	BalanceAfter  decimal.Decimal
	At            time.Time
}
