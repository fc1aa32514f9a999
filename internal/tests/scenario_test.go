package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/iDheer/bank-ledger/internal/adapter/cli/models"
	"github.com/iDheer/bank-ledger/internal/domain"
)

// Walks the reference session end to end: two accounts opened, the first
// closed, its number reissued to a low-balance account, and the low balance
// report and floor check observed along the way.
func TestLedgerScenario(t *testing.T) {
	reports, ledger := newReports()
	ctx := context.Background()

	john := openAccount(t, ledger, "savings", "JohnDoe", "1500.00")
	if john.Number != 100 || john.Balance != "1500.00" {
		t.Fatalf("expected JohnDoe at 100 with 1500.00, got %d / %s", john.Number, john.Balance)
	}

	jane := openAccount(t, ledger, "current", "JaneSmith", "2500.00")
	if jane.Number != 101 {
		t.Fatalf("expected JaneSmith at 101, got %d", jane.Number)
	}

	closed, err := ledger.CloseAccount(ctx, models.CloseAccountRequest{
		Kind:       "savings",
		HolderName: "JohnDoe",
	})
	if err != nil {
		t.Fatalf("close JohnDoe: %v", err)
	}
	if closed.Data.Number != 100 {
		t.Fatalf("expected 100 freed, got %d", closed.Data.Number)
	}

	amit := openAccount(t, ledger, "savings", "Amit", "50.00")
	if amit.Number != 100 {
		t.Fatalf("expected Amit to reuse 100, got %d", amit.Number)
	}
	if amit.Balance != "50.00" {
		t.Fatalf("expected Amit balance 50.00, got %s", amit.Balance)
	}

	low, err := reports.LowBalanceAccounts(ctx)
	if err != nil {
		t.Fatalf("low balance report: %v", err)
	}
	if low.Data.TotalActive != 2 {
		t.Fatalf("expected 2 active accounts, got %d", low.Data.TotalActive)
	}
	if len(low.Data.Accounts) != 1 || low.Data.Accounts[0].HolderName != "Amit" {
		t.Fatalf("expected exactly Amit below the threshold, got %+v", low.Data.Accounts)
	}

	_, err = ledger.PostTransaction(ctx, models.TransactionRequest{
		AccountNumber: "101",
		Amount:        "2600.00",
		Code:          "0",
	})
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected overdraw rejection, got %v", err)
	}

	listing, err := reports.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("list accounts: %v", err)
	}
	for _, account := range listing.Data.Accounts {
		if account.Number == 101 && account.Balance != "2500.00" {
			t.Fatalf("failed withdrawal must leave JaneSmith at 2500.00, got %s", account.Balance)
		}
	}
}
