package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iDheer/bank-ledger/internal/adapter/repository/memory"
	"github.com/iDheer/bank-ledger/internal/domain"
)

func entry(id string, accountNumber int, op domain.JournalOperation) domain.JournalEntry {
	return domain.JournalEntry{
		ID:            id,
		AccountNumber: accountNumber,
		Operation:     op,
		Amount:        decimal.RequireFromString("10.00"),
		BalanceAfter:  decimal.RequireFromString("10.00"),
		At:            time.Now(),
	}
}

func TestJournalListKeepsAppendOrder(t *testing.T) {
	repo := memory.NewJournalRepository()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, entry("a", 100, domain.JournalOpOpen)))
	require.NoError(t, repo.Append(ctx, entry("b", 101, domain.JournalOpOpen)))
	require.NoError(t, repo.Append(ctx, entry("c", 100, domain.JournalOpDeposit)))

	entries, err := repo.ListByAccount(ctx, 100)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, "c", entries[1].ID)
}

func TestJournalPurgeAccount(t *testing.T) {
	repo := memory.NewJournalRepository()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, entry("a", 100, domain.JournalOpOpen)))
	require.NoError(t, repo.Append(ctx, entry("b", 101, domain.JournalOpOpen)))

	require.NoError(t, repo.PurgeAccount(ctx, 100))

	entries, err := repo.ListByAccount(ctx, 100)
	require.NoError(t, err)
	assert.Empty(t, entries, "purged account keeps no history")

	entries, err = repo.ListByAccount(ctx, 101)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "other accounts keep theirs")
}
