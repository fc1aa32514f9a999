package memory

import (
	"context"
	"sync"

	"github.com/iDheer/bank-ledger/internal/domain"
)

// JournalRepository stores balance-movement records in append order. Entries
// are keyed by account number; purging on account closure keeps a reissued
// number from inheriting the previous holder's history.
type JournalRepository struct {
	mu      sync.Mutex
	entries []domain.JournalEntry
}

func NewJournalRepository() *JournalRepository {
	return &JournalRepository{}
}

func (r *JournalRepository) Append(_ context.Context, entry domain.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	return nil
}

func (r *JournalRepository) ListByAccount(_ context.Context, accountNumber int) ([]domain.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.JournalEntry, 0)
	for _, entry := range r.entries {
		if entry.AccountNumber == accountNumber {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (r *JournalRepository) PurgeAccount(_ context.Context, accountNumber int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.entries[:0]
	for _, entry := range r.entries {
		if entry.AccountNumber != accountNumber {
			kept = append(kept, entry)
		}
	}
	r.entries = kept
	return nil
}
