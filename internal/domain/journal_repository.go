package domain

import "context"

type JournalRepository interface {
	Append(ctx context.Context, entry JournalEntry) error
	ListByAccount(ctx context.Context, accountNumber int) ([]JournalEntry, error)
	PurgeAccount(ctx context.Context, accountNumber int) error
}
