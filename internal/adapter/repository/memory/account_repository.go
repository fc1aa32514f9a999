package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iDheer/bank-ledger/internal/domain"
)

// AccountRepository keeps the whole ledger in process memory: an
// insertion-ordered account slice plus the reclaimed-number allocator. One
// mutex serializes every check-then-act sequence, so the uniqueness
// invariants (account number, holder+kind pair) hold even for callers that
// drive the repository from more than one goroutine. Each repository owns
// its own allocator; independent ledgers never share numbering state.
type AccountRepository struct {
	mu           sync.Mutex
	accounts     []*domain.Account
	allocator    *numberAllocator
	savingsFloor decimal.Decimal
	currentFloor decimal.Decimal
}

func NewAccountRepository(startingNumber int, savingsFloor decimal.Decimal, currentFloor decimal.Decimal) *AccountRepository {
	return &AccountRepository{
		allocator:    newNumberAllocator(startingNumber),
		savingsFloor: savingsFloor,
		currentFloor: currentFloor,
	}
}

// Create rejects a duplicate (holderName, kind) pair before any number is
// allocated, then assigns the smallest reclaimed number, or a fresh one when
// the pool is empty, and appends the account at the tail. The initial
// deposit is taken as given; floors apply to withdrawals only.
func (r *AccountRepository) Create(_ context.Context, kind domain.AccountKind, holderName string, initialDeposit decimal.Decimal) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findByHolder(holderName, kind) != nil {
		return domain.Account{}, domain.ErrDuplicateAccount
	}

	account := &domain.Account{
		Number:     r.allocator.allocate(),
		HolderName: holderName,
		Kind:       kind,
		Balance:    initialDeposit,
		OpenedAt:   time.Now(),
	}
	r.accounts = append(r.accounts, account)

	return *account, nil
}

// Delete removes the first account matching kind and holder name exactly and
// surrenders its number for reuse. The returned number is the freed one.
func (r *AccountRepository) Delete(_ context.Context, kind domain.AccountKind, holderName string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.accounts) == 0 {
		return 0, domain.ErrEmptyLedger
	}

	for i, account := range r.accounts {
		if account.HolderName == holderName && account.Kind == kind {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			r.allocator.release(account.Number)
			return account.Number, nil
		}
	}

	return 0, domain.ErrAccountNotFound
}

func (r *AccountRepository) Deposit(_ context.Context, accountNumber int, amount decimal.Decimal) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.accounts) == 0 {
		return domain.Account{}, domain.ErrEmptyLedger
	}

	account := r.findByNumber(accountNumber)
	if account == nil {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	account.Balance = account.Balance.Add(amount)
	return *account, nil
}

// Withdraw fails without mutation when balance minus amount would land below
// the kind's floor.
func (r *AccountRepository) Withdraw(_ context.Context, accountNumber int, amount decimal.Decimal) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.accounts) == 0 {
		return domain.Account{}, domain.ErrEmptyLedger
	}

	account := r.findByNumber(accountNumber)
	if account == nil {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	if account.Balance.Sub(amount).LessThan(r.floorFor(account.Kind)) {
		return domain.Account{}, domain.ErrInsufficientFunds
	}

	account.Balance = account.Balance.Sub(amount)
	return *account, nil
}

// Transfer debits the source and credits the destination inside one critical
// section. A floor breach on the source cancels the whole movement.
func (r *AccountRepository) Transfer(_ context.Context, fromNumber int, toNumber int, amount decimal.Decimal) (domain.Account, domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.accounts) == 0 {
		return domain.Account{}, domain.Account{}, domain.ErrEmptyLedger
	}
	if fromNumber == toNumber {
		return domain.Account{}, domain.Account{}, domain.ErrSameAccount
	}

	from := r.findByNumber(fromNumber)
	if from == nil {
		return domain.Account{}, domain.Account{}, fmt.Errorf("source account %d: %w", fromNumber, domain.ErrAccountNotFound)
	}
	to := r.findByNumber(toNumber)
	if to == nil {
		return domain.Account{}, domain.Account{}, fmt.Errorf("destination account %d: %w", toNumber, domain.ErrAccountNotFound)
	}
	if from.Balance.Sub(amount).LessThan(r.floorFor(from.Kind)) {
		return domain.Account{}, domain.Account{}, domain.ErrInsufficientFunds
	}

	from.Balance = from.Balance.Sub(amount)
	to.Balance = to.Balance.Add(amount)
	return *from, *to, nil
}

func (r *AccountRepository) GetByNumber(_ context.Context, accountNumber int) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.accounts) == 0 {
		return domain.Account{}, domain.ErrEmptyLedger
	}

	account := r.findByNumber(accountNumber)
	if account == nil {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	return *account, nil
}

// List returns a copied snapshot of all active accounts ascending by number.
func (r *AccountRepository) List(_ context.Context) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshotSorted(), nil
}

// ListBelow returns the ascending-by-number accounts with balance strictly
// below threshold, plus the total active count so callers can tell an empty
// ledger from a ledger with no low balances.
func (r *AccountRepository) ListBelow(_ context.Context, threshold decimal.Decimal) ([]domain.Account, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matches := make([]domain.Account, 0)
	for _, account := range r.snapshotSorted() {
		if account.Balance.LessThan(threshold) {
			matches = append(matches, account)
		}
	}
	return matches, len(r.accounts), nil
}

func (r *AccountRepository) Exists(_ context.Context, holderName string, kind domain.AccountKind) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.findByHolder(holderName, kind) != nil, nil
}

func (r *AccountRepository) floorFor(kind domain.AccountKind) decimal.Decimal {
	if kind == domain.AccountKindSavings {
		return r.savingsFloor
	}
	return r.currentFloor
}

// findByNumber and findByHolder run under r.mu and return the live entry.
func (r *AccountRepository) findByNumber(accountNumber int) *domain.Account {
	for _, account := range r.accounts {
		if account.Number == accountNumber {
			return account
		}
	}
	return nil
}

func (r *AccountRepository) findByHolder(holderName string, kind domain.AccountKind) *domain.Account {
	for _, account := range r.accounts {
		if account.HolderName == holderName && account.Kind == kind {
			return account
		}
	}
	return nil
}

func (r *AccountRepository) snapshotSorted() []domain.Account {
	out := make([]domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		out = append(out, *account)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}
