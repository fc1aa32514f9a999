package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/iDheer/bank-ledger/internal/adapter/cli/models"
	"github.com/iDheer/bank-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	displayRuleWidth    = 122
	lowBalanceRuleWidth = 100
)

// Renderer writes every user-facing result block of the command surface.
// Prompts and flow control stay with the controller; everything the user
// reads as an outcome is produced here so the wording lives in one place.
type Renderer struct {
	currencyPrefix string
	threshold      decimal.Decimal
}

func New(currencyPrefix string, threshold decimal.Decimal) *Renderer {
	return &Renderer{
		currencyPrefix: strings.TrimSpace(currencyPrefix),
		threshold:      threshold,
	}
}

func (r *Renderer) Banner(w io.Writer) {
	fmt.Fprintln(w, "Bank Management System")
	fmt.Fprintln(w, "Commands: CREATE, DELETE, DISPLAY, TRANSACTION, TRANSFER, HISTORY, LOWBALANCE, EXIT")
}

func (r *Renderer) Goodbye(w io.Writer) {
	fmt.Fprintln(w, "Exiting program. Goodbye!")
}

func (r *Renderer) InvalidCommand(w io.Writer, command string) {
	fmt.Fprintf(w, "Invalid command: '%s'. Please use CREATE, DELETE, DISPLAY, TRANSACTION, TRANSFER, HISTORY, LOWBALANCE, or EXIT.\n", command)
}

func (r *Renderer) InvalidKind(w io.Writer, kind string) {
	fmt.Fprintf(w, "Invalid Account Type: '%s'. Please use 'savings' or 'current'.\n", kind)
}

func (r *Renderer) InvalidInput(w io.Writer, detail string) {
	fmt.Fprintf(w, "Invalid input: %s\n", detail)
}

func (r *Renderer) AccountOpened(w io.Writer, account models.OpenAccountResponse) {
	fmt.Fprintln(w, "Account Created Successfully")
	fmt.Fprintf(w, "Account Number: %d\n", account.Number)
	fmt.Fprintf(w, "Account Holder: %s\n", account.HolderName)
	fmt.Fprintf(w, "Account Type: %s\n", account.Kind)
	fmt.Fprintf(w, "Balance: %s %s\n\n", r.currencyPrefix, account.Balance)
}

func (r *Renderer) DuplicateAccount(w io.Writer, holderName string, kind string) {
	fmt.Fprintf(w, "Invalid: Account for '%s' of type '%s' already exists.\n", holderName, kind)
}

func (r *Renderer) AccountClosed(w io.Writer, accountNumber int) {
	fmt.Fprintf(w, "Account deleted successfully! Account Number: %d\n", accountNumber)
}

func (r *Renderer) CloseMiss(w io.Writer, holderName string, kind string) {
	fmt.Fprintf(w, "Invalid: Account '%s' of type %s does not exist for deletion\n", holderName, kind)
}

func (r *Renderer) NoAccounts(w io.Writer) {
	fmt.Fprintln(w, "No Accounts to display")
}

func (r *Renderer) NoAccountsToDelete(w io.Writer) {
	fmt.Fprintln(w, "No Accounts to delete")
}

func (r *Renderer) NoAccountsForTransactions(w io.Writer) {
	fmt.Fprintln(w, "No Accounts to display for transactions")
}

// AccountTable prints all accounts ascending by number, or the no-accounts
// line when the ledger is empty.
func (r *Renderer) AccountTable(w io.Writer, report models.AccountListResponse) {
	if report.TotalActive == 0 {
		r.NoAccounts(w)
		return
	}

	fmt.Fprintf(w, "Account Number\t\tAccount Type\t\t%-50s\t\t  Balance\n", "Name")
	fmt.Fprintln(w, strings.Repeat("-", displayRuleWidth))
	for _, account := range report.Accounts {
		fmt.Fprintf(w, "%d\t\t\t%s\t\t\t%-50s\t\t%10s\n", account.Number, account.Kind, account.HolderName, account.Balance)
	}
	fmt.Fprintln(w, strings.Repeat("-", displayRuleWidth))
}

// LowBalanceTable prints the accounts below the threshold. The header is
// printed whenever the ledger has accounts at all; an inner line reports
// when none of them fall below the threshold.
func (r *Renderer) LowBalanceTable(w io.Writer, report models.AccountListResponse) {
	if report.TotalActive == 0 {
		r.NoAccounts(w)
		return
	}

	fmt.Fprintf(w, "Accounts with balance less than %s %s:\n", r.currencyPrefix, r.threshold.StringFixed(2))
	fmt.Fprintf(w, "Account Number\t\t%-50s\t\t     Balance\n", "Name")
	fmt.Fprintln(w, strings.Repeat("-", lowBalanceRuleWidth))
	for _, account := range report.Accounts {
		fmt.Fprintf(w, "%d\t\t\t%-50s\t\t%10s\n", account.Number, account.HolderName, account.Balance)
	}
	if len(report.Accounts) == 0 {
		fmt.Fprintf(w, "No accounts found with balance less than %s %s\n", r.currencyPrefix, r.threshold.StringFixed(2))
	}
	fmt.Fprintln(w, strings.Repeat("-", lowBalanceRuleWidth))
}

func (r *Renderer) TransactionDone(w io.Writer, result models.TransactionResponse) {
	verb := "Deposit"
	if result.Direction == domain.DirectionWithdraw.String() {
		verb = "Withdrawal"
	}
	fmt.Fprintf(w, "%s successful. Updated balance for account %d is %s.%s\n", verb, result.AccountNumber, r.currencyPrefix, result.Balance)
}

func (r *Renderer) TransactionMiss(w io.Writer, accountNumber string) {
	fmt.Fprintf(w, "Invalid: Account with number %s does not exist for transaction\n", accountNumber)
}

func (r *Renderer) InsufficientWithdrawal(w io.Writer, detail string) {
	fmt.Fprintf(w, "The balance is insufficient for the specified withdrawal (%s)\n", detail)
}

func (r *Renderer) InvalidTransactionCode(w io.Writer) {
	fmt.Fprintln(w, "Invalid Transaction Code (1 for deposit, 0 for withdrawal)")
}

func (r *Renderer) TransferDone(w io.Writer, result models.TransferResponse) {
	fmt.Fprintf(w, "Transfer successful. %s.%s moved from account %d to account %d\n", r.currencyPrefix, result.Amount, result.FromNumber, result.ToNumber)
	fmt.Fprintf(w, "Updated balance for account %d is %s.%s\n", result.FromNumber, r.currencyPrefix, result.FromBalance)
	fmt.Fprintf(w, "Updated balance for account %d is %s.%s\n", result.ToNumber, r.currencyPrefix, result.ToBalance)
}

func (r *Renderer) SameAccount(w io.Writer) {
	fmt.Fprintln(w, "Invalid: source and destination accounts must differ")
}

func (r *Renderer) TransferMiss(w io.Writer) {
	fmt.Fprintln(w, "Invalid: One or both accounts do not exist for transfer")
}

func (r *Renderer) HistoryMiss(w io.Writer, accountNumber string) {
	fmt.Fprintf(w, "Invalid: Account with number %s does not exist for history\n", accountNumber)
}

func (r *Renderer) History(w io.Writer, report models.HistoryResponse) {
	fmt.Fprintf(w, "Transaction history for account %d:\n", report.AccountNumber)
	if len(report.Entries) == 0 {
		fmt.Fprintln(w, "No transactions recorded")
		return
	}

	fmt.Fprintf(w, "%-25s\t%-14s\t%10s\t%12s\t\tReference\n", "Time", "Operation", "Amount", "Balance")
	fmt.Fprintln(w, strings.Repeat("-", lowBalanceRuleWidth))
	for _, entry := range report.Entries {
		fmt.Fprintf(w, "%-25s\t%-14s\t%10s\t%12s\t\t%s\n", entry.At, entry.Operation, entry.Amount, entry.BalanceAfter, entry.ID)
	}
	fmt.Fprintln(w, strings.Repeat("-", lowBalanceRuleWidth))
}
