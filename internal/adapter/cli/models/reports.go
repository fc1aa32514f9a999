package models

import (
	"errors"
	"strings"
)

type AccountView struct {
	Number     int    `json:"number"`
	HolderName string `json:"holderName"`
	Kind       string `json:"kind"`
	Balance    string `json:"balance"`
	OpenedAt   string `json:"openedAt"`
}

// AccountListResponse carries both the selected rows and the number of
// open accounts, so an empty selection over a populated ledger can be
// told apart from an empty ledger.
type AccountListResponse struct {
	Accounts    []AccountView `json:"accounts"`
	TotalActive int           `json:"totalActive"`
}

type HistoryRequest struct {
	AccountNumber string `json:"accountNumber"`
}

func (r HistoryRequest) Validate() error {
	var errs []string

	if !isInteger(r.AccountNumber) {
		errs = append(errs, "accountNumber must be an integer")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type JournalView struct {
	ID           string `json:"id"`
	Operation    string `json:"operation"`
	Amount       string `json:"amount"`
	BalanceAfter string `json:"balanceAfter"`
	At           string `json:"at"`
}

type HistoryResponse struct {
	AccountNumber int           `json:"accountNumber"`
	Entries       []JournalView `json:"entries"`
}
