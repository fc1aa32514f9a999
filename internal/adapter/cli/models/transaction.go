package models

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type TransactionRequest struct {
	AccountNumber string `json:"accountNumber"`
	Amount        string `json:"amount"`
	Code          string `json:"code"`
}

func (r TransactionRequest) Validate() error {
	var errs []string

	if !isInteger(r.AccountNumber) {
		errs = append(errs, "accountNumber must be an integer")
	}

	amount := strings.TrimSpace(r.Amount)
	if amount == "" {
		errs = append(errs, "amount is required")
	} else if _, err := decimal.NewFromString(amount); err != nil {
		errs = append(errs, "amount must be numeric")
	}

	if !isInteger(r.Code) {
		errs = append(errs, "code must be an integer")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type TransactionResponse struct {
	AccountNumber int    `json:"accountNumber"`
	Direction     string `json:"direction"`
	Amount        string `json:"amount"`
	Balance       string `json:"balance"`
}

func isInteger(value string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(value))
	return err == nil
}
