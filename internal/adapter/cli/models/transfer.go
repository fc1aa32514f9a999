package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type TransferRequest struct {
	FromNumber string `json:"fromNumber"`
	ToNumber   string `json:"toNumber"`
	Amount     string `json:"amount"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	if !isInteger(r.FromNumber) {
		errs = append(errs, "fromNumber must be an integer")
	}

	if !isInteger(r.ToNumber) {
		errs = append(errs, "toNumber must be an integer")
	}

	amount := strings.TrimSpace(r.Amount)
	if amount == "" {
		errs = append(errs, "amount is required")
	} else if _, err := decimal.NewFromString(amount); err != nil {
		errs = append(errs, "amount must be numeric")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type TransferResponse struct {
	FromNumber  int    `json:"fromNumber"`
	ToNumber    int    `json:"toNumber"`
	Amount      string `json:"amount"`
	FromBalance string `json:"fromBalance"`
	ToBalance   string `json:"toBalance"`
}
