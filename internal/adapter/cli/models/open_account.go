package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type OpenAccountRequest struct {
	Kind           string `json:"kind"`
	HolderName     string `json:"holderName"`
	InitialDeposit string `json:"initialDeposit"`
}

func (r OpenAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Kind) == "" {
		errs = append(errs, "kind is required")
	}

	if strings.TrimSpace(r.HolderName) == "" {
		errs = append(errs, "holderName is required")
	}

	deposit := strings.TrimSpace(r.InitialDeposit)
	if deposit == "" {
		errs = append(errs, "initialDeposit is required")
	} else if _, err := decimal.NewFromString(deposit); err != nil {
		errs = append(errs, "initialDeposit must be numeric")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type OpenAccountResponse struct {
	Number     int    `json:"number"`
	HolderName string `json:"holderName"`
	Kind       string `json:"kind"`
	Balance    string `json:"balance"`
	OpenedAt   string `json:"openedAt"`
}

type CloseAccountRequest struct {
	Kind       string `json:"kind"`
	HolderName string `json:"holderName"`
}

func (r CloseAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Kind) == "" {
		errs = append(errs, "kind is required")
	}

	if strings.TrimSpace(r.HolderName) == "" {
		errs = append(errs, "holderName is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type CloseAccountResponse struct {
	Number     int    `json:"number"`
	HolderName string `json:"holderName"`
	Kind       string `json:"kind"`
}
