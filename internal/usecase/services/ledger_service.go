package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iDheer/bank-ledger/internal/adapter/cli/models"
	"github.com/iDheer/bank-ledger/internal/commons"
	"github.com/iDheer/bank-ledger/internal/domain"
	"github.com/iDheer/bank-ledger/internal/logger"
	"github.com/shopspring/decimal"
)

type LedgerService struct {
	accountRepo    domain.AccountRepository
	journalRepo    domain.JournalRepository
	savingsFloor   decimal.Decimal
	currencyPrefix string
}

func NewLedgerService(
	accountRepo domain.AccountRepository,
	journalRepo domain.JournalRepository,
	savingsFloor decimal.Decimal,
	currencyPrefix string,
) *LedgerService {
	return &LedgerService{
		accountRepo:    accountRepo,
		journalRepo:    journalRepo,
		savingsFloor:   savingsFloor,
		currencyPrefix: strings.TrimSpace(currencyPrefix),
	}
}

func (s *LedgerService) OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.OpenAccountResponse], error) {
	logger.Info("ledger service open account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service open account validation failed", err, nil)
		return commons.ErrorResponse[models.OpenAccountResponse]("validation failed", err.Error()), err
	}

	kind, err := domain.ParseAccountKind(strings.TrimSpace(req.Kind))
	if err != nil {
		logger.Error("ledger service open account kind rejected", err, logger.Fields{
			"kind": req.Kind,
		})
		return commons.ErrorResponse[models.OpenAccountResponse]("validation failed", err.Error()), err
	}

	holderName := strings.TrimSpace(req.HolderName)
	hasAccount, err := s.accountRepo.Exists(ctx, holderName, kind)
	if err != nil {
		logger.Error("ledger service open account duplicate check failed", err, logger.Fields{
			"kind": kind.String(),
		})
		return commons.ErrorResponse[models.OpenAccountResponse]("failed to open account", "Unable to open account right now"), err
	}
	if hasAccount {
		err := fmt.Errorf("holder already has a %s account: %w", kind, domain.ErrDuplicateAccount)
		logger.Error("ledger service open account duplicate", err, logger.Fields{
			"kind": kind.String(),
		})
		return commons.ErrorResponse[models.OpenAccountResponse]("Account already exists", err.Error()), err
	}

	initialDeposit, err := decimal.NewFromString(strings.TrimSpace(req.InitialDeposit))
	if err != nil {
		logger.Error("ledger service open account parse deposit failed", err, nil)
		return commons.ErrorResponse[models.OpenAccountResponse]("validation failed", "initialDeposit must be numeric"), err
	}

	account, err := s.accountRepo.Create(ctx, kind, holderName, initialDeposit)
	if err != nil {
		logger.Error("ledger service open account repository failed", err, logger.Fields{
			"kind": kind.String(),
		})
		if errors.Is(err, domain.ErrDuplicateAccount) {
			return commons.ErrorResponse[models.OpenAccountResponse]("Account already exists"), err
		}
		return commons.ErrorResponse[models.OpenAccountResponse]("failed to open account", "Unable to open account right now"), err
	}

	s.journal(ctx, account, domain.JournalOpOpen, account.Balance)

	response := models.OpenAccountResponse{
		Number:     account.Number,
		HolderName: account.HolderName,
		Kind:       account.Kind.String(),
		Balance:    account.Balance.StringFixed(2),
		OpenedAt:   account.OpenedAt.Format(time.RFC3339),
	}

	logger.Info("ledger service open account success", logger.Fields{
		"accountNumber": response.Number,
		"kind":          response.Kind,
	})

	return commons.SuccessResponse("account opened successfully", response), nil
}

func (s *LedgerService) CloseAccount(ctx context.Context, req models.CloseAccountRequest) (commons.Response[models.CloseAccountResponse], error) {
	logger.Info("ledger service close account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service close account validation failed", err, nil)
		return commons.ErrorResponse[models.CloseAccountResponse]("validation failed", err.Error()), err
	}

	kind, err := domain.ParseAccountKind(strings.TrimSpace(req.Kind))
	if err != nil {
		logger.Error("ledger service close account kind rejected", err, logger.Fields{
			"kind": req.Kind,
		})
		return commons.ErrorResponse[models.CloseAccountResponse]("validation failed", err.Error()), err
	}

	holderName := strings.TrimSpace(req.HolderName)
	number, err := s.accountRepo.Delete(ctx, kind, holderName)
	if err != nil {
		logger.Error("ledger service close account repository failed", err, logger.Fields{
			"kind": kind.String(),
		})
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.CloseAccountResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.CloseAccountResponse]("failed to close account", "Unable to close account right now"), err
	}

	if err := s.journalRepo.PurgeAccount(ctx, number); err != nil {
		logger.Error("ledger service close account journal purge failed", err, logger.Fields{
			"accountNumber": number,
		})
	}

	response := models.CloseAccountResponse{
		Number:     number,
		HolderName: holderName,
		Kind:       kind.String(),
	}

	logger.Info("ledger service close account success", logger.Fields{
		"accountNumber": response.Number,
		"kind":          response.Kind,
	})

	return commons.SuccessResponse("account closed successfully", response), nil
}

func (s *LedgerService) PostTransaction(ctx context.Context, req models.TransactionRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("ledger service post transaction request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service post transaction validation failed", err, nil)
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}

	accountNumber, err := strconv.Atoi(strings.TrimSpace(req.AccountNumber))
	if err != nil {
		logger.Error("ledger service post transaction parse account number failed", err, nil)
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", "accountNumber must be an integer"), err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		logger.Error("ledger service post transaction parse amount failed", err, nil)
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", "amount must be numeric"), err
	}

	code, err := strconv.Atoi(strings.TrimSpace(req.Code))
	if err != nil {
		logger.Error("ledger service post transaction parse code failed", err, nil)
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", "code must be an integer"), err
	}

	// account existence is settled before the code is interpreted, so a
	// bad code against a missing account reports the missing account
	if _, err := s.accountRepo.GetByNumber(ctx, accountNumber); err != nil {
		logger.Error("ledger service post transaction lookup failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.TransactionResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.TransactionResponse]("failed to post transaction", "Unable to post the transaction right now"), err
	}

	direction, err := domain.ParseDirectionCode(code)
	if err != nil {
		logger.Error("ledger service post transaction code rejected", err, logger.Fields{
			"code": code,
		})
		return commons.ErrorResponse[models.TransactionResponse]("Invalid transaction code", err.Error()), err
	}

	var account domain.Account
	switch direction {
	case domain.DirectionDeposit:
		account, err = s.accountRepo.Deposit(ctx, accountNumber, amount)
	case domain.DirectionWithdraw:
		account, err = s.accountRepo.Withdraw(ctx, accountNumber, amount)
	}
	if err != nil {
		logger.Error("ledger service post transaction repository failed", err, logger.Fields{
			"accountNumber": accountNumber,
			"direction":     direction.String(),
		})
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.TransactionResponse]("Account not found"), err
		}
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return commons.ErrorResponse[models.TransactionResponse]("Insufficient balance", s.floorDetail(ctx, accountNumber)), err
		}
		return commons.ErrorResponse[models.TransactionResponse]("failed to post transaction", "Unable to post the transaction right now"), err
	}

	operation := domain.JournalOpDeposit
	if direction == domain.DirectionWithdraw {
		operation = domain.JournalOpWithdraw
	}
	s.journal(ctx, account, operation, amount)

	response := models.TransactionResponse{
		AccountNumber: account.Number,
		Direction:     direction.String(),
		Amount:        amount.StringFixed(2),
		Balance:       account.Balance.StringFixed(2),
	}

	message := "deposit successful"
	if direction == domain.DirectionWithdraw {
		message = "withdrawal successful"
	}

	logger.Info("ledger service post transaction success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"direction":     response.Direction,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse(message, response), nil
}

func (s *LedgerService) TransferFunds(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("ledger service transfer funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service transfer funds validation failed", err, nil)
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	fromNumber, err := strconv.Atoi(strings.TrimSpace(req.FromNumber))
	if err != nil {
		logger.Error("ledger service transfer funds parse source failed", err, nil)
		return commons.ErrorResponse[models.TransferResponse]("validation failed", "fromNumber must be an integer"), err
	}

	toNumber, err := strconv.Atoi(strings.TrimSpace(req.ToNumber))
	if err != nil {
		logger.Error("ledger service transfer funds parse destination failed", err, nil)
		return commons.ErrorResponse[models.TransferResponse]("validation failed", "toNumber must be an integer"), err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		logger.Error("ledger service transfer funds parse amount failed", err, nil)
		return commons.ErrorResponse[models.TransferResponse]("validation failed", "amount must be numeric"), err
	}

	from, to, err := s.accountRepo.Transfer(ctx, fromNumber, toNumber, amount)
	if err != nil {
		logger.Error("ledger service transfer funds repository failed", err, logger.Fields{
			"fromNumber": fromNumber,
			"toNumber":   toNumber,
		})
		if errors.Is(err, domain.ErrSameAccount) {
			return commons.ErrorResponse[models.TransferResponse]("Transfer rejected", err.Error()), err
		}
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Account not found"), err
		}
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return commons.ErrorResponse[models.TransferResponse]("Insufficient balance", s.floorDetail(ctx, fromNumber)), err
		}
		return commons.ErrorResponse[models.TransferResponse]("failed to transfer funds", "Unable to transfer funds right now"), err
	}

	s.journal(ctx, from, domain.JournalOpTransferOut, amount)
	s.journal(ctx, to, domain.JournalOpTransferIn, amount)

	response := models.TransferResponse{
		FromNumber:  from.Number,
		ToNumber:    to.Number,
		Amount:      amount.StringFixed(2),
		FromBalance: from.Balance.StringFixed(2),
		ToBalance:   to.Balance.StringFixed(2),
	}

	logger.Info("ledger service transfer funds success", logger.Fields{
		"fromNumber": response.FromNumber,
		"toNumber":   response.ToNumber,
		"amount":     response.Amount,
	})

	return commons.SuccessResponse("funds transferred successfully", response), nil
}

func (s *LedgerService) HasAccount(ctx context.Context, holderName string, kind string) (bool, error) {
	parsedKind, err := domain.ParseAccountKind(strings.TrimSpace(kind))
	if err != nil {
		return false, err
	}

	return s.accountRepo.Exists(ctx, strings.TrimSpace(holderName), parsedKind)
}

// journal records a successful balance mutation; a recording failure is
// logged and never fails the operation that already committed.
func (s *LedgerService) journal(ctx context.Context, account domain.Account, operation domain.JournalOperation, amount decimal.Decimal) {
	entry := domain.JournalEntry{
		ID:            uuid.NewString(),
		AccountNumber: account.Number,
		Operation:     operation,
		Amount:        amount,
		BalanceAfter:  account.Balance,
		At:            time.Now(),
	}

	if err := s.journalRepo.Append(ctx, entry); err != nil {
		logger.Error("ledger service journal append failed", err, logger.Fields{
			"accountNumber": account.Number,
			"operation":     string(operation),
		})
	}
}

// floorDetail names the balance floor that blocked a withdrawal from the
// given account, falling back to a generic line when the account cannot
// be read back.
func (s *LedgerService) floorDetail(ctx context.Context, accountNumber int) string {
	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		return "balance would drop below the account floor"
	}

	if account.Kind == domain.AccountKindSavings {
		return fmt.Sprintf("minimum %s %s required for savings accounts", s.currencyPrefix, s.savingsFloor.StringFixed(2))
	}

	return "current accounts cannot overdraw"
}
