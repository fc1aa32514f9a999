package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/iDheer/bank-ledger/internal/adapter/cli/models"
	"github.com/iDheer/bank-ledger/internal/commons"
	"github.com/iDheer/bank-ledger/internal/domain"
	"github.com/iDheer/bank-ledger/internal/logger"
	"github.com/shopspring/decimal"
)

type ReportService struct {
	accountRepo domain.AccountRepository
	journalRepo domain.JournalRepository
	threshold   decimal.Decimal
}

func NewReportService(
	accountRepo domain.AccountRepository,
	journalRepo domain.JournalRepository,
	threshold decimal.Decimal,
) *ReportService {
	return &ReportService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		threshold:   threshold,
	}
}

func (s *ReportService) ListAccounts(ctx context.Context) (commons.Response[models.AccountListResponse], error) {
	logger.Info("report service list accounts request", nil)

	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		logger.Error("report service list accounts failed", err, nil)
		return commons.ErrorResponse[models.AccountListResponse]("failed to list accounts", "Unable to list accounts right now"), err
	}

	response := models.AccountListResponse{
		Accounts:    accountViews(accounts),
		TotalActive: len(accounts),
	}

	logger.Info("report service list accounts success", logger.Fields{
		"totalActive": response.TotalActive,
	})

	return commons.SuccessResponse("accounts listed successfully", response), nil
}

func (s *ReportService) LowBalanceAccounts(ctx context.Context) (commons.Response[models.AccountListResponse], error) {
	logger.Info("report service low balance accounts request", logger.Fields{
		"threshold": s.threshold.StringFixed(2),
	})

	matches, totalActive, err := s.accountRepo.ListBelow(ctx, s.threshold)
	if err != nil {
		logger.Error("report service low balance accounts failed", err, nil)
		return commons.ErrorResponse[models.AccountListResponse]("failed to build low balance report", "Unable to build the report right now"), err
	}

	response := models.AccountListResponse{
		Accounts:    accountViews(matches),
		TotalActive: totalActive,
	}

	logger.Info("report service low balance accounts success", logger.Fields{
		"totalActive": response.TotalActive,
		"matched":     len(response.Accounts),
	})

	return commons.SuccessResponse("low balance report ready", response), nil
}

func (s *ReportService) AccountHistory(ctx context.Context, req models.HistoryRequest) (commons.Response[models.HistoryResponse], error) {
	logger.Info("report service account history request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("report service account history validation failed", err, nil)
		return commons.ErrorResponse[models.HistoryResponse]("validation failed", err.Error()), err
	}

	accountNumber, err := strconv.Atoi(strings.TrimSpace(req.AccountNumber))
	if err != nil {
		logger.Error("report service account history parse account number failed", err, nil)
		return commons.ErrorResponse[models.HistoryResponse]("validation failed", "accountNumber must be an integer"), err
	}

	if _, err := s.accountRepo.GetByNumber(ctx, accountNumber); err != nil {
		logger.Error("report service account history lookup failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.HistoryResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.HistoryResponse]("failed to fetch history", "Unable to fetch history right now"), err
	}

	entries, err := s.journalRepo.ListByAccount(ctx, accountNumber)
	if err != nil {
		logger.Error("report service account history journal failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.HistoryResponse]("failed to fetch history", "Unable to fetch history right now"), err
	}

	response := models.HistoryResponse{
		AccountNumber: accountNumber,
		Entries:       journalViews(entries),
	}

	logger.Info("report service account history success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"entries":       len(response.Entries),
	})

	return commons.SuccessResponse("account history fetched successfully", response), nil
}

func accountViews(accounts []domain.Account) []models.AccountView {
	views := make([]models.AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, models.AccountView{
			Number:     account.Number,
			HolderName: account.HolderName,
			Kind:       account.Kind.String(),
			Balance:    account.Balance.StringFixed(2),
			OpenedAt:   account.OpenedAt.Format(time.RFC3339),
		})
	}

	return views
}

func journalViews(entries []domain.JournalEntry) []models.JournalView {
	views := make([]models.JournalView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, models.JournalView{
			ID:           entry.ID,
			Operation:    string(entry.Operation),
			Amount:       entry.Amount.StringFixed(2),
			BalanceAfter: entry.BalanceAfter.StringFixed(2),
			At:           entry.At.Format(time.RFC3339),
		})
	}

	return views
}
