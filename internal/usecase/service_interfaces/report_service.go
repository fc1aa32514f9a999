package service_interfaces

import (
	"context"

	"github.com/iDheer/bank-ledger/internal/adapter/cli/models"
	"github.com/iDheer/bank-ledger/internal/commons"
)

type ReportService interface {
	ListAccounts(ctx context.Context) (commons.Response[models.AccountListResponse], error)
	LowBalanceAccounts(ctx context.Context) (commons.Response[models.AccountListResponse], error)
	AccountHistory(ctx context.Context, req models.HistoryRequest) (commons.Response[models.HistoryResponse], error)
}
