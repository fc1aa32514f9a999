package service_interfaces

import (
	"context"

	"github.com/iDheer/bank-ledger/internal/adapter/cli/models"
	"github.com/iDheer/bank-ledger/internal/commons"
)

type LedgerService interface {
	OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.OpenAccountResponse], error)
	CloseAccount(ctx context.Context, req models.CloseAccountRequest) (commons.Response[models.CloseAccountResponse], error)
	PostTransaction(ctx context.Context, req models.TransactionRequest) (commons.Response[models.TransactionResponse], error)
	TransferFunds(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error)
	HasAccount(ctx context.Context, holderName string, kind string) (bool, error)
}
