package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/iDheer/bank-ledger/internal/adapter/cli/models"
	"github.com/iDheer/bank-ledger/internal/adapter/cli/render"
	"github.com/iDheer/bank-ledger/internal/domain"
	"github.com/iDheer/bank-ledger/internal/usecase/service_interfaces"
)

// CommandController runs the interactive command loop: it reads the
// case-sensitive command token, prompts for the command's arguments, calls
// the matching service operation, and renders the outcome. Service failures
// are rendered and the loop continues; only input-read failures end it.
type CommandController struct {
	ledger   service_interfaces.LedgerService
	reports  service_interfaces.ReportService
	tokens   *TokenReader
	out      io.Writer
	renderer *render.Renderer
}

func NewCommandController(
	ledger service_interfaces.LedgerService,
	reports service_interfaces.ReportService,
	in io.Reader,
	out io.Writer,
	renderer *render.Renderer,
) *CommandController {
	return &CommandController{
		ledger:   ledger,
		reports:  reports,
		tokens:   NewTokenReader(in),
		out:      out,
		renderer: renderer,
	}
}

// Run processes commands until EXIT, end of input, or a read failure. End
// of input is a clean shutdown, not an error.
func (c *CommandController) Run(ctx context.Context) error {
	c.renderer.Banner(c.out)

	for {
		fmt.Fprint(c.out, "\nEnter command: ")
		command, err := c.tokens.Next()
		if err != nil {
			return c.finish(err)
		}

		logCommand(command)
		start := time.Now()

		if command == "EXIT" {
			c.renderer.Goodbye(c.out)
			logOutcome(command, true, start)
			return nil
		}

		var handlerErr error
		switch command {
		case "CREATE":
			handlerErr = c.handleCreate(ctx)
		case "DELETE":
			handlerErr = c.handleDelete(ctx)
		case "DISPLAY":
			handlerErr = c.handleDisplay(ctx)
		case "TRANSACTION":
			handlerErr = c.handleTransaction(ctx)
		case "TRANSFER":
			handlerErr = c.handleTransfer(ctx)
		case "HISTORY":
			handlerErr = c.handleHistory(ctx)
		case "LOWBALANCE":
			handlerErr = c.handleLowBalance(ctx)
		default:
			c.renderer.InvalidCommand(c.out, command)
		}

		logOutcome(command, handlerErr == nil, start)
		if handlerErr != nil {
			return c.finish(handlerErr)
		}
	}
}

func (c *CommandController) finish(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(c.out)
		return nil
	}
	return fmt.Errorf("read command input: %w", err)
}

// prompt prints a label and reads the answering token.
func (c *CommandController) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	return c.tokens.Next()
}

func (c *CommandController) handleCreate(ctx context.Context) error {
	kind, err := c.prompt("Enter account type (savings/current): ")
	if err != nil {
		return err
	}
	holderName, err := c.prompt("Enter account holder's name: ")
	if err != nil {
		return err
	}
	deposit, err := c.prompt("Enter initial deposit amount: ")
	if err != nil {
		return err
	}

	// the duplicate guard runs before the open request so an existing
	// (holder, kind) pair never reaches allocation
	exists, err := c.ledger.HasAccount(ctx, holderName, kind)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAccountKind) {
			c.renderer.InvalidKind(c.out, kind)
			return nil
		}
		c.renderer.InvalidInput(c.out, err.Error())
		return nil
	}
	if exists {
		c.renderer.DuplicateAccount(c.out, holderName, kind)
		return nil
	}

	response, err := c.ledger.OpenAccount(ctx, models.OpenAccountRequest{
		Kind:           kind,
		HolderName:     holderName,
		InitialDeposit: deposit,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAccountKind):
			c.renderer.InvalidKind(c.out, kind)
		case errors.Is(err, domain.ErrDuplicateAccount):
			c.renderer.DuplicateAccount(c.out, holderName, kind)
		default:
			c.renderer.InvalidInput(c.out, response.Detail())
		}
		return nil
	}

	c.renderer.AccountOpened(c.out, *response.Data)
	return nil
}

func (c *CommandController) handleDelete(ctx context.Context) error {
	kind, err := c.prompt("Enter account type to delete (savings/current): ")
	if err != nil {
		return err
	}
	holderName, err := c.prompt("Enter account holder's name to delete: ")
	if err != nil {
		return err
	}

	response, err := c.ledger.CloseAccount(ctx, models.CloseAccountRequest{
		Kind:       kind,
		HolderName: holderName,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAccountKind):
			c.renderer.InvalidKind(c.out, kind)
		case errors.Is(err, domain.ErrEmptyLedger):
			c.renderer.NoAccountsToDelete(c.out)
		case errors.Is(err, domain.ErrAccountNotFound):
			c.renderer.CloseMiss(c.out, holderName, kind)
		default:
			c.renderer.InvalidInput(c.out, response.Detail())
		}
		return nil
	}

	c.renderer.AccountClosed(c.out, response.Data.Number)
	return nil
}

func (c *CommandController) handleDisplay(ctx context.Context) error {
	response, err := c.reports.ListAccounts(ctx)
	if err != nil {
		c.renderer.InvalidInput(c.out, response.Detail())
		return nil
	}

	c.renderer.AccountTable(c.out, *response.Data)
	return nil
}

func (c *CommandController) handleLowBalance(ctx context.Context) error {
	response, err := c.reports.LowBalanceAccounts(ctx)
	if err != nil {
		c.renderer.InvalidInput(c.out, response.Detail())
		return nil
	}

	c.renderer.LowBalanceTable(c.out, *response.Data)
	return nil
}

func (c *CommandController) handleTransaction(ctx context.Context) error {
	accountNumber, err := c.prompt("Enter account number for transaction: ")
	if err != nil {
		return err
	}
	amount, err := c.prompt("Enter amount: ")
	if err != nil {
		return err
	}
	code, err := c.prompt("Enter transaction code (1 for deposit, 0 for withdrawal): ")
	if err != nil {
		return err
	}

	response, err := c.ledger.PostTransaction(ctx, models.TransactionRequest{
		AccountNumber: accountNumber,
		Amount:        amount,
		Code:          code,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyLedger):
			c.renderer.NoAccountsForTransactions(c.out)
		case errors.Is(err, domain.ErrAccountNotFound):
			c.renderer.TransactionMiss(c.out, accountNumber)
		case errors.Is(err, domain.ErrInvalidDirection):
			c.renderer.InvalidTransactionCode(c.out)
		case errors.Is(err, domain.ErrInsufficientFunds):
			c.renderer.InsufficientWithdrawal(c.out, response.Detail())
		default:
			c.renderer.InvalidInput(c.out, response.Detail())
		}
		return nil
	}

	c.renderer.TransactionDone(c.out, *response.Data)
	return nil
}

func (c *CommandController) handleTransfer(ctx context.Context) error {
	fromNumber, err := c.prompt("Enter source account number: ")
	if err != nil {
		return err
	}
	toNumber, err := c.prompt("Enter destination account number: ")
	if err != nil {
		return err
	}
	amount, err := c.prompt("Enter amount: ")
	if err != nil {
		return err
	}

	response, err := c.ledger.TransferFunds(ctx, models.TransferRequest{
		FromNumber: fromNumber,
		ToNumber:   toNumber,
		Amount:     amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyLedger):
			c.renderer.NoAccountsForTransactions(c.out)
		case errors.Is(err, domain.ErrSameAccount):
			c.renderer.SameAccount(c.out)
		case errors.Is(err, domain.ErrAccountNotFound):
			c.renderer.TransferMiss(c.out)
		case errors.Is(err, domain.ErrInsufficientFunds):
			c.renderer.InsufficientWithdrawal(c.out, response.Detail())
		default:
			c.renderer.InvalidInput(c.out, response.Detail())
		}
		return nil
	}

	c.renderer.TransferDone(c.out, *response.Data)
	return nil
}

func (c *CommandController) handleHistory(ctx context.Context) error {
	accountNumber, err := c.prompt("Enter account number for history: ")
	if err != nil {
		return err
	}

	response, err := c.reports.AccountHistory(ctx, models.HistoryRequest{
		AccountNumber: accountNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyLedger):
			c.renderer.NoAccounts(c.out)
		case errors.Is(err, domain.ErrAccountNotFound):
			c.renderer.HistoryMiss(c.out, accountNumber)
		default:
			c.renderer.InvalidInput(c.out, response.Detail())
		}
		return nil
	}

	c.renderer.History(c.out, *response.Data)
	return nil
}
