package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	"github.com/iDheer/bank-ledger/internal/adapter/cli/controller"
	"github.com/iDheer/bank-ledger/internal/adapter/cli/render"
	"github.com/iDheer/bank-ledger/internal/adapter/repository/memory"
	"github.com/iDheer/bank-ledger/internal/config"
	"github.com/iDheer/bank-ledger/internal/logger"
	"github.com/iDheer/bank-ledger/internal/usecase/services"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "bankledger"
	app.Usage = "interactive in-memory bank account ledger"
	app.Version = version

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "log-level, l",
			Value: "",
			Usage: " override configured log `LEVEL` [trace|debug|info|warn|error]",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		exitwithstatus.Message("%s: %s", app.Name, err)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	level := cfg.LogLevel
	if override := c.String("log-level"); override != "" {
		level = override
	}
	logger.Setup(level, os.Stderr)

	accountRepo := memory.NewAccountRepository(cfg.StartingNumber, cfg.SavingsFloor, cfg.CurrentFloor)
	journalRepo := memory.NewJournalRepository()

	ledgerService := services.NewLedgerService(accountRepo, journalRepo, cfg.SavingsFloor, cfg.CurrencyPrefix)
	reportService := services.NewReportService(accountRepo, journalRepo, cfg.LowBalanceThreshold)

	renderer := render.New(cfg.CurrencyPrefix, cfg.LowBalanceThreshold)
	commands := controller.NewCommandController(ledgerService, reportService, os.Stdin, c.App.Writer, renderer)

	return commands.Run(context.Background())
}
