package main

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rxtech-lab/argo-sizing/internal/config"
	"github.com/rxtech-lab/argo-sizing/internal/diagnostics"
	"github.com/rxtech-lab/argo-sizing/internal/instrument"
	"github.com/rxtech-lab/argo-sizing/internal/ledger"
	"github.com/rxtech-lab/argo-sizing/internal/logger"
	"github.com/rxtech-lab/argo-sizing/internal/metrics"
	"github.com/rxtech-lab/argo-sizing/internal/moneymanager"
	"github.com/rxtech-lab/argo-sizing/internal/types"
	"github.com/rxtech-lab/argo-sizing/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func resolveAction(ctx context.Context, cmd *cli.Command) error {
	level, err := zapcore.ParseLevel(cmd.String("log-level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	log, err := logger.NewLoggerWithFormat(level, logger.Format(cmd.String("log-format")))
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	if cmd.IsSet("cash") {
		cfg.Account.InitialCash = cmd.Float("cash")
	}

	registry, err := instrument.LoadRegistry(cmd.String("instruments"))
	if err != nil {
		return err
	}

	symbol := cmd.String("symbol")

	inst := registry.Get(symbol)
	if inst.IsNone() {
		return errors.Newf(errors.ErrCodeInstrumentNotFound, "instrument %s is not in the registry", symbol)
	}

	origin, err := types.ParseOrigin(cmd.String("origin"))
	if err != nil {
		return err
	}

	account, err := cfg.NewLedger(log)
	if err != nil {
		return err
	}
	defer account.Close()

	manager, err := cfg.Build(log)
	if err != nil {
		return err
	}

	sizingMetrics, err := metrics.NewSizingMetrics(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	recorder := diagnostics.NewMemoryRecorder()
	manager.SetLedger(account)
	manager.SetRecorder(recorder)
	manager.SetMetrics(sizingMetrics)

	req := types.SizingRequest{
		Timestamp:  cmd.Timestamp("time"),
		Instrument: inst.Unwrap(),
		Price:      cmd.Float("price"),
		Risk:       cmd.Float("risk"),
		Origin:     origin,
	}

	operation := cmd.String("operation")

	quantity, err := resolve(manager, operation, req)
	if err != nil {
		return err
	}

	log.Debug("Resolved sizing request", zap.String("manager", manager.String()), zap.Stringer("quantity", quantity))

	out := cmd.Root().Writer
	printDecision(out, manager, operation, req, quantity, account.CurrentCash())

	if err := printDiagnostics(out, recorder); err != nil {
		return err
	}

	if !cmd.Bool("execute") || operation != operationBuy {
		return nil
	}

	return execute(out, manager, account, recorder, req, quantity)
}

func resolve(manager *moneymanager.MoneyManager, operation string, req types.SizingRequest) (types.Quantity, error) {
	switch operation {
	case operationBuy:
		return manager.ResolveBuyQuantity(req), nil
	case operationSell:
		return manager.ResolveSellQuantity(req), nil
	case operationShort:
		return manager.ResolveShortSellQuantity(req), nil
	case operationCover:
		return manager.ResolveCoverShortQuantity(req), nil
	default:
		return types.Quantity{}, errors.Newf(errors.ErrCodeInvalidParameter, "unknown operation %q", operation)
	}
}

// execute books the resolved buy and prints the resulting journal. The
// cash check while sizing ignores the contract multiplier, so a resolved buy
// of a multiplied contract can still be short of cash. That is reported as an
// infeasible result rather than an error.
func execute(
	out io.Writer,
	manager *moneymanager.MoneyManager,
	account *ledger.BacktestLedger,
	recorder *diagnostics.MemoryRecorder,
	req types.SizingRequest,
	quantity types.Quantity,
) error {
	n, ok := quantity.Exact()
	if !ok || n == 0 {
		return nil
	}

	trade, err := account.Buy(req.Timestamp, req.Instrument, req.Price, n)
	if errors.HasCode(err, errors.ErrCodeInsufficientCash) {
		recorder.Reset()

		if recordErr := recorder.Record(diagnostics.Diagnostic{
			Timestamp: req.Timestamp,
			Symbol:    req.Instrument.Symbol,
			Operation: operationBuy,
			Class:     diagnostics.ClassInfeasibleResult,
			Message:   err.Error(),
		}); recordErr != nil {
			return recordErr
		}

		return printDiagnostics(out, recorder)
	}

	if err != nil {
		return err
	}

	manager.BuyNotify(trade)

	flows, err := account.CashFlows()
	if err != nil {
		return err
	}

	printCashFlows(out, flows)

	return nil
}
