package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rxtech-lab/argo-sizing/internal/diagnostics"
	"github.com/rxtech-lab/argo-sizing/internal/ledger"
	"github.com/rxtech-lab/argo-sizing/internal/moneymanager"
	"github.com/rxtech-lab/argo-sizing/internal/types"
)

func printDecision(out io.Writer, manager *moneymanager.MoneyManager, operation string, req types.SizingRequest, quantity types.Quantity, cash float64) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle("SIZING DECISION")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"Money Manager", manager.Name()},
		{"Rule", manager.Rule().Name()},
		{"Params", manager.Params().String()},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Operation", operation},
		{"Symbol", req.Instrument.Symbol},
		{"Price", formatFloat(req.Price)},
		{"Risk", formatFloat(req.Risk)},
		{"Origin", string(req.Origin)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Quantity", quantity.String()},
		{"Cash", formatFloat(cash)},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 15, Align: text.AlignLeft},
		{Number: 2, WidthMin: 20, Align: text.AlignLeft},
	})

	t.Render()
}

// printDiagnostics prints the recorded diagnostics with a per-class count.
// Nothing is printed when there are none.
func printDiagnostics(out io.Writer, recorder *diagnostics.MemoryRecorder) error {
	entries, err := recorder.GetDiagnostics()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle("DIAGNOSTICS")
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Operation", "Class", "Symbol", "Message"})

	for _, entry := range entries {
		t.AppendRow(table.Row{entry.Operation, string(entry.Class), entry.Symbol, entry.Message})
	}

	counts := make([]string, 0, len(diagnostics.AllClasses))
	for _, class := range diagnostics.AllClasses {
		if n := recorder.CountByClass(class); n > 0 {
			counts = append(counts, fmt.Sprintf("%s=%d", class, n))
		}
	}

	t.AppendFooter(table.Row{"Total", len(entries), "", strings.Join(counts, ", ")})
	t.Render()

	return nil
}

func printParams(out io.Writer, params moneymanager.Params) error {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle("MONEY MANAGER PARAMS")
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Name", "Default"})

	for _, name := range moneymanager.ParamNames() {
		value, err := params.Get(name)
		if err != nil {
			return err
		}

		t.AppendRow(table.Row{name, value})
	}

	t.Render()

	return nil
}

func printCashFlows(out io.Writer, flows []ledger.CashFlow) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle("CASH FLOWS")
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Time", "Kind", "Amount", "Balance"})

	for _, flow := range flows {
		t.AppendRow(table.Row{
			flow.Timestamp.Format("2006-01-02 15:04:05"),
			string(flow.Kind),
			formatFloat(flow.Amount),
			formatFloat(flow.Balance),
		})
	}

	t.Render()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
