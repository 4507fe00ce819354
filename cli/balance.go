package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-runewidth"

	"github.com/katanacash/katana/journal"
	"github.com/katanacash/katana/ledger"
	"github.com/katanacash/katana/telemetry"
)

type BalanceCmd struct {
	File    FileOrStdin `help:"Journal input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Account string      `help:"Only show this account's row."`
	Month   string      `help:"Only show this month's column, e.g. '2023-04'."`
}

func (cmd *BalanceCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	var month *ledger.MonthYear
	if cmd.Month != "" {
		t, err := time.Parse("2006-01", cmd.Month)
		if err != nil {
			return fmt.Errorf("invalid month %q, expected YYYY-MM", cmd.Month)
		}
		month = &ledger.MonthYear{Year: t.Year(), Month: t.Month()}
	}

	runCtx := context.Background()

	var collector telemetry.Collector
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}()
	}

	l, err := loadLedger(runCtx, ctx, &cmd.File)
	if err != nil {
		return err
	}

	grid := l.BalanceChanges()
	if grid.Empty() {
		printInfof(ctx.Stdout, "journal has no transactions")
		return nil
	}

	accounts := grid.Accounts()
	if cmd.Account != "" {
		accounts = accounts[:0]
		for _, a := range grid.Accounts() {
			if string(a) == cmd.Account {
				accounts = append(accounts, a)
			}
		}
		if len(accounts) == 0 {
			printInfof(ctx.Stdout, "no postings for account %s", cmd.Account)
			return nil
		}
	}

	months := grid.Months()
	if month != nil {
		months = []ledger.MonthYear{*month}
	}

	cmd.renderGrid(ctx, grid, accounts, months)

	return nil
}

const balanceCellWidth = 12

// renderGrid prints one row per account and one amount column per month.
// When the table is wider than the terminal the oldest months are dropped
// so the most recent activity stays visible.
func (cmd *BalanceCmd) renderGrid(ctx *kong.Context, grid *ledger.MonthGrid, accounts []journal.Account, months []ledger.MonthYear) {
	accountWidth := 0
	for _, a := range accounts {
		if w := runewidth.StringWidth(string(a)); w > accountWidth {
			accountWidth = w
		}
	}

	available := terminalWidth(120) - accountWidth
	if fit := available / (balanceCellWidth + 2); len(months) > fit && fit > 0 {
		months = months[len(months)-fit:]
	}

	var header strings.Builder
	header.WriteString(padRight("", accountWidth))
	for _, m := range months {
		header.WriteString("  ")
		header.WriteString(padLeft(m.String(), balanceCellWidth))
	}
	_, _ = fmt.Fprintln(ctx.Stdout, header.String())

	for _, a := range accounts {
		var row strings.Builder
		row.WriteString(padRight(string(a), accountWidth))
		for _, m := range months {
			row.WriteString("  ")
			row.WriteString(padLeft(grid.Get(a, m).String(), balanceCellWidth))
		}
		_, _ = fmt.Fprintln(ctx.Stdout, row.String())
	}
}
