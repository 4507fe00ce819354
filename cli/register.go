package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-runewidth"

	"github.com/katanacash/katana/journal"
	"github.com/katanacash/katana/ledger"
	"github.com/katanacash/katana/telemetry"
)

type RegisterCmd struct {
	Account string      `help:"Account to report on." arg:""`
	File    FileOrStdin `help:"Journal input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Opening string      `help:"Opening balance the running total starts from, e.g. '$100.00'." default:""`
}

func (cmd *RegisterCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	var opening *journal.Amount
	if cmd.Opening != "" {
		amount, err := journal.ParseAmount(cmd.Opening)
		if err != nil {
			return fmt.Errorf("invalid opening balance: %w", err)
		}
		opening = &amount
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

	entries := l.Register(cmd.Account, opening)
	for _, entry := range entries {
		_, _ = fmt.Fprintln(ctx.Stdout, formatRegisterEntry(entry))
	}

	return nil
}

// formatRegisterEntry lays out one report line. The date and description
// columns are only filled on a transaction's first matching posting.
//
//	2023/03/18 Groceries            assets:savings            $-41.06      $399.64
//	2023/03/18 Crunchy Chicken Bowl assets:savings            $-16.10      $368.59
func formatRegisterEntry(entry ledger.RegisterEntry) string {
	date := strings.Repeat(" ", 10)
	description := ""
	if entry.First {
		date = entry.Date.String()
		description = entry.Description
	}

	return fmt.Sprintf("%s %s %s %s %s",
		date,
		padRight(description, 30),
		padRight(string(entry.Account), 30),
		padLeft(entry.Amount.String(), 10),
		padLeft(entry.Balance.String(), 12),
	)
}

func padRight(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func padLeft(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}
