package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/katanacash/katana/telemetry"
)

type CheckCmd struct {
	File FileOrStdin `help:"Journal input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()

	if globals.Telemetry {
		collector := telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		checkTimer := collector.Start(fmt.Sprintf("check %s", filepath.Base(cmd.File.Filename)))
		defer func() {
			checkTimer.End()
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}()
	}

	l, err := loadLedger(runCtx, ctx, &cmd.File)
	if err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Check passed (%d transactions)", l.TransactionCount()))

	return nil
}
