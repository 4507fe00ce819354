package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/katanacash/katana/formatter"
	"github.com/katanacash/katana/telemetry"
)

type FormatCmd struct {
	File         FileOrStdin `help:"Journal input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Write        bool        `help:"Rewrite the file in place instead of printing to stdout." short:"w"`
	AmountColumn int         `help:"Column amounts start at (auto-calculated from content if 0)." default:"0"`
	Indentation  int         `help:"Number of spaces postings are indented by." default:"4"`
}

func (cmd *FormatCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
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

	sourceContent, err := cmd.File.GetSourceContent()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	j, err := cmd.File.LoadJournal(runCtx)
	if err != nil {
		renderer := NewErrorRenderer(sourceContent)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))
		printError(ctx.Stderr, "parse error")
		return NewCommandError(1)
	}

	opts := []formatter.Option{formatter.WithIndentation(cmd.Indentation)}
	if cmd.AmountColumn > 0 {
		opts = append(opts, formatter.WithAmountColumn(cmd.AmountColumn))
	}
	f := formatter.New(opts...)

	var buf bytes.Buffer
	if err := f.Format(j, &buf); err != nil {
		return err
	}

	if !cmd.Write {
		_, _ = fmt.Fprint(ctx.Stdout, buf.String())
		return nil
	}

	if cmd.File.Filename == "<stdin>" {
		return fmt.Errorf("cannot write in place when reading from stdin")
	}

	if bytes.Equal(buf.Bytes(), sourceContent) {
		printInfof(ctx.Stdout, "%s already formatted", cmd.File.Filename)
		return nil
	}

	confirmed, err := promptYesNo(fmt.Sprintf("Rewrite %s?", cmd.File.Filename))
	if err != nil {
		return err
	}
	if !confirmed {
		printInfof(ctx.Stdout, "skipped %s", cmd.File.Filename)
		return nil
	}

	if err := os.WriteFile(cmd.File.Filename, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Formatted %s", cmd.File.Filename))

	return nil
}
