// Package loader reads journal files from disk and hands them to the
// parser. It exists so callers deal in filenames while the parser deals
// in bytes.
package loader

import (
	"context"
	"fmt"
	"os"

	"github.com/katanacash/katana/journal"
	"github.com/katanacash/katana/ledger"
	"github.com/katanacash/katana/telemetry"
)

// Load reads and parses the journal file at the given path.
func Load(ctx context.Context, filename string) (*journal.Journal, error) {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("loader.load %q", filename))
	defer timer.End()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return journal.ParseBytesWithFilename(ctx, filename, data)
}

// LoadBytes parses already-read journal contents, attributing errors to
// the given filename. Useful when the contents came from stdin or a
// watcher rather than a plain file read.
func LoadBytes(ctx context.Context, filename string, data []byte) (*journal.Journal, error) {
	return journal.ParseBytesWithFilename(ctx, filename, data)
}

// LoadLedger loads a journal file and processes it into a balanced
// ledger in one step.
func LoadLedger(ctx context.Context, filename string) (*ledger.Ledger, error) {
	j, err := Load(ctx, filename)
	if err != nil {
		return nil, err
	}

	l := ledger.New()
	if err := l.Process(ctx, j); err != nil {
		return nil, err
	}

	return l, nil
}
