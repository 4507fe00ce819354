package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"
)

type WatchCmd struct {
	File string `help:"Journal file to watch." arg:"" type:"existingfile"`
}

// debounceDelay coalesces the burst of events editors emit for one save.
const debounceDelay = 100 * time.Millisecond

// Run checks the file once, then re-checks it on every change until
// interrupted. Re-checks run inside the event loop so output never
// interleaves with watch error reporting.
func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(cmd.File); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cmd.File, err)
	}

	printInfof(ctx.Stdout, "watching %s", pathStyle.Render(cmd.File))
	cmd.check(ctx)

	recheck := make(chan struct{}, 1)
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			debounceTimer = scheduleRecheck(debounceTimer, recheck)

		case <-recheck:
			// Some editors replace the file on save, which drops the
			// watch on the old inode.
			_ = watcher.Add(cmd.File)
			cmd.check(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, fmt.Sprintf("watch error: %v", err))
		}
	}
}

// scheduleRecheck restarts the debounce timer; when it fires it signals
// recheck without blocking, so a burst of events collapses into a single
// pending re-check.
func scheduleRecheck(timer *time.Timer, recheck chan<- struct{}) *time.Timer {
	if timer != nil {
		timer.Stop()
	}

	return time.AfterFunc(debounceDelay, func() {
		select {
		case recheck <- struct{}{}:
		default:
		}
	})
}

func (cmd *WatchCmd) check(ctx *kong.Context) {
	file := &FileOrStdin{Filename: cmd.File}

	l, err := loadLedger(context.Background(), ctx, file)
	if err != nil {
		return
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Check passed (%d transactions)", l.TransactionCount()))
}
