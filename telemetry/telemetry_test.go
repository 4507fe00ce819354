package telemetry

import (
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTimingCollectorReport(t *testing.T) {
	collector := NewTimingCollector()

	root := collector.Start("check main.journal")
	load := collector.Start("loader.load")
	collector.Start("journal.parse").End()
	load.End()
	collector.Start("ledger.process").End()
	root.End()

	var buf strings.Builder
	collector.Report(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, 4, len(lines))
	assert.True(t, strings.HasPrefix(lines[0], "check main.journal: "))
	assert.True(t, strings.HasPrefix(lines[1], "├─ loader.load: "))
	assert.True(t, strings.HasPrefix(lines[2], "│  └─ journal.parse: "))
	assert.True(t, strings.HasPrefix(lines[3], "└─ ledger.process: "))
}

func TestTimerChild(t *testing.T) {
	collector := NewTimingCollector()

	root := collector.Start("root")
	child := root.Child("child")
	child.End()
	root.End()

	var buf strings.Builder
	collector.Report(&buf)

	assert.True(t, strings.Contains(buf.String(), "└─ child: "))
}

func TestStartTimerWithoutCollector(t *testing.T) {
	// With no collector installed, timers are no-ops and never panic.
	timer := StartTimer(context.Background(), "anything")
	timer.Child("nested").End()
	timer.End()
}

func TestFromContext(t *testing.T) {
	ctx := context.Background()

	_, ok := FromContext(ctx).(noOpCollector)
	assert.True(t, ok)

	collector := NewTimingCollector()
	ctx = WithCollector(ctx, collector)
	assert.True(t, FromContext(ctx) == Collector(collector))
}
