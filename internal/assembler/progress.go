package assembler

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
)

// batchTracker renders a per-article progress bar over batches. Display only;
// the assembled table is identical with progress disabled.
type batchTracker struct {
	writer  progress.Writer
	tracker *progress.Tracker
}

func newBatchTracker(article string, batches int, enabled bool) *batchTracker {
	if !enabled {
		return &batchTracker{}
	}

	writer := progress.NewWriter()
	writer.SetOutputWriter(os.Stdout)
	writer.SetTrackerLength(25)
	writer.SetUpdateFrequency(100 * time.Millisecond)

	tracker := &progress.Tracker{
		Message: fmt.Sprintf("Processing %s", article),
		Total:   int64(batches),
		Units:   progress.UnitsDefault,
	}

	writer.AppendTracker(tracker)

	go writer.Render()

	return &batchTracker{
		writer:  writer,
		tracker: tracker,
	}
}

// Advance records one completed batch.
func (b *batchTracker) Advance() {
	if b.tracker != nil {
		b.tracker.Increment(1)
	}
}

// Done finishes the bar and waits for the render loop to flush.
func (b *batchTracker) Done() {
	if b.writer == nil {
		return
	}

	b.tracker.MarkAsDone()
	b.writer.Stop()

	for b.writer.IsRenderInProgress() {
		time.Sleep(10 * time.Millisecond)
	}
}
