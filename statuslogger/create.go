package statuslogger

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/sourcegraph/conc"
	"golang.org/x/sync/errgroup"

	"github.com/superfly/vislog"
)

const waitingText = "Waiting for job"

var loggerSeq atomic.Uint64

// Create returns a StatusLogger with numLines lines drawn by the Logger ctx
// carries. Outputs that cannot show the live block get one log line per
// update instead.
func Create(ctx context.Context, numLines int, showStatusChar bool) StatusLogger {
	log := vislog.FromContext(ctx)

	if log.ItemMode() == vislog.ItemModeLive && log.Level() <= vislog.LevelInfo {
		id := loggerSeq.Add(1)
		sl := &interactiveLogger{
			log:        log,
			lines:      make([]*interactiveLine, numLines),
			showStatus: showStatusChar,
		}

		for i := 0; i < numLines; i++ {
			line := &interactiveLine{
				logger: sl,
				name:   fmt.Sprintf("status-%d-%d", id, i),
				label:  formatIndex(i, numLines),
				buf:    waitingText,
				status: StatusNone,
			}
			log.AddItem(vislog.ItemOptions{Name: line.name, Display: line.label})
			line.lockedDraw(true)
			sl.lines[i] = line
		}

		return sl
	}

	sl := &noninteractiveLogger{
		log:        log,
		lines:      make([]*noninteractiveLine, numLines),
		logNumbers: numLines > 1,
		showStatus: showStatusChar,
	}
	for i := 0; i < numLines; i++ {
		sl.lines[i] = &noninteractiveLine{
			logger:  sl,
			lineNum: i,
			status:  StatusNone,
		}
	}
	return sl
}

func asyncIter[T any](ctx context.Context, logger StatusLogger, items []T, cb func(context.Context, int, T)) {
	var wg conc.WaitGroup
	for i, item := range items {
		i, item := i, item
		line := logger.Line(i)
		wg.Go(func() {
			cb(NewContext(ctx, line), i, item)
		})
	}
	wg.Wait()
}

// AsyncIterate runs a callback for each item in a separate goroutine, passing
// a context with a StatusLine for each item.
func AsyncIterate[T any](ctx context.Context, clearAfter bool, items []T, cb func(context.Context, int, T)) {
	logger := Create(ctx, len(items), false)
	defer logger.Destroy(clearAfter)
	asyncIter(ctx, logger, items, cb)
}

// AsyncIterateWithErr runs a callback for each item in a separate goroutine, passing
// a context with a StatusLine for each item. The first error a callback returns
// cancels the context of the others and is returned once all have finished.
// If doneText is non-empty, each line will have its status set to this after its task successfully finishes.
func AsyncIterateWithErr[T any](ctx context.Context, clearAfter bool, doneText string, items []T, cb func(context.Context, int, T) error) error {
	logger := Create(ctx, len(items), true)
	defer logger.Destroy(clearAfter)

	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		i, item := i, item
		line := logger.Line(i)
		g.Go(func() error {
			line.setStatus(StatusRunning)
			if err := cb(NewContext(gctx, line), i, item); err != nil {
				line.LogStatus(StatusFailure, err.Error())
				return err
			}

			if doneText != "" {
				line.LogStatus(StatusSuccess, doneText)
			} else {
				line.setStatus(StatusSuccess)
			}
			return nil
		})
	}
	return g.Wait()
}

// SingleLine returns a single StatusLine and a function to destroy it.
// Useful for one-off operations.
func SingleLine(ctx context.Context, showStatusChar bool) (context.Context, func(clear bool)) {
	logger := Create(ctx, 1, showStatusChar)
	line := logger.Line(0)
	line.setStatus(StatusRunning)
	return NewContext(ctx, line), logger.Destroy
}
