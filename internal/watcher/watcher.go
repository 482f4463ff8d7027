package watcher

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/srtgen/internal/logger"
	"github.com/nguyentantai21042004/srtgen/internal/scanner"
)

const minTick = 10 * time.Millisecond

type implWatcher struct {
	dir     string
	filter  scanner.Filter
	handler EventHandler
	settle  time.Duration
	logger  logger.Logger
	watcher *fsnotify.Watcher

	// pending maps a detected video to the time of its last write.
	pending map[string]time.Time
}

// Start monitors the directory for new videos. Handling happens on this
// goroutine, so at most one video is processed at a time.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started. Monitoring: %s (settle delay %s)", w.dir, w.settle)

	interval := w.settle / 4
	if interval < minTick {
		interval = minTick
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			w.observe(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)

		case now := <-ticker.C:
			w.flush(ctx, now)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) observe(ctx context.Context, event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}
	if !w.filter.Match(event.Name) {
		w.logger.Debug(ctx, "Ignoring non-video file: %s", event.Name)
		return
	}

	_, tracked := w.pending[event.Name]
	switch {
	case event.Has(fsnotify.Create) && !tracked:
		w.logger.Info(ctx, "New video detected: %s", event.Name)
	case !tracked:
		// Writes to videos that were already there are not ours to handle.
		return
	}
	w.pending[event.Name] = time.Now()
}

// flush hands every settled video to the handler, oldest name first.
func (w *implWatcher) flush(ctx context.Context, now time.Time) {
	var ready []string
	for path, last := range w.pending {
		if now.Sub(last) >= w.settle {
			ready = append(ready, path)
		}
	}
	sort.Strings(ready)

	for _, path := range ready {
		delete(w.pending, path)
		if ctx.Err() != nil {
			return
		}

		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			w.logger.Debug(ctx, "Skipping %s: no longer a regular file", path)
			continue
		}

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}
}
