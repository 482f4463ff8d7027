package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/srtgen/internal/logger"
	"github.com/nguyentantai21042004/srtgen/internal/scanner"
)

// New creates a Watcher over dir. Matching files are handed to handler once
// no write has been seen on them for settle.
func New(dir string, filter scanner.Filter, handler EventHandler, settle time.Duration, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if settle <= 0 {
		settle = 2 * time.Second
	}

	return &implWatcher{
		dir:     dir,
		filter:  filter,
		handler: handler,
		settle:  settle,
		logger:  log,
		watcher: watcher,
		pending: make(map[string]time.Time),
	}, nil
}
