package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/srtgen/internal/config"
	"github.com/nguyentantai21042004/srtgen/internal/extractor"
	"github.com/nguyentantai21042004/srtgen/internal/logger"
	"github.com/nguyentantai21042004/srtgen/internal/processor"
	"github.com/nguyentantai21042004/srtgen/internal/report"
	"github.com/nguyentantai21042004/srtgen/internal/scanner"
	"github.com/nguyentantai21042004/srtgen/internal/transcriber"
	"github.com/nguyentantai21042004/srtgen/internal/watcher"
	"github.com/nguyentantai21042004/srtgen/pkg/executor"
)

// run processes dir once and, if configured, keeps watching it afterwards.
// The summary table goes to stdout, logs to stderr.
func run(ctx context.Context, dir string, stdout, stderr io.Writer) error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: stderr,
	})
	defer log.Sync()

	ctx = logger.WithRunID(ctx, uuid.NewString())

	exec := executor.New()
	preflight(ctx, cfg, exec, log)

	tr, err := transcriber.New(cfg, log)
	if err != nil {
		return fmt.Errorf("create transcriber: %w", err)
	}

	proc := processor.New(cfg, extractor.New(cfg.FFmpeg.Binary, exec, log), tr, log)

	// The watch is registered before the scan so videos arriving during the
	// batch are queued for the watch phase instead of being missed.
	var w watcher.Watcher
	if cfg.Watch.Enabled {
		w, err = newWatcher(cfg, dir, proc, log)
		if err != nil {
			return err
		}
		defer w.Stop()
	}

	rep, err := proc.ProcessDirectory(ctx, dir)
	if rerr := report.Render(stdout, rep.Results); rerr != nil {
		log.Warn(ctx, "Failed to print summary: %v", rerr)
	}
	if err != nil {
		return err
	}

	if w == nil {
		return nil
	}

	log.Info(ctx, "Press Ctrl+C to stop")
	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// preflight warns early about a missing transcoder. It is not fatal: every
// file would then fail extraction on its own.
func preflight(ctx context.Context, cfg *config.Config, exec executor.Executor, log logger.Logger) {
	path, err := exec.LookPath(cfg.FFmpeg.Binary)
	if err != nil {
		log.Warn(ctx, "%s not found on PATH, every extraction will fail: %v", cfg.FFmpeg.Binary, err)
		return
	}
	log.Debug(ctx, "Using transcoder %s", path)
}

func newWatcher(cfg *config.Config, dir string, proc processor.Processor, log logger.Logger) (watcher.Watcher, error) {
	handler := func(ctx context.Context, path string) error {
		return proc.Process(ctx, path).Err
	}
	return watcher.New(dir, scanner.NewFilter(cfg.Scan.Extensions), handler, cfg.Watch.SettleDelay, log)
}
