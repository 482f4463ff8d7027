package processor

import (
	"context"
	"errors"
	"io/fs"
	"os"
)

// cleanupAudio removes the intermediate audio file. A file that was never
// created is fine; any other failure is logged and swallowed.
func (p *implProcessor) cleanupAudio(ctx context.Context, audioPath string) {
	err := os.Remove(audioPath)
	switch {
	case err == nil:
		p.logger.Debug(ctx, "Cleaned up temp file: %s", audioPath)
	case errors.Is(err, fs.ErrNotExist):
		p.logger.Debug(ctx, "No temp file to clean up: %s", audioPath)
	default:
		p.logger.Warn(ctx, "%v", &StageError{Stage: StageCleanup, Path: audioPath, Err: err})
	}
}
