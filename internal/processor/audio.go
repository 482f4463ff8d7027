package processor

import (
	"context"
	"os"

	"github.com/dustin/go-humanize"
)

// extractAudio writes the compact mono audio track of videoPath to audioPath
func (p *implProcessor) extractAudio(ctx context.Context, videoPath, audioPath string) error {
	p.logger.Info(ctx, "Extracting audio: %s", audioPath)

	if err := p.extractor.Extract(ctx, videoPath, audioPath); err != nil {
		return err
	}

	if info, err := os.Stat(audioPath); err == nil {
		p.logger.Info(ctx, "Audio extracted: %s", humanize.Bytes(uint64(info.Size())))
	}
	return nil
}
