package processor

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/srtgen/internal/logger"
)

// ProcessDirectory runs Process over every matching video in dir, one at a time
func (p *implProcessor) ProcessDirectory(ctx context.Context, dir string) (Report, error) {
	report := Report{RunID: logger.RunID(ctx)}

	videos, err := p.filter.Scan(dir)
	if err != nil {
		return report, &StageError{Stage: StageScan, Path: dir, Err: err}
	}

	p.logger.Info(ctx, "Found %d video(s) in %s", len(videos), dir)

	for i, video := range videos {
		if err := ctx.Err(); err != nil {
			p.logger.Warn(ctx, "Cancelled, skipping %d remaining video(s)", len(videos)-i)
			return report, fmt.Errorf("batch interrupted: %w", err)
		}

		p.logger.Info(ctx, "[%d/%d] %s", i+1, len(videos), video)
		report.Results = append(report.Results, p.Process(ctx, video))
	}

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("batch interrupted: %w", err)
	}

	p.logger.Info(ctx, "Batch finished: %d done, %d failed", report.Done(), report.Failed())
	return report, nil
}
