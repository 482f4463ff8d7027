package processor

import (
	"context"
	"path/filepath"
	"strings"
	"time"
)

// Process orchestrates the pipeline for a single video
func (p *implProcessor) Process(ctx context.Context, videoPath string) (res Result) {
	startTime := time.Now()
	stem := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))

	res = Result{
		Video:    videoPath,
		Audio:    stem + p.cfg.Output.AudioExt,
		Subtitle: stem + p.cfg.Output.SubtitleExt,
		State:    Pending,
	}

	p.logger.Info(ctx, "Processing %s", videoPath)

	defer func() {
		p.cleanupAudio(ctx, res.Audio)
		res.Duration = time.Since(startTime)
	}()

	// Step 1: Extract audio
	res.State = Extracting
	if err := p.extractAudio(ctx, res.Video, res.Audio); err != nil {
		return p.fail(ctx, res, StageExtract, err)
	}

	// Step 2: Transcribe audio to SRT text
	res.State = Transcribing
	srt, err := p.transcribe(ctx, res.Audio)
	if err != nil {
		return p.fail(ctx, res, StageTranscribe, err)
	}

	// Step 3: Write the subtitle next to the video
	if err := p.persist(ctx, res.Subtitle, srt); err != nil {
		return p.fail(ctx, res, StagePersist, err)
	}

	res.State = Done
	res.Cues = p.inspect(ctx, srt)
	p.exportTranscript(ctx, res.Video, res.Subtitle, srt)

	p.logger.Info(ctx, "Subtitle written: %s (%d cues, %s)", res.Subtitle, res.Cues, time.Since(startTime).Round(time.Millisecond))
	return res
}

func (p *implProcessor) fail(ctx context.Context, res Result, stage Stage, err error) Result {
	res.Err = &StageError{Stage: stage, Path: res.Video, Err: err}
	p.logger.Error(ctx, "Failed in state %s: %v", res.State, res.Err)
	res.State = Failed
	return res
}
