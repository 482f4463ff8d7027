package processor

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/srtgen/internal/subtitle"
)

// transcribe sends the audio to the configured backend and returns the SRT body
func (p *implProcessor) transcribe(ctx context.Context, audioPath string) (string, error) {
	p.logger.Info(ctx, "Transcribing with %s (language=%s)", p.transcriber.Name(), p.cfg.Transcription.Language)
	return p.transcriber.Transcribe(ctx, audioPath)
}

// inspect logs what the transcript looks like and returns its cue count.
func (p *implProcessor) inspect(ctx context.Context, srt string) int {
	cues := subtitle.Parse(srt)
	if len(subtitle.Text(cues)) == 0 {
		p.logger.Warn(ctx, "Transcript has no spoken text")
		return len(cues)
	}

	detected := subtitle.DetectLanguage(cues)
	switch {
	case detected == "":
		p.logger.Debug(ctx, "Transcript too short to detect its language")
	case detected != p.cfg.Transcription.Language:
		p.logger.Warn(ctx, "Transcript looks like %q, expected %q", detected, p.cfg.Transcription.Language)
	default:
		p.logger.Debug(ctx, "Transcript language: %s", detected)
	}

	return len(cues)
}

// exportTranscript writes the optional .docx transcript. Failures only warn.
func (p *implProcessor) exportTranscript(ctx context.Context, videoPath, subtitlePath, srt string) {
	if !p.cfg.Output.DocxTranscript {
		return
	}

	title := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	docxPath := strings.TrimSuffix(subtitlePath, filepath.Ext(subtitlePath)) + ".docx"

	if err := p.writeDocx(title, srt, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to write transcript %s: %v", docxPath, err)
		return
	}
	p.logger.Info(ctx, "Transcript written: %s", docxPath)
}
