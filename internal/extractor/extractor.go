package extractor

import (
	"context"
	"fmt"
)

const (
	// 32k is plenty for speech and keeps the upload small
	audioBitrate  = "32k"
	audioChannels = "1"
)

// Extract converts videoPath to a mono, low bitrate audio file at audioPath.
// It returns only after ffmpeg has exited; a non-zero exit carries ffmpeg's
// stderr in the wrapped *executor.CommandError.
func (e *implExtractor) Extract(ctx context.Context, videoPath, audioPath string) error {
	e.logger.Debug(ctx, "Extracting audio: %s -> %s", videoPath, audioPath)

	if _, err := e.executor.Execute(ctx, e.binary, Args(videoPath, audioPath)...); err != nil {
		return fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	return nil
}

// Args builds the ffmpeg argument list.
// -nostdin: never read the terminal
// -y: the audio path belongs to this run, replace leftovers from an interrupted one
// -b:a / -ac: fixed speech bitrate, mono
// -vn: drop the video stream
func Args(videoPath, audioPath string) []string {
	return []string{
		"-hide_banner",
		"-nostdin",
		"-y",
		"-i", videoPath,
		"-b:a", audioBitrate,
		"-ac", audioChannels,
		"-vn",
		audioPath,
	}
}
