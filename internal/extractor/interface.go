package extractor

import "context"

// Extractor produces a speech-sized mono audio file from a video
type Extractor interface {
	Extract(ctx context.Context, videoPath, audioPath string) error
}
