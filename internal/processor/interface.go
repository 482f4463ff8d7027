package processor

import "context"

// Processor turns videos into sibling subtitle files
type Processor interface {
	// Process runs the extract -> transcribe -> persist pipeline for one video.
	// The intermediate audio is removed before it returns, whatever the outcome.
	Process(ctx context.Context, videoPath string) Result

	// ProcessDirectory scans dir and processes every matching video in order.
	// Only a scan failure or cancellation is returned as an error; per-file
	// failures are recorded in the Report.
	ProcessDirectory(ctx context.Context, dir string) (Report, error)
}
