package processor

import (
	"path/filepath"
	"time"
)

// State is the position of one video in the pipeline.
type State int

const (
	Pending State = iota
	Extracting
	Transcribing
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "PENDING"
	case Extracting:
		return "EXTRACTING"
	case Transcribing:
		return "TRANSCRIBING"
	case Done:
		return "DONE"
	case Failed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Result is the outcome of processing one video.
type Result struct {
	Video    string
	Audio    string
	Subtitle string
	State    State
	Err      error
	Cues     int
	Duration time.Duration
}

// Name returns the base name of the video.
func (r Result) Name() string {
	return filepath.Base(r.Video)
}

// Report collects the results of one batch run.
type Report struct {
	RunID   string
	Results []Result
}

func (r Report) Done() int {
	return r.count(Done)
}

func (r Report) Failed() int {
	return r.count(Failed)
}

func (r Report) count(s State) int {
	n := 0
	for _, res := range r.Results {
		if res.State == s {
			n++
		}
	}
	return n
}
