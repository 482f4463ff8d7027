package processor

import "fmt"

// Stage names the pipeline step an error came from.
type Stage string

const (
	StageScan       Stage = "scan"
	StageExtract    Stage = "extract"
	StageTranscribe Stage = "transcribe"
	StagePersist    Stage = "persist"
	StageCleanup    Stage = "cleanup"
)

// StageError ties an error to the file and step that produced it.
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
