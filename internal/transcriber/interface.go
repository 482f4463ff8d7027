package transcriber

import "context"

// Transcriber turns an audio file into SRT subtitle text.
// The returned string is the service payload as received; it is never
// reformatted.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
	Name() string
}
