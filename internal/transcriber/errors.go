package transcriber

import (
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/srtgen/internal/subtitle"
)

var (
	ErrUnauthorized       = errors.New("transcription service rejected the credentials")
	ErrUnexpectedResponse = errors.New("unexpected transcription response")
)

// checkSRT rejects payloads that are not subtitle text. A blank body is what
// the service sends for audio without speech and is accepted as is.
func checkSRT(body string) error {
	_, err := subtitle.Validate(body)
	switch {
	case err == nil, errors.Is(err, subtitle.ErrEmpty):
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
}
