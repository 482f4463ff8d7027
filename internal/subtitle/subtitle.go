// Package subtitle inspects SRT text returned by a transcription service.
// It never rewrites the text; callers persist the original bytes.
package subtitle

import (
	"bufio"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/abadojack/whatlanggo"
)

var (
	// ErrEmpty is returned for a body with no visible characters.
	ErrEmpty = errors.New("empty subtitle text")
	// ErrNoCues is returned when the text contains no well-formed cue.
	ErrNoCues = errors.New("no subtitle cues found")
)

var reTiming = regexp.MustCompile(`^(\d{2,}):(\d{2}):(\d{2})[,.](\d{3})\s*-->\s*(\d{2,}):(\d{2}):(\d{2})[,.](\d{3})`)

// Cue is one numbered, timed subtitle entry.
type Cue struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

// Parse reads the cues of an SRT document. Blocks that do not follow the
// index / timing / text layout are skipped; a timed cue without text is kept
// with an empty Text.
func Parse(srt string) []Cue {
	var cues []Cue

	scanner := bufio.NewScanner(strings.NewReader(srt))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	state := "index" // index, time, text
	var cur Cue
	var text []string

	flush := func() {
		cur.Text = strings.Join(text, "\n")
		cues = append(cues, cur)
		cur = Cue{}
		text = nil
		state = "index"
	}

	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\ufeff"))

		switch state {
		case "index":
			if line == "" {
				continue
			}
			idx, err := strconv.Atoi(line)
			if err != nil {
				continue
			}
			cur.Index = idx
			state = "time"

		case "time":
			start, end, err := parseTiming(line)
			if err != nil {
				// not a cue after all
				cur = Cue{}
				state = "index"
				continue
			}
			cur.Start, cur.End = start, end
			state = "text"

		case "text":
			if line == "" {
				flush()
				continue
			}
			text = append(text, line)
		}
	}

	if state == "text" {
		flush()
	}

	return cues
}

// Validate checks that srt looks like subtitle output and returns its cues.
// A blank body is ErrEmpty; text that is not SRT at all is ErrNoCues.
func Validate(srt string) ([]Cue, error) {
	if strings.TrimSpace(srt) == "" {
		return nil, ErrEmpty
	}
	cues := Parse(srt)
	if len(cues) == 0 {
		return nil, ErrNoCues
	}
	return cues, nil
}

// DetectLanguage guesses the ISO 639-1 code of the cue text, or "" when the
// text is too short or the language has no two-letter code.
func DetectLanguage(cues []Cue) string {
	var b strings.Builder
	for _, c := range cues {
		b.WriteString(c.Text)
		b.WriteByte('\n')
	}
	if b.Len() < 32 {
		return ""
	}
	return whatlanggo.DetectLang(b.String()).Iso6391()
}

// Text returns the spoken lines in cue order, without indices or timings.
func Text(cues []Cue) []string {
	lines := make([]string, 0, len(cues))
	for _, c := range cues {
		for _, l := range strings.Split(c.Text, "\n") {
			if l = strings.TrimSpace(l); l != "" {
				lines = append(lines, l)
			}
		}
	}
	return lines
}

func parseTiming(line string) (time.Duration, time.Duration, error) {
	m := reTiming.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, fmt.Errorf("invalid time format: %s", line)
	}
	start := toDuration(m[1], m[2], m[3], m[4])
	end := toDuration(m[5], m[6], m[7], m[8])
	return start, end, nil
}

func toDuration(hours, minutes, seconds, millis string) time.Duration {
	h, _ := strconv.Atoi(hours)
	m, _ := strconv.Atoi(minutes)
	s, _ := strconv.Atoi(seconds)
	ms, _ := strconv.Atoi(millis)

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond
}
