// Package transcript renders a finished subtitle file as a readable document.
package transcript

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/srtgen/internal/subtitle"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
)

// WriteDocx writes the dialogue of srt to a .docx file at path.
// Cue indices and timings are dropped; consecutive repeats of a line are
// written once. The document is saved next to path under a hidden name and
// renamed into place, so a failure leaves an existing file untouched.
func WriteDocx(title, srt, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addRun(doc.AddParagraph(""), title, true, titleSize)
	doc.AddParagraph("")

	for _, line := range Lines(srt) {
		addRun(doc.AddParagraph(""), line, false, fontSize)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	tmp.Close()

	if err := doc.SaveTo(tmpName); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save docx: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Lines returns the transcript lines of srt in order, collapsing immediate
// repeats (the speech models often emit the same line in adjacent cues).
func Lines(srt string) []string {
	var out []string
	for _, l := range subtitle.Text(subtitle.Parse(srt)) {
		if len(out) > 0 && out[len(out)-1] == l {
			continue
		}
		out = append(out, l)
	}
	return out
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
