// Package report prints the end-of-run summary of a batch.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/nguyentantai21042004/srtgen/internal/processor"
)

const errorWidth = 60

// Render writes one row per result followed by done / failed totals.
// Nothing is written when results is empty.
func Render(w io.Writer, results []processor.Result) error {
	if len(results) == 0 {
		return nil
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Footer = text.FormatDefault
	tw.AppendHeader(table.Row{"File", "State", "Cues", "Time", "Error"})

	var done, failed int
	var total time.Duration
	for _, res := range results {
		switch res.State {
		case processor.Done:
			done++
		case processor.Failed:
			failed++
		}
		total += res.Duration

		cues := ""
		if res.State == processor.Done {
			cues = strconv.Itoa(res.Cues)
		}
		errText := ""
		if res.Err != nil {
			errText = res.Err.Error()
		}

		tw.AppendRow(table.Row{res.Name(), res.State.String(), cues, formatDuration(res.Duration), errText})
	}

	tw.AppendFooter(table.Row{
		fmt.Sprintf("%d file(s)", len(results)),
		fmt.Sprintf("%d done / %d failed", done, failed),
		"",
		formatDuration(total),
		"",
	})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 4, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 5, WidthMax: errorWidth},
	})

	_, err := fmt.Fprintln(w, tw.Render())
	return err
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
