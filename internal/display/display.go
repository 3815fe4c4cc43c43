// Package display renders console output for the CLI: styled transcript
// previews and the downloads table.
package display

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/ytscribe/internal/store"
	"github.com/grovetools/ytscribe/internal/transcript"
)

var (
	timestampStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	titleStyle     = lipgloss.NewStyle().Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // gray
)

// PrintHeader prints a styled heading for a fetched video.
func PrintHeader(w io.Writer, title, videoID string) {
	if title == "" {
		title = videoID
	}
	fmt.Fprintf(w, "%s %s\n\n", titleStyle.Render(title), mutedStyle.Render("("+videoID+")"))
}

// PrintLines prints normalized transcript lines with styled timestamps.
func PrintLines(w io.Writer, lines []transcript.Line) {
	for _, l := range lines {
		fmt.Fprintf(w, "%s %s\n", timestampStyle.Render(transcript.Timestamp(float64(l.BucketStart))), l.Text)
	}
}

// PrintEntries prints raw transcript entries with styled timestamps.
func PrintEntries(w io.Writer, entries []transcript.Entry) {
	for _, e := range entries {
		fmt.Fprintf(w, "%s %s\n", timestampStyle.Render(transcript.Timestamp(e.Start)), e.Text)
	}
}

// PrintRecordsTable prints indexed transcript downloads as a table.
func PrintRecordsTable(w io.Writer, records []store.Record) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "VIDEO ID\tTITLE\tLANG\tLINES\tFETCHED\tPATH")
	for _, r := range records {
		title := r.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			r.VideoID, title, r.Language, r.Lines,
			r.FetchedAt.Format("2006-01-02 15:04"), r.Path)
	}
	tw.Flush()
}
