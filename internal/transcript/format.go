package transcript

import (
	"fmt"
	"strconv"
	"strings"
)

// Timestamp renders a time offset in seconds as "[MM:SS]". Minutes and
// seconds are both zero-padded to two digits; minutes grow past two digits
// for content over an hour. Raw and bucketed output share this one format.
func Timestamp(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("[%02d:%02d]", total/60, total%60)
}

// RenderEntries renders raw entries one per line as "[MM:SS] text",
// newline-joined with a trailing newline.
func RenderEntries(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %s\n", Timestamp(e.Start), e.Text)
	}
	return b.String()
}

// RenderLines renders normalized bucket lines in the same "[MM:SS] text"
// form as RenderEntries.
func RenderLines(lines []Line) string {
	var b strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&b, "%s %s\n", Timestamp(float64(l.BucketStart)), l.Text)
	}
	return b.String()
}

// ParseDocument reads a rendered transcript back into entries so an
// existing file can be re-normalized. Each line is expected to look like
// "[MM:SS] text"; lines that don't are skipped rather than failing the
// whole document. Durations are unknown at this point and left zero.
func ParseDocument(content string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(content, "\n") {
		if e, ok := parseDocumentLine(line); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

func parseDocumentLine(line string) (Entry, bool) {
	if !strings.HasPrefix(line, "[") {
		return Entry{}, false
	}
	end := strings.Index(line, "]")
	if end == -1 {
		return Entry{}, false
	}

	mins, secs, ok := strings.Cut(line[1:end], ":")
	if !ok {
		return Entry{}, false
	}
	m, err := strconv.ParseFloat(mins, 64)
	if err != nil {
		return Entry{}, false
	}
	s, err := strconv.ParseFloat(secs, 64)
	if err != nil {
		return Entry{}, false
	}

	return Entry{
		Text:  strings.TrimSpace(line[end+1:]),
		Start: m*60 + s,
	}, true
}
