package transcript

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strconv"
)

// ErrEmptyTranscript indicates the feed was fetched and scanned but
// contained no recognizable caption entries. Distinct from the no-captions
// case: here a track existed and its feed was reachable.
var ErrEmptyTranscript = errors.New("no caption entries found in feed")

// ErrBadTimestamp indicates a <text> element carried a start or dur
// attribute that does not parse as a decimal number. One bad entry means
// the feed is untrustworthy, so the whole parse aborts.
var ErrBadTimestamp = errors.New("malformed timestamp attribute")

// The feed is XML-shaped but not trusted to be well-formed XML, so entries
// are matched textually: a <text ...> element with content up to the next
// tag. Attributes are picked out of the captured attribute string
// separately so their order and any extra attributes don't matter. Nested
// and self-closing variants are deliberately not matched; the feeds this
// handles use exactly one flat element form.
var (
	textElementRe = regexp.MustCompile(`<text\s([^>]*)>([^<]+)</text>`)
	startAttrRe   = regexp.MustCompile(`\bstart="([^"]*)"`)
	durAttrRe     = regexp.MustCompile(`\bdur="([^"]*)"`)
)

// ParseTimedText extracts every timed caption span from a timed-text feed.
// Element text has HTML entities decoded to literal characters. Returns
// ErrEmptyTranscript when no entries match and ErrBadTimestamp when a
// matched element has a non-numeric start or dur.
func ParseTimedText(feed string) ([]Entry, error) {
	matches := textElementRe.FindAllStringSubmatch(feed, -1)

	var entries []Entry
	for _, m := range matches {
		attrs, content := m[1], m[2]

		startMatch := startAttrRe.FindStringSubmatch(attrs)
		durMatch := durAttrRe.FindStringSubmatch(attrs)
		if startMatch == nil || durMatch == nil {
			// Not the span pattern we handle (e.g. a styling element).
			continue
		}

		start, err := strconv.ParseFloat(startMatch[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: start=%q", ErrBadTimestamp, startMatch[1])
		}
		dur, err := strconv.ParseFloat(durMatch[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: dur=%q", ErrBadTimestamp, durMatch[1])
		}

		entries = append(entries, Entry{
			Text:     html.UnescapeString(content),
			Start:    start,
			Duration: dur,
		})
	}

	if len(entries) == 0 {
		return nil, ErrEmptyTranscript
	}
	return entries, nil
}
