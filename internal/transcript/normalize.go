package transcript

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultInterval is the default bucket width in seconds.
const DefaultInterval = 6

// Normalize re-buckets entries into fixed-width, non-overlapping time
// windows of interval seconds starting at zero. Entries are assigned to the
// bucket containing their start time (duration is ignored for membership),
// and all text landing in one bucket is merged into a single line in
// ascending start order. Buckets with no entries are omitted. Input order
// is irrelevant; ties keep their original relative order.
func Normalize(entries []Entry, interval int) ([]Line, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("bucket interval must be positive, got %d", interval)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	maxStart := sorted[len(sorted)-1].Start

	var lines []Line
	next := 0
	for bucket := 0; float64(bucket) <= maxStart; bucket += interval {
		var texts []string
		for next < len(sorted) && sorted[next].Start < float64(bucket+interval) {
			texts = append(texts, sorted[next].Text)
			next++
		}
		if len(texts) > 0 {
			lines = append(lines, Line{
				BucketStart: bucket,
				Text:        strings.Join(texts, " "),
			})
		}
	}

	return lines, nil
}

// Renormalize treats already-bucketed lines as fresh entries (bucket start
// becomes entry start, duration zero) and buckets them again. With an
// unchanged interval this is an identity on bucket boundaries.
func Renormalize(lines []Line, interval int) ([]Line, error) {
	entries := make([]Entry, len(lines))
	for i, l := range lines {
		entries[i] = Entry{Text: l.Text, Start: float64(l.BucketStart)}
	}
	return Normalize(entries, interval)
}
