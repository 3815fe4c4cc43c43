// Package transcript holds the caption data model and the parse, normalize,
// format, and write stages of the transcript pipeline.
package transcript

// Entry is a single timed caption span from a timed-text feed. Start and
// Duration are in seconds. The source feed does not guarantee ordering;
// Normalize establishes it.
type Entry struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Line is one fixed-width bucket of merged caption text. BucketStart is in
// seconds and is always a multiple of the normalization interval.
type Line struct {
	BucketStart int    `json:"bucket_start"`
	Text        string `json:"text"`
}
