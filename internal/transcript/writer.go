package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteText writes a plain text transcript, one "[MM:SS] text" line per
// raw entry. The file is written atomically (temp file + rename) so a
// failed run never leaves a partial transcript behind.
func WriteText(path string, entries []Entry) error {
	return atomicWrite(path, []byte(RenderEntries(entries)))
}

// WriteNormalizedText writes a plain text transcript of bucketed lines.
func WriteNormalizedText(path string, lines []Line) error {
	return atomicWrite(path, []byte(RenderLines(lines)))
}

// WriteSRT writes raw entries as a SubRip (.srt) subtitle file. Each entry
// becomes a numbered cue spanning start to start+duration.
func WriteSRT(path string, entries []Entry) error {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d\n", i+1)
		fmt.Fprintf(&b, "%s --> %s\n", srtTimestamp(e.Start), srtTimestamp(e.Start+e.Duration))
		fmt.Fprintf(&b, "%s\n", e.Text)
	}
	return atomicWrite(path, []byte(b.String()))
}

// WriteVTT writes raw entries as a WebVTT (.vtt) subtitle file.
func WriteVTT(path string, entries []Entry) error {
	var b strings.Builder
	b.WriteString("WEBVTT\n")
	for _, e := range entries {
		b.WriteByte('\n')
		fmt.Fprintf(&b, "%s --> %s\n", vttTimestamp(e.Start), vttTimestamp(e.Start+e.Duration))
		fmt.Fprintf(&b, "%s\n", e.Text)
	}
	return atomicWrite(path, []byte(b.String()))
}

// srtTimestamp formats seconds as HH:MM:SS,mmm (SRT subtitle format).
func srtTimestamp(seconds float64) string {
	h, m, s, ms := splitClock(seconds)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// vttTimestamp formats seconds as HH:MM:SS.mmm (WebVTT format).
func vttTimestamp(seconds float64) string {
	h, m, s, ms := splitClock(seconds)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

func splitClock(seconds float64) (h, m, s, ms int) {
	total := int(seconds)
	return total / 3600, total / 60 % 60, total % 60, int(seconds*1000) % 1000
}

// atomicWrite writes data to path atomically using a temp file + rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, "transcript-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("writing transcript: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("syncing transcript: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing transcript: %w", err)
	}
	tmpFile = nil // prevent defer cleanup

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming transcript: %w", err)
	}
	return nil
}
