package transcript

import (
	"testing"
)

func TestTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "[00:00]"},
		{5.9, "[00:05]"},
		{65.0, "[01:05]"},
		{125.5, "[02:05]"},
		{600, "[10:00]"},
		{3725, "[62:05]"}, // minutes keep growing past an hour
	}

	for _, tt := range tests {
		if got := Timestamp(tt.seconds); got != tt.want {
			t.Errorf("Timestamp(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestRenderEntries(t *testing.T) {
	entries := []Entry{
		{Text: "hello", Start: 0.5},
		{Text: "world", Start: 65},
	}

	want := "[00:00] hello\n[01:05] world\n"
	if got := RenderEntries(entries); got != want {
		t.Errorf("RenderEntries() = %q, want %q", got, want)
	}
}

func TestRenderLines(t *testing.T) {
	lines := []Line{
		{BucketStart: 0, Text: "hi there"},
		{BucketStart: 6, Text: "more text"},
	}

	want := "[00:00] hi there\n[00:06] more text\n"
	if got := RenderLines(lines); got != want {
		t.Errorf("RenderLines() = %q, want %q", got, want)
	}
}

func TestParseDocument_RoundTrip(t *testing.T) {
	entries := []Entry{
		{Text: "alpha", Start: 0},
		{Text: "beta", Start: 66},
		{Text: "gamma", Start: 125},
	}

	parsed := ParseDocument(RenderEntries(entries))
	if len(parsed) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(parsed))
	}
	for i := range entries {
		if parsed[i].Text != entries[i].Text {
			t.Errorf("entry %d text = %q, want %q", i, parsed[i].Text, entries[i].Text)
		}
		if parsed[i].Start != entries[i].Start {
			t.Errorf("entry %d start = %v, want %v", i, parsed[i].Start, entries[i].Start)
		}
	}
}

func TestParseDocument_SkipsUnparseableLines(t *testing.T) {
	content := "a heading line\n[00:10] kept\nnot [00:20] timestamped\n[bad] nope\n[3:40] unpadded minutes\n\n"

	entries := ParseDocument(content)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].Text != "kept" || entries[0].Start != 10 {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Start != 220 {
		t.Errorf("unpadded minutes should still parse, got start %v", entries[1].Start)
	}
}

func TestParseDocument_Empty(t *testing.T) {
	if entries := ParseDocument(""); len(entries) != 0 {
		t.Errorf("expected no entries from empty document, got %d", len(entries))
	}
}
