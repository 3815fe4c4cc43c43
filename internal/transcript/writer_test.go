package transcript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "transcript.txt")

	entries := []Entry{
		{Text: "hello", Start: 0.5, Duration: 1},
		{Text: "world", Start: 7.2, Duration: 1},
	}
	if err := WriteText(path, entries); err != nil {
		t.Fatalf("WriteText: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "[00:00] hello\n[00:07] world\n"
	if string(data) != want {
		t.Errorf("file content = %q, want %q", string(data), want)
	}

	// No temp files left behind.
	matches, _ := filepath.Glob(filepath.Join(dir, "sub", "*.tmp"))
	if len(matches) != 0 {
		t.Errorf("temp files left behind: %v", matches)
	}
}

func TestWriteText_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.txt")
	if err := os.WriteFile(path, []byte("old content\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteText(path, []Entry{{Text: "new", Start: 0}}); err != nil {
		t.Fatalf("WriteText: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "[00:00] new\n" {
		t.Errorf("expected overwrite, got %q", string(data))
	}
}

func TestWriteSRT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.srt")

	entries := []Entry{
		{Text: "first cue", Start: 0.5, Duration: 2.0},
		{Text: "second cue", Start: 61.25, Duration: 1.5},
	}
	if err := WriteSRT(path, entries); err != nil {
		t.Fatalf("WriteSRT: %v", err)
	}

	data, _ := os.ReadFile(path)
	got := string(data)

	if !strings.Contains(got, "1\n00:00:00,500 --> 00:00:02,500\nfirst cue\n") {
		t.Errorf("missing first cue block in:\n%s", got)
	}
	if !strings.Contains(got, "2\n00:01:01,250 --> 00:01:02,750\nsecond cue\n") {
		t.Errorf("missing second cue block in:\n%s", got)
	}
}

func TestWriteVTT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.vtt")

	entries := []Entry{{Text: "a cue", Start: 3665.0, Duration: 2.0}}
	if err := WriteVTT(path, entries); err != nil {
		t.Fatalf("WriteVTT: %v", err)
	}

	data, _ := os.ReadFile(path)
	got := string(data)

	if !strings.HasPrefix(got, "WEBVTT\n") {
		t.Errorf("missing WEBVTT header in:\n%s", got)
	}
	if !strings.Contains(got, "01:01:05.000 --> 01:01:07.000\na cue\n") {
		t.Errorf("missing cue block in:\n%s", got)
	}
}
