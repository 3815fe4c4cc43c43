package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestNormalizeCmd_WritesNormalizedFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	inPath := filepath.Join(dir, "transcript_abc.txt")
	content := "[00:00] hi\n[00:03] there\n[00:07] next bucket\n"
	if err := os.WriteFile(inPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "normalize", inPath); err != nil {
		t.Fatalf("normalize: %v", err)
	}

	outPath := filepath.Join(dir, "transcript_abc_normalized.txt")
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("expected normalized file: %v", err)
	}

	want := "[00:00] hi there\n[00:06] next bucket\n"
	if string(data) != want {
		t.Errorf("normalized content = %q, want %q", string(data), want)
	}
}

func TestNormalizeCmd_Stdout(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	inPath := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(inPath, []byte("[00:01] a\n[00:08] b\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "normalize", "--stdout", "--interval", "10", inPath)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if !strings.Contains(out, "[00:00] a b") {
		t.Errorf("expected single 10s bucket in output, got %q", out)
	}
}

func TestNormalizeCmd_NoTimestampedLines(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	inPath := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(inPath, []byte("just prose, no timestamps\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "normalize", inPath); err == nil {
		t.Fatal("expected error for file without timestamped lines")
	}
}

func TestNormalizeCmd_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := runCommand(t, "normalize", "does-not-exist.txt"); err == nil {
		t.Fatal("expected error for missing input file")
	}
}

func TestNormalizedPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"transcript_abc.txt", "transcript_abc_normalized.txt"},
		{"/tmp/t.txt", "/tmp/t_normalized.txt"},
		{"noext", "noext_normalized"},
	}
	for _, tt := range tests {
		if got := normalizedPath(tt.in); got != tt.want {
			t.Errorf("normalizedPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "ytscribe") {
		t.Errorf("unexpected version output: %q", out)
	}
}
