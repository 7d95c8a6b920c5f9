package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunPrintsLevel(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, 1, 7, 80, 50, false, false); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 51 {
		t.Fatalf("got %d lines, want header plus 50 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "-- ") {
		t.Errorf("missing header: %q", lines[0])
	}
	if !strings.Contains(buf.String(), "@") {
		t.Error("start not marked")
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Error("uncolored dump has escape codes")
	}
}

func TestRunHistoryAddsStages(t *testing.T) {
	var plain, withHistory bytes.Buffer
	if err := run(&plain, 2, 9, 80, 50, false, false); err != nil {
		t.Fatal(err)
	}
	if err := run(&withHistory, 2, 9, 80, 50, true, false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(withHistory.String(), "-- stage 1/") {
		t.Error("no stage headers")
	}
	if !strings.HasSuffix(withHistory.String(), plain.String()) {
		t.Error("history run does not end with the same level")
	}
}

func TestRunRejectsDepthZero(t *testing.T) {
	if err := run(&bytes.Buffer{}, 0, 1, 40, 30, false, false); err == nil {
		t.Error("depth 0 accepted")
	}
}

func TestUseColor(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if on, _ := useColor("auto", f); on {
		t.Error("a regular file is not a terminal")
	}
	if on, _ := useColor("always", f); !on {
		t.Error("always should force color")
	}
	if on, _ := useColor("never", f); on {
		t.Error("never should disable color")
	}
	if _, err := useColor("sometimes", f); err == nil {
		t.Error("unknown mode accepted")
	}
}
