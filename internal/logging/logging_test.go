package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "snek")
	logger.Info("run ended", "score", 3)

	out := buf.String()
	if !strings.Contains(out, "snek") || !strings.Contains(out, "run ended") || !strings.Contains(out, "score=3") {
		t.Errorf("unexpected log line: %q", out)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "snek.log")

	logger, closer, err := Open(path, "snek", true)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	logger.Debug("frame skipped")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "frame skipped") {
		t.Errorf("debug line missing from log file: %q", data)
	}
}

func TestOpenEmptyPathDiscards(t *testing.T) {
	logger, closer, err := Open("", "snek", false)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer closer.Close()

	logger.Error("nowhere")
}
