package logger

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

var linePattern = regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[[A-Z]+\] `)

func TestConsoleLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "info")
	logger.Infof("walked %d entries", 3)

	output := buf.String()
	if !linePattern.MatchString(output) {
		t.Errorf("unexpected format: %q", output)
	}
	if !strings.HasSuffix(output, "[INFO] walked 3 entries\n") {
		t.Errorf("unexpected message: %q", output)
	}
}

func TestConsoleLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "warn")
	logger.Debugf("debug")
	logger.Infof("info")
	logger.Warnf("warn")
	logger.Errorf("error")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "[WARN] warn") || !strings.Contains(lines[1], "[ERROR] error") {
		t.Errorf("unexpected lines: %q", lines)
	}
}

func TestConsoleLoggerInvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "loud")
	logger.Debugf("hidden")
	logger.Infof("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestConsoleLoggerTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "TRACE")
	logger.Tracef("deep %s", "detail")
	if !strings.Contains(buf.String(), "[TRACE] deep detail") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestConsoleLoggerNilWriter(t *testing.T) {
	logger := NewConsoleLogger(nil, "debug")
	logger.Errorf("dropped")
}
