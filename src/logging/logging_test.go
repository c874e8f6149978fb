package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetLevel("warn")
	defer SetLevel("info")

	Infof("should not appear")
	Warnf("should appear")

	out := buf.String()
	if strings.Contains(out, "should not appear") {
		t.Fatalf("info leaked through warn level: %s", out)
	}
	if !strings.Contains(out, "[WARN] should appear") {
		t.Fatalf("warn missing: %s", out)
	}
}

func TestNoDoubleFormattingWithPercent(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetLevel("info")
	msg := "frame rendered (100.0% of window) in 3ms"
	Infof(msg)

	out := buf.String()
	if !strings.Contains(out, "(100.0% of window)") {
		t.Fatalf("log output mangled percent segment: %s", out)
	}
	if strings.Contains(out, "(MISSING)") {
		t.Fatalf("log output shows fmt artifact: %s", out)
	}
}

func TestUnknownLevelIgnored(t *testing.T) {
	SetLevel("info")
	SetLevel("bogus")
	if GetLevel() != LevelInfo {
		t.Fatalf("unknown level changed state: %v", GetLevel())
	}
}
