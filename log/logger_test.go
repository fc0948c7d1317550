package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer func() {
		SetLevel(Notice)
		SetSink(os.Stdout)
	}()

	logger := New("test")

	SetLevel(Notice)
	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Notice("visible notice")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("expected debug/info messages to be filtered at notice level; got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "visible notice") {
		t.Fatalf("expected notice message in output; got %q", buf.String())
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("frame %d", 7)
	if !strings.Contains(buf.String(), "frame 7") || !strings.Contains(buf.String(), "[test]") {
		t.Fatalf("expected debug message tagged with module name; got %q", buf.String())
	}
	if !Enabled(Debug, "test") {
		t.Fatal("expected debug level to be enabled")
	}
}

func TestSetSinkKeepsLevel(t *testing.T) {
	defer func() {
		SetLevel(Notice)
		SetSink(os.Stdout)
	}()

	SetLevel(Warning)
	var buf bytes.Buffer
	SetSink(&buf)

	if Enabled(Notice, "test") {
		t.Fatal("expected notice level to stay disabled after swapping sinks")
	}
	New("test").Warning("still warned")
	if !strings.Contains(buf.String(), "still warned") {
		t.Fatalf("expected warning in output; got %q", buf.String())
	}
}

func TestUnknownLevelFallsBackToError(t *testing.T) {
	defer SetLevel(Notice)

	SetLevel(Level(42))
	if Enabled(Warning, "test") {
		t.Fatal("expected warnings to be disabled for an unknown level")
	}
	if !Enabled(Error, "test") {
		t.Fatal("expected errors to stay enabled for an unknown level")
	}
}
