package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoggerContextRoundTrip(t *testing.T) {
	var buf strings.Builder
	logger := newLogger(&buf, log.DebugLevel)

	ctx := withLogger(context.Background(), logger)
	if got := loggerFromContext(ctx); got != logger {
		t.Error("loggerFromContext() did not return the attached logger")
	}
}

func TestLoggerFromContext_Default(t *testing.T) {
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext() without attachment did not fall back to the default logger")
	}
}

func TestNewLogger_Level(t *testing.T) {
	var buf strings.Builder
	logger := newLogger(&buf, log.InfoLevel)

	logger.Debug("hidden")
	logger.Info("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message emitted at info level")
	}
	if !strings.Contains(out, "visible") {
		t.Error("info message missing at info level")
	}
}

func TestProgress_Done(t *testing.T) {
	var buf strings.Builder
	logger := newLogger(&buf, log.InfoLevel)

	p := newProgress(logger)
	p.done("Rendered 3 artifacts")

	out := buf.String()
	if !strings.Contains(out, "Rendered 3 artifacts") {
		t.Errorf("progress output missing message: %q", out)
	}
	if !strings.Contains(out, "(") || !strings.Contains(out, ")") {
		t.Errorf("progress output missing elapsed duration: %q", out)
	}
}
