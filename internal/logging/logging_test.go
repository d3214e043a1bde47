package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewPlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Info("saved", "path", "app_icon.png")

	out := buf.String()
	if !strings.Contains(out, "saved") || !strings.Contains(out, "path=app_icon.png") {
		t.Errorf("output = %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("output contains ANSI escapes: %q", out)
	}
}

func TestNewVerboseLevel(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug logged without verbose: %q", buf.String())
	}

	New(&buf, true).Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug not logged with verbose: %q", buf.String())
	}
}
