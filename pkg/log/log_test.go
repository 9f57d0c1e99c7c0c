package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestSet(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Set(false, 0)
	F("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("Quiet mode logged: %q", buf.String())
	}

	Set(true, 0)
	F("shown %d", 2)
	if !strings.Contains(buf.String(), "shown 2") {
		t.Errorf("Verbose mode did not log: %q", buf.String())
	}

	buf.Reset()
	Set(false, 0)
	F("hidden again")
	if buf.Len() != 0 {
		t.Errorf("Turning verbose off did not silence F: %q", buf.String())
	}
}
