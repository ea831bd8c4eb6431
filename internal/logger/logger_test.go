package logger

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T, verboseMode bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseMode)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	captureOutput(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	tests := []struct {
		name     string
		log      func(string, ...any)
		expected string
	}{
		{"debug", Debug, "[DEBUG] opened /tmp/a.html\n"},
		{"info", Info, "[INFO] opened /tmp/a.html\n"},
		{"warn", Warn, "[WARN] opened /tmp/a.html\n"},
		{"error", Error, "[ERROR] opened /tmp/a.html\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureOutput(t, true)
			tt.log("opened %s", "/tmp/a.html")
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	buf := captureOutput(t, false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")

	assert.Empty(t, buf.String())
}

func TestError_AlwaysPrinted(t *testing.T) {
	buf := captureOutput(t, false)

	Error("saving settings failed: %v", "disk full")

	assert.Equal(t, "[ERROR] saving settings failed: disk full\n", buf.String())
}

func TestSection(t *testing.T) {
	buf := captureOutput(t, true)

	Section("Startup")

	assert.Equal(t, "\n=== Startup ===\n", buf.String())
}

func TestConcurrentToggle(t *testing.T) {
	captureOutput(t, false)
	SetOutput(io.Discard)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		i := i // per-iteration copy (go.mod targets go1.21 loop semantics)
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetVerbose(true)
			Debug("concurrent %d", i)
			IsVerbose()
			SetVerbose(false)
		}()
	}
	wg.Wait()
}
