package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func interactiveConfirmer(input string, out *bytes.Buffer) *TerminalConfirmer {
	return &TerminalConfirmer{
		in:          bufio.NewReader(strings.NewReader(input)),
		out:         out,
		interactive: true,
	}
}

func TestTerminalConfirmer_Answers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"y", "y\n", true},
		{"yes", "yes\n", true},
		{"upper case", "YES\n", true},
		{"padded", "  y  \n", true},
		{"no newline", "y", true},
		{"n", "n\n", false},
		{"empty line", "\n", false},
		{"eof", "", false},
		{"other", "sure\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := new(bytes.Buffer)
			c := interactiveConfirmer(tt.input, out)

			got := c.Confirm("Reset settings", "Delete it?")

			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Reset settings: Delete it? [y/N]: ", out.String())
		})
	}
}

func TestTerminalConfirmer_NotInteractive(t *testing.T) {
	out := new(bytes.Buffer)

	c := NewTerminalConfirmer(strings.NewReader("y\n"), out, false)

	assert.False(t, c.Confirm("Title", "Message"))
	assert.Empty(t, out.String())
}

func TestTerminalConfirmer_AssumeYes(t *testing.T) {
	out := new(bytes.Buffer)

	c := NewTerminalConfirmer(strings.NewReader(""), out, true)

	assert.True(t, c.Confirm("Title", "Message"))
	assert.Empty(t, out.String())
}
