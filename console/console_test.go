package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinter_Write(t *testing.T) {
	tests := []struct {
		name     string
		write    func(p *Printer)
		expected string
	}{
		{
			name:     "message",
			write:    func(p *Printer) { p.Message("Analyzing Main.jack") },
			expected: "[MESSAGE] Analyzing Main.jack\n",
		},
		{
			name:     "error with details",
			write:    func(p *Printer) { p.Error("Main.jack", "3:11: expected term") },
			expected: "[ERROR] Main.jack\n        3:11: expected term\n",
		},
		{
			name:     "success",
			write:    func(p *Printer) { p.Success("done") },
			expected: "[SUCCESS] done\n",
		},
		{
			name:     "finish",
			write:    func(p *Printer) { p.Finish("2 files") },
			expected: "[FINISH] 2 files\n",
		},
		{
			name:     "debug",
			write:    func(p *Printer) { p.Debug("a", "b") },
			expected: "[DEBUG] a\n        b\n",
		},
		{
			name:     "untagged",
			write:    func(p *Printer) { p.Write(None, "a", "b") },
			expected: "a\nb\n",
		},
		{
			name:     "nothing",
			write:    func(p *Printer) { p.Message() },
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			tt.write(New(&out, false))

			if out.String() != tt.expected {
				t.Errorf("got %q, want %q", out.String(), tt.expected)
			}
		})
	}
}

// TestPrinter_colorToNonTerminal ensures no escape sequences reach a plain writer.
func TestPrinter_colorToNonTerminal(t *testing.T) {
	var out bytes.Buffer
	New(&out, true).Success("ok")

	if strings.Contains(out.String(), "\x1b[") {
		t.Errorf("expected no escape sequences, got %q", out.String())
	}
	if out.String() != "[SUCCESS] ok\n" {
		t.Errorf("got %q", out.String())
	}
}

func TestPrinter_Bar(t *testing.T) {
	var out bytes.Buffer
	New(&out, false).Bar()

	if got := strings.TrimSuffix(out.String(), "\n"); got != strings.Repeat("─", barWidth) {
		t.Errorf("unexpected bar %q", got)
	}
}
