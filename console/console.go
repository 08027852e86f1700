// Package console renders user facing status lines.
//
// Every line is prefixed with a coloured tag such as [MESSAGE] or [ERROR],
// continuation lines are aligned with the text of the first one.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Code selects the tag and colour of a status line.
type Code int

const (
	None Code = iota
	Message
	Error
	Finish
	Debug
	Success
)

func (c Code) String() string {
	switch c {
	case Message:
		return "MESSAGE"
	case Error:
		return "ERROR"
	case Finish:
		return "FINISH"
	case Debug:
		return "DEBUG"
	case Success:
		return "SUCCESS"
	}
	return ""
}

// Colors
var (
	colorMessage = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorFinish  = lipgloss.Color("#06B6D4")
	colorDebug   = lipgloss.Color("#D946EF")
	colorSuccess = lipgloss.Color("#10B981")
	colorMuted   = lipgloss.Color("#6B7280")
)

const barWidth = 60

// Printer writes status lines to an io.Writer, it is safe for concurrent use.
type Printer struct {
	mu     sync.Mutex
	out    io.Writer
	styles map[Code]lipgloss.Style
	bar    lipgloss.Style
}

// New creates a Printer, colour is only applied if enabled
// and supported by the terminal behind out.
func New(out io.Writer, color bool) *Printer {
	p := &Printer{out: out, styles: make(map[Code]lipgloss.Style)}

	if !color {
		for _, c := range []Code{Message, Error, Finish, Debug, Success} {
			p.styles[c] = lipgloss.NewStyle()
		}
		p.bar = lipgloss.NewStyle()
		return p
	}

	r := lipgloss.NewRenderer(out)
	p.styles[Message] = r.NewStyle().Foreground(colorMessage)
	p.styles[Error] = r.NewStyle().Foreground(colorError).Bold(true)
	p.styles[Finish] = r.NewStyle().Foreground(colorFinish)
	p.styles[Debug] = r.NewStyle().Foreground(colorDebug)
	p.styles[Success] = r.NewStyle().Foreground(colorSuccess)
	p.bar = r.NewStyle().Foreground(colorMuted)
	return p
}

func (p *Printer) Message(lines ...string) { p.Write(Message, lines...) }
func (p *Printer) Error(lines ...string)   { p.Write(Error, lines...) }
func (p *Printer) Finish(lines ...string)  { p.Write(Finish, lines...) }
func (p *Printer) Debug(lines ...string)   { p.Write(Debug, lines...) }
func (p *Printer) Success(lines ...string) { p.Write(Success, lines...) }

// Write prints lines prefixed with the tag of code.
func (p *Printer) Write(code Code, lines ...string) {
	if len(lines) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var sb strings.Builder
	spacer := ""
	if code != None {
		tag := "[" + code.String() + "]"
		sb.WriteString(p.styles[code].Render(tag))
		sb.WriteByte(' ')
		spacer = strings.Repeat(" ", len(tag)+1)
	}

	for i, line := range lines {
		if i > 0 {
			sb.WriteString(spacer)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	_, _ = io.WriteString(p.out, sb.String())
}

// Bar prints a horizontal separator.
func (p *Printer) Bar() {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = fmt.Fprintln(p.out, p.bar.Render(strings.Repeat("─", barWidth)))
}
