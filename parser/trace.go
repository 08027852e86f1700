package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/c0depwn/jackfront/token"
)

// tracerI defines the required functionality
// for trace generation within the parser.
type tracerI interface {
	begin(production string, at token.Token)
	end(production string)
}

const (
	traceIndent    = "\t"
	traceMarkerBeg = ">"
	traceMarkerEnd = "<"
)

// tracer writes generated traces to the configured io.Writer.
type tracer struct {
	indent int
	out    io.Writer
}

func newTracer(out io.Writer) *tracer {
	return &tracer{indent: 0, out: out}
}

func (t *tracer) begin(production string, at token.Token) {
	t.indent += 1
	_, _ = fmt.Fprintf(
		t.out,
		"%s%s %s at %s %s\n",
		strings.Repeat(traceIndent, t.indent),
		traceMarkerBeg,
		production,
		at.Position,
		at.Describe(),
	)
}

func (t *tracer) end(production string) {
	_, _ = fmt.Fprintf(
		t.out,
		"%s%s %s\n",
		strings.Repeat(traceIndent, t.indent),
		traceMarkerEnd,
		production,
	)
	t.indent -= 1
}

// dummyTracer provides a no-op tracer essentially,
// ignoring tracing.
type dummyTracer struct{}

func (dummyTracer) begin(string, token.Token) {}

func (dummyTracer) end(string) {}
