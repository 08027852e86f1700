package parser

import (
	"errors"
	"io"

	"github.com/c0depwn/jackfront/pkg/ext"
	"github.com/c0depwn/jackfront/token"
	"github.com/c0depwn/jackfront/tree"
)

// Option defines the type for parser customization options.
type Option func(*parser)

// EnableDebug enables additional assertions during parsing.
// Caution is advised, the parser may terminate prematurely on incorrect input.
func EnableDebug() Option {
	return func(p *parser) { p.debug = true }
}

// EnableTrace writes a trace of the called parser functions to the provided io.Writer.
// This can be useful to investigate the parser.
func EnableTrace(out io.Writer) Option {
	return func(p *parser) { p.tracer = newTracer(out) }
}

// ParseFile parses a complete class from tokens and drives out while doing so.
// The first syntax error aborts the parse, it is returned as *SyntaxError.
// Whatever has been emitted up to that point is incomplete and must be discarded.
func ParseFile(tokens []token.Token, out tree.Emitter, opts ...Option) error {
	if out == nil {
		return errors.New("emitter cannot be nil")
	}

	p := newParser(tokens, out)

	for _, option := range opts {
		option(p)
	}

	return ext.CatchPanic(p.parse)
}

// Parse parses a complete class from tokens into a *tree.Node.
func Parse(tokens []token.Token, opts ...Option) (*tree.Node, error) {
	b := tree.NewBuilder()
	if err := ParseFile(tokens, b, opts...); err != nil {
		return nil, err
	}
	if err := b.Finish(); err != nil {
		return nil, err
	}
	return b.Root(), nil
}

func newParser(tokens []token.Token, out tree.Emitter) *parser {
	p := new(parser)
	p.cursor = NewCursor(tokens)
	p.out = out
	p.tracer = dummyTracer{}

	// position on the first token
	p.cursor.Advance()

	return p
}
