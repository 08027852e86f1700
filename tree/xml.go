package tree

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/c0depwn/jackfront/pkg/ext"
	"github.com/c0depwn/jackfront/token"
)

var _ Emitter = (*XMLWriter)(nil)

const DefaultIndent = "  "

// XMLWriter streams the emitted structure as indented markup.
// Every node and every leaf occupies its own line, e.g.
//
//	<term>
//	  <identifier> a </identifier>
//	</term>
//
// Nothing is validated up-front, in case of an error incomplete output
// has already been written.
type XMLWriter struct {
	writer *bufio.Writer
	// open is the stack of element names which still need a closing tag
	open ext.Stack[string]
	// indent is repeated once per nesting level
	indent string
	// pad surrounds the text of a leaf with a single space
	pad bool
}

// XMLOption customizes an XMLWriter.
type XMLOption func(*XMLWriter)

// WithIndent sets the string which is repeated per nesting level.
func WithIndent(indent string) XMLOption {
	return func(x *XMLWriter) { x.indent = indent }
}

// WithPadding controls whether leaf text is surrounded by single spaces.
func WithPadding(enabled bool) XMLOption {
	return func(x *XMLWriter) { x.pad = enabled }
}

func NewXMLWriter(w io.Writer, opts ...XMLOption) *XMLWriter {
	x := &XMLWriter{
		writer: bufio.NewWriter(w),
		indent: DefaultIndent,
		pad:    true,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

func (x *XMLWriter) Open(name string) error {
	if err := x.writeLine("<" + name + ">"); err != nil {
		return err
	}
	x.open.Push(name)
	return nil
}

func (x *XMLWriter) Leaf(kind token.Kind, lexeme string) error {
	if x.open.Empty() {
		return fmt.Errorf("%w: cannot emit %s '%s'", ErrNotOpen, kind, lexeme)
	}

	text := escapeXMLSafe(lexeme)
	if x.pad {
		text = " " + text + " "
	}
	return x.writeLine(fmt.Sprintf("<%[1]s>%[2]s</%[1]s>", kind, text))
}

func (x *XMLWriter) Close() error {
	name, ok := x.open.Pop()
	if !ok {
		return fmt.Errorf("%w: cannot close", ErrNotOpen)
	}
	return x.writeLine("</" + name + ">")
}

// Finish ensures that all elements have been closed and flushes the output.
func (x *XMLWriter) Finish() error {
	if name, ok := x.open.Top(); ok {
		return fmt.Errorf("%w: '%s'", ErrUnclosed, name)
	}
	if err := x.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush written XML: %w", err)
	}
	return nil
}

// writeLine writes s on its own line, indented by the current nesting level.
func (x *XMLWriter) writeLine(s string) error {
	if _, err := x.writer.WriteString(strings.Repeat(x.indent, x.open.Len())); err != nil {
		return err
	}
	if _, err := x.writer.WriteString(s); err != nil {
		return err
	}
	return x.writer.WriteByte('\n')
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

// escapeXMLSafe escapes the characters which are reserved in markup text.
func escapeXMLSafe(s string) string {
	return xmlEscaper.Replace(s)
}
