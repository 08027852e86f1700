package tree

import (
	"fmt"

	"github.com/c0depwn/jackfront/pkg/ext"
	"github.com/c0depwn/jackfront/token"
)

var _ Emitter = (*Builder)(nil)

// Builder assembles the emitted structure into a *Node.
type Builder struct {
	root *Node
	// open contains the nodes which have been opened but not yet closed
	open ext.Stack[*Node]
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Open(name string) error {
	n := NewNode(name)

	if parent, ok := b.open.Top(); ok {
		parent.Append(n)
	} else if b.root == nil {
		b.root = n
	} else {
		return fmt.Errorf("%w: cannot open '%s' after '%s'", ErrMultipleRoots, name, b.root.Name)
	}

	b.open.Push(n)
	return nil
}

func (b *Builder) Leaf(kind token.Kind, lexeme string) error {
	parent, ok := b.open.Top()
	if !ok {
		return fmt.Errorf("%w: cannot emit %s '%s'", ErrNotOpen, kind, lexeme)
	}
	parent.Append(NewLeaf(kind, lexeme))
	return nil
}

func (b *Builder) Close() error {
	if _, ok := b.open.Pop(); !ok {
		return fmt.Errorf("%w: cannot close", ErrNotOpen)
	}
	return nil
}

// Finish ensures that all nodes have been closed.
func (b *Builder) Finish() error {
	if top, ok := b.open.Top(); ok {
		return fmt.Errorf("%w: '%s'", ErrUnclosed, top.Name)
	}
	return nil
}

// Root returns the top level node, nil if nothing was opened yet.
func (b *Builder) Root() *Node {
	return b.root
}
