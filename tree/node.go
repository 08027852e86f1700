package tree

import (
	"strings"

	"github.com/c0depwn/jackfront/token"
)

// Node is either a named container or, if Leaf is set, a token.
// The Name of a leaf is the name of its token.Kind.
type Node struct {
	Name     string  `diff:"name"`
	Text     string  `diff:"text"`
	Leaf     bool    `diff:"leaf"`
	Children []*Node `diff:"children"`
}

// NewNode creates a container node.
func NewNode(name string, children ...*Node) *Node {
	return &Node{Name: name, Children: children}
}

// NewLeaf creates a token node.
func NewLeaf(kind token.Kind, text string) *Node {
	return &Node{Name: string(kind), Text: text, Leaf: true}
}

func (n *Node) Append(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// Kind returns the token.Kind of a leaf and token.Illegal for containers.
func (n *Node) Kind() token.Kind {
	if !n.Leaf {
		return token.Illegal
	}
	return token.Kind(n.Name)
}

// Walk visits n and its descendants depth-first in document order.
// Children are skipped if f returns false.
func (n *Node) Walk(f func(node *Node, depth int) bool) {
	n.walk(f, 0)
}

func (n *Node) walk(f func(*Node, int) bool, depth int) {
	if !f(n, depth) {
		return
	}
	for _, child := range n.Children {
		child.walk(f, depth+1)
	}
}

// Find returns all descendants of n, including n itself, with the given name.
func (n *Node) Find(name string) []*Node {
	var found []*Node
	n.Walk(func(node *Node, _ int) bool {
		if node.Name == name {
			found = append(found, node)
		}
		return true
	})
	return found
}

// Child returns the i-th child or nil.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Texts returns the text of all leaves below n in document order.
func (n *Node) Texts() []string {
	var texts []string
	n.Walk(func(node *Node, _ int) bool {
		if node.Leaf {
			texts = append(texts, node.Text)
		}
		return true
	})
	return texts
}

// String renders n compactly, e.g. "term(identifier:a symbol:[ expression(...) symbol:])".
func (n *Node) String() string {
	var sb strings.Builder
	n.format(&sb)
	return sb.String()
}

func (n *Node) format(sb *strings.Builder) {
	if n.Leaf {
		sb.WriteString(n.Name)
		sb.WriteByte(':')
		sb.WriteString(n.Text)
		return
	}

	sb.WriteString(n.Name)
	sb.WriteByte('(')
	for i, child := range n.Children {
		if i > 0 {
			sb.WriteByte(' ')
		}
		child.format(sb)
	}
	sb.WriteByte(')')
}
