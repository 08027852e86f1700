package tree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/c0depwn/jackfront/pkg/ext"
	"github.com/c0depwn/jackfront/token"
)

// Decode reads markup as written by XMLWriter back into a *Node.
// Elements named after a token.Kind become leaves, a single space
// padding on both sides of their text is removed.
// Whitespace between elements is ignored.
func Decode(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)

	var (
		root *Node
		open ext.Stack[*Node]
	)

	for {
		t, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not decode markup: %w", err)
		}

		switch t := t.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local, Leaf: token.IsKind(t.Name.Local)}
			if parent, ok := open.Top(); ok {
				if parent.Leaf {
					return nil, fmt.Errorf("could not decode markup: leaf '%s' contains element '%s'", parent.Name, n.Name)
				}
				parent.Append(n)
			} else if root == nil {
				root = n
			} else {
				return nil, fmt.Errorf("could not decode markup: %w: '%s'", ErrMultipleRoots, n.Name)
			}
			open.Push(n)
		case xml.CharData:
			if n, ok := open.Top(); ok && n.Leaf {
				n.Text += string(t)
			}
		case xml.EndElement:
			n, ok := open.Pop()
			if !ok {
				return nil, fmt.Errorf("could not decode markup: %w", ErrNotOpen)
			}
			if n.Leaf {
				n.Text = unpad(n.Text)
			}
		}
	}

	if root == nil {
		return nil, errors.New("could not decode markup: document is empty")
	}
	if n, ok := open.Top(); ok {
		return nil, fmt.Errorf("could not decode markup: %w: '%s'", ErrUnclosed, n.Name)
	}
	return root, nil
}

func unpad(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, " ") && strings.HasSuffix(s, " ") {
		return s[1 : len(s)-1]
	}
	return s
}
