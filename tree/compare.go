package tree

import (
	"fmt"
	"strings"

	"github.com/r3labs/diff/v2"
)

// Difference describes a single structural mismatch between two trees.
type Difference struct {
	// Type is one of "create", "update" or "delete".
	Type string
	// Path locates the mismatch, e.g. "children.3.text".
	Path     string
	Expected any
	Actual   any
}

func (d Difference) String() string {
	switch d.Type {
	case diff.CREATE:
		return fmt.Sprintf("%s: unexpected %v", d.Path, d.Actual)
	case diff.DELETE:
		return fmt.Sprintf("%s: missing %v", d.Path, d.Expected)
	}
	return fmt.Sprintf("%s: expected %v, got %v", d.Path, d.Expected, d.Actual)
}

// Compare lists the differences between the expected and the actual tree.
// Children are compared position by position.
func Compare(expected, actual *Node) ([]Difference, error) {
	changelog, err := diff.Diff(expected, actual, diff.SliceOrdering(true))
	if err != nil {
		return nil, fmt.Errorf("could not compare trees: %w", err)
	}

	differences := make([]Difference, 0, len(changelog))
	for _, change := range changelog {
		differences = append(differences, Difference{
			Type:     change.Type,
			Path:     strings.Join(change.Path, "."),
			Expected: change.From,
			Actual:   change.To,
		})
	}
	return differences, nil
}

// Equal reports whether both trees have the same shape and content.
func Equal(a, b *Node) bool {
	differences, err := Compare(a, b)
	return err == nil && len(differences) == 0
}
