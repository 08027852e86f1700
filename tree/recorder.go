package tree

import (
	"fmt"

	"github.com/c0depwn/jackfront/token"
)

var _ Emitter = (*Recorder)(nil)

// Op is the kind of an emitted Event.
type Op int

const (
	OpOpen Op = iota
	OpLeaf
	OpClose
)

func (o Op) String() string {
	switch o {
	case OpOpen:
		return "open"
	case OpLeaf:
		return "leaf"
	case OpClose:
		return "close"
	}
	return "unknown"
}

// Event is a single Emitter call.
type Event struct {
	Op   Op
	Name string
	Kind token.Kind
	Text string
}

func (e Event) String() string {
	switch e.Op {
	case OpOpen:
		return "open " + e.Name
	case OpLeaf:
		return fmt.Sprintf("leaf %s '%s'", e.Kind, e.Text)
	}
	return "close"
}

// Recorder keeps all emitted events in order.
// It never rejects a call, use Balanced to check the recorded sequence.
type Recorder struct {
	Events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Open(name string) error {
	r.Events = append(r.Events, Event{Op: OpOpen, Name: name})
	return nil
}

func (r *Recorder) Leaf(kind token.Kind, lexeme string) error {
	r.Events = append(r.Events, Event{Op: OpLeaf, Kind: kind, Text: lexeme})
	return nil
}

func (r *Recorder) Close() error {
	r.Events = append(r.Events, Event{Op: OpClose})
	return nil
}

// Reset discards all recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

// Balanced checks that the recorded events form exactly one well-nested tree:
// the nesting depth never drops below zero, leaves only occur inside a node
// and the depth returns to zero exactly once, with the last event.
func (r *Recorder) Balanced() error {
	if len(r.Events) == 0 {
		return fmt.Errorf("%w: no events recorded", ErrNotOpen)
	}

	depth := 0
	for i, e := range r.Events {
		switch e.Op {
		case OpOpen:
			if depth == 0 && i > 0 {
				return fmt.Errorf("%w: event #%d %s", ErrMultipleRoots, i, e)
			}
			depth++
		case OpLeaf:
			if depth == 0 {
				return fmt.Errorf("%w: event #%d %s", ErrNotOpen, i, e)
			}
		case OpClose:
			if depth == 0 {
				return fmt.Errorf("%w: event #%d %s", ErrNotOpen, i, e)
			}
			depth--
		}
	}

	if depth != 0 {
		return fmt.Errorf("%w: %d node(s) left open", ErrUnclosed, depth)
	}
	return nil
}

// Replay emits all recorded events to e in order.
func (r *Recorder) Replay(e Emitter) error {
	for i, event := range r.Events {
		var err error
		switch event.Op {
		case OpOpen:
			err = e.Open(event.Name)
		case OpLeaf:
			err = e.Leaf(event.Kind, event.Text)
		case OpClose:
			err = e.Close()
		}
		if err != nil {
			return fmt.Errorf("replay of event #%d (%s) failed: %w", i, event, err)
		}
	}
	return nil
}
