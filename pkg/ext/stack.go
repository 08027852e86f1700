package ext

// Stack is a generic implementation of a Stack.
type Stack[T any] []T

func (s *Stack[T]) Push(v T) {
	*s = append(*s, v)
}

// Pop removes and returns the top element.
// The second result is false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.Empty() {
		return zero, false
	}
	top := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return top, true
}

// Top returns the top element without removing it.
// The second result is false if the stack is empty.
func (s *Stack[T]) Top() (T, bool) {
	var zero T
	if s.Empty() {
		return zero, false
	}
	return (*s)[len(*s)-1], true
}

func (s *Stack[T]) Len() int {
	return len(*s)
}

func (s *Stack[T]) Empty() bool {
	return len(*s) == 0
}
