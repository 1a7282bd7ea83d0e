package ds

import "github.com/quintans/lineards/internal/lib/render"

// Stack is a LIFO of ints built on a node chain. Push and Pop only touch the head.
type Stack struct {
	head  *node
	count int
}

func NewStack() *Stack {
	return &Stack{}
}

func (s *Stack) Push(value int) {
	s.head = &node{
		value: value,
		next:  s.head,
	}
	s.count++
}

func (s *Stack) Pop() (int, error) {
	if s.head == nil {
		return 0, emptyError("pop")
	}
	n := s.head
	s.head = n.next
	s.count--
	return n.release(), nil
}

func (s *Stack) Peek() (int, error) {
	if s.head == nil {
		return 0, emptyError("peek")
	}
	return s.head.value, nil
}

func (s *Stack) IsEmpty() bool {
	return s.count == 0
}

func (s *Stack) Len() int {
	return s.count
}

// Values returns the elements from top to bottom.
func (s *Stack) Values() []int {
	return chainValues(s.head, s.count)
}

func (s *Stack) Clear() {
	releaseChain(s.head)
	s.head = nil
	s.count = 0
}

func (s *Stack) String() string {
	return render.Format(render.Arrow, s.Values())
}
