package ds

import "github.com/quintans/lineards/internal/lib/render"

// Last selects the tail in RemoveAt.
const Last = -1

// LinkedList is a singly linked list of ints. The zero value is an empty list.
type LinkedList struct {
	head  *node
	tail  *node
	count int
}

func NewLinkedList(values ...int) *LinkedList {
	l := &LinkedList{}
	for _, v := range values {
		l.Append(v)
	}
	return l
}

func (l *LinkedList) Len() int {
	return l.count
}

func (l *LinkedList) IsEmpty() bool {
	return l.count == 0
}

// Append adds value at the tail. Appending to an empty list sets the head.
func (l *LinkedList) Append(value int) {
	n := &node{value: value}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.count++
}

func (l *LinkedList) PushFront(value int) {
	l.head = &node{value: value, next: l.head}
	if l.tail == nil {
		l.tail = l.head
	}
	l.count++
}

// RemoveAt removes and returns the element at the zero based index.
// Passing Last removes the tail.
func (l *LinkedList) RemoveAt(index int) (int, error) {
	if l.count == 0 {
		return 0, emptyError("remove at")
	}
	if index == Last {
		index = l.count - 1
	}
	if index < 0 || index >= l.count {
		return 0, indexError("remove at", index, l.count)
	}
	if index == 0 {
		return l.popHead(), nil
	}

	prev := l.head
	for i := 0; i < index-1; i++ {
		prev = prev.next
	}
	n := prev.next
	prev.next = n.next
	if n == l.tail {
		l.tail = prev
	}
	l.count--
	return n.release(), nil
}

func (l *LinkedList) RemoveLast() (int, error) {
	return l.RemoveAt(Last)
}

func (l *LinkedList) PopFront() (int, error) {
	if l.count == 0 {
		return 0, emptyError("pop front")
	}
	return l.popHead(), nil
}

func (l *LinkedList) PopBack() (int, error) {
	if l.count == 0 {
		return 0, emptyError("pop back")
	}
	return l.RemoveAt(Last)
}

func (l *LinkedList) popHead() int {
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.count--
	return n.release()
}

func (l *LinkedList) PeekFirst() (int, error) {
	if l.head == nil {
		return 0, emptyError("peek first")
	}
	return l.head.value, nil
}

func (l *LinkedList) PeekLast() (int, error) {
	if l.tail == nil {
		return 0, emptyError("peek last")
	}
	return l.tail.value, nil
}

func (l *LinkedList) Contains(value int) bool {
	return chainContains(l.head, value)
}

// Values returns a snapshot of the elements from head to tail.
func (l *LinkedList) Values() []int {
	return chainValues(l.head, l.count)
}

// Clear releases every node.
func (l *LinkedList) Clear() {
	releaseChain(l.head)
	l.head = nil
	l.tail = nil
	l.count = 0
}

func (l *LinkedList) String() string {
	return render.Format(render.Python, l.Values())
}
