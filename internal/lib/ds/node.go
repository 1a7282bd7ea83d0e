package ds

// node is owned by exactly one reference: the container head or its predecessor.
type node struct {
	value int
	next  *node
}

// release detaches n from the chain so it holds no reference to live nodes.
func (n *node) release() int {
	v := n.value
	n.next = nil
	return v
}

func chainValues(head *node, count int) []int {
	values := make([]int, 0, count)
	for n := head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

func chainContains(head *node, value int) bool {
	for n := head; n != nil; n = n.next {
		if n.value == value {
			return true
		}
	}
	return false
}

// releaseChain unlinks every node from head onwards.
func releaseChain(head *node) {
	for head != nil {
		next := head.next
		head.release()
		head = next
	}
}
