package cache

// Node is an element of a List. It is owned by the list it was pushed to.
type Node[T any] struct {
	Value T

	prev *Node[T]
	next *Node[T]
	list *List[T]
}

// List is a doubly-linked list kept in recency order: the front is the most
// recently used element, the back the least recently used.
//
// The list is not thread-safe; callers must handle synchronization.
type List[T any] struct {
	head *Node[T]
	tail *Node[T]
	len  int
}

// NewList creates an empty list.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of nodes in the list.
func (l *List[T]) Len() int {
	return l.len
}

// PushFront adds v as the most recently used element.
// Returns the created node for later removal.
func (l *List[T]) PushFront(v T) *Node[T] {
	node := &Node[T]{Value: v, list: l}
	if l.head == nil {
		l.head = node
		l.tail = node
	} else {
		node.next = l.head
		l.head.prev = node
		l.head = node
	}
	l.len++
	return node
}

// MoveToFront marks node as the most recently used element.
func (l *List[T]) MoveToFront(node *Node[T]) {
	if node == nil || node.list != l || node == l.head {
		return
	}
	l.unlink(node)
	node.list = l
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.len++
}

// Remove takes node out of the list. Removing a node twice, or a node of
// another list, is a no-op.
func (l *List[T]) Remove(node *Node[T]) {
	if node == nil || node.list != l {
		return
	}
	l.unlink(node)
}

// PopBack removes and returns the least recently used element.
// Returns the zero value and false if the list is empty.
func (l *List[T]) PopBack() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	node := l.tail
	l.unlink(node)
	return node.Value, true
}

// Back returns the least recently used element without removing it.
func (l *List[T]) Back() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.Value, true
}

// Drain removes every element, returning them from most to least recently
// used.
func (l *List[T]) Drain() []T {
	out := make([]T, 0, l.len)
	for n := l.head; n != nil; {
		next := n.next
		n.prev, n.next, n.list = nil, nil, nil
		out = append(out, n.Value)
		n = next
	}
	l.head, l.tail, l.len = nil, nil, 0
	return out
}

func (l *List[T]) unlink(node *Node[T]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.prev = nil
	node.next = nil
	node.list = nil
	l.len--
}
