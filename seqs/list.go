package seqs

import "github.com/csimplestring/cursor-go/cursor"

var _ cursor.Bidi[ListCursor[string]] = ListCursor[string]{}

// List is a doubly linked list with a sentinel root node. End is the
// sentinel, Front equals End when the list is empty, and Back is the last
// element. Cursor equality is node identity.
type List[T any] struct {
	root listNode[T]
	len  int
}

type listNode[T any] struct {
	prev, next *listNode[T]
	val        T
}

func NewList[T any](vals ...T) *List[T] {
	l := &List[T]{}
	l.root.next = &l.root
	l.root.prev = &l.root
	for _, v := range vals {
		l.PushBack(v)
	}
	return l
}

func (l *List[T]) Len() int {
	return l.len
}

// PushBack appends v and returns its position.
func (l *List[T]) PushBack(v T) ListCursor[T] {
	n := &listNode[T]{val: v, prev: l.root.prev, next: &l.root}
	n.prev.next = n
	n.next.prev = n
	l.len++
	return ListCursor[T]{n: n}
}

// PushFront prepends v and returns its position.
func (l *List[T]) PushFront(v T) ListCursor[T] {
	n := &listNode[T]{val: v, prev: &l.root, next: l.root.next}
	n.prev.next = n
	n.next.prev = n
	l.len++
	return ListCursor[T]{n: n}
}

func (l *List[T]) Front() ListCursor[T] {
	return ListCursor[T]{n: l.root.next}
}

func (l *List[T]) Back() ListCursor[T] {
	return ListCursor[T]{n: l.root.prev}
}

// End returns the past-the-end sentinel position.
func (l *List[T]) End() ListCursor[T] {
	return ListCursor[T]{n: &l.root}
}

// Values copies the list contents into a slice, front to back.
func (l *List[T]) Values() []T {
	res := make([]T, 0, l.len)
	for c := l.Front(); !c.Equal(l.End()); c = c.Next() {
		res = append(res, c.Get())
	}
	return res
}

// ListCursor is a position inside a List. The zero value is not a valid
// position; obtain cursors from the list.
type ListCursor[T any] struct {
	n *listNode[T]
}

func (c ListCursor[T]) Next() ListCursor[T] {
	return ListCursor[T]{n: c.n.next}
}

func (c ListCursor[T]) Prev() ListCursor[T] {
	return ListCursor[T]{n: c.n.prev}
}

func (c ListCursor[T]) Equal(other ListCursor[T]) bool {
	return c.n == other.n
}

func (c ListCursor[T]) Get() T {
	return c.n.val
}

func (c ListCursor[T]) Ref() *T {
	return &c.n.val
}

func (c ListCursor[T]) Set(v T) {
	c.n.val = v
}
