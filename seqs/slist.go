package seqs

import "github.com/csimplestring/cursor-go/cursor"

// SListCursor satisfies only the forward capability; there is no Prev, so
// backward-moving operations over it are rejected at compile time.
var _ cursor.Forward[SListCursor[string]] = SListCursor[string]{}

// SList is a singly linked list. Its cursors are forward-only.
type SList[T any] struct {
	head *slistNode[T]
	tail *slistNode[T]
	len  int
}

type slistNode[T any] struct {
	next *slistNode[T]
	val  T
}

func NewSList[T any](vals ...T) *SList[T] {
	l := &SList[T]{}
	for _, v := range vals {
		l.PushBack(v)
	}
	return l
}

func (l *SList[T]) Len() int {
	return l.len
}

func (l *SList[T]) PushBack(v T) SListCursor[T] {
	n := &slistNode[T]{val: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.len++
	return SListCursor[T]{n: n}
}

func (l *SList[T]) PushFront(v T) SListCursor[T] {
	n := &slistNode[T]{val: v, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
	return SListCursor[T]{n: n}
}

func (l *SList[T]) Front() SListCursor[T] {
	return SListCursor[T]{n: l.head}
}

// End returns the past-the-end position, shared by all SLists of the same
// element type: a cursor with no node.
func (l *SList[T]) End() SListCursor[T] {
	return SListCursor[T]{}
}

// SListCursor is a forward-only position inside an SList.
type SListCursor[T any] struct {
	n *slistNode[T]
}

func (c SListCursor[T]) Next() SListCursor[T] {
	return SListCursor[T]{n: c.n.next}
}

func (c SListCursor[T]) Equal(other SListCursor[T]) bool {
	return c.n == other.n
}

func (c SListCursor[T]) Get() T {
	return c.n.val
}

func (c SListCursor[T]) Ref() *T {
	return &c.n.val
}

func (c SListCursor[T]) Set(v T) {
	c.n.val = v
}
