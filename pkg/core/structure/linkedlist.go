package structure

import (
	"iter"

	"bidindex/pkg/common"
)

type listNode struct {
	record common.Record
	next   *listNode
}

// LinkedList is an unordered, singly linked list of records kept in
// insertion order. Each node is owned by its predecessor, the head by the list.
type LinkedList struct {
	head *listNode
	tail *listNode
	size int
}

func NewLinkedList() *LinkedList {
	return &LinkedList{}
}

// Append adds r after the current tail.
func (l *LinkedList) Append(r common.Record) {
	n := &listNode{record: r}
	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// Prepend adds r in front of the current head.
func (l *LinkedList) Prepend(r common.Record) {
	n := &listNode{record: r, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// Search returns the first record with the given id, or the empty record.
func (l *LinkedList) Search(id string) common.Record {
	for n := l.head; n != nil; n = n.next {
		if n.record.ID == id {
			return n.record
		}
	}
	return common.Empty()
}

// Remove unlinks the first record with the given id and reports whether one was found.
func (l *LinkedList) Remove(id string) bool {
	var prev *listNode
	for n := l.head; n != nil; prev, n = n, n.next {
		if n.record.ID != id {
			continue
		}
		if prev == nil {
			l.head = n.next
		} else {
			prev.next = n.next
		}
		if l.tail == n {
			l.tail = prev
		}
		n.next = nil
		l.size--
		return true
	}
	return false
}

func (l *LinkedList) Size() int {
	return l.size
}

func (l *LinkedList) IsEmpty() bool {
	return l.head == nil
}

// All yields every record from head to tail. The list must not be modified
// while the sequence is being consumed.
func (l *LinkedList) All() iter.Seq[common.Record] {
	return func(yield func(common.Record) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.record) {
				return
			}
		}
	}
}
