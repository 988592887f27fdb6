package sortedlist

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/stringify"
)

// region SortedList ///////////////////////////////////////////////////////////////////////////////////////////////////

// SortedList is a singly linked list that keeps its values in ascending order.
//
// The zero value is not usable. Use New, NewComparable or NewWithComparator to create a SortedList.
//
// The list is not safe for concurrent use. Callers that share a SortedList between goroutines need to guard every
// call with their own lock.
type SortedList[T any] struct {
	// root is the sentinel element in front of the first value of the list.
	root element[T]

	// rear is the last element of the list or the sentinel if the list is empty.
	rear *element[T]

	// size is the number of elements excluding the sentinel.
	size int

	// compare returns a negative number, zero or a positive number if a is smaller, equal or larger than b.
	compare func(a, b T) int
}

// New returns an empty SortedList for a type that supports the ordering operators.
func New[T constraints.Ordered]() *SortedList[T] {
	return NewWithComparator(lo.Comparator[T])
}

// NewComparable returns an empty SortedList for a type that orders itself through a Compare method.
func NewComparable[T constraints.Comparable[T]]() *SortedList[T] {
	return NewWithComparator(func(a, b T) int {
		return a.Compare(b)
	})
}

// NewWithComparator returns an empty SortedList that orders its values with the given three-way comparison.
//
// Panics raised by the comparator are not recovered and reach the caller of the operation that triggered them.
func NewWithComparator[T any](compare func(a, b T) int) *SortedList[T] {
	if compare == nil {
		panic("comparator must not be nil")
	}

	return (&SortedList[T]{compare: compare}).Init()
}

// Init initializes or clears the SortedList.
func (l *SortedList[T]) Init() *SortedList[T] {
	for current := l.root.detach(); current != nil; {
		current = current.detach()
	}

	l.rear = &l.root
	l.size = 0

	return l
}

// Insert adds the value in front of the first value that is not smaller than it.
func (l *SortedList[T]) Insert(value T) {
	predecessor := l.rear
	if l.size != 0 && l.compare(l.rear.value, value) >= 0 {
		predecessor = l.predecessor(value)
	}

	inserted := &element[T]{value: value, next: predecessor.next}
	predecessor.next = inserted
	if inserted.next == nil {
		l.rear = inserted
	}

	l.size++
}

// DeleteFront removes the first value. It does nothing if the SortedList is empty.
func (l *SortedList[T]) DeleteFront() {
	if l.size == 0 {
		return
	}

	l.unlink(&l.root)
}

// DeleteRear removes the last value. It does nothing if the SortedList is empty.
//
// Elements only link forward, so finding the new rear takes a full walk of the list.
func (l *SortedList[T]) DeleteRear() {
	if l.size == 0 {
		return
	}

	predecessor := &l.root
	for predecessor.next != l.rear {
		predecessor = predecessor.next
	}

	l.unlink(predecessor)
}

// DeleteValue removes one value that compares equal to the given value and returns true if such a value existed.
func (l *SortedList[T]) DeleteValue(value T) (deleted bool) {
	if l.size == 0 {
		return false
	}

	if l.compare(l.root.next.value, value) == 0 {
		l.DeleteFront()

		return true
	}

	if l.compare(l.rear.value, value) == 0 {
		l.DeleteRear()

		return true
	}

	predecessor := l.predecessor(value)
	if predecessor.next == nil || l.compare(predecessor.next.value, value) != 0 {
		return false
	}

	l.unlink(predecessor)

	return true
}

// Contains returns true if the SortedList holds a value that compares equal to the given value.
func (l *SortedList[T]) Contains(value T) (contains bool) {
	if l.size == 0 {
		return false
	}

	candidate := l.predecessor(value).next

	return candidate != nil && l.compare(candidate.value, value) == 0
}

// Front returns the smallest value or ErrEmptyStructure if the SortedList is empty.
func (l *SortedList[T]) Front() (value T, err error) {
	if l.size == 0 {
		return value, ierrors.Wrap(ErrEmptyStructure, "failed to retrieve front")
	}

	return l.root.next.value, nil
}

// Rear returns the largest value or ErrEmptyStructure if the SortedList is empty.
func (l *SortedList[T]) Rear() (value T, err error) {
	if l.size == 0 {
		return value, ierrors.Wrap(ErrEmptyStructure, "failed to retrieve rear")
	}

	return l.rear.value, nil
}

// Size returns the number of values in the SortedList.
func (l *SortedList[T]) Size() int {
	return l.size
}

// IsEmpty returns true if the SortedList holds no values.
func (l *SortedList[T]) IsEmpty() bool {
	return l.size == 0
}

// Traverse returns a sequence over all values in ascending order. Every iteration starts again at the first value.
//
// The SortedList must not be modified while the sequence is consumed.
func (l *SortedList[T]) Traverse() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := l.root.next; current != nil; current = current.next {
			if !yield(current.value) {
				return
			}
		}
	}
}

// Values returns a slice of all values in ascending order.
func (l *SortedList[T]) Values() []T {
	return slices.AppendSeq(make([]T, 0, l.size), l.Traverse())
}

// String returns a human-readable version of the SortedList.
func (l *SortedList[T]) String() string {
	return stringify.Struct("SortedList",
		stringify.NewStructField("size", l.size),
		stringify.NewStructField("values", "["+strings.Join(lo.Map(l.Values(), func(value T) string {
			return fmt.Sprint(value)
		}), ", ")+"]"),
	)
}

// predecessor returns the last element whose value is smaller than the given value, or the sentinel if there is none.
func (l *SortedList[T]) predecessor(value T) *element[T] {
	current := &l.root
	for current.next != nil && l.compare(current.next.value, value) < 0 {
		current = current.next
	}

	return current
}

// unlink removes the successor of the given element.
func (l *SortedList[T]) unlink(predecessor *element[T]) {
	removed := predecessor.next
	predecessor.next = removed.detach()

	if l.rear == removed {
		l.rear = predecessor
	}

	l.size--
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
