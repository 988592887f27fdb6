package sortedlist

// element is a single link in the chain of a SortedList.
type element[T any] struct {
	// value is the value stored in the element.
	value T

	// next is the following element or nil if this is the last one.
	next *element[T]
}

// detach clears the outgoing link so that a removed element does not keep the rest of the chain reachable.
func (e *element[T]) detach() *element[T] {
	next := e.next
	e.next = nil

	return next
}
