// Package listrange provides Range, a read-only window over a backing slice.
//
// A Range never copies its elements: slicing a Range yields another Range
// over the same storage, and the absolute offset of every element stays
// available so that callers can relate a sub-range back to the original
// sequence (for example to find the token that follows a statement).
package listrange

import (
	"fmt"
	"iter"
)

// Range is a view of length elements of items starting at offset.
// The invariant offset+length <= len(items) holds for every Range.
type Range[T any] struct {
	items  []T
	offset int
	length int
}

// New returns a Range covering all of items.
func New[T any](items []T) Range[T] {
	return Range[T]{items: items, length: len(items)}
}

// Len returns the number of elements in the view.
func (r Range[T]) Len() int {
	return r.length
}

// Empty reports whether the view has no elements.
func (r Range[T]) Empty() bool {
	return r.length == 0
}

// Offset returns the absolute index of the first element in the backing slice.
func (r Range[T]) Offset() int {
	return r.offset
}

// At returns element i of the view. It panics if i is out of range.
func (r Range[T]) At(i int) T {
	if i < 0 || i >= r.length {
		panic(fmt.Sprintf("listrange: index %d out of range [0:%d]", i, r.length))
	}
	return r.items[r.offset+i]
}

// Last returns the final element. It panics on an empty view.
func (r Range[T]) Last() T {
	return r.At(r.length - 1)
}

// Slice returns the view of length elements starting at start.
// It panics if the requested window exceeds the view.
func (r Range[T]) Slice(start, length int) Range[T] {
	if start < 0 || length < 0 || start+length > r.length {
		panic(fmt.Sprintf("listrange: slice [%d:%d] out of range [0:%d]", start, start+length, r.length))
	}
	return Range[T]{items: r.items, offset: r.offset + start, length: length}
}

// From returns the view from start to the end.
func (r Range[T]) From(start int) Range[T] {
	return r.Slice(start, r.length-start)
}

// To returns the first end elements.
func (r Range[T]) To(end int) Range[T] {
	return r.Slice(0, end)
}

// Following returns the element just past the end of the view in the
// backing slice, if there is one.
func (r Range[T]) Following() (T, bool) {
	next := r.offset + r.length
	if next < len(r.items) {
		return r.items[next], true
	}
	var zero T
	return zero, false
}

// Preceding returns the element just before the start of the view in the
// backing slice, if there is one.
func (r Range[T]) Preceding() (T, bool) {
	if r.offset > 0 {
		return r.items[r.offset-1], true
	}
	var zero T
	return zero, false
}

// Items returns the viewed elements as a slice sharing the backing storage.
// The capacity is clipped so appends cannot write past the view.
func (r Range[T]) Items() []T {
	return r.items[r.offset : r.offset+r.length : r.offset+r.length]
}

// All iterates over the view with indices relative to its start.
func (r Range[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range r.length {
			if !yield(i, r.items[r.offset+i]) {
				return
			}
		}
	}
}
