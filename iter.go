package fral

// Iterator produces the elements of a list front to back. It owns a private
// list handle which it replaces after every step, so the list the iterator
// was created from never changes; taking a second iterator from the same
// list restarts from the front.
//
//     for it := f.Iterator(); it.Next(); {
//         doSomethingWith(it.Value())
//     }
//
type Iterator[T any] struct {
	fral Fral[T]
	item T
}

// Iterator creates an iterator positioned before the front of the list.
func (f Fral[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{fral: f}
}

// Next advances the iterator to the next element, returning false when the
// list is exhausted.
func (it *Iterator[T]) Next() bool {
	head, tail, ok := it.fral.Uncons()
	if !ok {
		return false
	}
	it.item, it.fral = head, tail
	return true
}

// Value returns the element Next has advanced to. Only valid after a call
// to Next that returned true.
func (it *Iterator[T]) Value() T {
	return it.item
}

// Len returns the number of elements not yet produced.
func (it *Iterator[T]) Len() int {
	return it.fral.Len()
}

// --- Construction ----------------------------------------------------------

// FromSlice builds a list by repeated Cons over the slice, front to back.
// Consequently the slice's last element ends up at index 0 and its first
// element at index len-1 — reverse the slice first if that is not what you
// want. Paying an O(n) reversal pass here instead would defeat the point of
// cons-based construction.
func FromSlice[T any](items []T) Fral[T] {
	f := Immutable[T]()
	for _, x := range items {
		f = f.Cons(x)
	}
	tracer().Debugf("built list of %d elements, spine = %s", f.length, f.spine)
	return f
}

// Collect drains an iterator into a new list by repeated Cons, with the same
// order reversal as FromSlice: the iterator's last element ends up at
// index 0.
func Collect[T any](it *Iterator[T]) Fral[T] {
	f := Immutable[T]()
	for it.Next() {
		f = f.Cons(it.Value())
	}
	tracer().Debugf("collected %d elements, spine = %s", f.length, f.spine)
	return f
}

// Slice returns the elements of the list in list order as a fresh slice.
//
// Time: O(n)
func (f Fral[T]) Slice() []T {
	s := make([]T, 0, f.length)
	for it := f.Iterator(); it.Next(); {
		s = append(s, it.Value())
	}
	return s
}
