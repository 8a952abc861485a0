package fral

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fral/maybe"
)

// Fral is a persistent random-access list. An empty instance is usable as an
// empty list, i.e. this is legal:
//
//     f := fral.Fral[int]{}.Cons(42)
//
// returning a list of length 1 containing 42. Every operation leaves its
// receiver untouched and returns a new list value; copies share structure
// with their originals.
type Fral[T any] struct {
	length int
	spine  *digit[T]
}

// Immutable constructs an empty list.
//
// Use it like this:
//
//     f := fral.Immutable[string]()
//     f = f.Cons("World").Cons("Hello")
//
func Immutable[T any]() Fral[T] {
	return Fral[T]{}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in the list.
//
// Time: O(1)
func (f Fral[T]) Len() int {
	return f.length
}

// IsEmpty returns true iff the list contains no elements.
//
// Time: O(1)
func (f Fral[T]) IsEmpty() bool {
	return f.length == 0
}

// Cons returns a list with x prepended: x sits at index 0 and every element
// of f moves up by one index. f itself is unchanged.
//
// Time: O(1)
func (f Fral[T]) Cons(x T) Fral[T] {
	return Fral[T]{length: f.length + 1, spine: f.spine.cons(x)}
}

// Uncons splits the list into its front element and the list of the
// remaining elements. On an empty list ok is false and the returned list is
// f itself.
//
// Time: O(1)
func (f Fral[T]) Uncons() (head T, tail Fral[T], ok bool) {
	head, rest, ok := f.spine.uncons()
	if !ok {
		return head, f, false
	}
	assertThat(f.length > 0, "inconsistency: non-empty spine on a length-0 list")
	return head, Fral[T]{length: f.length - 1, spine: rest}, true
}

// Get returns the element at position i, counting from the front (0-based),
// or Nothing if i is out of range. Out-of-range lookups never panic.
//
// Time: O(log n)
func (f Fral[T]) Get(i int) maybe.Maybe[T] {
	if i < 0 {
		return maybe.Nothing[T]()
	}
	if x, ok := f.spine.get(i); ok {
		return maybe.Just(x)
	}
	return maybe.Nothing[T]()
}

// First returns the front element without splitting the list, or Nothing on
// an empty list. The front element always sits in the leading spine digit,
// so no descent is needed.
//
// Time: O(1)
func (f Fral[T]) First() maybe.Maybe[T] {
	if f.spine == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(f.spine.tree.item)
}

func (f Fral[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	first := true
	for it := f.Iterator(); it.Next(); {
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(fmt.Sprintf("%v", it.Value()))
	}
	b.WriteByte(']')
	return b.String()
}

// --- Equality and hashing --------------------------------------------------

// Equal reports whether two lists hold equal elements in equal order.
//
// Time: O(n)
func Equal[T comparable](a, b Fral[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison, for element
// types that are not comparable.
func EqualFunc[T any](a, b Fral[T], eq func(T, T) bool) bool {
	if a.length != b.length {
		return false
	}
	for {
		x, resta, oka := a.Uncons()
		y, restb, _ := b.Uncons()
		if !oka {
			return true // both exhausted, lengths are equal
		}
		if !eq(x, y) {
			return false
		}
		a, b = resta, restb
	}
}

// Hash folds an element hash over the list front to back, suitable for use
// in hash maps. Lists that are Equal hash to the same value; order matters.
//
// Time: O(n)
func Hash[T any](f Fral[T], hash func(T) uint32) uint32 {
	h := uint32(5381)
	for it := f.Iterator(); it.Next(); {
		h = h<<5 + h + hash(it.Value())
	}
	return h
}
