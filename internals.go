package fral

import (
	"fmt"
	"strings"
)

// digit is one cell of the spine: a perfect binary tree of `size` elements,
// linked to the next cell. A nil *digit is the empty spine. Reading sizes
// front to back yields the skew-binary representation of the list length:
// every size is 2^k-1, sizes never decrease, and at most the two leading
// digits may be equal. Only cons and uncons produce digits, and both keep
// this invariant.
type digit[T any] struct {
	size int
	tree *tnode[T]
	next *digit[T]
}

// tnode is a node of a perfect binary tree. Each node carries one element;
// in list order the element precedes both sub-trees. A leaf has both links
// nil, an inner node has both links set, with sub-trees of equal size.
type tnode[T any] struct {
	item  T
	left  *tnode[T]
	right *tnode[T]
}

func leaf[T any](x T) *tnode[T] {
	return &tnode[T]{item: x}
}

func (t *tnode[T]) isLeaf() bool {
	return t.left == nil
}

// cons prepends x and returns the new spine head. The receiver is never
// modified; every tree of the receiver is shared with the result.
//
// Two of the three shapes a spine can have in front ask for the same move:
// if the two leading digits differ in size (or fewer than two digits exist),
// a fresh singleton digit is pushed in front of the unchanged spine. Only
// when the two leading digits are of equal size do they merge, fusing under
// a new root that carries x. A merge replaces two digits by one, so it can
// never cascade, which is what makes cons O(1) worst case.
func (d *digit[T]) cons(x T) *digit[T] {
	if d == nil || d.next == nil || d.size != d.next.size {
		return &digit[T]{size: 1, tree: leaf(x), next: d}
	}
	return &digit[T]{
		size: 1 + d.size + d.next.size,
		tree: &tnode[T]{item: x, left: d.tree, right: d.next.tree},
		next: d.next.next,
	}
}

// uncons splits off the front element and returns it together with the
// remaining spine. The structural inverse of cons: a leading leaf digit is
// dropped, a leading tree digit splits into its two half-sized sub-trees,
// both reused by reference. No tree node is ever built or copied here.
func (d *digit[T]) uncons() (T, *digit[T], bool) {
	if d == nil {
		var none T
		return none, nil, false
	}
	t := d.tree
	if t.isLeaf() {
		return t.item, d.next, true
	}
	half := d.size / 2
	rest := &digit[T]{
		size: half,
		tree: t.left,
		next: &digit[T]{size: half, tree: t.right, next: d.next},
	}
	return t.item, rest, true
}

// get walks the spine until index falls inside a digit, then descends that
// digit's tree. Running off the spine means the index is out of range.
func (d *digit[T]) get(index int) (T, bool) {
	for ; d != nil; d = d.next {
		if index < d.size {
			return d.tree.lookup(d.size, index)
		}
		index -= d.size
	}
	var none T
	return none, false
}

// lookup finds the element at index within a tree of known size. Index 0 is
// the node's own element; otherwise the element lives in the left sub-tree
// for index <= half and in the right one beyond that, each sub-tree holding
// half = size/2 elements.
func (t *tnode[T]) lookup(size, index int) (T, bool) {
	if index == 0 {
		return t.item, true
	}
	if t.isLeaf() {
		var none T
		return none, false
	}
	half := size / 2
	if index <= half {
		return t.left.lookup(half, index-1)
	}
	return t.right.lookup(half, index-1-half)
}

// spineLen counts the digits of a spine.
func (d *digit[T]) spineLen() int {
	n := 0
	for ; d != nil; d = d.next {
		n++
	}
	return n
}

func (d *digit[T]) String() string {
	b := strings.Builder{}
	b.WriteRune('⟨')
	for s := d; s != nil; s = s.next {
		if s != d {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%d", s.size))
	}
	b.WriteRune('⟩')
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("fral: "+msg, msgargs...)
		panic(msg)
	}
}
