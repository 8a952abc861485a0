/*
Package maybe provides an option type: a value of type Maybe[T] either holds
a value of T (Just) or holds nothing (Nothing). It is the result type for
partial operations like an out-of-range list lookup, replacing sentinel
values and panics by an explicit presence check.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

import "fmt"

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	Value() (T, bool)
	IsNothing() bool
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Value unwraps: it returns the held value and true, or the zero value for T
// and false.
func (m maybe[T]) Value() (T, bool) {
	return m.value, m.tag
}

// IsNothing returns true iff m holds no value.
func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

// WithDefault unwraps m, substituting def for Nothing.
func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to a present value; Nothing stays Nothing.
func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) String() string {
	if !m.tag {
		return "Nothing"
	}
	return fmt.Sprintf("Just(%v)", m.value)
}

// AndThen chains a partial computation onto an optional input: Nothing
// propagates, a present value is fed to f.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map lifts f over an optional value.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Just(f(v))
	case m.Nothing():
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher supports case analysis on a Maybe in switch form:
//
//     var v int
//     switch m := x.Match(); m {
//     case m.Just(&v):
//         // v is bound to the held value
//     case m.Nothing():
//         // x was absent
//     }
//
// Exactly one case matches.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

// Match starts case analysis on m.
func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
