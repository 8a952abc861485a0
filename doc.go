/*
Package fral implements a persistent (immutable) random-access list.

A functional random-access list is a sequence type with lookup in O(log n)
and cons/uncons (prepend and head/tail split) in O(1), introduced in
Chris Okasaki's 1995 ACM FPCA paper “Purely Functional Random-Access Lists”.
Under the hood a list is a front-to-back chain of perfect binary trees whose
sizes follow the skew-binary number system, which is what bounds both
prepending and splitting to constant time.

Lists have copy-on-write behaviour: every “modification” returns a new list
value, leaving the original untouched. Most of the structure is shared
between original and copy, transparently to clients, so copies are cheap in
both time and space. Because no node is ever mutated after construction, any
number of goroutines may read lists that share structure without locking;
handles may be passed across goroutine boundaries freely.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fral

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fral'.
func tracer() tracing.Trace {
	return tracing.Select("fral")
}
