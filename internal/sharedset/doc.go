
/*
Package sharedset provides an immutable ordered set with structural sharing.

A Set is built from direct elements plus references to previously built sets.
Construction cost is proportional to the number of direct elements and the
number of merged-in sets, never to the merged sets' sizes: the merged sets are
retained by reference, not copied. This keeps repeated unions cheap when the
same sets are merged again and again at the fan-in points of a large graph,
where eager copying would be quadratic.

Iteration yields each element once, in compile order: a set's own direct
elements first, in insertion order, then the elements of each merged set in
merge order. The order is fixed for the lifetime of the set, so two sets built
from equivalent inputs always iterate identically. The flattened form is
computed lazily and memoized on first use, which is safe because a Set never
changes after construction.

Because Sets are immutable, they may be read from any number of goroutines
concurrently without locking, and a single Set may be a component of many
larger Sets at once.
*/
package sharedset
