
/*
Package nodeid provides the identity of one node in the evaluation graph.

A node is one memoized computation instance, identified by the pair
(function kind, argument key) and rendered canonically as `fn(arg)`,
e.g., `file_hash(src/main.c)`.

Keys are plain comparable values: they may be used directly as map keys,
compared with ==, and totally ordered via Compare. This package centralizes
all formatting and parsing logic for the identifier schema.
*/
package nodeid
