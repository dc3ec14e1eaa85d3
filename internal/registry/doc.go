// Package registry maps function-kind tags to the compiled Go functions that
// evaluate nodes of that kind.
//
// Built-in function modules register themselves at application startup; the
// executor looks functions up by the kind tag carried in each node's key.
// Registering two functions under one kind is a wiring bug and panics
// immediately rather than letting the ambiguity surface mid-run.
package registry
