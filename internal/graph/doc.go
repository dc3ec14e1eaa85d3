// Package graph holds the dependency graph the evaluator walks: one vertex
// per node key, with directed edges from a node to each node it depends on.
// Dependency order is preserved as declared, because downstream failure
// aggregation and diagnostics are order-dependent. All operations on the
// graph are concurrency-safe.
package graph
