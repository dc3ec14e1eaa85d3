// Package executor evaluates a grid's dependency graph concurrently.
//
// Nodes with no unmet dependencies are fed to a pool of workers. A node
// whose function returns an error is summarized with evalerr.FromFailure; a
// node caught in a dependency cycle is failed up front with
// evalerr.FromCycle before any worker runs; and a node whose dependencies
// failed is not run at all: its summary is built with evalerr.FromChildren
// over the failed dependencies in declaration order. Failure therefore
// flows upward through the graph as data, and the executor only decides
// scheduling: a catastrophic summary cancels the run unconditionally, any
// other failure cancels it unless keep-going is set.
package executor
