// Package config defines the format-agnostic model of a grid: the set of
// node declarations the evaluator turns into a dependency graph. The model
// is produced by a format-specific loader (see the hclgrid package) and is
// the single source of truth for the graph and executor packages.
package config
