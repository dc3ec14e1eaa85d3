// Package hclgrid provides the HCL implementation of the grid loader
// interface defined in the config package. It parses `node` blocks from one
// .hcl file or a directory of them, resolves argument expressions to cty
// values, and validates the resulting model's internal references.
package hclgrid
