
/*
Package evalerr models how node failures aggregate across the evaluation
graph.

When a node fails, either because its function returned an error or because
it participates in a dependency cycle, the failure is captured once as an
immutable Summary. A node that did not fail itself but depends on failed
nodes combines its children's summaries into its own, and so on up to the
requested roots. A Summary is therefore ordinary data flowing through the
evaluator, not a fault in flight: it records which leaf nodes are to blame,
a representative cause to show the user, every cycle reachable below the
node, and whether the whole aggregate is worth retrying or must abort the
run.

Summaries are built only through FromFailure, FromCycle, and FromChildren.
Violating the construction contract (a summary explaining nothing, a cause
without its origin key, aggregating zero children) is a bug in the calling
evaluator, not a runtime condition, and panics immediately.

Everything in this package is immutable after construction and safe for
concurrent reads. A child's root-cause set is shared by reference into every
ancestor that aggregates it, which keeps repeated aggregation cheap across
large fan-in graphs; see the sharedset package.
*/
package evalerr
