// Package pattern implements Pattern<S>: the proof witness a search
// returns — either a single winning Threat or a Fork of opponent
// threats the side to move cannot simultaneously answer — along with
// its cost metric, solidity check, and fork minimisation.
//
// Pattern is a tagged union expressed the way this codebase expresses
// sum types elsewhere: one struct with a Kind discriminant and the
// fields relevant to each kind, rather than an interface with several
// implementations. A Threat's sub-pattern and a Fork's tines are
// pointer/slice-held rather than embedded by value, since Go cannot
// express a struct containing itself by value. Children can be shared
// between Patterns (a MinimumFork result reuses the original fork's
// tines and their sub-trees); no method mutates a Pattern after
// construction, so the sharing is never observable.
package pattern
