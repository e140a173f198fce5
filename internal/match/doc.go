// Package match holds the tagged-span data model shared by every
// disambiguation rule: matches, path markers, and the query surface over one
// normalized file name.
//
// A Collection is the single mutable structure the rule pipeline operates on.
// Matches are tagged, offset-addressed substrings of the input; path markers
// delimit the hierarchical segments the name was split from and are immutable.
// Rules query the collection by tag, adjacency, range, and unmatched gaps
// ("holes"), and mutate it through Remove, Append, and Relabel only.
//
// Ownership is sequential: one rule at a time reads and mutates the
// collection, and later rules observe every mutation made by earlier ones.
// Nothing in this package is safe for concurrent use and nothing needs to be.
package match
