// Package hexfmt implements the external textual interfaces a Board
// consumer needs: parsing a glyph stream into a Board, rendering a
// round-trippable state string, and rendering a human-readable board
// with a caller-supplied glyph mapping.
//
// These are the "external collaborator" concerns — textual parsing and
// formatted rendering are explicitly out of the core's scope, kept in
// their own package the way format-conversion and rendering helpers are
// normally separated from an algorithmic core.
package hexfmt
