// Package bitops provides the scalar 64-bit bit-twiddling primitives that
// every higher layer of the solver is built from: bit-scan, population
// count, and inclusive range masks.
//
// All functions here operate on a single uint64 word, are pure, and never
// allocate. Where the standard library exposes a hardware intrinsic
// (math/bits), it is used directly — that is the idiomatic Go equivalent of
// the CTZ/CLZ/POPCNT instructions the functions are specified against. The
// classic portable fallbacks (a de Bruijn perfect hash for the lowest set
// bit, a flood-fill-then-popcount for the highest set bit, a SWAR
// mask-and-shift tree for popcount) are kept alongside as unexported
// reference implementations and are exercised by this package's tests to
// confirm they agree with the hardware path bit-for-bit.
package bitops
