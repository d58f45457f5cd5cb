// Package physics is a library of elementary astrophysics formulas.
//
// Every function is a free, pure function over float64 scalars: identical
// inputs always produce identical outputs, and nothing is cached or retried.
// Functions do not validate their domains — an out-of-domain input (zero
// radius, superluminal velocity, negative density) yields NaN or an infinity
// exactly as IEEE 754 arithmetic dictates, and callers are expected to detect
// non-finite results.
//
// Formulas are grouped by physical domain: relativity.go, quantum.go,
// stellar.go, cosmology.go, orbital.go, plasma.go. Shared physical constants
// live in constants.go.
package physics
