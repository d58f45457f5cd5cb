// Package score reduces a derived metric mapping to one scalar reward.
//
// Tables holds the reference values and per-metric weights. Both maps are
// built once — from Defaults or Load — and passed explicitly to Score; there
// is no package-level table state, so shared Tables values are safe for
// concurrent readers.
//
// The score is 1/(1 + sum(w * |v - r| / r)) over every metric present in
// the mapping: exactly 1 on a perfect match, falling toward (but never
// reaching) 0 as weighted deviation grows. The sum is deliberately not
// normalized by metric count or total weight — the reference table is
// calibrated against the raw sum, so adding metrics or raising weights can
// only lower the score for a fixed deviation profile.
//
// A metric missing from either table fails the call rather than being
// skipped, and a zero reference value fails the call rather than producing
// an infinite deviation.
package score
