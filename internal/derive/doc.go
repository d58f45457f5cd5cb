// Package derive computes the 28-metric mapping for one observation record.
//
// Derive(record, time) runs every metric function in Keys order and returns
// the completed mapping. Each metric is an independent composition of one or
// more physics formulas — no metric reads another metric's output — so the
// computation is a flat fan-out over the record. The engine holds no state:
// calls are deterministic, never cached, and safe to run concurrently as
// long as each caller supplies its own record.
//
// A metric that evaluates to NaN or an infinity (zero radius, zero velocity,
// and similar out-of-domain inputs) aborts the whole call; Derive never
// returns a partial mapping.
package derive
