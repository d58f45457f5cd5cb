// Package result persists one row of run history per pipeline invocation
// in a local SQLite database: run id, source record file, final score, the
// full metric mapping as JSON, and a timestamp. History is append-only;
// Recent returns the newest runs for inspection and regression comparison.
package result
