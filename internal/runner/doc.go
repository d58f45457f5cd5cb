// Package runner drives the derive-then-score pipeline for observation
// record files.
//
// A Runner owns the scoring tables, the optional run-history store, and the
// optional textfile exporter. EvaluateFile runs one record through the
// pipeline; Watch monitors the records directory with fsnotify and
// evaluates each record file as it is written. Failures are per record —
// a bad record is logged and skipped, and the watcher keeps running.
//
// The scoring tables are fixed for the lifetime of the Runner; only record
// files are picked up dynamically.
package runner
