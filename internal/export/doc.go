// Package export writes the latest pipeline run to a file in Prometheus
// text exposition format, suitable for a node-exporter textfile collector.
// Two gauge families are emitted: astroscore_score with the final score for
// the run, and astroscore_metric_value with one series per derived metric.
// The file is written atomically (temp file then rename) so a collector
// never reads a partial exposition.
package export
