// Package export serializes activity log entries and stock history samples to
// line-oriented interchange formats. JSONL writes one JSON object per line;
// CSV writes a header row followed by one record per line. Both formats are
// append-friendly so external tooling can tail a growing simulation log.
package export
