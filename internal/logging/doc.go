// Package logging builds the slog loggers used across c64org.
//
// Two output formats are supported: a compact console format for humans and
// line-delimited JSON for machine consumption. Runs are correlated through a
// run_id attribute attached by the CLI. Structured logs go to stderr so they
// never interleave with the reporter lines the tool prints on stdout.
package logging
