// Package organize runs the classify-and-place pipeline: every candidate
// file from the source directory is assigned a CATEGORY/BUCKET slot under
// the destination base and then moved or copied there.
//
// Each file is handled independently and processing order never changes the
// outcome. Dry-run computes and reports every decision without touching the
// filesystem. Overwrite decisions during moves are delegated to an injected
// Confirmer so non-interactive callers and tests can answer
// deterministically; copies overwrite silently, which mirrors the historical
// behavior of the tool.
package organize
