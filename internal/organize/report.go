package organize

// Reporter receives the user-facing progress lines for verbose and dry-run
// output. The CLI installs a colorized terminal reporter; tests capture the
// calls directly.
type Reporter interface {
	DirectoryCreated(path string)
	SimulatedOperation(action Action, source, destDir string)
	FileExists(path string)
	Skipped(source string)
	Moved(source, dest string)
	Copied(source, dest string)
}

// NopReporter ignores every event. Used when neither verbose nor dry-run
// is active.
type NopReporter struct{}

func (NopReporter) DirectoryCreated(string)                   {}
func (NopReporter) SimulatedOperation(Action, string, string) {}
func (NopReporter) FileExists(string)                         {}
func (NopReporter) Skipped(string)                            {}
func (NopReporter) Moved(string, string)                      {}
func (NopReporter) Copied(string, string)                     {}

// Operation records one planned or performed placement, for the summary
// table and --json output.
type Operation struct {
	Action      Action `json:"action"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Category    string `json:"category"`
	Bucket      string `json:"bucket"`
	Simulated   bool   `json:"simulated"`
	SkippedOp   bool   `json:"skipped,omitempty"`
}

// Summary aggregates the outcome of a run.
type Summary struct {
	Scanned    int         `json:"scanned"`
	Moved      int         `json:"moved"`
	Copied     int         `json:"copied"`
	Skipped    int         `json:"skipped"`
	Unmatched  int         `json:"unmatched"`
	DryRun     bool        `json:"dry_run"`
	Operations []Operation `json:"operations"`
}
