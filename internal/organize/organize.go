package organize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/chris-edwards-pub/c64-dir-organizer/internal/classify"
	"github.com/chris-edwards-pub/c64-dir-organizer/internal/fileutil"
	"github.com/chris-edwards-pub/c64-dir-organizer/internal/logging"
	"github.com/chris-edwards-pub/c64-dir-organizer/internal/scan"
)

// Action selects what a run does with each classified file.
type Action string

const (
	ActionMove Action = "move"
	ActionCopy Action = "copy"
)

// ParseAction validates a user-supplied action value.
func ParseAction(value string) (Action, error) {
	switch Action(value) {
	case ActionMove, ActionCopy:
		return Action(value), nil
	}
	return "", WrapError(ErrConfiguration, "parse action", fmt.Sprintf("action must be %q or %q, got %q", ActionMove, ActionCopy, value), nil)
}

// Options is the immutable configuration of a single run.
type Options struct {
	Source      string
	Destination string
	Action      Action
	Recursive   bool
	Verbose     bool
	DryRun      bool
}

// Organizer routes files from a source directory into the destination
// layout computed by the classifier.
type Organizer struct {
	classifier *classify.Classifier
	confirm    Confirmer
	reporter   Reporter
	logger     *slog.Logger
}

// New constructs an Organizer. A nil confirmer declines every overwrite, a
// nil reporter suppresses progress lines, and a nil logger discards logs.
func New(classifier *classify.Classifier, confirm Confirmer, reporter Reporter, logger *slog.Logger) *Organizer {
	if confirm == nil {
		confirm = DeclineAll()
	}
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Organizer{
		classifier: classifier,
		confirm:    confirm,
		reporter:   reporter,
		logger:     logging.NewComponentLogger(logger, "organizer"),
	}
}

// Run traverses the source, classifies every candidate, and performs (or,
// in dry-run, simulates) the configured action. The first filesystem error
// halts the run; the partial summary accumulated so far is returned with it.
func (o *Organizer) Run(ctx context.Context, opts Options) (Summary, error) {
	summary := Summary{DryRun: opts.DryRun}

	if _, err := ParseAction(string(opts.Action)); err != nil {
		return summary, err
	}

	// Dry-run always reports every decision, matching the historical
	// behavior of the tool (dry-run implies verbose).
	verbose := opts.Verbose || opts.DryRun

	scanOpts := scan.Options{Recursive: opts.Recursive}
	if scan.ContainsPath(opts.Source, opts.Destination) {
		scanOpts.Prune = opts.Destination
	}

	files, err := scan.Files(opts.Source, scanOpts)
	if err != nil {
		if errors.Is(err, scan.ErrSourceMissing) {
			return summary, WrapError(ErrNotFound, "scan source", err.Error(), nil)
		}
		return summary, WrapError(ErrFilesystem, "scan source", "traversal failed", err)
	}
	summary.Scanned = len(files)

	o.logger.Info("starting organize run",
		logging.String("source", opts.Source),
		logging.String("destination", opts.Destination),
		logging.String("action", string(opts.Action)),
		logging.Bool("recursive", opts.Recursive),
		logging.Bool("dry_run", opts.DryRun),
		logging.Int("candidates", len(files)),
	)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		placement, ok := o.classifier.Classify(file)
		if !ok {
			// Unmatched extensions are expected; skipping them is not an
			// error surface.
			summary.Unmatched++
			o.logger.Debug("extension matches no category", logging.String("file", file))
			continue
		}
		if err := o.placeFile(file, placement, opts, verbose, &summary); err != nil {
			return summary, err
		}
	}

	o.logger.Info("organize run finished",
		logging.Int("moved", summary.Moved),
		logging.Int("copied", summary.Copied),
		logging.Int("skipped", summary.Skipped),
		logging.Int("unmatched", summary.Unmatched),
	)
	return summary, nil
}

func (o *Organizer) placeFile(file string, placement classify.Placement, opts Options, verbose bool, summary *Summary) error {
	destDir := filepath.Join(opts.Destination, placement.RelativeDir())
	destFile := filepath.Join(destDir, filepath.Base(file))

	op := Operation{
		Action:      opts.Action,
		Source:      file,
		Destination: destFile,
		Category:    placement.Category,
		Bucket:      placement.Bucket,
		Simulated:   opts.DryRun,
	}

	if opts.DryRun {
		o.reporter.SimulatedOperation(opts.Action, file, destDir)
		switch opts.Action {
		case ActionMove:
			summary.Moved++
		case ActionCopy:
			summary.Copied++
		}
		summary.Operations = append(summary.Operations, op)
		return nil
	}

	if err := o.ensureDirectory(destDir, verbose); err != nil {
		return err
	}

	switch opts.Action {
	case ActionMove:
		moved, err := o.moveFile(file, destFile, verbose)
		if err != nil {
			return err
		}
		if !moved {
			summary.Skipped++
			op.SkippedOp = true
			summary.Operations = append(summary.Operations, op)
			return nil
		}
		summary.Moved++
	case ActionCopy:
		if err := o.copyFile(file, destFile, verbose); err != nil {
			return err
		}
		summary.Copied++
	}
	summary.Operations = append(summary.Operations, op)
	return nil
}

// ensureDirectory creates dir and any missing ancestors. Creation is
// idempotent; an existing directory is never an error.
func (o *Organizer) ensureDirectory(dir string, verbose bool) error {
	if _, err := os.Stat(dir); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return WrapError(ErrFilesystem, "ensure directory", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return WrapError(ErrFilesystem, "create directory", dir, err)
	}
	if verbose {
		o.reporter.DirectoryCreated(dir)
	}
	o.logger.Debug("created directory", logging.String("path", dir))
	return nil
}

// moveFile returns false when the user declined to overwrite an existing
// destination file; both files are left untouched in that case.
func (o *Organizer) moveFile(src, dest string, verbose bool) (bool, error) {
	if _, err := os.Stat(dest); err == nil {
		if verbose {
			o.reporter.FileExists(dest)
		}
		overwrite, err := o.confirm.ConfirmOverwrite(dest)
		if err != nil {
			return false, WrapError(ErrFilesystem, "confirm overwrite", dest, err)
		}
		if !overwrite {
			if verbose {
				o.reporter.Skipped(src)
			}
			o.logger.Info("overwrite declined", logging.String("source", src), logging.String("destination", dest))
			return false, nil
		}
	} else if !os.IsNotExist(err) {
		return false, WrapError(ErrFilesystem, "inspect destination", dest, err)
	}

	if err := fileutil.MoveFile(src, dest); err != nil {
		return false, WrapError(ErrFilesystem, "move file", src, err)
	}
	if verbose {
		o.reporter.Moved(src, dest)
	}
	o.logger.Debug("moved file", logging.String("source", src), logging.String("destination", dest))
	return true, nil
}

// copyFile overwrites an existing destination silently. The asymmetry with
// moveFile is deliberate and long-standing: copies never destroy the source.
func (o *Organizer) copyFile(src, dest string, verbose bool) error {
	if err := fileutil.CopyFile(src, dest); err != nil {
		return WrapError(ErrFilesystem, "copy file", src, err)
	}
	if verbose {
		o.reporter.Copied(src, dest)
	}
	o.logger.Debug("copied file", logging.String("source", src), logging.String("destination", dest))
	return nil
}
