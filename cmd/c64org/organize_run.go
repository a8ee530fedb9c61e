package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/chris-edwards-pub/c64-dir-organizer/internal/classify"
	"github.com/chris-edwards-pub/c64-dir-organizer/internal/config"
	"github.com/chris-edwards-pub/c64-dir-organizer/internal/logging"
	"github.com/chris-edwards-pub/c64-dir-organizer/internal/organize"
	"github.com/chris-edwards-pub/c64-dir-organizer/internal/preflight"
)

// organizeRun carries the root command's flag state through execution.
type organizeRun struct {
	ctx *commandContext

	action    string
	recursive bool
	verbose   bool
	dryRun    bool
	force     bool
	jsonOut   bool
}

func (r *organizeRun) execute(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("both source and destination paths are required (see --help)")
	}
	if len(args) == 1 {
		return errors.New("destination path is required")
	}

	cfg, err := r.ctx.ensureConfig()
	if err != nil {
		return err
	}

	source, err := config.ExpandPath(args[0])
	if err != nil {
		return fmt.Errorf("resolve source: %w", err)
	}
	destination, err := config.ExpandPath(args[1])
	if err != nil {
		return fmt.Errorf("resolve destination: %w", err)
	}

	actionValue := strings.TrimSpace(r.action)
	if actionValue == "" {
		actionValue = cfg.Organize.Action
	}
	action, err := organize.ParseAction(actionValue)
	if err != nil {
		return err
	}

	if err := r.runPreflight(source, destination); err != nil {
		return err
	}

	classifier, err := classify.New(cfg.Table())
	if err != nil {
		return err
	}

	logger, err := r.ctx.ensureLogger()
	if err != nil {
		return err
	}
	logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))

	reporter, confirmer := r.buildCollaborators(cmd)
	org := organize.New(classifier, confirmer, reporter, logger)

	summary, runErr := org.Run(cmd.Context(), organize.Options{
		Source:      source,
		Destination: destination,
		Action:      action,
		Recursive:   r.recursive,
		Verbose:     r.verbose,
		DryRun:      r.dryRun,
	})
	if runErr != nil {
		return runErr
	}

	if r.jsonOut {
		return writeJSON(cmd, summary)
	}
	if r.verbose || r.dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), renderSummaryTable(summary))
	}
	return nil
}

// runPreflight fails fast before any traversal begins. Dry-run skips the
// destination check: a read-only destination is fine when nothing will be
// written.
func (r *organizeRun) runPreflight(source, destination string) error {
	results := []preflight.Result{preflight.CheckSource(source)}
	if !r.dryRun {
		results = append(results, preflight.CheckDestination(destination))
	}
	for _, result := range results {
		if !result.Passed {
			return fmt.Errorf("%s: %s", strings.ToLower(result.Name), result.Detail)
		}
	}
	return nil
}

func (r *organizeRun) buildCollaborators(cmd *cobra.Command) (organize.Reporter, organize.Confirmer) {
	// With --json the summary owns stdout; progress lines move to stderr so
	// the document stays parseable.
	reportWriter := cmd.OutOrStdout()
	if r.jsonOut {
		reportWriter = cmd.ErrOrStderr()
	}
	reporter := newColorReporter(reportWriter)

	var confirmer organize.Confirmer
	switch {
	case r.force:
		confirmer = organize.AcceptAll()
	case stdinIsTerminal():
		confirmer = newTerminalConfirmer(os.Stdin, cmd.ErrOrStderr())
	default:
		confirmer = organize.DeclineAll()
	}
	return reporter, confirmer
}

func renderSummaryTable(summary organize.Summary) string {
	headers := []string{"Result", "Count"}
	rows := [][]string{
		{"Scanned", strconv.Itoa(summary.Scanned)},
		{"Moved", strconv.Itoa(summary.Moved)},
		{"Copied", strconv.Itoa(summary.Copied)},
		{"Skipped", strconv.Itoa(summary.Skipped)},
		{"Unmatched", strconv.Itoa(summary.Unmatched)},
	}
	return renderTable(headers, rows, []columnAlignment{alignLeft, alignRight})
}
