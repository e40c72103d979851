package reconcile

import (
	"fmt"

	"github.com/google/uuid"

	"fjacquet/camt-import/internal/fileutils"
	"fjacquet/camt-import/internal/logging"
	"fjacquet/camt-import/internal/models"
)

// ConfigurationError reports a run that cannot start because its
// configuration is incomplete. Nothing has been read or written when it is
// returned.
type ConfigurationError struct {
	Setting string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Setting, e.Reason)
}

// Parser turns one source file into the statement records it contains.
type Parser interface {
	ParseFile(path string) ([]models.StatementRecord, error)
}

// RunSummary aggregates the counters of one import run.
type RunSummary struct {
	RunID             string
	FilesProcessed    int
	NewStatements     int
	UpdatedStatements int
	FailedStatements  int
}

func (s RunSummary) String() string {
	return fmt.Sprintf("%d XML files with %d new and %d updated statements have been imported",
		s.FilesProcessed, s.NewStatements, s.UpdatedStatements)
}

// Runner drives a whole import run: scan the source directory, parse each
// file, reconcile it through the engine, and decide whether the file may be
// deleted.
type Runner struct {
	// Directory is the source directory scanned for *.xml files. An empty
	// value disables the feature and aborts the run with a
	// ConfigurationError.
	Directory string

	// DeleteAfterImport removes a source file once all of its statements
	// imported without failures.
	DeleteAfterImport bool

	Parser Parser
	Engine *Engine
	Log    logging.Logger
}

// Run imports every XML file in the configured directory. Per-statement
// failures are reflected in the summary counters only; the run itself
// succeeds unless the configuration is incomplete or the persistence layer
// fails.
func (r *Runner) Run() (RunSummary, error) {
	summary := RunSummary{RunID: uuid.NewString()}
	if r.Directory == "" {
		return summary, &ConfigurationError{
			Setting: "import.directory",
			Reason:  "no source directory configured",
		}
	}

	r.Log.Info("importing XML files",
		logging.F("run_id", summary.RunID),
		logging.F("directory", r.Directory))

	files, err := fileutils.ListXMLFiles(r.Directory)
	if err != nil {
		return summary, err
	}

	for _, file := range files {
		records, err := r.Parser.ParseFile(file)
		if err != nil {
			r.Log.WithError(err).Error("failed to parse file, skipping",
				logging.F("file", file))
			continue
		}
		summary.FilesProcessed++

		result, err := r.Engine.ImportFile(records)
		summary.NewStatements += result.NewStatements
		summary.UpdatedStatements += result.UpdatedStatements
		summary.FailedStatements += result.FailedStatements
		if err != nil {
			// Persistence failure: statements committed so far stay
			// committed, the file is kept, the run aborts.
			return summary, fmt.Errorf("importing %s: %w", file, err)
		}

		r.disposeFile(file, result)
	}

	r.Log.Info(summary.String(), logging.F("run_id", summary.RunID))
	return summary, nil
}

// disposeFile applies the file-level disposition: keep on any failure, else
// delete when configured to. A deletion error is only worth a warning.
func (r *Runner) disposeFile(file string, result FileResult) {
	if result.FailedStatements > 0 {
		r.Log.Warn("statements were NOT imported, keeping file",
			logging.F("file", file),
			logging.F("failed", result.FailedStatements))
		return
	}
	if !r.DeleteAfterImport {
		r.Log.Info("file was imported but NOT deleted", logging.F("file", file))
		return
	}
	if err := fileutils.Remove(file); err != nil {
		r.Log.WithError(err).Warn("failed to delete file", logging.F("file", file))
		return
	}
	r.Log.Info("file has been deleted", logging.F("file", file))
}
