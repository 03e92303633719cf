// Package reporter keeps the durable, append-only record of download
// outcomes: one log for successes and skips, a separate one for failures.
package reporter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hellenic-development/wxr-media-fetch/pkg/downloader"
)

// TimestampFormat produces sortable, fixed-width log filename qualifiers.
const TimestampFormat = "20060102_150405"

// LogPaths derives the per-run log file paths under dir, qualified by a
// timestamp captured once at run start.
func LogPaths(dir string, start time.Time) (logPath, errPath string) {
	ts := start.Format(TimestampFormat)
	logPath = filepath.Join(dir, fmt.Sprintf("download_log_%s.txt", ts))
	errPath = filepath.Join(dir, fmt.Sprintf("download_errors_%s.txt", ts))
	return logPath, errPath
}

// Reporter appends one line per outcome to the run's log files. Files are
// opened lazily on first use, so the error log is never created for a run
// with no failures, and nothing is written for a run that aborts before
// the download phase.
type Reporter struct {
	logPath string
	errPath string

	logFile *os.File
	errFile *os.File
}

// New creates a Reporter writing to the given log paths.
func New(logPath, errPath string) *Reporter {
	return &Reporter{logPath: logPath, errPath: errPath}
}

// Record appends the log line for one outcome.
func (r *Reporter) Record(o downloader.Outcome) error {
	switch o.Status {
	case downloader.StatusSuccess:
		return r.writeLog("Success: %s\n", o.FileName)
	case downloader.StatusSkipped:
		return r.writeLog("Skipped (already exists): %s\n", o.FileName)
	case downloader.StatusFailed:
		return r.writeErr("Failed (after retry): %s\n", o.FileName)
	default:
		return fmt.Errorf("unknown outcome status %v", o.Status)
	}
}

func (r *Reporter) writeLog(format string, args ...any) error {
	if r.logFile == nil {
		f, err := openAppend(r.logPath)
		if err != nil {
			return err
		}
		r.logFile = f
	}
	_, err := fmt.Fprintf(r.logFile, format, args...)
	return err
}

func (r *Reporter) writeErr(format string, args ...any) error {
	if r.errFile == nil {
		f, err := openAppend(r.errPath)
		if err != nil {
			return err
		}
		r.errFile = f
	}
	_, err := fmt.Fprintf(r.errFile, format, args...)
	return err
}

// Close closes any log files opened during the run.
func (r *Reporter) Close() error {
	var firstErr error
	for _, f := range []*os.File{r.logFile, r.errFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	r.logFile, r.errFile = nil, nil
	return firstErr
}

func openAppend(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file %q: %w", path, err)
	}
	return f, nil
}
