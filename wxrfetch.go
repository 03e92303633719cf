package wxrfetch

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/hellenic-development/wxr-media-fetch/pkg/downloader"
	"github.com/hellenic-development/wxr-media-fetch/pkg/mediafilter"
	"github.com/hellenic-development/wxr-media-fetch/pkg/reporter"
	"github.com/hellenic-development/wxr-media-fetch/pkg/wxr"
)

// Version of the tool, reported by the CLI version subcommand.
const Version = "1.0.0"

// OutputDirSuffix is appended to the export file's base name to derive the
// media output directory.
const OutputDirSuffix = "_media"

// Options configures a run.
type Options struct {
	ExportPath   string           // explicit export file; empty = default file, then PathProvider
	PathProvider wxr.PathProvider // fallback when the default file is absent; nil = fail instead
	OutputDir    string           // empty = "<export-basename>_media" under LogDir
	LogDir       string           // directory for the run's log files; empty = working directory
	ConfigFile   string           // optional YAML settings file; empty = default file if present
	Extensions   []string         // extension allow-list override; empty = settings/defaults

	Retry downloader.RetryPolicy // zero = settings, then one retry after 2s

	Logger   Logger                                    // nil = silent
	Progress func(current, total int, fileName string) // per-item progress; nil = none
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the run output.
type Result struct {
	ExportPath   string
	OutputDir    string
	LogPath      string
	ErrorLogPath string

	Outcomes  []downloader.Outcome
	Successes int
	Skips     int
	Failures  int
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// Run executes the full pipeline: resolve the export file, extract attachment
// URLs, filter them by extension, download each one sequentially, and write
// the run's log files.
//
// Per-item download failures are recorded in the result and the error log but
// never fail the run; an error return means the run aborted during setup
// (missing export, malformed XML, no attachments, empty filter result).
func Run(opts Options) (*Result, error) {
	start := time.Now()

	settings, err := LoadSettings(opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	// Resolve the export file.
	exportPath := opts.ExportPath
	if exportPath == "" {
		opts.logInfo("Looking for %s in the working directory...", wxr.DefaultExportFile)
		exportPath, err = wxr.ResolveExport(wxr.DefaultExportFile, opts.PathProvider)
	} else {
		exportPath, err = wxr.ResolveExport(exportPath, nil)
	}
	if err != nil {
		return nil, err
	}
	opts.logInfo("Export file: %s", exportPath)

	// Parse and extract attachment URLs.
	opts.logInfo("Parsing export...")
	doc, err := wxr.ParseFile(exportPath)
	if err != nil {
		return nil, err
	}

	urls := doc.AttachmentURLs()
	if len(urls) == 0 {
		return nil, fmt.Errorf("no attachment URLs found in %s: the export contains no attachments", exportPath)
	}
	opts.logInfo("Found %d attachment URL(s)", len(urls))

	// Filter by extension.
	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = settings.Extensions
	}
	filter := mediafilter.New(extensions)

	filtered := filter.Apply(urls)
	if len(filtered) == 0 {
		return nil, fmt.Errorf("no URLs match the supported extensions (%s)",
			strings.Join(filter.Extensions(), ", "))
	}
	opts.logInfo("%d URL(s) match supported extensions", len(filtered))

	// Assemble the immutable run context.
	logDir := opts.LogDir
	if logDir == "" {
		logDir = "."
	}
	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = settings.OutputDir
	}
	if outputDir == "" {
		outputDir = filepath.Join(logDir, wxr.BaseName(exportPath)+OutputDirSuffix)
	}
	logPath, errPath := reporter.LogPaths(logDir, start)

	policy := opts.Retry
	if policy.MaxAttempts < 1 {
		policy = settings.retryPolicy()
	}

	engine, err := downloader.New(outputDir, policy)
	if err != nil {
		return nil, err
	}

	// Download sequentially, logging each outcome as it completes so the
	// logs stay accurate if the process is killed mid-run.
	opts.logInfo("Downloading to %s...", outputDir)
	rep := reporter.New(logPath, errPath)
	defer rep.Close()

	result := &Result{
		ExportPath:   exportPath,
		OutputDir:    outputDir,
		LogPath:      logPath,
		ErrorLogPath: errPath,
		Outcomes:     make([]downloader.Outcome, 0, len(filtered)),
	}

	total := len(filtered)
	for i, u := range filtered {
		if opts.Progress != nil {
			opts.Progress(i+1, total, downloader.FileNameFromURL(u))
		}

		outcome := engine.Fetch(u)
		switch outcome.Status {
		case downloader.StatusSuccess:
			result.Successes++
		case downloader.StatusSkipped:
			result.Skips++
		case downloader.StatusFailed:
			result.Failures++
			opts.logWarn("%v", outcome.Err)
		}

		if err := rep.Record(outcome); err != nil {
			return nil, err
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	if err := rep.Close(); err != nil {
		return nil, err
	}

	return result, nil
}
