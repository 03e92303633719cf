// Package downloader materializes media URLs as local files, one at a time,
// with a bounded retry per URL.
package downloader

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"
)

// Status is the terminal state of one download.
type Status int

const (
	// StatusSuccess means the file was fetched and written.
	StatusSuccess Status = iota
	// StatusSkipped means the destination file already existed, so no
	// network call was made. Re-running over the same output directory only
	// attempts missing files.
	StatusSkipped
	// StatusFailed means every attempt allowed by the retry policy failed.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome records the result of processing one URL.
type Outcome struct {
	URL      string
	FileName string
	Status   Status
	Attempts int   // network attempts made; 0 for skips
	Err      error // last error, set only for StatusFailed
}

// RetryPolicy bounds how often a failed download is re-attempted.
// MaxAttempts counts the initial attempt, so 2 means one retry.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// DefaultRetryPolicy retries a failed download once after a 2-second wait.
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 2, Backoff: 2 * time.Second}

// Engine downloads URLs sequentially into a single output directory.
type Engine struct {
	outputDir string
	policy    RetryPolicy
	client    *http.Client
	sleep     func(time.Duration)
}

// New creates an Engine writing into outputDir, creating the directory
// (including parents) if needed. A zero policy falls back to
// DefaultRetryPolicy.
func New(outputDir string, policy RetryPolicy) (*Engine, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory %q: %w", outputDir, err)
	}
	if policy.MaxAttempts < 1 {
		policy = DefaultRetryPolicy
	}

	return &Engine{
		outputDir: outputDir,
		policy:    policy,
		client:    http.DefaultClient,
		sleep:     time.Sleep,
	}, nil
}

// Fetch processes a single URL and returns its terminal outcome. A
// pre-existing destination file short-circuits to StatusSkipped without any
// network call; otherwise the URL is fetched with up to
// policy.MaxAttempts attempts, waiting policy.Backoff between them.
func (e *Engine) Fetch(rawURL string) Outcome {
	name := FileNameFromURL(rawURL)
	out := Outcome{URL: rawURL, FileName: name}

	dest := filepath.Join(e.outputDir, name)
	if _, err := os.Stat(dest); err == nil {
		out.Status = StatusSkipped
		return out
	}

	var lastErr error
	for attempt := 1; attempt <= e.policy.MaxAttempts; attempt++ {
		out.Attempts = attempt
		lastErr = e.download(rawURL, dest)
		if lastErr == nil {
			out.Status = StatusSuccess
			return out
		}
		if attempt < e.policy.MaxAttempts {
			e.sleep(e.policy.Backoff)
		}
	}

	out.Status = StatusFailed
	out.Err = fmt.Errorf("download %s after %d attempts: %w", rawURL, out.Attempts, lastErr)
	return out
}

// download performs one HTTP GET and streams the body to destPath. The file
// is only created after the status check, but a transport failure mid-copy
// can still leave a partial file behind.
func (e *Engine) download(rawURL, destPath string) error {
	resp, err := e.client.Get(rawURL)
	if err != nil {
		return fmt.Errorf("HTTP GET failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create file %q: %w", destPath, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("write file %q: %w", destPath, err)
	}

	return nil
}

// OutputDir returns the directory the engine writes into.
func (e *Engine) OutputDir() string {
	return e.outputDir
}

// FileNameFromURL derives the destination filename from the last path
// segment of the URL, ignoring any query string.
func FileNameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return path.Base(rawURL)
	}
	return path.Base(u.Path)
}
