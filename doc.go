// Package wxrfetch downloads the media attachments referenced by a WordPress
// content export (WXR) file into a local directory, producing append-only
// logs of what was downloaded, skipped, or failed.
//
// The CLI lives in cmd/wxr-media-fetch; this root package exposes the same
// pipeline as a Go API so that callers can embed the download run in their
// own migration tooling without shelling out.
//
// # Import
//
// The module path contains hyphens but Go package names cannot, so the
// package is named wxrfetch:
//
//	import "github.com/hellenic-development/wxr-media-fetch" // package wxrfetch
//
// # Quick start
//
//	result, err := wxrfetch.Run(wxrfetch.Options{
//	    ExportPath: "export.xml",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d downloaded, %d skipped, %d failed\n",
//	    result.Successes, result.Skips, result.Failures)
//
// Re-running over the same output directory is safe: files that already
// exist are skipped without a network call, so only missing (including
// previously failed) files are attempted.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
//	type myLogger struct{}
//	func (l *myLogger) Infof(f string, a ...any)  { log.Printf("[INFO]  "+f, a...) }
//	func (l *myLogger) Warnf(f string, a ...any)  { log.Printf("[WARN]  "+f, a...) }
//	func (l *myLogger) Errorf(f string, a ...any) { log.Printf("[ERROR] "+f, a...) }
//
// # Settings file
//
// An optional YAML file (default .wxr-media-fetch.yaml) can override the
// extension allow-list, the output directory, and the retry policy:
//
//	output_dir: media
//	extensions: [.jpg, .png, .pdf]
//	max_attempts: 3
//	backoff_seconds: 5
package wxrfetch // import "github.com/hellenic-development/wxr-media-fetch"
