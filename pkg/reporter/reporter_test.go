package reporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hellenic-development/wxr-media-fetch/pkg/downloader"
)

func TestLogPaths(t *testing.T) {
	start := time.Date(2023, 4, 5, 6, 7, 8, 0, time.UTC)
	logPath, errPath := LogPaths("out", start)

	if want := filepath.Join("out", "download_log_20230405_060708.txt"); logPath != want {
		t.Errorf("logPath = %q, want %q", logPath, want)
	}
	if want := filepath.Join("out", "download_errors_20230405_060708.txt"); errPath != want {
		t.Errorf("errPath = %q, want %q", errPath, want)
	}
}

func TestRecord_LinesAndPartition(t *testing.T) {
	dir := t.TempDir()
	logPath, errPath := LogPaths(dir, time.Now())
	r := New(logPath, errPath)

	outcomes := []downloader.Outcome{
		{FileName: "a.jpg", Status: downloader.StatusSuccess},
		{FileName: "b.png", Status: downloader.StatusSkipped},
		{FileName: "c.pdf", Status: downloader.StatusFailed},
		{FileName: "d.gif", Status: downloader.StatusSuccess},
	}
	for _, o := range outcomes {
		if err := r.Record(o); err != nil {
			t.Fatalf("Record(%q) error = %v", o.FileName, err)
		}
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	logData, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading success log: %v", err)
	}
	wantLog := "Success: a.jpg\nSkipped (already exists): b.png\nSuccess: d.gif\n"
	if string(logData) != wantLog {
		t.Errorf("success log = %q, want %q", logData, wantLog)
	}

	errData, err := os.ReadFile(errPath)
	if err != nil {
		t.Fatalf("reading error log: %v", err)
	}
	wantErr := "Failed (after retry): c.pdf\n"
	if string(errData) != wantErr {
		t.Errorf("error log = %q, want %q", errData, wantErr)
	}

	// No filename appears in both logs.
	for _, line := range strings.Split(strings.TrimSpace(string(errData)), "\n") {
		name := strings.TrimPrefix(line, "Failed (after retry): ")
		if strings.Contains(string(logData), name) {
			t.Errorf("filename %q appears in both logs", name)
		}
	}
}

func TestRecord_NoErrorLogWithoutFailures(t *testing.T) {
	dir := t.TempDir()
	logPath, errPath := LogPaths(dir, time.Now())
	r := New(logPath, errPath)

	if err := r.Record(downloader.Outcome{FileName: "a.jpg", Status: downloader.StatusSuccess}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := os.Stat(errPath); !os.IsNotExist(err) {
		t.Error("error log file was created although no outcome failed")
	}
}

func TestRecord_NothingWrittenBeforeFirstOutcome(t *testing.T) {
	dir := t.TempDir()
	logPath, errPath := LogPaths(dir, time.Now())
	r := New(logPath, errPath)

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		t.Error("success log file was created without any outcomes")
	}
	if _, err := os.Stat(errPath); !os.IsNotExist(err) {
		t.Error("error log file was created without any outcomes")
	}
}

func TestRecord_AppendsAcrossReporters(t *testing.T) {
	// A second run in the same second reuses the filename; lines append.
	dir := t.TempDir()
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	logPath, errPath := LogPaths(dir, start)

	r1 := New(logPath, errPath)
	r1.Record(downloader.Outcome{FileName: "a.jpg", Status: downloader.StatusSuccess})
	r1.Close()

	r2 := New(logPath, errPath)
	r2.Record(downloader.Outcome{FileName: "a.jpg", Status: downloader.StatusSkipped})
	r2.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	want := "Success: a.jpg\nSkipped (already exists): a.jpg\n"
	if string(data) != want {
		t.Errorf("log = %q, want %q", data, want)
	}
}
