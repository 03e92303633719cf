package wxrfetch

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hellenic-development/wxr-media-fetch/pkg/downloader"
)

// DefaultSettingsFile is the settings filename checked in the working
// directory when no --config flag is given.
const DefaultSettingsFile = ".wxr-media-fetch.yaml"

// Settings represents the optional YAML configuration file. Every field
// overrides the corresponding built-in default; flags beat the file.
type Settings struct {
	OutputDir      string   `yaml:"output_dir"`
	Extensions     []string `yaml:"extensions"`
	MaxAttempts    int      `yaml:"max_attempts"`
	BackoffSeconds int      `yaml:"backoff_seconds"`
}

// LoadSettings reads a settings file. With an empty path the default file is
// tried and its absence is not an error; an explicitly given path must exist.
func LoadSettings(path string) (*Settings, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultSettingsFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("read settings file %q: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings file %q: %w", path, err)
	}

	if s.MaxAttempts < 0 {
		return nil, fmt.Errorf("settings file %q: max_attempts must not be negative", path)
	}
	if s.BackoffSeconds < 0 {
		return nil, fmt.Errorf("settings file %q: backoff_seconds must not be negative", path)
	}

	return &s, nil
}

// retryPolicy converts the file's retry fields into a policy. A zero
// MaxAttempts yields a zero policy, which the downloader replaces with its
// default of one retry after 2 seconds.
func (s *Settings) retryPolicy() downloader.RetryPolicy {
	if s.MaxAttempts == 0 {
		return downloader.RetryPolicy{}
	}
	return downloader.RetryPolicy{
		MaxAttempts: s.MaxAttempts,
		Backoff:     time.Duration(s.BackoffSeconds) * time.Second,
	}
}
