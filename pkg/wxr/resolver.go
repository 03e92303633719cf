package wxr

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExportFile is the export filename checked in the working directory
// when no explicit path is given.
const DefaultExportFile = "export.xml"

// PathProvider supplies an export file path when the default file is absent.
// The CLI implements it as a blocking stdin prompt; tests substitute a fixed
// path.
type PathProvider interface {
	ExportPath() (string, error)
}

// PathProviderFunc adapts a function to the PathProvider interface.
type PathProviderFunc func() (string, error)

func (f PathProviderFunc) ExportPath() (string, error) { return f() }

// ResolveExport locates a readable export file. It first checks defaultPath;
// if that file does not exist it asks the fallback provider for a path. A nil
// fallback, or a provided path that does not exist, is an error.
func ResolveExport(defaultPath string, fallback PathProvider) (string, error) {
	if fileExists(defaultPath) {
		return defaultPath, nil
	}

	if fallback == nil {
		return "", fmt.Errorf("export file %q not found", defaultPath)
	}

	path, err := fallback.ExportPath()
	if err != nil {
		return "", fmt.Errorf("resolve export file: %w", err)
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("no export file path provided")
	}
	if !fileExists(path) {
		return "", fmt.Errorf("export file %q not found", path)
	}

	return path, nil
}

// BaseName returns the export filename without its directory or extension,
// used to derive the media output directory name.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
