// Package mediafilter narrows attachment URL lists to supported media types
// by file extension.
package mediafilter

import (
	"net/url"
	"path"
	"strings"
)

// DefaultExtensions is the standard allow-list of downloadable media types.
var DefaultExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".svg", ".webp",
	".mp4", ".mp3", ".pdf", ".zip",
}

// Filter keeps URLs whose path extension is in an allow-list,
// matched case-insensitively.
type Filter struct {
	allowed    map[string]struct{}
	extensions []string
}

// New builds a Filter from an extension list. Entries are normalized to
// lowercase with a leading dot, so "JPG" and ".jpg" are equivalent. A nil or
// empty list falls back to DefaultExtensions.
func New(extensions []string) *Filter {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	f := &Filter{allowed: make(map[string]struct{}, len(extensions))}
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, dup := f.allowed[ext]; dup {
			continue
		}
		f.allowed[ext] = struct{}{}
		f.extensions = append(f.extensions, ext)
	}

	return f
}

// Allows reports whether the URL's path extension is in the allow-list.
// Malformed URLs and URLs without a path extension are not allowed; query
// strings and fragments are ignored.
func (f *Filter) Allows(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	ext := strings.ToLower(path.Ext(u.Path))
	if ext == "" {
		return false
	}

	_, ok := f.allowed[ext]
	return ok
}

// Apply returns the URLs that pass Allows, preserving their relative order.
func (f *Filter) Apply(urls []string) []string {
	kept := make([]string, 0, len(urls))
	for _, u := range urls {
		if f.Allows(u) {
			kept = append(kept, u)
		}
	}
	return kept
}

// Extensions returns the normalized allow-list, in the order given to New.
func (f *Filter) Extensions() []string {
	return f.extensions
}
