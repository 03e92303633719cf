// Package wxr reads WordPress export (WXR) files: locating the export on
// disk and extracting the attachment URLs it references.
package wxr

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// Namespace is the WordPress export (WXR) namespace URI. Attachment URLs are
// only extracted from elements bound to this exact namespace.
const Namespace = "http://wordpress.org/export/1.2/"

const attachmentTag = "attachment_url"

// Document wraps a parsed WordPress export file.
type Document struct {
	doc *etree.Document
}

// ParseFile loads and parses a WXR export from disk.
// Returns an error if the file cannot be read or is not well-formed XML.
func ParseFile(path string) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("parse export file %q: %w", path, err)
	}
	return newDocument(doc)
}

// Parse parses a WXR export from a reader.
func Parse(r io.Reader) (*Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	return newDocument(doc)
}

func newDocument(doc *etree.Document) (*Document, error) {
	if doc.Root() == nil {
		return nil, fmt.Errorf("parse export: document has no root element")
	}
	return &Document{doc: doc}, nil
}

// AttachmentURLs returns the text of every <wp:attachment_url> element in the
// export, in document order. Elements with empty or whitespace-only text are
// dropped. The wp prefix is resolved by namespace URI, not by the literal
// prefix used in the file.
func (d *Document) AttachmentURLs() []string {
	var urls []string
	collectAttachmentURLs(d.doc.Root(), &urls)
	return urls
}

func collectAttachmentURLs(el *etree.Element, urls *[]string) {
	if el.Tag == attachmentTag && el.NamespaceURI() == Namespace {
		if text := strings.TrimSpace(el.Text()); text != "" {
			*urls = append(*urls, text)
		}
	}
	for _, child := range el.ChildElements() {
		collectAttachmentURLs(child, urls)
	}
}
