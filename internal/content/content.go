// Package content loads the documents the viewer displays: files from disk
// plus the built-in pages shown on an empty start. Each document is
// classified once at load time so the panes know how to render it.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2/lexers"
)

// Kind classifies how a document is rendered: markdown through the terminal
// markdown renderer, code through the syntax highlighter, everything else
// verbatim.
type Kind int

const (
	KindPlain Kind = iota
	KindMarkdown
	KindCode
)

func (k Kind) String() string {
	switch k {
	case KindMarkdown:
		return "markdown"
	case KindCode:
		return "code"
	default:
		return "plain"
	}
}

// Document is one loaded document. The viewer holds documents by pointer,
// one per page, so two loads of the same path are two distinct documents.
type Document struct {
	Path  string // absolute source path, empty for built-in documents
	Title string // initial tab title, defaults to the base name
	Kind  Kind
	Text  string
}

// Load reads and classifies the file at path. Binary files are rejected
// rather than rendered as garbage.
func Load(path string) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("load %s: not a text file", path)
	}

	text := string(data)
	return &Document{
		Path:  abs,
		Title: filepath.Base(abs),
		Kind:  Detect(filepath.Base(abs), text),
		Text:  text,
	}, nil
}

// Reload re-reads the document from its path, refreshing text and kind but
// keeping the title (which the user may have renamed). Built-in documents
// have no path and reload to themselves.
func (d *Document) Reload() error {
	if d.Path == "" {
		return nil
	}

	data, err := os.ReadFile(d.Path)
	if err != nil {
		return fmt.Errorf("reload %s: %w", d.Path, err)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("reload %s: not a text file", d.Path)
	}

	d.Text = string(data)
	d.Kind = Detect(filepath.Base(d.Path), d.Text)
	return nil
}

// Detect classifies a document by filename first, content second. Markdown
// and known plain-text extensions short-circuit; everything else asks the
// highlighter's lexer registry, with content analysis as a fallback for
// extensionless files (shebang scripts and the like).
func Detect(fileName, text string) Kind {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".md", ".markdown", ".mdown":
		return KindMarkdown
	case ".txt", ".text", ".log":
		return KindPlain
	}

	if lexer := lexers.Match(fileName); lexer != nil && lexer.Config().Name != "plaintext" {
		return KindCode
	}
	if filepath.Ext(fileName) == "" {
		if lexer := lexers.Analyse(text); lexer != nil {
			return KindCode
		}
	}
	return KindPlain
}
