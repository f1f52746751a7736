package testfixtures

import (
	"fmt"
	"strings"

	"github.com/quirekit/quire/internal/content"
)

// Fixed test values for consistent rendering
const (
	FixedMarkdownTitle = "guide.md"
	FixedCodeTitle     = "main.go"
	FixedPlainTitle    = "notes.txt"
)

const fixedMarkdown = `# Guide

A short fixture document.

- first item
- second item
`

const fixedCode = `package main

import "fmt"

func main() {
	fmt.Println("hello")
}
`

// MarkdownDoc returns a small in-memory markdown document.
func MarkdownDoc() *content.Document {
	return &content.Document{
		Title: FixedMarkdownTitle,
		Kind:  content.KindMarkdown,
		Text:  fixedMarkdown,
	}
}

// CodeDoc returns a small in-memory Go source document.
func CodeDoc() *content.Document {
	return &content.Document{
		Title: FixedCodeTitle,
		Kind:  content.KindCode,
		Text:  fixedCode,
	}
}

// PlainDoc returns a small in-memory plain-text document.
func PlainDoc() *content.Document {
	return &content.Document{
		Title: FixedPlainTitle,
		Kind:  content.KindPlain,
		Text:  "plain fixture text\nwith a second line\n",
	}
}

// LongPlainDoc returns a plain-text document with the given number of
// lines, for scroll tests that need content taller than the viewport.
func LongPlainDoc(lines int) *content.Document {
	var b strings.Builder
	for i := 1; i <= lines; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	return &content.Document{
		Title: "long.txt",
		Kind:  content.KindPlain,
		Text:  b.String(),
	}
}

// Docs returns n distinct plain documents titled doc-1 through doc-n.
func Docs(n int) []*content.Document {
	docs := make([]*content.Document, n)
	for i := range docs {
		docs[i] = &content.Document{
			Title: fmt.Sprintf("doc-%d.txt", i+1),
			Kind:  content.KindPlain,
			Text:  fmt.Sprintf("contents of document %d\n", i+1),
		}
	}
	return docs
}
