package content

import (
	"strings"
	"time"
)

// Variables holds the values injected into built-in document placeholders.
type Variables struct {
	Version string // quire version string
	Date    string // current date
	Config  string // global config path
}

// Render replaces {{variable}} placeholders in a built-in document with
// actual values. Unknown placeholders are left untouched.
func Render(template string, vars Variables) string {
	replacements := map[string]string{
		"{{version}}": vars.Version,
		"{{date}}":    vars.Date,
		"{{config}}":  vars.Config,
	}

	result := template
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

// Builtin returns the documents shown when quire starts with no files:
// a welcome page, a highlighted code sample, and a plain-text page.
func Builtin(version, configPath string) []*Document {
	vars := Variables{
		Version: version,
		Date:    time.Now().Format("2006-01-02"),
		Config:  configPath,
	}

	return []*Document{
		{
			Title: "welcome.md",
			Kind:  KindMarkdown,
			Text:  Render(welcomeDoc, vars),
		},
		{
			Title: "sample.go",
			Kind:  KindCode,
			Text:  sampleCode,
		},
		{
			Title: "shortcuts.txt",
			Kind:  KindPlain,
			Text:  Render(shortcutsDoc, vars),
		},
	}
}

// welcomeDoc is the embedded welcome page, rendered as markdown.
const welcomeDoc = `# quire {{version}}

A tabbed document viewer for the terminal.

Open files as tabs:

    quire README.md main.go notes.txt

Markdown renders styled, source code renders highlighted, and anything
else renders verbatim. These three tabs are built in; they disappear as
soon as you open your own files.

## Working with tabs

Tabs are mouse-first. Click a tab to select it. Hover the close mark to
see it light up, click it to close the page. The secondary button opens
a small menu with *Close*, *Close others*, and *Close all*; the tertiary
button closes a tab directly. Which physical button is which depends on
the platform family, see the shortcuts tab.

## Keys

| Key | Action |
|-----|--------|
| o | open a file in a new tab |
| r | rename the current tab |
| ctrl+w | close the current tab |
| ctrl+e | edit the current document in $EDITOR |
| q | quit |

Configuration lives at {{config}}, or in a quire.yml next to your files.
Generated on {{date}}.
`

// shortcutsDoc is the embedded plain-text reference page.
const shortcutsDoc = `quire {{version}} - shortcuts

Mouse (tab row)
  left click            select tab
  mac family:   middle button opens the tab menu,
                right button closes the tab
  other family: right button opens the tab menu,
                middle button closes the tab
  close mark            click to close, hover to highlight

Mouse (content)
  wheel                 scroll the current document

Keys
  o                     open a file in a new tab
  r                     rename the current tab
  ctrl+w                close the current tab
  ctrl+e                edit the current document in $EDITOR
  up/down, pgup/pgdn    scroll the current document
  q, ctrl+c             quit

The platform family defaults to the OS quire runs on; override it with
"platform: mac" or "platform: other" in {{config}}.
`

// sampleCode is the embedded syntax-highlighting demo.
const sampleCode = `package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// wordCounts tallies whitespace-separated words, lowercased.
func wordCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		counts[strings.Trim(w, ".,:;!?")]++
	}
	return counts
}

func main() {
	data, err := os.ReadFile("input.txt")
	if err != nil {
		fmt.Fprintln(os.Stderr, "read:", err)
		os.Exit(1)
	}

	counts := wordCounts(string(data))
	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		return counts[words[i]] > counts[words[j]]
	})

	for _, w := range words[:min(10, len(words))] {
		fmt.Printf("%5d  %s\n", counts[w], w)
	}
}
`
