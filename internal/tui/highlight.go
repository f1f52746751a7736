package tui

import (
	"strings"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/quirekit/quire/internal/tui/theme"
)

// syntaxHighlight renders source code with ANSI color codes. The lexer is
// detected from the file name first, then from the content itself.
func syntaxHighlight(source, fileName string) string {
	lexer := lexers.Match(fileName)
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}

	// terminal16m for true color, terminal256 as a fallback
	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		formatter = formatters.Get("terminal256")
	}
	if formatter == nil {
		return source
	}

	t := theme.Current()

	// chroma ships the catppuccin styles, so the highlight palette can
	// follow the UI theme directly. Get falls back for unknown names.
	baseStyle := styles.Get(t.Name)

	// Repaint token backgrounds with the pane background so the code view
	// does not sit on the chroma style's own base color.
	bgColour := chroma.MustParseColour(t.BgBase)
	style, err := baseStyle.Builder().Transform(func(entry chroma.StyleEntry) chroma.StyleEntry {
		entry.Background = bgColour
		return entry
	}).Build()
	if err != nil {
		style = baseStyle
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var b strings.Builder
	if err := formatter.Format(&b, style, iterator); err != nil {
		return source
	}

	return strings.TrimSuffix(b.String(), "\n")
}
